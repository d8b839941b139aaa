package engine

import (
	"context"
	"errors"
	"time"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
)

// RouteSource supplies raw directions responses. Both the live provider
// client and its cache-backed fallback satisfy this.
type RouteSource interface {
	Routes(ctx context.Context, r directions.Request) (*directions.Response, error)
}

// ErrProviderUnavailable wraps any failure to obtain a usable response from
// the route source.
var ErrProviderUnavailable = errors.New("directions provider unavailable")

// StopResult is what one stop contributes to the board for one refresh cycle.
// It is rebuilt from scratch every cycle and never mutated in place. A failed
// stop yields a result with nil time fields and Err set; the error never
// travels further than this record.
type StopResult struct {
	StopID string
	Name   string
	Mode   Mode

	// Transit modes only.
	Candidates   []ArrivalCandidate
	Next         *ArrivalCandidate
	LastStop     *time.Time
	NextNearLast bool

	// Point-to-point modes only; nil when the route could not be resolved.
	DurationMinutes *int

	Err error
}

// Processor runs one stop through its per-mode pipeline:
// fetch, filter (transit only), normalize, select, emit.
type Processor struct {
	source RouteSource
	norm   *Normalizer
}

func NewProcessor(source RouteSource, zone *time.Location) *Processor {
	return &Processor{
		source: source,
		norm:   NewNormalizer(zone),
	}
}

// Zone returns the canonical zone results are expressed in.
func (p *Processor) Zone() *time.Location {
	return p.norm.Zone()
}

// Process computes the stop's result for this cycle. It never panics and
// never returns an error: failures are absorbed into the result so one bad
// stop cannot block or corrupt its siblings.
func (p *Processor) Process(ctx context.Context, stop StopConfig, now time.Time) StopResult {
	res := StopResult{StopID: stop.ID, Name: stop.Name, Mode: stop.Mode}

	if err := stop.Validate(); err != nil {
		res.Err = err
		return res
	}

	switch {
	case stop.Mode == ModeFerry:
		p.processFerry(stop, now, &res)
	case stop.Mode.IsTransit():
		p.processTransit(ctx, stop, now, &res)
	default:
		p.processPointToPoint(ctx, stop, &res)
	}

	return res
}

func (p *Processor) processFerry(stop StopConfig, now time.Time, res *StopResult) {
	cands, err := FerryCandidates(stop.Ferry.Direction, now, p.norm.Zone())
	if err != nil {
		res.Err = err
		return
	}
	p.finish(cands, now, res)
}

func (p *Processor) processTransit(ctx context.Context, stop StopConfig, now time.Time, res *StopResult) {
	var req directions.Request
	var filter LineFilter

	if stop.Mode == ModeBus {
		req = directions.Request{
			Origin:        stop.Bus.Origin,
			Destination:   stop.Bus.Destination,
			Mode:          "transit",
			TransitMode:   "bus",
			DepartureTime: "now",
			Alternatives:  true,
		}
		filter = BusRouteFilter(stop.Bus.Route)
	} else {
		req = directions.Request{
			Origin:        stop.Train.Origin,
			Destination:   stop.Train.Destination,
			Mode:          "transit",
			TransitMode:   "train",
			DepartureTime: "now",
			Alternatives:  true,
		}
		filter = TrainLineFilter(stop.Train.LineMatch)
	}

	resp, err := p.source.Routes(ctx, req)
	if err != nil {
		res.Err = errors.Join(ErrProviderUnavailable, err)
		return
	}

	// An empty filter result is not an error: no candidates means the board
	// shows no time for this stop.
	steps := FilterTransitSteps(resp, filter)
	cands := BuildCandidates(steps, p.norm, now)
	p.finish(cands, now, res)
}

func (p *Processor) processPointToPoint(ctx context.Context, stop StopConfig, res *StopResult) {
	req := directions.Request{
		Origin:      stop.Point.Origin,
		Destination: stop.Point.Destination,
		Mode:        stop.Mode.travelMode(),
	}

	resp, err := p.source.Routes(ctx, req)
	if err != nil {
		res.Err = errors.Join(ErrProviderUnavailable, err)
		return
	}
	if resp == nil || resp.Status != directions.StatusOK || len(resp.Routes) == 0 {
		res.Err = ErrProviderUnavailable
		return
	}

	// First route's total duration, whole minutes. Durations are relative,
	// so no zone or rollover logic applies.
	var totalSec int64
	for _, leg := range resp.Routes[0].Legs {
		if leg.Duration != nil {
			totalSec += leg.Duration.Value
		}
	}
	minutes := int((totalSec + 30) / 60)
	res.DurationMinutes = &minutes
}

func (p *Processor) finish(cands []ArrivalCandidate, now time.Time, res *StopResult) {
	res.Candidates = cands
	res.Next = SelectNext(cands, now, p.norm.Zone())
	res.LastStop, res.NextNearLast = ComputeLastStop(cands, res.Next, now, p.norm.Zone())
}
