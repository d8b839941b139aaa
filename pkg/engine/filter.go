package engine

import (
	"strings"
	"time"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
)

// LineFilter decides whether one transit detail block belongs to the line a
// stop is configured to track.
type LineFilter func(td *directions.TransitDetails) bool

// BusRouteFilter matches a bus step by exact route short-name ("801" never
// matches "801X" or "80").
func BusRouteFilter(route string) LineFilter {
	return func(td *directions.TransitDetails) bool {
		return td.Line.ShortName == route
	}
}

// TrainLineFilter matches a rail step by case-insensitive substring against
// the line's display name or any operating agency's name. Rail lines in the
// source data carry no numeric route identifier, so this is as precise as the
// provider allows.
func TrainLineFilter(match string) LineFilter {
	match = strings.ToLower(match)
	return func(td *directions.TransitDetails) bool {
		if strings.Contains(strings.ToLower(td.Line.Name), match) {
			return true
		}
		for _, a := range td.Agencies {
			if strings.Contains(strings.ToLower(a.Name), match) {
				return true
			}
		}
		return false
	}
}

// FilterTransitSteps walks every route, leg and step of a directions response
// and keeps only transit steps whose line passes the filter. Non-OK responses
// and responses without routes yield nil. The input is never mutated, so
// filtering the same response twice gives identical results.
func FilterTransitSteps(resp *directions.Response, keep LineFilter) []*directions.Step {
	if resp == nil || resp.Status != directions.StatusOK || len(resp.Routes) == 0 {
		return nil
	}

	var steps []*directions.Step
	for ri := range resp.Routes {
		for li := range resp.Routes[ri].Legs {
			leg := &resp.Routes[ri].Legs[li]
			for si := range leg.Steps {
				step := &leg.Steps[si]
				if !strings.EqualFold(step.TravelMode, "transit") {
					continue
				}
				if step.TransitDetails == nil {
					continue
				}
				if keep(step.TransitDetails) {
					steps = append(steps, step)
				}
			}
		}
	}
	return steps
}

// BuildCandidates normalizes filtered transit steps into arrival candidates.
// The primary instant is the departure time at the rider's boarding stop;
// the leg's arrival-at-destination time is deliberately not used, the two
// differ by the whole ride. Steps whose departure timestamp carries neither a
// real-time value nor a display text are dropped.
func BuildCandidates(steps []*directions.Step, norm *Normalizer, now time.Time) []ArrivalCandidate {
	var cands []ArrivalCandidate
	for _, step := range steps {
		td := step.TransitDetails

		dep, live, ok := norm.FromTimestamp(td.DepartureTime, now)
		if !ok {
			continue
		}

		line := td.Line.ShortName
		if line == "" {
			line = td.Line.Name
		}

		depCopy := dep
		cands = append(cands, ArrivalCandidate{
			StopName:  td.DepartureStop.Name,
			Arrival:   dep,
			Departure: &depCopy,
			Headsign:  td.Headsign,
			Line:      line,
			Live:      live,
		})
	}
	return cands
}
