package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
)

func busResponse(epoch int64) *directions.Response {
	return &directions.Response{
		Status: directions.StatusOK,
		Routes: []directions.Route{
			{
				Legs: []directions.Leg{
					{
						Steps: []directions.Step{
							{TravelMode: "WALKING"},
							{
								TravelMode: "TRANSIT",
								TransitDetails: &directions.TransitDetails{
									Line:          directions.Line{ShortName: "801", Name: "Lakeshore Express"},
									DepartureTime: &directions.Timestamp{Value: epoch, Text: "3:15 PM"},
									ArrivalTime:   &directions.Timestamp{Value: epoch + 1800, Text: "3:45 PM"},
									DepartureStop: directions.Place{Name: "Lincoln & Webster"},
									ArrivalStop:   directions.Place{Name: "Transit Center"},
									Headsign:      "Downtown",
								},
							},
							{
								TravelMode: "TRANSIT",
								TransitDetails: &directions.TransitDetails{
									Line:          directions.Line{ShortName: "20", Name: "Madison"},
									DepartureTime: &directions.Timestamp{Text: "3:20 PM"},
									DepartureStop: directions.Place{Name: "Other Stop"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestFilterTransitSteps_BusRouteScenario(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 14, 0, 0, 0, zone)
	epoch := time.Date(2026, 3, 4, 15, 15, 0, 0, zone).Unix()

	resp := busResponse(epoch)

	steps := FilterTransitSteps(resp, BusRouteFilter("801"))
	if len(steps) != 1 {
		t.Fatalf("expected exactly 1 matching step, got %d", len(steps))
	}
	if steps[0].TransitDetails.Line.ShortName != "801" {
		t.Errorf("expected the 801 leg, got line %q", steps[0].TransitDetails.Line.ShortName)
	}

	cands := BuildCandidates(steps, NewNormalizer(zone), now)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}

	c := cands[0]
	// Primary instant is the departure at the rider's stop, not the
	// arrival at the far end.
	if c.Arrival.Hour() != 15 || c.Arrival.Minute() != 15 {
		t.Errorf("expected candidate at 15:15 (departure time), got %02d:%02d", c.Arrival.Hour(), c.Arrival.Minute())
	}
	if !c.Live {
		t.Errorf("expected live flag: departure_time carried an epoch value")
	}
	if c.StopName != "Lincoln & Webster" {
		t.Errorf("expected boarding stop name, got %q", c.StopName)
	}
	if c.Headsign != "Downtown" {
		t.Errorf("expected headsign Downtown, got %q", c.Headsign)
	}
}

func TestFilterTransitSteps_ExactRouteMatch(t *testing.T) {
	resp := &directions.Response{
		Status: directions.StatusOK,
		Routes: []directions.Route{
			{
				Legs: []directions.Leg{
					{
						Steps: []directions.Step{
							{
								TravelMode: "TRANSIT",
								TransitDetails: &directions.TransitDetails{
									Line:          directions.Line{ShortName: "801X"},
									DepartureTime: &directions.Timestamp{Text: "3:15 PM"},
								},
							},
							{
								TravelMode: "TRANSIT",
								TransitDetails: &directions.TransitDetails{
									Line:          directions.Line{ShortName: "80"},
									DepartureTime: &directions.Timestamp{Text: "3:20 PM"},
								},
							},
						},
					},
				},
			},
		},
	}

	if steps := FilterTransitSteps(resp, BusRouteFilter("801")); len(steps) != 0 {
		t.Errorf("route match must be exact: %q and %q should not match 801", "801X", "80")
	}
}

func TestFilterTransitSteps_TrainMatchesLineOrAgency(t *testing.T) {
	byName := &directions.TransitDetails{
		Line:          directions.Line{Name: "Caltrain Local"},
		DepartureTime: &directions.Timestamp{Text: "4:00 PM"},
	}
	byAgency := &directions.TransitDetails{
		Line:          directions.Line{Name: "Local"},
		Agencies:      []directions.Agency{{Name: "CALTRAIN"}},
		DepartureTime: &directions.Timestamp{Text: "4:30 PM"},
	}
	neither := &directions.TransitDetails{
		Line:          directions.Line{Name: "BART Yellow"},
		Agencies:      []directions.Agency{{Name: "BART"}},
		DepartureTime: &directions.Timestamp{Text: "5:00 PM"},
	}

	filter := TrainLineFilter("caltrain")
	if !filter(byName) {
		t.Errorf("expected case-insensitive substring match on line name")
	}
	if !filter(byAgency) {
		t.Errorf("expected case-insensitive substring match on agency name")
	}
	if filter(neither) {
		t.Errorf("did not expect a match for an unrelated line")
	}
}

func TestFilterTransitSteps_RejectsBadResponses(t *testing.T) {
	filter := BusRouteFilter("801")

	if steps := FilterTransitSteps(nil, filter); steps != nil {
		t.Errorf("nil response should filter to nothing")
	}

	zero := &directions.Response{Status: "ZERO_RESULTS"}
	if steps := FilterTransitSteps(zero, filter); steps != nil {
		t.Errorf("non-OK status should filter to nothing")
	}

	empty := &directions.Response{Status: directions.StatusOK}
	if steps := FilterTransitSteps(empty, filter); steps != nil {
		t.Errorf("response without routes should filter to nothing")
	}
}

func TestFilterTransitSteps_Idempotent(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 14, 0, 0, 0, zone)
	epoch := time.Date(2026, 3, 4, 15, 15, 0, 0, zone).Unix()

	resp := busResponse(epoch)
	filter := BusRouteFilter("801")
	norm := NewNormalizer(zone)

	first := BuildCandidates(FilterTransitSteps(resp, filter), norm, now)
	second := BuildCandidates(FilterTransitSteps(resp, filter), norm, now)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("filtering the same response twice produced different candidates:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildCandidates_DropsMalformedTimestamps(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 14, 0, 0, 0, zone)

	steps := []*directions.Step{
		{
			TravelMode: "TRANSIT",
			TransitDetails: &directions.TransitDetails{
				Line:          directions.Line{ShortName: "801"},
				DepartureTime: &directions.Timestamp{}, // neither value nor text
			},
		},
		{
			TravelMode: "TRANSIT",
			TransitDetails: &directions.TransitDetails{
				Line: directions.Line{ShortName: "801"},
				// departure_time missing entirely
			},
		},
		{
			TravelMode: "TRANSIT",
			TransitDetails: &directions.TransitDetails{
				Line:          directions.Line{ShortName: "801"},
				DepartureTime: &directions.Timestamp{Text: "2:45 PM"},
			},
		},
	}

	cands := BuildCandidates(steps, NewNormalizer(zone), now)
	if len(cands) != 1 {
		t.Fatalf("expected malformed steps to be dropped, got %d candidates", len(cands))
	}
	if cands[0].Live {
		t.Errorf("text-only candidate must not be live")
	}
	if cands[0].Arrival.Hour() != 14 || cands[0].Arrival.Minute() != 45 {
		t.Errorf("expected 14:45, got %02d:%02d", cands[0].Arrival.Hour(), cands[0].Arrival.Minute())
	}
}
