package engine

import (
	"testing"
	"time"
)

// schedCand builds a non-live candidate at the given wall-clock time on an
// arbitrary (stale) date, mimicking scheduled data fetched some time ago.
func schedCand(zone *time.Location, hour, minute int) ArrivalCandidate {
	return ArrivalCandidate{
		Arrival: time.Date(2026, 3, 1, hour, minute, 0, 0, zone),
		Line:    "801",
	}
}

func TestSelectNext_DayRollover(t *testing.T) {
	zone := chicago(t)

	// 23:50 with only an 08:00 slot: the answer is tomorrow 08:00, not a
	// stale today-08:00 in the past.
	now := time.Date(2026, 3, 4, 23, 50, 0, 0, zone)
	cands := []ArrivalCandidate{schedCand(zone, 8, 0)}

	next := SelectNext(cands, now, zone)
	if next == nil {
		t.Fatalf("expected a next departure")
	}

	want := time.Date(2026, 3, 5, 8, 0, 0, 0, zone)
	if !next.Arrival.Equal(want) {
		t.Errorf("expected tomorrow 08:00 (%v), got %v", want, next.Arrival)
	}
}

func TestSelectNext_DSTTransitionDays(t *testing.T) {
	zone := chicago(t)

	// On the fall-back and spring-forward days the materialized instant must
	// still read the schedule's wall clock and sit strictly in the future.
	days := []time.Time{
		time.Date(2026, 11, 1, 6, 0, 0, 0, zone), // 25-hour day
		time.Date(2026, 3, 8, 6, 0, 0, 0, zone),  // 23-hour day
	}

	for _, now := range days {
		next := SelectNext([]ArrivalCandidate{schedCand(zone, 6, 30)}, now, zone)
		if next == nil {
			t.Fatalf("at %v: expected a next departure", now)
		}
		if next.Arrival.Hour() != 6 || next.Arrival.Minute() != 30 {
			t.Errorf("at %v: expected 6:30 wall clock, got %02d:%02d",
				now, next.Arrival.Hour(), next.Arrival.Minute())
		}
		if !next.Arrival.After(now) {
			t.Errorf("at %v: selected departure %v is not in the future", now, next.Arrival)
		}
	}
}

func TestSelectNext_TimeOfDayFallbackMaterializesToday(t *testing.T) {
	zone := chicago(t)

	now := time.Date(2026, 3, 4, 9, 0, 0, 0, zone)
	cands := []ArrivalCandidate{
		schedCand(zone, 8, 0),  // already passed today
		schedCand(zone, 14, 30),
		schedCand(zone, 10, 15),
	}

	next := SelectNext(cands, now, zone)
	if next == nil {
		t.Fatalf("expected a next departure")
	}

	want := time.Date(2026, 3, 4, 10, 15, 0, 0, zone)
	if !next.Arrival.Equal(want) {
		t.Errorf("expected today 10:15 (%v), got %v", want, next.Arrival)
	}
}

func TestSelectNext_LivePrecedence(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, zone)

	live := ArrivalCandidate{
		Arrival: time.Date(2026, 3, 4, 10, 0, 0, 0, zone),
		Live:    true,
	}
	scheduled := schedCand(zone, 9, 30)

	// The scheduled 09:30 is earlier in the list and earlier on the clock,
	// but live data already reflects real delays and wins.
	next := SelectNext([]ArrivalCandidate{scheduled, live}, now, zone)
	if next == nil {
		t.Fatalf("expected a next departure")
	}
	if !next.Live {
		t.Errorf("expected the live candidate to win")
	}
	if next.Arrival.Hour() != 10 || next.Arrival.Minute() != 0 {
		t.Errorf("expected 10:00, got %02d:%02d", next.Arrival.Hour(), next.Arrival.Minute())
	}
}

func TestSelectNext_StaleLiveFallsBackToSchedule(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 11, 0, 0, 0, zone)

	staleLive := ArrivalCandidate{
		Arrival: time.Date(2026, 3, 4, 10, 0, 0, 0, zone), // already departed
		Live:    true,
	}
	scheduled := schedCand(zone, 14, 30)

	next := SelectNext([]ArrivalCandidate{staleLive, scheduled}, now, zone)
	if next == nil {
		t.Fatalf("expected a next departure")
	}
	want := time.Date(2026, 3, 4, 14, 30, 0, 0, zone)
	if !next.Arrival.Equal(want) {
		t.Errorf("expected the scheduled 14:30 via time-of-day fallback, got %v", next.Arrival)
	}
}

func TestSelectNext_EarliestLiveWins(t *testing.T) {
	zone := chicago(t)
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, zone)

	later := ArrivalCandidate{Arrival: time.Date(2026, 3, 4, 10, 30, 0, 0, zone), Live: true}
	sooner := ArrivalCandidate{Arrival: time.Date(2026, 3, 4, 9, 45, 0, 0, zone), Live: true}

	next := SelectNext([]ArrivalCandidate{later, sooner}, now, zone)
	if next == nil {
		t.Fatalf("expected a next departure")
	}
	if next.Arrival.Hour() != 9 || next.Arrival.Minute() != 45 {
		t.Errorf("expected the earlier live candidate (9:45), got %02d:%02d", next.Arrival.Hour(), next.Arrival.Minute())
	}
}

func TestSelectNext_Empty(t *testing.T) {
	zone := chicago(t)

	if next := SelectNext(nil, time.Now(), zone); next != nil {
		t.Errorf("expected nil for empty candidate list, got %+v", next)
	}
}
