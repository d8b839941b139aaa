package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// FerryDirection selects which side of the crossing the timetable describes.
type FerryDirection string

const (
	DirectionAnacortes    FerryDirection = "anacortes"
	DirectionFridayHarbor FerryDirection = "fridayharbor"
)

// FerryDirections lists the valid directions, in display order.
var FerryDirections = []FerryDirection{DirectionAnacortes, DirectionFridayHarbor}

// ErrEmptySchedule flags a ferry schedule that generated no sailings. With a
// non-empty static table this cannot happen; if it ever does, the caller must
// emit a null-filled result instead of crashing the batch.
var ErrEmptySchedule = errors.New("ferry schedule generated no sailings")

// sailing is one timetabled departure, as a wall-clock reading in the
// timetable's native zone (Pacific).
type sailing struct {
	hour   int
	minute int
}

// sourceShiftHours converts the timetable's Pacific wall clock to the
// canonical Central wall clock. This is a fixed shift baked into the source
// schedule, not an IANA conversion; it is off by an hour during the few weeks
// the two zones disagree on daylight saving.
const sourceShiftHours = 2

// Published sailings per direction, Pacific wall clock.
var sailingsByDirection = map[FerryDirection][]sailing{
	DirectionAnacortes: {
		{4, 30}, {7, 55}, {11, 15}, {14, 40}, {18, 10}, {21, 35},
	},
	DirectionFridayHarbor: {
		{5, 50}, {9, 30}, {12, 50}, {16, 20}, {19, 45}, {23, 0},
	},
}

// GenerateSchedule builds the next occurrence of every timetabled sailing for
// one direction, in the canonical zone, sorted ascending. Sailings whose
// time-of-day has already passed relative to now roll to tomorrow, so every
// returned instant is in the future.
func GenerateSchedule(direction FerryDirection, now time.Time, zone *time.Location) ([]time.Time, error) {
	table, ok := sailingsByDirection[direction]
	if !ok {
		return nil, fmt.Errorf("unknown ferry direction %q", direction)
	}

	nowTod := timeOfDaySeconds(now, zone)

	times := make([]time.Time, 0, len(table))
	for _, s := range table {
		tod := ((s.hour+sourceShiftHours)%24)*3600 + s.minute*60
		if tod > nowTod {
			times = append(times, materializeOnDay(now, tod, zone))
		} else {
			times = append(times, materializeOnDay(now.AddDate(0, 0, 1), tod, zone))
		}
	}

	if len(times) == 0 {
		return nil, ErrEmptySchedule
	}

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}

// FerryCandidates wraps the generated schedule in the same candidate shape
// the live transit pipeline produces, so the selector and last-stop logic are
// shared across all three transit modes.
func FerryCandidates(direction FerryDirection, now time.Time, zone *time.Location) ([]ArrivalCandidate, error) {
	times, err := GenerateSchedule(direction, now, zone)
	if err != nil {
		return nil, err
	}

	label := "Anacortes"
	headsign := "Friday Harbor"
	if direction == DirectionFridayHarbor {
		label, headsign = headsign, label
	}

	cands := make([]ArrivalCandidate, 0, len(times))
	for _, t := range times {
		cands = append(cands, ArrivalCandidate{
			StopName: label,
			Arrival:  t,
			Headsign: headsign,
			Line:     "Ferry",
			Live:     false,
		})
	}
	return cands, nil
}
