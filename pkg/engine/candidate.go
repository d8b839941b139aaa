package engine

import (
	"sort"
	"time"
)

// ArrivalCandidate is one normalized, filtered departure event under
// consideration for "next arrival" selection. Arrival is the primary instant:
// for bus and train it is the departure time at the rider's own boarding stop,
// not the arrival at the far end of the leg.
type ArrivalCandidate struct {
	StopName  string
	Arrival   time.Time  // canonical zone, always set
	Departure *time.Time // raw departure instant when the provider supplied one
	Headsign  string
	Line      string
	Live      bool // true iff the source carried a real-time epoch value
}

// timeOfDaySeconds strips an instant to its seconds-since-midnight reading in
// the given zone. Daily schedules repeat, so most comparisons in the engine
// happen in this stripped frame rather than on absolute dates.
func timeOfDaySeconds(t time.Time, zone *time.Location) int {
	t = t.In(zone)
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// materializeOnDay builds the instant at the given time-of-day on day's date
// in the given zone. The wall-clock fields go through time.Date so the result
// reads exactly todSeconds past midnight even on DST transition days, where
// adding a duration to midnight would drift by the skipped or repeated hour.
func materializeOnDay(day time.Time, todSeconds int, zone *time.Location) time.Time {
	day = day.In(zone)
	return time.Date(day.Year(), day.Month(), day.Day(),
		todSeconds/3600, (todSeconds%3600)/60, todSeconds%60, 0, zone)
}

// sortedTimesOfDay returns every candidate's time-of-day, ascending.
// Duplicates are kept; index lookups over this slice find the first match.
func sortedTimesOfDay(cands []ArrivalCandidate, zone *time.Location) []int {
	tods := make([]int, len(cands))
	for i, c := range cands {
		tods[i] = timeOfDaySeconds(c.Arrival, zone)
	}
	sort.Ints(tods)
	return tods
}

// UpcomingInstants materializes each candidate's next occurrence after now,
// sorted ascending. Used for calendar export, where every slot of the day is
// wanted rather than just the next one.
func UpcomingInstants(cands []ArrivalCandidate, now time.Time, zone *time.Location) []time.Time {
	nowTod := timeOfDaySeconds(now, zone)

	out := make([]time.Time, 0, len(cands))
	for _, c := range cands {
		tod := timeOfDaySeconds(c.Arrival, zone)
		if tod > nowTod {
			out = append(out, materializeOnDay(now, tod, zone))
		} else {
			out = append(out, materializeOnDay(now.AddDate(0, 0, 1), tod, zone))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
