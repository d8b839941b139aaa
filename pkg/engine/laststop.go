package engine

import "time"

// ComputeLastStop determines the day's final scheduled departure and whether
// the chosen next departure sits close to it.
//
// The last stop is the latest time-of-day in the candidate list, materialized
// today when its time-of-day is still ahead of the next departure's, else
// tomorrow (the same rolling-day frame the selector uses).
//
// Closeness is positional, not clock-based: both times-of-day are looked up
// in the sorted slot list and near means the indices differ by at most two.
// Two slots hours apart in clock time but adjacent in the schedule still
// count as near. The lookup takes the first matching index, so duplicate
// times-of-day resolve to the earliest slot holding that reading.
func ComputeLastStop(cands []ArrivalCandidate, next *ArrivalCandidate, now time.Time, zone *time.Location) (*time.Time, bool) {
	if len(cands) == 0 || next == nil {
		return nil, false
	}

	tods := sortedTimesOfDay(cands, zone)
	lastTod := tods[len(tods)-1]
	nextTod := timeOfDaySeconds(next.Arrival, zone)

	var last time.Time
	if lastTod > nextTod {
		last = materializeOnDay(now, lastTod, zone)
	} else {
		last = materializeOnDay(now.AddDate(0, 0, 1), lastTod, zone)
	}

	near := absInt(indexOfTod(tods, lastTod)-indexOfTod(tods, nextTod)) <= 2

	return &last, near
}

// indexOfTod returns the first index holding tod, or -1.
func indexOfTod(tods []int, tod int) int {
	for i, v := range tods {
		if v == tod {
			return i
		}
	}
	return -1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
