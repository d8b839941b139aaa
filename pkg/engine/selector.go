package engine

import "time"

// SelectNext picks the single next relevant departure from a candidate list.
//
// Live candidates are trusted on absolute time, since their instants already
// reflect real delays: the earliest strictly-future live candidate wins.
// Scheduled candidates repeat daily, so the fallback compares time-of-day
// only, ignoring dates; a list fetched hours ago still answers "when is the
// next occurrence of this daily schedule". When every time-of-day has passed,
// the earliest slot wraps to tomorrow.
//
// The returned candidate is a copy whose Arrival has been materialized onto
// the correct date; nil means no candidates.
func SelectNext(cands []ArrivalCandidate, now time.Time, zone *time.Location) *ArrivalCandidate {
	if len(cands) == 0 {
		return nil
	}

	// 1. Earliest strictly-future live candidate, absolute time.
	var best *ArrivalCandidate
	for i := range cands {
		c := &cands[i]
		if !c.Live || !c.Arrival.After(now) {
			continue
		}
		if best == nil || c.Arrival.Before(best.Arrival) {
			best = c
		}
	}
	if best != nil {
		chosen := *best
		chosen.Arrival = chosen.Arrival.In(zone)
		return &chosen
	}

	// 2. Earliest time-of-day after now's, materialized today.
	nowTod := timeOfDaySeconds(now, zone)
	bestIdx := -1
	bestTod := 0
	for i := range cands {
		tod := timeOfDaySeconds(cands[i].Arrival, zone)
		if tod <= nowTod {
			continue
		}
		if bestIdx < 0 || tod < bestTod {
			bestIdx, bestTod = i, tod
		}
	}
	if bestIdx >= 0 {
		chosen := cands[bestIdx]
		chosen.Arrival = materializeOnDay(now, bestTod, zone)
		return &chosen
	}

	// 3. Everything has passed for today; wrap to tomorrow's earliest slot.
	bestIdx = 0
	bestTod = timeOfDaySeconds(cands[0].Arrival, zone)
	for i := 1; i < len(cands); i++ {
		if tod := timeOfDaySeconds(cands[i].Arrival, zone); tod < bestTod {
			bestIdx, bestTod = i, tod
		}
	}
	chosen := cands[bestIdx]
	chosen.Arrival = materializeOnDay(now.AddDate(0, 0, 1), bestTod, zone)
	return &chosen
}
