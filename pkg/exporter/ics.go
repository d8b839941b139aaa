package exporter

import (
	"fmt"
	"io"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

// eventLength is the block size used for departure events; a departure is a
// moment, but zero-length events render poorly in most calendar apps.
const eventLength = 10 * time.Minute

// GenerateICS writes one stop's upcoming departures as a calendar. Each
// candidate becomes an event at its next occurrence after now, so the
// exported day always matches what the board would show.
func GenerateICS(result engine.StopResult, now time.Time, zone *time.Location, w io.Writer) error {
	if len(result.Candidates) == 0 {
		return fmt.Errorf("stop %q has no departures to export", result.Name)
	}

	type upcoming struct {
		when time.Time
		cand engine.ArrivalCandidate
	}

	items := make([]upcoming, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		when := engine.UpcomingInstants([]engine.ArrivalCandidate{c}, now, zone)
		if len(when) == 0 {
			continue
		}
		items = append(items, upcoming{when: when[0], cand: c})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].when.Before(items[j].when) })

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for i, item := range items {
		event := cal.AddEvent(fmt.Sprintf("%s-%s-%d", result.StopID, item.when.Format("20060102T150405"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(item.when)
		event.SetEndAt(item.when.Add(eventLength))
		event.SetSummary(fmt.Sprintf("🚌 %s departure", result.Name))

		if item.cand.StopName != "" {
			event.SetLocation(item.cand.StopName)
		}
		desc := fmt.Sprintf("Line: %s", item.cand.Line)
		if item.cand.Headsign != "" {
			desc += fmt.Sprintf("\nTowards: %s", item.cand.Headsign)
		}
		event.SetDescription(desc)
	}

	return cal.SerializeTo(w)
}
