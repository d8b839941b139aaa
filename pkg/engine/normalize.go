package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
)

// CanonicalZoneName is the reference deployment's display zone. Every instant
// the engine hands out is expressed in this zone regardless of where the
// source data came from.
const CanonicalZoneName = "America/Chicago"

// LoadCanonicalZone loads the canonical zone, preferring the given override.
func LoadCanonicalZone(override string) (*time.Location, error) {
	name := CanonicalZoneName
	if override != "" {
		name = override
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load canonical time zone %q: %w", name, err)
	}
	return loc, nil
}

// Normalizer converts the provider's heterogeneous timestamp shapes into
// instants anchored to one canonical zone. Absent timestamps stay absent;
// nothing here ever invents a time.
type Normalizer struct {
	zone *time.Location
}

func NewNormalizer(zone *time.Location) *Normalizer {
	return &Normalizer{zone: zone}
}

// Zone returns the canonical zone the normalizer anchors to.
func (n *Normalizer) Zone() *time.Location {
	return n.zone
}

// FromEpoch converts provider epoch seconds to a canonical-zone instant.
// Epoch values are absolute, so this is exact for every input.
func (n *Normalizer) FromEpoch(sec int64) time.Time {
	return time.Unix(sec, 0).In(n.zone)
}

// ParseInstant parses an ISO-8601 timestamp and re-anchors it to the
// canonical zone.
func (n *Normalizer) ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse timestamp %q: %w", s, err)
	}
	return t.In(n.zone), nil
}

// clockLayouts are the display-text shapes the provider has been seen to emit.
var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// FromTimestamp normalizes one provider timestamp. A real-time epoch value
// wins and marks the result live; otherwise the schedule display text is
// parsed as a canonical-zone wall-clock reading on now's date. ok is false
// when the timestamp carries neither, which callers must treat as "drop the
// candidate", never as "now".
func (n *Normalizer) FromTimestamp(ts *directions.Timestamp, now time.Time) (instant time.Time, live bool, ok bool) {
	if ts == nil {
		return time.Time{}, false, false
	}

	if ts.HasValue() {
		return n.FromEpoch(ts.Value), true, true
	}

	text := cleanClockText(ts.Text)
	if text == "" {
		return time.Time{}, false, false
	}

	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		day := now.In(n.zone)
		return time.Date(day.Year(), day.Month(), day.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, n.zone), false, true
	}

	return time.Time{}, false, false
}

// cleanClockText strips the narrow no-break spaces the provider puts between
// the minutes and the AM/PM marker.
func cleanClockText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}
