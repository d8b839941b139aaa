package engine

import "fmt"

// Mode identifies which commute pipeline a stop runs through. Bus, train and
// ferry get the full filter/normalize/select pipeline; bike, walk and drive
// only report a point-to-point duration.
type Mode string

const (
	ModeBus   Mode = "bus"
	ModeTrain Mode = "train"
	ModeFerry Mode = "ferry"
	ModeBike  Mode = "bike"
	ModeWalk  Mode = "walk"
	ModeDrive Mode = "drive"
)

// Modes lists every supported mode, in display order.
var Modes = []Mode{ModeBus, ModeTrain, ModeFerry, ModeBike, ModeWalk, ModeDrive}

// IsTransit reports whether the mode carries timetabled departures.
func (m Mode) IsTransit() bool {
	return m == ModeBus || m == ModeTrain || m == ModeFerry
}

// IsPointToPoint reports whether the mode only yields a travel duration.
func (m Mode) IsPointToPoint() bool {
	return m == ModeBike || m == ModeWalk || m == ModeDrive
}

// travelMode maps a point-to-point mode to the provider's mode parameter.
func (m Mode) travelMode() string {
	switch m {
	case ModeBike:
		return "bicycling"
	case ModeWalk:
		return "walking"
	case ModeDrive:
		return "driving"
	default:
		return "transit"
	}
}

// BusConfig tracks one numbered bus route between two places.
type BusConfig struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Route       string `json:"route"` // exact short-name match, e.g. "801"
}

// TrainConfig tracks a commuter rail line. Rail lines have no single numeric
// route identifier, so matching is a case-insensitive substring against the
// line or agency name.
type TrainConfig struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	LineMatch   string `json:"line_match"` // e.g. "caltrain"
}

// FerryConfig tracks one direction of the static ferry timetable.
type FerryConfig struct {
	Direction FerryDirection `json:"direction"`
}

// PointConfig is the origin/destination pair for bike, walk and drive stops.
type PointConfig struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// StopConfig is one user-defined commute stop. Exactly one of the per-mode
// blocks must be set, and it must agree with Mode; Validate enforces this so
// downstream code never has to guess which fields are populated.
type StopConfig struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode Mode   `json:"mode"`

	Bus   *BusConfig   `json:"bus,omitempty"`
	Train *TrainConfig `json:"train,omitempty"`
	Ferry *FerryConfig `json:"ferry,omitempty"`
	Point *PointConfig `json:"point,omitempty"`
}

// Validate checks that the stop carries exactly the config block its mode
// requires and that the block's required fields are filled in.
func (s *StopConfig) Validate() error {
	set := 0
	if s.Bus != nil {
		set++
	}
	if s.Train != nil {
		set++
	}
	if s.Ferry != nil {
		set++
	}
	if s.Point != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("stop %q: expected exactly one mode config block, found %d", s.Name, set)
	}

	switch s.Mode {
	case ModeBus:
		if s.Bus == nil {
			return fmt.Errorf("stop %q: mode is bus but bus config is missing", s.Name)
		}
		if s.Bus.Origin == "" || s.Bus.Destination == "" || s.Bus.Route == "" {
			return fmt.Errorf("stop %q: bus config requires origin, destination and route", s.Name)
		}
	case ModeTrain:
		if s.Train == nil {
			return fmt.Errorf("stop %q: mode is train but train config is missing", s.Name)
		}
		if s.Train.Origin == "" || s.Train.Destination == "" || s.Train.LineMatch == "" {
			return fmt.Errorf("stop %q: train config requires origin, destination and line match", s.Name)
		}
	case ModeFerry:
		if s.Ferry == nil {
			return fmt.Errorf("stop %q: mode is ferry but ferry config is missing", s.Name)
		}
		if _, ok := sailingsByDirection[s.Ferry.Direction]; !ok {
			return fmt.Errorf("stop %q: unknown ferry direction %q", s.Name, s.Ferry.Direction)
		}
	case ModeBike, ModeWalk, ModeDrive:
		if s.Point == nil {
			return fmt.Errorf("stop %q: mode is %s but point config is missing", s.Name, s.Mode)
		}
		if s.Point.Origin == "" || s.Point.Destination == "" {
			return fmt.Errorf("stop %q: %s config requires origin and destination", s.Name, s.Mode)
		}
	default:
		return fmt.Errorf("stop %q: unknown mode %q", s.Name, s.Mode)
	}

	return nil
}
