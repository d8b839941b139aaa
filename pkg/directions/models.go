package directions

// StatusOK is the top-level status the provider returns on success.
// Anything else means the response carries no usable routes.
const StatusOK = "OK"

// Request describes one directions lookup between two places.
type Request struct {
	Origin        string
	Destination   string
	Mode          string // "transit", "bicycling", "walking", "driving"
	TransitMode   string // "bus", "train"; only meaningful when Mode is "transit"
	DepartureTime string // "now" or epoch seconds
	Alternatives  bool
}

// Response is the top-level object returned by the directions provider.
type Response struct {
	Status string  `json:"status"`
	Routes []Route `json:"routes"`
}

// Route is one alternative from origin to destination.
type Route struct {
	Legs []Leg `json:"legs"`
}

// Leg is a continuous stretch of a route between two waypoints.
type Leg struct {
	Duration *TextValue `json:"duration,omitempty"`
	Steps    []Step     `json:"steps"`
}

// Step is a single instruction within a leg. Transit steps carry a
// TransitDetails block; walking/driving steps do not.
type Step struct {
	TravelMode     string          `json:"travel_mode"`
	TransitDetails *TransitDetails `json:"transit_details,omitempty"`
}

// TransitDetails holds the transit-specific fields of a step.
type TransitDetails struct {
	Line          Line       `json:"line"`
	DepartureTime *Timestamp `json:"departure_time,omitempty"`
	ArrivalTime   *Timestamp `json:"arrival_time,omitempty"`
	DepartureStop Place      `json:"departure_stop"`
	ArrivalStop   Place      `json:"arrival_stop"`
	Headsign      string     `json:"headsign"`
	Agencies      []Agency   `json:"agencies,omitempty"`
}

// Line identifies the transit line of a step (e.g. short_name "801").
type Line struct {
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
}

// Agency is the operator of a line.
type Agency struct {
	Name string `json:"name"`
}

// Place is a named location such as a transit stop.
type Place struct {
	Name string `json:"name"`
}

// Timestamp is the provider's two-faced time representation: Value is
// epoch seconds and only present when the provider has real-time data,
// Text is the human-readable schedule string (e.g. "3:15 PM").
type Timestamp struct {
	Value int64  `json:"value,omitempty"`
	Text  string `json:"text,omitempty"`
}

// HasValue reports whether the timestamp carries a real-time epoch value.
func (t *Timestamp) HasValue() bool {
	return t != nil && t.Value != 0
}

// TextValue is a generic {value, text} pair, used for leg durations
// (value in seconds).
type TextValue struct {
	Value int64  `json:"value"`
	Text  string `json:"text"`
}
