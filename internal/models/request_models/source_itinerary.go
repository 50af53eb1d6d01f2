package request_models

// TripInfo carries the free-text trip parameters from the planning form.
// The pipeline never parses these beyond deriving the itinerary id/title
// and the destination city for geocoding.
type TripInfo struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Duration    string `json:"duration"`
	People      string `json:"people"`
	Description string `json:"description"`
}

// SourceItinerary is the loosely structured day/movement/activity plan as
// produced by the AI planner or by manual editing.
type SourceItinerary struct {
	TripInfo *TripInfo   `json:"tripInfo"`
	Days     []SourceDay `json:"days"`
}

type SourceDay struct {
	Day       int              `json:"day"`
	Movements []SourceMovement `json:"movements"`
}

type SourceMovement struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	Transport  string           `json:"transport,omitempty"`
	Activities []SourceActivity `json:"activities"`
}

type SourceActivity struct {
	Description  string   `json:"description"`
	Time         string   `json:"time,omitempty"`
	Cost         string   `json:"cost,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}
