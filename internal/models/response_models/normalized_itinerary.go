package response_models

// NormalizedItinerary is the fully structured, geocoded and summarized
// itinerary emitted by the conversion pipeline.
type NormalizedItinerary struct {
	Metadata ItineraryMetadata `json:"metadata"`
	Days     []NormalizedDay   `json:"days"`
}

type ItineraryMetadata struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	TotalKm     int      `json:"totalKm"`
	TotalTime   string   `json:"totalTime"`
	TotalCost   string   `json:"totalCost"`
	Created     string   `json:"created"`
	Modified    string   `json:"modified"`
	IsPublic    bool     `json:"isPublic"`
	Tags        []string `json:"tags"`
}

type NormalizedDay struct {
	DayNumber  int                  `json:"dayNumber"`
	Date       string               `json:"date"`
	Stats      DayStats             `json:"stats"`
	Activities []NormalizedActivity `json:"activities"`
}

type DayStats struct {
	Km          int    `json:"km"`
	Time        string `json:"time"`
	Cost        string `json:"cost"`
	DrivingTime string `json:"drivingTime"`
	Stops       int    `json:"stops"`
}

type NormalizedActivity struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Subtype      string     `json:"subtype,omitempty"`
	Name         string     `json:"name"`
	Time         string     `json:"time,omitempty"`
	Coords       [2]float64 `json:"coords"`
	Description  string     `json:"description"`
	Duration     string     `json:"duration"`
	Cost         string     `json:"cost"`
	Required     bool       `json:"required"`
	Alternatives []string   `json:"alternatives"`
	Notes        string     `json:"notes"`

	// Meal extras.
	Cuisine     string   `json:"cuisine,omitempty"`
	Specialties []string `json:"specialties,omitempty"`

	// Accommodation extras.
	AccommodationType string `json:"accommodationType,omitempty"`
	CheckIn           string `json:"checkIn,omitempty"`
	CheckOut          string `json:"checkOut,omitempty"`
}
