package db_models

import "github.com/lib/pq"

// ItineraryRecord is a persisted normalized itinerary. Searchable metadata
// lives in columns; the full day-by-day structure is kept as JSON.
type ItineraryRecord struct {
	BaseModel
	Slug        string `gorm:"index"`
	Title       string
	Description string
	Duration    int
	TotalKm     int
	TotalCost   string
	IsPublic    bool
	Tags        pq.StringArray `gorm:"type:text[]"`
	Payload     string         `gorm:"type:jsonb"`
}
