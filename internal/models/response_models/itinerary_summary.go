package response_models

// ItinerarySummary is the admin list view of a stored itinerary, without
// the day-by-day payload.
type ItinerarySummary struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"`
	TotalKm   int      `json:"totalKm"`
	TotalCost string   `json:"totalCost"`
	IsPublic  bool     `json:"isPublic"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}

type ShareLinkResponse struct {
	ShareID   string `json:"share_id"`
	ExpiresIn string `json:"expires_in"`
}
