package utils

import "context"

// PlannerClientInterface abstracts the AI completion backend that turns a
// prompt into raw itinerary JSON.
type PlannerClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string) (string, error)
}
