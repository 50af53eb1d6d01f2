package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"itinera/internal/models/request_models"
	"itinera/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateSourceItinerary(ctx context.Context, trip request_models.TripRequest) (*request_models.SourceItinerary, error)
}

type PlannerService struct {
	client utils.PlannerClientInterface
}

func NewPlannerService(client utils.PlannerClientInterface) PlannerServiceInterface {
	return &PlannerService{
		client: client,
	}
}

func (p *PlannerService) GenerateSourceItinerary(ctx context.Context, trip request_models.TripRequest) (*request_models.SourceItinerary, error) {
	prompt := buildItineraryPrompt(trip)

	raw, err := p.client.GenerateItineraryJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlannerUnavailable, err)
	}

	cleaned := cleanJSONResponse(raw)

	var itinerary request_models.SourceItinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedPlan, err)
	}
	if len(itinerary.Days) == 0 {
		return nil, fmt.Errorf("%w: no days", utils.ErrMalformedPlan)
	}

	// Models sometimes omit tripInfo; the form already has it.
	if itinerary.TripInfo == nil {
		itinerary.TripInfo = &request_models.TripInfo{
			From:        trip.From,
			To:          trip.To,
			Duration:    trip.Duration,
			People:      trip.People,
			Description: trip.Description,
		}
	}
	return &itinerary, nil
}

const itinerarySchema = `
{
  "tripInfo": {"from":"Milano","to":"Roma","duration":"3","people":"2","description":"..."},
  "days": [
    {
      "day": 1,
      "movements": [
        {
          "from": "Milano",
          "to": "Roma",
          "transport": "treno",
          "activities": [
            {"description":"...","time":"09:00-11:00","cost":"€10-15","alternatives":[],"notes":""}
          ]
        }
      ]
    }
  ]
}`

func buildItineraryPrompt(trip request_models.TripRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Create a %s-day travel itinerary in Italy from %s to %s for %s people. Return **JSON only** that exactly matches the schema below.\n",
		trip.Duration, trip.From, trip.To, trip.People))
	prompt.WriteString("Schema (example, match keys exactly):\n")
	prompt.WriteString(itinerarySchema)
	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- Exactly %s entries in \"days\", numbered from 1 with no gaps.\n", trip.Duration))
	prompt.WriteString("- Activity times formatted HH:MM-HH:MM; costs in euros like \"€10-15\" or \"Gratuito\".\n")
	prompt.WriteString("- Include meals, attractions and one accommodation per day; write descriptions in Italian.\n")
	if trip.Description != "" {
		prompt.WriteString(fmt.Sprintf("\nTraveler preferences (use to bias selection):\n%s\n", trip.Description))
	}
	prompt.WriteString("\nReturn JSON only. No comments, no markdown.")

	return prompt.String()
}

// cleanJSONResponse strips markdown fences and any prose around the first
// balanced JSON object.
func cleanJSONResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		cleaned = cleaned[start : end+1]
	}
	return strings.TrimSpace(cleaned)
}
