package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/models/request_models"
	"itinera/pkg/utils"
)

type stubPlannerClient struct {
	response string
	err      error
}

func (s *stubPlannerClient) GenerateItineraryJSON(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

const plannerJSON = `{
  "days": [
    {
      "day": 1,
      "movements": [
        {
          "from": "Milano",
          "to": "Roma",
          "activities": [
            {"description": "Cena in trattoria", "time": "19:00-21:00", "cost": "€30-40"}
          ]
        }
      ]
    }
  ]
}`

func tripRequest() request_models.TripRequest {
	return request_models.TripRequest{From: "Milano", To: "Roma", Duration: "1", People: "2"}
}

func TestGenerateSourceItinerary(t *testing.T) {
	service := NewPlannerService(&stubPlannerClient{response: plannerJSON})

	itinerary, err := service.GenerateSourceItinerary(context.Background(), tripRequest())
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 1)

	// tripInfo omitted by the model is backfilled from the form.
	require.NotNil(t, itinerary.TripInfo)
	assert.Equal(t, "Roma", itinerary.TripInfo.To)
}

func TestGenerateSourceItineraryStripsFences(t *testing.T) {
	fenced := fmt.Sprintf("```json\n%s\n```", plannerJSON)
	service := NewPlannerService(&stubPlannerClient{response: fenced})

	itinerary, err := service.GenerateSourceItinerary(context.Background(), tripRequest())
	require.NoError(t, err)
	assert.Len(t, itinerary.Days, 1)
}

func TestGenerateSourceItineraryMalformedPlan(t *testing.T) {
	service := NewPlannerService(&stubPlannerClient{response: "non posso aiutarti"})

	_, err := service.GenerateSourceItinerary(context.Background(), tripRequest())
	assert.True(t, errors.Is(err, utils.ErrMalformedPlan))
}

func TestGenerateSourceItineraryEmptyDays(t *testing.T) {
	service := NewPlannerService(&stubPlannerClient{response: `{"days": []}`})

	_, err := service.GenerateSourceItinerary(context.Background(), tripRequest())
	assert.True(t, errors.Is(err, utils.ErrMalformedPlan))
}

func TestGenerateSourceItineraryClientFailure(t *testing.T) {
	service := NewPlannerService(&stubPlannerClient{err: errors.New("quota exceeded")})

	_, err := service.GenerateSourceItinerary(context.Background(), tripRequest())
	assert.True(t, errors.Is(err, utils.ErrPlannerUnavailable))
}
