package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/models/request_models"
	"itinera/pkg/utils"
)

func TestConvertItineraryMapsStructuralError(t *testing.T) {
	service := NewConverterService()

	_, err := service.ConvertItinerary(context.Background(), &request_models.SourceItinerary{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidItinerary))
}

func TestConvertItinerarySucceeds(t *testing.T) {
	service := NewConverterService()

	src := &request_models.SourceItinerary{
		TripInfo: &request_models.TripInfo{From: "Milano", To: "Roma", Duration: "1", People: "2"},
		Days: []request_models.SourceDay{
			{Day: 1, Movements: []request_models.SourceMovement{
				{Activities: []request_models.SourceActivity{
					{Description: "Visita al Colosseo", Time: "09:00-11:00", Cost: "€18"},
				}},
			}},
		},
	}

	out, err := service.ConvertItinerary(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, out.Days, 1)
	assert.Equal(t, "attraction", out.Days[0].Activities[0].Type)
}

func TestConvertItineraryConcurrentRequests(t *testing.T) {
	service := NewConverterService()

	src := &request_models.SourceItinerary{
		TripInfo: &request_models.TripInfo{From: "Milano", To: "Roma", Duration: "1", People: "2"},
		Days: []request_models.SourceDay{
			{Day: 1, Movements: []request_models.SourceMovement{
				{Activities: []request_models.SourceActivity{
					{Description: "Visita al Colosseo", Time: "09:00-11:00", Cost: "€18"},
				}},
			}},
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out, err := service.ConvertItinerary(context.Background(), src)
				assert.NoError(t, err)
				assert.Len(t, out.Days, 1)
			}
		}()
	}
	wg.Wait()
}

func TestValidateItineraryNeverFails(t *testing.T) {
	service := NewConverterService()

	report := service.ValidateItinerary(context.Background(), nil)
	assert.False(t, report.Valid)
	assert.NotEmpty(t, report.Errors)
}
