package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"itinera/internal/models/db_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListItineraries(ctx context.Context, page int, pageSize int) ([]response_models.ItinerarySummary, error)
	GetItineraryById(ctx context.Context, id string) (*response_models.NormalizedItinerary, error)
	CreateItinerary(ctx context.Context, itinerary *response_models.NormalizedItinerary) (string, error)
	UpdateItinerary(ctx context.Context, id string, itinerary *response_models.NormalizedItinerary) error
	DeleteItinerary(ctx context.Context, id string) error
	BulkCreateItineraries(ctx context.Context, itineraries []*response_models.NormalizedItinerary) (int, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) ListItineraries(ctx context.Context, page int, pageSize int) ([]response_models.ItinerarySummary, error) {
	records, err := s.itineraryRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummary, 0, len(records))
	for _, record := range records {
		out = append(out, response_models.ItinerarySummary{
			ID:        record.ID.String(),
			Slug:      record.Slug,
			Title:     record.Title,
			Duration:  record.Duration,
			TotalKm:   record.TotalKm,
			TotalCost: record.TotalCost,
			IsPublic:  record.IsPublic,
			Tags:      record.Tags,
			CreatedAt: utils.FormatRFC3339IT(utils.FromUnixSecondsIT(record.CreatedAt)),
		})
	}
	return out, nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, id string) (*response_models.NormalizedItinerary, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	record, err := s.itineraryRepo.GetByID(ctx, recordID)
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var itinerary response_models.NormalizedItinerary
	if err := json.Unmarshal([]byte(record.Payload), &itinerary); err != nil {
		log.Printf("Error decoding stored itinerary %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	return &itinerary, nil
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, itinerary *response_models.NormalizedItinerary) (string, error) {
	record, err := recordFromItinerary(itinerary)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	if err := s.itineraryRepo.Create(ctx, record); err != nil {
		log.Printf("Error creating itinerary: %v", err)
		return "", utils.ErrDatabaseError
	}
	return record.ID.String(), nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, id string, itinerary *response_models.NormalizedItinerary) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	existing, err := s.itineraryRepo.GetByID(ctx, recordID)
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	updated, err := recordFromItinerary(itinerary)
	if err != nil {
		return utils.ErrInvalidInput
	}
	updated.BaseModel = existing.BaseModel

	if err := s.itineraryRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidInput
	}

	existing, err := s.itineraryRepo.GetByID(ctx, recordID)
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrItineraryNotFound
	}

	if err := s.itineraryRepo.Delete(ctx, recordID); err != nil {
		log.Printf("Error deleting itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) BulkCreateItineraries(ctx context.Context, itineraries []*response_models.NormalizedItinerary) (int, error) {
	if len(itineraries) == 0 {
		return 0, utils.ErrInvalidInput
	}

	records := make([]db_models.ItineraryRecord, 0, len(itineraries))
	for _, itinerary := range itineraries {
		record, err := recordFromItinerary(itinerary)
		if err != nil {
			return 0, utils.ErrInvalidInput
		}
		records = append(records, *record)
	}

	if err := s.itineraryRepo.CreateBatch(ctx, records); err != nil {
		log.Printf("Error bulk inserting itineraries: %v", err)
		return 0, utils.ErrDatabaseError
	}
	return len(records), nil
}

func recordFromItinerary(itinerary *response_models.NormalizedItinerary) (*db_models.ItineraryRecord, error) {
	if itinerary == nil {
		return nil, utils.ErrInvalidInput
	}

	payload, err := json.Marshal(itinerary)
	if err != nil {
		return nil, err
	}

	meta := itinerary.Metadata
	return &db_models.ItineraryRecord{
		Slug:        meta.ID,
		Title:       meta.Title,
		Description: meta.Description,
		Duration:    meta.Duration,
		TotalKm:     meta.TotalKm,
		TotalCost:   meta.TotalCost,
		IsPublic:    meta.IsPublic,
		Tags:        meta.Tags,
		Payload:     string(payload),
	}, nil
}
