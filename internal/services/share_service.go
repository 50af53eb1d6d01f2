package services

import (
	"encoding/json"
	"log"
	"time"

	"itinera/internal/models/response_models"
	mem "itinera/pkg/memcache"
	"itinera/pkg/utils"
)

type ShareServiceInterface interface {
	CreateShareLink(itinerary *response_models.NormalizedItinerary) (response_models.ShareLinkResponse, error)
	ResolveShareLink(shareID string) (*response_models.NormalizedItinerary, error)
}

type ShareService struct {
	store mem.ShareLinkStore
	ttl   time.Duration
}

func NewShareService(store mem.ShareLinkStore, ttl time.Duration) ShareServiceInterface {
	return &ShareService{
		store: store,
		ttl:   ttl,
	}
}

func (s *ShareService) CreateShareLink(itinerary *response_models.NormalizedItinerary) (response_models.ShareLinkResponse, error) {
	if itinerary == nil {
		return response_models.ShareLinkResponse{}, utils.ErrInvalidInput
	}

	payload, err := json.Marshal(itinerary)
	if err != nil {
		return response_models.ShareLinkResponse{}, utils.ErrInvalidInput
	}

	shareID, err := utils.GenerateSecureToken(16)
	if err != nil {
		log.Printf("Error generating share id: %v", err)
		return response_models.ShareLinkResponse{}, err
	}

	s.store.Set(shareID, payload, s.ttl)
	return response_models.ShareLinkResponse{
		ShareID:   shareID,
		ExpiresIn: s.ttl.String(),
	}, nil
}

func (s *ShareService) ResolveShareLink(shareID string) (*response_models.NormalizedItinerary, error) {
	if shareID == "" {
		return nil, utils.ErrInvalidInput
	}

	payload, ok := s.store.Get(shareID)
	if !ok {
		return nil, utils.ErrShareNotFound
	}

	var itinerary response_models.NormalizedItinerary
	if err := json.Unmarshal(payload, &itinerary); err != nil {
		log.Printf("Error decoding shared itinerary %s: %v", shareID, err)
		return nil, utils.ErrShareNotFound
	}
	return &itinerary, nil
}
