package services

import (
	"context"
	"errors"
	"fmt"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/pipeline"
	"itinera/pkg/utils"
)

type ConverterServiceInterface interface {
	ConvertItinerary(ctx context.Context, src *request_models.SourceItinerary) (*response_models.NormalizedItinerary, error)
	ValidateItinerary(ctx context.Context, src *request_models.SourceItinerary) pipeline.ValidationReport
}

type ConverterService struct {
	assembler *pipeline.Assembler
}

func NewConverterService() ConverterServiceInterface {
	return &ConverterService{
		assembler: pipeline.NewAssembler(),
	}
}

func (s *ConverterService) ConvertItinerary(ctx context.Context, src *request_models.SourceItinerary) (*response_models.NormalizedItinerary, error) {
	normalized, err := s.assembler.Convert(src)
	if err != nil {
		var structural *pipeline.StructuralError
		if errors.As(err, &structural) {
			return nil, fmt.Errorf("%w: %s", utils.ErrInvalidItinerary, structural.Error())
		}
		return nil, err
	}
	return normalized, nil
}

func (s *ConverterService) ValidateItinerary(ctx context.Context, src *request_models.SourceItinerary) pipeline.ValidationReport {
	return pipeline.Validate(src)
}
