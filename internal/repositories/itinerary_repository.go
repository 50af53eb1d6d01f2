// internal/repositories/itinerary_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "itinera/internal/models/db_models"
)

type ItineraryRepository interface {
	List(ctx context.Context, page int, pageSize int) ([]dbm.ItineraryRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dbm.ItineraryRecord, error)
	Create(ctx context.Context, record *dbm.ItineraryRecord) error
	CreateBatch(ctx context.Context, records []dbm.ItineraryRecord) error
	Update(ctx context.Context, record *dbm.ItineraryRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) List(ctx context.Context, page int, pageSize int) ([]dbm.ItineraryRecord, error) {
	var records []dbm.ItineraryRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*dbm.ItineraryRecord, error) {
	var record dbm.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *itineraryRepository) Create(ctx context.Context, record *dbm.ItineraryRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *itineraryRepository) CreateBatch(ctx context.Context, records []dbm.ItineraryRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

func (r *itineraryRepository) Update(ctx context.Context, record *dbm.ItineraryRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.ItineraryRecord{}, "id = ?", id).Error
}
