package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/models/db_models"
)

type TravelHistoryRepository interface {
	Create(ctx context.Context, entry *db_models.TravelHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.TravelHistory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type travelHistoryRepository struct {
	db *gorm.DB
}

func NewTravelHistoryRepository(db *gorm.DB) TravelHistoryRepository {
	return &travelHistoryRepository{db: db}
}

func (r *travelHistoryRepository) Create(ctx context.Context, entry *db_models.TravelHistory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error
}

func (r *travelHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.TravelHistory, error) {
	var entries []db_models.TravelHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *travelHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &db_models.TravelHistory{}, id)
}
