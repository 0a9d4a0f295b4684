package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/models/db_models"
)

type PreferenceRepository interface {
	Create(ctx context.Context, pref *db_models.UserPreference) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserPreference, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Create(ctx context.Context, pref *db_models.UserPreference) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pref).Error
}

func (r *preferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserPreference, error) {
	var prefs []db_models.UserPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weight DESC").
		Find(&prefs).Error
	return prefs, err
}

func (r *preferenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &db_models.UserPreference{}, id)
}
