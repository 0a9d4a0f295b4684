package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/models/db_models"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *db_models.Feedback) error
	ListByTrip(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error
}

func (r *feedbackRepository) ListByTrip(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.Feedback, error) {
	var feedback []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&feedback).Error
	return feedback, err
}
