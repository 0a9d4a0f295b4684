package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/models/db_models"
)

type AIInteractionRepository interface {
	Create(ctx context.Context, interaction *db_models.AIInteraction) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.AIInteraction, error)
}

type aiInteractionRepository struct {
	db *gorm.DB
}

func NewAIInteractionRepository(db *gorm.DB) AIInteractionRepository {
	return &aiInteractionRepository{db: db}
}

func (r *aiInteractionRepository) Create(ctx context.Context, interaction *db_models.AIInteraction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(interaction).Error
}

func (r *aiInteractionRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.AIInteraction, error) {
	var interactions []db_models.AIInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&interactions).Error
	return interactions, err
}
