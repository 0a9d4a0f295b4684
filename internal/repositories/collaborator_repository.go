package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/models/db_models"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *db_models.TripCollaborator) error
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripCollaborator, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type collaboratorRepository struct {
	db *gorm.DB
}

func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

func (r *collaboratorRepository) Create(ctx context.Context, collaborator *db_models.TripCollaborator) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(collaborator).Error
}

func (r *collaboratorRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripCollaborator, error) {
	var collaborators []db_models.TripCollaborator
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("invited_at ASC").
		Find(&collaborators).Error
	return collaborators, err
}

func (r *collaboratorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &db_models.TripCollaborator{}, id)
}
