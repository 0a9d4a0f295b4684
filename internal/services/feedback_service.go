package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/repositories"
	"qtravel/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error)
	ListTripFeedback(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	tripRepo     repositories.TripRepository
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackService(tripRepo repositories.TripRepository, feedbackRepo repositories.FeedbackRepository) FeedbackServiceInterface {
	return &FeedbackService{
		tripRepo:     tripRepo,
		feedbackRepo: feedbackRepo,
	}
}

// AddFeedback stores a rating; the rating range and both references are
// checked by the database.
func (s *FeedbackService) AddFeedback(ctx context.Context, req request_models.CreateFeedbackRequest) (*db_models.Feedback, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user_id must be a UUID", utils.ErrInvalidInput)
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip_id must be a UUID", utils.ErrInvalidInput)
	}

	feedback := &db_models.Feedback{
		UserID:        userID,
		TripID:        tripID,
		Rating:        req.Rating,
		Comments:      req.Comments,
		FlaggedIssues: req.FlaggedIssues,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, translateStorageError(err)
	}
	return feedback, nil
}

func (s *FeedbackService) ListTripFeedback(ctx context.Context, tripID uuid.UUID, page, pageSize int) ([]db_models.Feedback, error) {
	if _, err := requireTrip(ctx, s.tripRepo, tripID); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.ListByTrip(ctx, tripID, page, pageSize)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return feedback, nil
}
