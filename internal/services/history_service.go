package services

import (
	"context"

	"github.com/google/uuid"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/repositories"
	"qtravel/pkg/utils"
)

// HistoryServiceInterface covers the per-user logs: past trips and the
// record of AI prompts and responses.
type HistoryServiceInterface interface {
	AddTravelHistory(ctx context.Context, userID uuid.UUID, req request_models.CreateTravelHistoryRequest) (*db_models.TravelHistory, error)
	ListTravelHistory(ctx context.Context, userID uuid.UUID) ([]db_models.TravelHistory, error)
	DeleteTravelHistory(ctx context.Context, id uuid.UUID) error

	LogAIInteraction(ctx context.Context, userID uuid.UUID, req request_models.CreateAIInteractionRequest) (*db_models.AIInteraction, error)
	ListAIInteractions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.AIInteraction, error)
}

type HistoryService struct {
	userRepo    repositories.UserRepository
	historyRepo repositories.TravelHistoryRepository
	aiRepo      repositories.AIInteractionRepository
}

func NewHistoryService(
	userRepo repositories.UserRepository,
	historyRepo repositories.TravelHistoryRepository,
	aiRepo repositories.AIInteractionRepository,
) HistoryServiceInterface {
	return &HistoryService{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		aiRepo:      aiRepo,
	}
}

func (s *HistoryService) AddTravelHistory(ctx context.Context, userID uuid.UUID, req request_models.CreateTravelHistoryRequest) (*db_models.TravelHistory, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	entry := &db_models.TravelHistory{
		UserID:      userID,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Activities:  req.Activities,
		Liked:       req.Liked,
		Notes:       req.Notes,
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, translateStorageError(err)
	}
	return entry, nil
}

func (s *HistoryService) ListTravelHistory(ctx context.Context, userID uuid.UUID) ([]db_models.TravelHistory, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return entries, nil
}

func (s *HistoryService) DeleteTravelHistory(ctx context.Context, id uuid.UUID) error {
	if err := s.historyRepo.Delete(ctx, id); err != nil {
		return deleteError("travel history entry", err)
	}
	return nil
}

func (s *HistoryService) LogAIInteraction(ctx context.Context, userID uuid.UUID, req request_models.CreateAIInteractionRequest) (*db_models.AIInteraction, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	interaction := &db_models.AIInteraction{
		UserID:    userID,
		Input:     req.Input,
		Response:  req.Response,
		Purpose:   req.Purpose,
		ModelUsed: req.ModelUsed,
	}
	if err := s.aiRepo.Create(ctx, interaction); err != nil {
		return nil, translateStorageError(err)
	}
	return interaction, nil
}

func (s *HistoryService) ListAIInteractions(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.AIInteraction, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	interactions, err := s.aiRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return interactions, nil
}
