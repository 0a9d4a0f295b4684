package services

import (
	"context"

	"github.com/google/uuid"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/models/response_models"
	"qtravel/internal/repositories"
	"qtravel/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.TripRequest) (*db_models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, id uuid.UUID, req request_models.TripRequest) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	GetTripCost(ctx context.Context, id uuid.UUID) (*response_models.TripCostResponse, error)

	AddCollaborator(ctx context.Context, tripID uuid.UUID, req request_models.CreateCollaboratorRequest) (*db_models.TripCollaborator, error)
	ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]db_models.TripCollaborator, error)
	RemoveCollaborator(ctx context.Context, id uuid.UUID) error
}

type TripService struct {
	userRepo         repositories.UserRepository
	tripRepo         repositories.TripRepository
	collaboratorRepo repositories.CollaboratorRepository
}

func NewTripService(
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
	collaboratorRepo repositories.CollaboratorRepository,
) TripServiceInterface {
	return &TripService{
		userRepo:         userRepo,
		tripRepo:         tripRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, req request_models.TripRequest) (*db_models.Trip, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	trip := &db_models.Trip{UserID: userID}
	if err := applyTripRequest(trip, req); err != nil {
		return nil, err
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, translateStorageError(err)
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Trip, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	trips, err := s.tripRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return trips, nil
}

func (s *TripService) GetTrip(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindDetailsByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if trip == nil {
		return nil, notFound("trip")
	}
	return trip, nil
}

// UpdateTrip replaces every editable field; omitted fields are cleared.
func (s *TripService) UpdateTrip(ctx context.Context, id uuid.UUID, req request_models.TripRequest) (*db_models.Trip, error) {
	trip, err := requireTrip(ctx, s.tripRepo, id)
	if err != nil {
		return nil, err
	}
	if err := applyTripRequest(trip, req); err != nil {
		return nil, err
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, translateStorageError(err)
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	if err := s.tripRepo.Delete(ctx, id); err != nil {
		return deleteError("trip", err)
	}
	return nil
}

// GetTripCost sums the costs of the trip's itinerary items. Items without a
// cost count towards ItemCount but add nothing to the total.
func (s *TripService) GetTripCost(ctx context.Context, id uuid.UUID) (*response_models.TripCostResponse, error) {
	trip, err := s.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	return &response_models.TripCostResponse{
		TripID:      trip.ID.String(),
		ItemCount:   len(trip.ItineraryItems),
		TotalCost:   trip.ItemsCost(),
		TotalBudget: trip.TotalBudget,
	}, nil
}

func (s *TripService) AddCollaborator(ctx context.Context, tripID uuid.UUID, req request_models.CreateCollaboratorRequest) (*db_models.TripCollaborator, error) {
	if _, err := requireTrip(ctx, s.tripRepo, tripID); err != nil {
		return nil, err
	}

	collaborator := &db_models.TripCollaborator{
		TripID:            tripID,
		CollaboratorEmail: req.CollaboratorEmail,
		Role:              db_models.CollaboratorRole(req.Role),
	}
	if err := s.collaboratorRepo.Create(ctx, collaborator); err != nil {
		return nil, translateStorageError(err)
	}
	return collaborator, nil
}

func (s *TripService) ListCollaborators(ctx context.Context, tripID uuid.UUID) ([]db_models.TripCollaborator, error) {
	if _, err := requireTrip(ctx, s.tripRepo, tripID); err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return collaborators, nil
}

func (s *TripService) RemoveCollaborator(ctx context.Context, id uuid.UUID) error {
	if err := s.collaboratorRepo.Delete(ctx, id); err != nil {
		return deleteError("collaborator", err)
	}
	return nil
}

func applyTripRequest(trip *db_models.Trip, req request_models.TripRequest) error {
	startDate, err := utils.ParseDate("start_date", req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := utils.ParseDate("end_date", req.EndDate)
	if err != nil {
		return err
	}
	budget, err := utils.ParseMoney("total_budget", req.TotalBudget)
	if err != nil {
		return err
	}

	trip.Title = req.Title
	trip.Destination = req.Destination
	trip.StartDate = startDate
	trip.EndDate = endDate
	trip.TotalBudget = budget
	return nil
}
