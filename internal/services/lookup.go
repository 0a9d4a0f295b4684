package services

import (
	"context"

	"github.com/google/uuid"

	"qtravel/internal/models/db_models"
	"qtravel/internal/repositories"
)

// Nested routes answer 404 for a missing parent instead of letting the
// foreign key reject the insert.

func requireUser(ctx context.Context, repo repositories.UserRepository, id uuid.UUID) (*db_models.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if user == nil {
		return nil, notFound("user")
	}
	return user, nil
}

func requireTrip(ctx context.Context, repo repositories.TripRepository, id uuid.UUID) (*db_models.Trip, error) {
	trip, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if trip == nil {
		return nil, notFound("trip")
	}
	return trip, nil
}

func requireItem(ctx context.Context, repo repositories.ItineraryRepository, id uuid.UUID) (*db_models.ItineraryItem, error) {
	item, err := repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if item == nil {
		return nil, notFound("itinerary item")
	}
	return item, nil
}
