package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"qtravel/internal/models/db_models"
	"qtravel/internal/models/request_models"
	"qtravel/internal/repositories"
	"qtravel/pkg/utils"
)

type ItineraryServiceInterface interface {
	AddItem(ctx context.Context, tripID uuid.UUID, req request_models.ItineraryItemRequest) (*db_models.ItineraryItem, error)
	ListItems(ctx context.Context, tripID uuid.UUID) ([]db_models.ItineraryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req request_models.ItineraryItemRequest) (*db_models.ItineraryItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	SaveBooking(ctx context.Context, itemID uuid.UUID, req request_models.BookingRequest) (*db_models.Booking, error)
	GetBooking(ctx context.Context, itemID uuid.UUID) (*db_models.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type ItineraryService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(tripRepo repositories.TripRepository, itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) AddItem(ctx context.Context, tripID uuid.UUID, req request_models.ItineraryItemRequest) (*db_models.ItineraryItem, error) {
	if _, err := requireTrip(ctx, s.tripRepo, tripID); err != nil {
		return nil, err
	}

	item := &db_models.ItineraryItem{TripID: tripID}
	if err := applyItemRequest(item, req); err != nil {
		return nil, err
	}

	if err := s.itineraryRepo.CreateItem(ctx, item); err != nil {
		return nil, translateStorageError(err)
	}
	return item, nil
}

func (s *ItineraryService) ListItems(ctx context.Context, tripID uuid.UUID) ([]db_models.ItineraryItem, error) {
	if _, err := requireTrip(ctx, s.tripRepo, tripID); err != nil {
		return nil, err
	}

	items, err := s.itineraryRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, translateStorageError(err)
	}
	return items, nil
}

func (s *ItineraryService) GetItem(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error) {
	return requireItem(ctx, s.itineraryRepo, id)
}

// UpdateItem replaces every editable field; an empty booking status resets
// it to the column default.
func (s *ItineraryService) UpdateItem(ctx context.Context, id uuid.UUID, req request_models.ItineraryItemRequest) (*db_models.ItineraryItem, error) {
	item, err := requireItem(ctx, s.itineraryRepo, id)
	if err != nil {
		return nil, err
	}
	if err := applyItemRequest(item, req); err != nil {
		return nil, err
	}
	if item.BookingStatus == "" {
		item.BookingStatus = db_models.BookingStatusUnbooked
	}

	if err := s.itineraryRepo.UpdateItem(ctx, item); err != nil {
		return nil, translateStorageError(err)
	}
	return item, nil
}

func (s *ItineraryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.itineraryRepo.DeleteItem(ctx, id); err != nil {
		return deleteError("itinerary item", err)
	}
	return nil
}

// SaveBooking creates the item's booking or overwrites the existing one.
func (s *ItineraryService) SaveBooking(ctx context.Context, itemID uuid.UUID, req request_models.BookingRequest) (*db_models.Booking, error) {
	if _, err := requireItem(ctx, s.itineraryRepo, itemID); err != nil {
		return nil, err
	}

	booking := &db_models.Booking{
		ItineraryItemID:    itemID,
		ConfirmationNumber: req.ConfirmationNumber,
		Provider:           req.Provider,
		Status:             db_models.BookingStatus(req.Status),
	}
	if err := s.itineraryRepo.UpsertBooking(ctx, booking); err != nil {
		return nil, translateStorageError(err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("item_id", itemID.String()).
		Str("booking_id", booking.ID.String()).
		Str("status", string(booking.Status)).
		Msg("booking saved")
	return booking, nil
}

func (s *ItineraryService) GetBooking(ctx context.Context, itemID uuid.UUID) (*db_models.Booking, error) {
	booking, err := s.itineraryRepo.FindBookingByItem(ctx, itemID)
	if err != nil {
		return nil, translateStorageError(err)
	}
	if booking == nil {
		return nil, notFound("booking")
	}
	return booking, nil
}

func (s *ItineraryService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.itineraryRepo.DeleteBooking(ctx, id); err != nil {
		return deleteError("booking", err)
	}
	return nil
}

func applyItemRequest(item *db_models.ItineraryItem, req request_models.ItineraryItemRequest) error {
	start, err := utils.ParseTimestamp("start_time", req.StartTime)
	if err != nil {
		return err
	}
	end, err := utils.ParseTimestamp("end_time", req.EndTime)
	if err != nil {
		return err
	}
	cost, err := utils.ParseMoney("cost", req.Cost)
	if err != nil {
		return err
	}

	var location *db_models.GeoPoint
	if req.Location != nil {
		location = &db_models.GeoPoint{Lng: req.Location.Lng, Lat: req.Location.Lat}
	}

	item.Type = db_models.ItemType(req.Type)
	item.Title = req.Title
	item.Description = req.Description
	item.Location = location
	item.Address = req.Address
	item.StartTime = start
	item.EndTime = end
	item.Cost = cost
	item.ProviderName = req.ProviderName
	item.ExternalLink = req.ExternalLink
	item.BookingStatus = req.BookingStatus
	return nil
}
