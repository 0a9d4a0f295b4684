package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"qtravel/internal/infra"
	"qtravel/internal/models/db_models"
)

type ItineraryRepository interface {
	CreateItem(ctx context.Context, item *db_models.ItineraryItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error)
	ListItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.ItineraryItem, error)
	UpdateItem(ctx context.Context, item *db_models.ItineraryItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	UpsertBooking(ctx context.Context, booking *db_models.Booking) error
	FindBookingByItem(ctx context.Context, itemID uuid.UUID) (*db_models.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateItem(ctx context.Context, item *db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *itineraryRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error) {
	var item db_models.ItineraryItem
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Preload("Booking").
		First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itineraryRepository) ListItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.ItineraryItem, error) {
	var items []db_models.ItineraryItem
	err := r.db.WithContext(ctx).
		Preload("Booking").
		Where("trip_id = ?", tripID).
		Order("start_time ASC").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itineraryRepository) UpdateItem(ctx context.Context, item *db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (r *itineraryRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &db_models.ItineraryItem{}, id)
}

// UpsertBooking replaces the fields of the item's booking, creating it when
// the item has none. booking.ID and BookedAt are filled from the stored row.
func (r *itineraryRepository) UpsertBooking(ctx context.Context, booking *db_models.Booking) error {
	return infra.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == infra.DriverPostgres {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing db_models.Booking
		err := q.First(&existing, "itinerary_item_id = ?", booking.ItineraryItemID).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Omit(clause.Associations).Create(booking).Error
		case err != nil:
			return err
		}

		booking.ID = existing.ID
		booking.BookedAt = existing.BookedAt
		return tx.Omit(clause.Associations).Save(booking).Error
	})
}

func (r *itineraryRepository) FindBookingByItem(ctx context.Context, itemID uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "itinerary_item_id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *itineraryRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return deleteByID(r.db.WithContext(ctx), &db_models.Booking{}, id)
}
