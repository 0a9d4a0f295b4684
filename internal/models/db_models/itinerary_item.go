package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemTypeFlight     ItemType = "flight"
	ItemTypeHotel      ItemType = "hotel"
	ItemTypeActivity   ItemType = "activity"
	ItemTypeRestaurant ItemType = "restaurant"
	ItemTypeTransport  ItemType = "transport"
)

const BookingStatusUnbooked = "unbooked"

// ItineraryItem is one schedulable unit of a trip. It owns at most one
// Booking; the unique index on bookings.itinerary_item_id holds that.
type ItineraryItem struct {
	BaseModel
	TripID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"trip_id"`
	Type          ItemType            `gorm:"check:valid_item_type,type IN ('flight', 'hotel', 'activity', 'restaurant', 'transport')" json:"type"`
	Title         string              `json:"title"`
	Description   string              `gorm:"type:text" json:"description"`
	Location      *GeoPoint           `json:"location,omitempty"`
	Address       string              `json:"address"`
	StartTime     *time.Time          `json:"start_time"`
	EndTime       *time.Time          `json:"end_time"`
	Cost          decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"cost"`
	ProviderName  string              `json:"provider_name"`
	ExternalLink  string              `json:"external_link"`
	BookingStatus string              `gorm:"default:unbooked" json:"booking_status"`

	Trip    *Trip    `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	Booking *Booking `gorm:"foreignKey:ItineraryItemID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`
}

func (ItineraryItem) TableName() string {
	return "itinerary_items"
}
