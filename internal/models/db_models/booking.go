package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	IDModel
	ItineraryItemID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"itinerary_item_id"`
	ConfirmationNumber string        `json:"confirmation_number"`
	Provider           string        `json:"provider"`
	Status             BookingStatus `gorm:"check:valid_booking_status,status IN ('pending', 'confirmed', 'cancelled')" json:"status"`
	BookedAt           time.Time     `gorm:"autoCreateTime" json:"booked_at"`

	ItineraryItem *ItineraryItem `gorm:"foreignKey:ItineraryItemID" json:"itinerary_item,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
