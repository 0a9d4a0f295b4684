package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Trip belongs to a user and owns its itinerary items, collaborators and
// feedback. No ordering between StartDate and EndDate is enforced.
type Trip struct {
	BaseModel
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string              `json:"title"`
	Destination string              `json:"destination"`
	StartDate   *datatypes.Date     `json:"start_date"`
	EndDate     *datatypes.Date     `json:"end_date"`
	TotalBudget decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"total_budget"`

	User           *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ItineraryItems []ItineraryItem    `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"itinerary_items,omitempty"`
	Collaborators  []TripCollaborator `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"collaborators,omitempty"`
	Feedback       []Feedback         `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}

// ItemsCost sums the cost of the loaded itinerary items, skipping items
// without a cost.
func (t *Trip) ItemsCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.ItineraryItems {
		if item.Cost.Valid {
			total = total.Add(item.Cost.Decimal)
		}
	}
	return total
}
