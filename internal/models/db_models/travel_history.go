package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TravelHistory struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Destination string          `json:"destination"`
	StartDate   *datatypes.Date `json:"start_date"`
	EndDate     *datatypes.Date `json:"end_date"`
	Activities  StringList      `json:"activities"`
	// nil on insert means the column default (true) applies.
	Liked *bool  `gorm:"default:true" json:"liked"`
	Notes string `gorm:"type:text" json:"notes"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TravelHistory) TableName() string {
	return "travel_history"
}
