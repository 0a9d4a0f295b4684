package db_models

import "github.com/google/uuid"

const (
	MinPreferenceWeight = 1
	MaxPreferenceWeight = 10
)

type UserPreference struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Category string    `json:"category"`
	Weight   int       `gorm:"check:weight_range,weight >= 1 AND weight <= 10" json:"weight"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
