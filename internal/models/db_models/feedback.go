package db_models

import "github.com/google/uuid"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback belongs to both a user and a trip; removing either removes it.
type Feedback struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TripID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"trip_id"`
	Rating        int        `gorm:"check:rating_range,rating >= 1 AND rating <= 5" json:"rating"`
	Comments      string     `gorm:"type:text" json:"comments"`
	FlaggedIssues StringList `json:"flagged_issues"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}

func (Feedback) TableName() string {
	return "feedback"
}
