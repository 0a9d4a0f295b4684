package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDModel carries the generated primary key. Rows whose creation column is
// not created_at (bookings, trip_collaborators) embed it directly.
type IDModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
}

func (m *IDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type BaseModel struct {
	IDModel
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
