package db_models

import "github.com/google/uuid"

// AIInteraction is a write-only log of prompts and model responses.
type AIInteraction struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Input     string    `gorm:"type:text" json:"input"`
	Response  string    `gorm:"type:text" json:"response"`
	Purpose   string    `json:"purpose"`
	ModelUsed string    `json:"model_used"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AIInteraction) TableName() string {
	return "ai_interactions"
}
