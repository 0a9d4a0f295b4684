package db_models

import (
	"time"

	"github.com/google/uuid"
)

type CollaboratorRole string

const (
	RoleOwner  CollaboratorRole = "owner"
	RoleEditor CollaboratorRole = "editor"
	RoleViewer CollaboratorRole = "viewer"
)

type TripCollaborator struct {
	IDModel
	TripID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"trip_id"`
	CollaboratorEmail string           `json:"collaborator_email"`
	Role              CollaboratorRole `gorm:"default:viewer;check:valid_collaborator_role,role IN ('owner', 'editor', 'viewer')" json:"role"`
	InvitedAt         time.Time        `gorm:"autoCreateTime" json:"invited_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}

func (TripCollaborator) TableName() string {
	return "trip_collaborators"
}
