package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a scheduled meeting, optionally tied to a client
// and assigned to a staff member of the same organization.
type Appointment struct {
	TenantModel
	ClientID        *uuid.UUID        `json:"client_id,omitempty" gorm:"type:uuid;index"`
	AssignedUserID  *uuid.UUID        `json:"assigned_user_id,omitempty" gorm:"type:uuid;index"`
	Title           string            `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Notes           string            `json:"notes" gorm:"type:text"`
	ScheduledAt     time.Time         `json:"scheduled_at" gorm:"not null;index" validate:"required"`
	DurationMinutes int               `json:"duration_minutes" gorm:"not null;default:30" validate:"min=5,max=480"`
	Location        string            `json:"location" gorm:"size:200" validate:"max=200"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'" validate:"required"`

	// Relationships
	Client       *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	AssignedUser *User   `json:"assigned_user,omitempty" gorm:"foreignKey:AssignedUserID"`
}

// TableName returns the table name for Appointment
func (Appointment) TableName() string {
	return "appointments"
}
