package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "firmdesk-backend/internal/errors"
)

// AuditAction builds the canonical verb:noun action string, e.g. "client:create"
func AuditAction(entityType, verb string) string {
	return entityType + ":" + verb
}

// AuditChanges is the before/after diff stored in the jsonb changes column.
// Create entries carry only After, delete entries only Before.
type AuditChanges struct {
	Before json.RawMessage `json:"before,omitempty"`
	After  json.RawMessage `json:"after,omitempty"`
}

// AuditLog is an append-only record of a mutating operation. Entries keep
// the organization and actor of the operation that produced them even after
// the acted-upon entity is deleted, and are never updated or removed through
// application code.
type AuditLog struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null" validate:"required"`
	UserID         uuid.UUID       `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	Action         string          `json:"action" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	EntityType     string          `json:"entity_type" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	EntityID       uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null" validate:"required"`
	Changes        json.RawMessage `json:"changes" gorm:"type:jsonb"`
	IPAddress      string          `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent      string          `json:"user_agent,omitempty" gorm:"size:255"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets the UUID if not already set
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeUpdate refuses mutation of existing entries
func (a *AuditLog) BeforeUpdate(tx *gorm.DB) error {
	return apperrors.ErrAuditLogImmutable
}

// BeforeDelete refuses removal of existing entries
func (a *AuditLog) BeforeDelete(tx *gorm.DB) error {
	return apperrors.ErrAuditLogImmutable
}
