package models

import (
	"github.com/google/uuid"
)

// OrganizationMembership links a user to an organization with a role.
// A user may belong to several organizations; the pair is unique.
type OrganizationMembership struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" validate:"required"`
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user" validate:"required"`
	Role           MembershipRole `json:"role" gorm:"type:varchar(50);not null;default:'staff'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMembership
func (OrganizationMembership) TableName() string {
	return "organization_memberships"
}
