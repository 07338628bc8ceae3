package models

import (
	"encoding/json"
)

// OrganizationSettings holds per-tenant configuration stored as jsonb
type OrganizationSettings struct {
	Timezone     string          `json:"timezone"`
	Currency     string          `json:"currency"`
	FeatureFlags map[string]bool `json:"feature_flags,omitempty"`
}

// DefaultOrganizationSettings returns the settings applied at onboarding
// when none are supplied. Guyanese firms bill in GYD on America/Guyana time.
func DefaultOrganizationSettings() OrganizationSettings {
	return OrganizationSettings{
		Timezone: "America/Guyana",
		Currency: "GYD",
	}
}

// Organization represents the root entity for multi-tenancy. Every business
// record in the system carries this entity's id; organizations are
// deactivated rather than deleted.
type Organization struct {
	BaseModel
	Name        string          `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string          `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	IsActive    bool            `json:"is_active" gorm:"not null;default:true"`
	Settings    json.RawMessage `json:"settings" gorm:"type:jsonb"`

	// Relationships
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Clients     []Client                 `json:"clients,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// ParsedSettings decodes the jsonb settings column, falling back to defaults
func (o *Organization) ParsedSettings() OrganizationSettings {
	settings := DefaultOrganizationSettings()
	if len(o.Settings) > 0 {
		_ = json.Unmarshal(o.Settings, &settings)
	}
	return settings
}
