package models

// User represents a global principal. A user record is not owned by any
// organization; authorization is always evaluated against one membership
// at a time.
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName     string `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PasswordHash string `json:"-" gorm:"size:100"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Memberships []OrganizationMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
