package models

// Client represents a customer of the firm: an individual taxpayer or a
// registered business the firm does work for.
type Client struct {
	TenantModel
	Name       string       `json:"name" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Email      string       `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone      string       `json:"phone" gorm:"size:30" validate:"max=30"`
	Address    string       `json:"address" gorm:"size:500" validate:"max=500"`
	TIN        string       `json:"tin" gorm:"size:20;index" validate:"max=20"` // GRA taxpayer identification number
	ClientType ClientType   `json:"client_type" gorm:"type:varchar(20);not null;default:'individual'" validate:"required"`
	Status     ClientStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'" validate:"required"`
	Notes      string       `json:"notes" gorm:"type:text"`

	// Relationships
	Documents       []Document       `json:"documents,omitempty" gorm:"foreignKey:ClientID"`
	Appointments    []Appointment    `json:"appointments,omitempty" gorm:"foreignKey:ClientID"`
	TaxCalculations []TaxCalculation `json:"tax_calculations,omitempty" gorm:"foreignKey:ClientID"`
	Invoices        []Invoice        `json:"invoices,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}
