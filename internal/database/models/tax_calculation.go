package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// TaxCalculation represents a worked tax computation for a client. Monetary
// amounts are kept in cents to avoid floating point drift; the raw inputs
// are preserved as jsonb for review.
type TaxCalculation struct {
	TenantModel
	ClientID         uuid.UUID            `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	TaxYear          int                  `json:"tax_year" gorm:"not null;index" validate:"required,min=2000,max=2100"`
	CalculationType  TaxCalculationType   `json:"calculation_type" gorm:"type:varchar(20);not null" validate:"required"`
	Inputs           json.RawMessage      `json:"inputs" gorm:"type:jsonb"`
	GrossAmountCents int64                `json:"gross_amount_cents" gorm:"not null;default:0" validate:"min=0"`
	TaxableCents     int64                `json:"taxable_cents" gorm:"not null;default:0" validate:"min=0"`
	TaxDueCents      int64                `json:"tax_due_cents" gorm:"not null;default:0" validate:"min=0"`
	Status           TaxCalculationStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'" validate:"required"`

	// Relationships
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for TaxCalculation
func (TaxCalculation) TableName() string {
	return "tax_calculations"
}
