package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// InvoiceLineItem is one billed line on an invoice, stored inside the jsonb
// line_items column.
type InvoiceLineItem struct {
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TaxRateBps     int    `json:"tax_rate_bps"`
	AmountCents    int64  `json:"amount_cents"`
}

// Invoice represents a bill issued to a client. The invoice number is unique
// within an organization, not globally.
type Invoice struct {
	TenantModel
	ClientID uuid.UUID `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	// Uniqueness per organization is enforced by idx_invoices_org_number,
	// created in database.Initialize alongside the audit-log indexes.
	InvoiceNumber string          `json:"invoice_number" gorm:"not null;size:50;index" validate:"required,max=50"`
	Status        InvoiceStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft'" validate:"required"`
	Currency      string          `json:"currency" gorm:"size:3;not null;default:'GYD'" validate:"required,len=3"`
	IssueDate     time.Time       `json:"issue_date" gorm:"not null" validate:"required"`
	DueDate       time.Time       `json:"due_date" gorm:"not null" validate:"required"`
	LineItems     json.RawMessage `json:"line_items" gorm:"type:jsonb"`
	SubtotalCents int64           `json:"subtotal_cents" gorm:"not null;default:0" validate:"min=0"`
	TaxCents      int64           `json:"tax_cents" gorm:"not null;default:0" validate:"min=0"`
	TotalCents    int64           `json:"total_cents" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
