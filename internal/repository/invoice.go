package repository

import (
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// InvoiceFilter narrows List results within the organization scope
type InvoiceFilter struct {
	ClientID   *uuid.UUID
	Status     models.InvoiceStatus
	IssuedFrom *time.Time
	IssuedTo   *time.Time
}

// Create inserts an invoice and its audit entry in one transaction
func (r *InvoiceRepository) Create(invoice *models.Invoice, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByID retrieves an invoice by ID within the organization
func (r *InvoiceRepository) GetByID(orgID, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetByNumber retrieves an invoice by its per-organization number
func (r *InvoiceRepository) GetByNumber(orgID uuid.UUID, number string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "organization_id = ? AND invoice_number = ?", orgID, number).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List retrieves invoices for the organization with pagination, newest first
func (r *InvoiceRepository) List(orgID uuid.UUID, filter InvoiceFilter, limit, offset int) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	query := r.db.Model(&models.Invoice{}).Where("organization_id = ?", orgID)
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.IssuedFrom != nil {
		query = query.Where("issue_date >= ?", *filter.IssuedFrom)
	}
	if filter.IssuedTo != nil {
		query = query.Where("issue_date <= ?", *filter.IssuedTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("issue_date DESC, invoice_number DESC").Limit(limit).Offset(offset).Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

// Update applies a map of updates to an organization-scoped invoice and
// appends the audit entry in the same transaction
func (r *InvoiceRepository) Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invoice{}).
			Where("organization_id = ? AND id = ?", orgID, id).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// Delete removes an organization-scoped invoice and appends the audit entry
// in the same transaction
func (r *InvoiceRepository) Delete(orgID, id uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND id = ?", orgID, id).Delete(&models.Invoice{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// CountByClientID returns the number of invoices referencing a client
func (r *InvoiceRepository) CountByClientID(orgID, clientID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Invoice{}).
		Where("organization_id = ? AND client_id = ?", orgID, clientID).
		Count(&n).Error
	return n, err
}
