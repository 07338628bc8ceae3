package repository

import (
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaxCalculationRepository handles database operations for tax calculations
type TaxCalculationRepository struct {
	db *gorm.DB
}

// NewTaxCalculationRepository creates a new tax calculation repository
func NewTaxCalculationRepository(db *gorm.DB) *TaxCalculationRepository {
	return &TaxCalculationRepository{db: db}
}

// TaxCalculationFilter narrows List results within the organization scope
type TaxCalculationFilter struct {
	ClientID        *uuid.UUID
	TaxYear         int
	CalculationType models.TaxCalculationType
	Status          models.TaxCalculationStatus
}

// Create inserts a tax calculation and its audit entry in one transaction
func (r *TaxCalculationRepository) Create(calc *models.TaxCalculation, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(calc).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByID retrieves a tax calculation by ID within the organization
func (r *TaxCalculationRepository) GetByID(orgID, id uuid.UUID) (*models.TaxCalculation, error) {
	var calc models.TaxCalculation
	err := r.db.First(&calc, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// List retrieves tax calculations for the organization with pagination,
// newest tax year first
func (r *TaxCalculationRepository) List(orgID uuid.UUID, filter TaxCalculationFilter, limit, offset int) ([]models.TaxCalculation, int64, error) {
	var calcs []models.TaxCalculation
	var total int64

	query := r.db.Model(&models.TaxCalculation{}).Where("organization_id = ?", orgID)
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.TaxYear != 0 {
		query = query.Where("tax_year = ?", filter.TaxYear)
	}
	if filter.CalculationType != "" {
		query = query.Where("calculation_type = ?", filter.CalculationType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("tax_year DESC, created_at DESC").Limit(limit).Offset(offset).Find(&calcs).Error
	if err != nil {
		return nil, 0, err
	}

	return calcs, total, nil
}

// Update applies a map of updates to an organization-scoped tax calculation
// and appends the audit entry in the same transaction
func (r *TaxCalculationRepository) Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TaxCalculation{}).
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

// Delete removes an organization-scoped tax calculation and appends the
// audit entry in the same transaction
func (r *TaxCalculationRepository) Delete(orgID, id uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND id = ?", orgID, id).Delete(&models.TaxCalculation{})
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

// CountByClientID returns the number of tax calculations referencing a client
func (r *TaxCalculationRepository) CountByClientID(orgID, clientID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.TaxCalculation{}).
		Where("organization_id = ? AND client_id = ?", orgID, clientID).
		Count(&n).Error
	return n, err
}
