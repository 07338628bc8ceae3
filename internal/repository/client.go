package repository

import (
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients. Every query is
// constrained by organization id; a row in another organization is
// indistinguishable from a missing row.
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// ClientFilter narrows List results within the organization scope
type ClientFilter struct {
	Status     models.ClientStatus
	ClientType models.ClientType
	Search     string // matches name, email or TIN
}

// Create inserts a client and its audit entry in one transaction. A failed
// audit append rolls the client back.
func (r *ClientRepository) Create(client *models.Client, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByID retrieves a client by ID within the organization
func (r *ClientRepository) GetByID(orgID, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List retrieves clients for the organization with pagination
func (r *ClientRepository) List(orgID uuid.UUID, filter ClientFilter, limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.Model(&models.Client{}).Where("organization_id = ?", orgID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClientType != "" {
		query = query.Where("client_type = ?", filter.ClientType)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR tin ILIKE ?", search, search, search)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Update applies a map of updates to an organization-scoped client and
// appends the audit entry in the same transaction. organization_id is never
// an accepted update key.
func (r *ClientRepository) Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Client{}).
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

// Delete removes an organization-scoped client and appends the audit entry
// in the same transaction
func (r *ClientRepository) Delete(orgID, id uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND id = ?", orgID, id).Delete(&models.Client{})
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

// CountDependents returns how many rows of each dependent table still
// reference the client. Used by the deletion policy.
func (r *ClientRepository) CountDependents(orgID, clientID uuid.UUID) (map[string]int64, error) {
	counts := make(map[string]int64)
	dependents := map[string]interface{}{
		"documents":        &models.Document{},
		"appointments":     &models.Appointment{},
		"tax_calculations": &models.TaxCalculation{},
		"invoices":         &models.Invoice{},
	}
	for name, model := range dependents {
		var n int64
		err := r.db.Model(model).
			Where("organization_id = ? AND client_id = ?", orgID, clientID).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		if n > 0 {
			counts[name] = n
		}
	}
	return counts, nil
}
