package repository

import (
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// DocumentFilter narrows List results within the organization scope
type DocumentFilter struct {
	ClientID *uuid.UUID
	Category models.DocumentCategory
	Search   string // matches title or file name
}

// Create inserts a document and its audit entry in one transaction
func (r *DocumentRepository) Create(doc *models.Document, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByID retrieves a document by ID within the organization
func (r *DocumentRepository) GetByID(orgID, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List retrieves documents for the organization with pagination
func (r *DocumentRepository) List(orgID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	query := r.db.Model(&models.Document{}).Where("organization_id = ?", orgID)
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR file_name ILIKE ?", search, search)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Update applies a map of updates to an organization-scoped document and
// appends the audit entry in the same transaction
func (r *DocumentRepository) Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Document{}).
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

// Delete removes an organization-scoped document and appends the audit entry
// in the same transaction
func (r *DocumentRepository) Delete(orgID, id uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND id = ?", orgID, id).Delete(&models.Document{})
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

// CountByClientID returns the number of documents referencing a client
func (r *DocumentRepository) CountByClientID(orgID, clientID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Document{}).
		Where("organization_id = ? AND client_id = ?", orgID, clientID).
		Count(&n).Error
	return n, err
}
