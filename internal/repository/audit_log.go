package repository

import (
	"time"

	"firmdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for the append-only audit
// trail. It deliberately exposes no update or delete methods; the model's
// hooks refuse them as well.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// AuditLogFilter narrows Query results within the organization scope
type AuditLogFilter struct {
	EntityType string
	EntityID   *uuid.UUID
	UserID     *uuid.UUID
	Action     string
	From       *time.Time
	To         *time.Time
}

// Create appends a standalone audit entry. Entries tied to a business
// mutation are written by the owning repository inside that mutation's
// transaction instead.
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves an audit entry by ID within the organization
func (r *AuditLogRepository) GetByID(orgID, id uuid.UUID) (*models.AuditLog, error) {
	var entry models.AuditLog
	err := r.db.First(&entry, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Query retrieves audit entries for the organization, newest first
func (r *AuditLogRepository) Query(orgID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{}).Where("organization_id = ?", orgID)
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
