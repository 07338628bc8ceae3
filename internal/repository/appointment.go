package repository

import (
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// AppointmentFilter narrows List results within the organization scope
type AppointmentFilter struct {
	ClientID       *uuid.UUID
	AssignedUserID *uuid.UUID
	Status         models.AppointmentStatus
	From           *time.Time
	To             *time.Time
}

// Create inserts an appointment and its audit entry in one transaction
func (r *AppointmentRepository) Create(appt *models.Appointment, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(appt).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByID retrieves an appointment by ID within the organization
func (r *AppointmentRepository) GetByID(orgID, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.First(&appt, "organization_id = ? AND id = ?", orgID, id).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// List retrieves appointments for the organization with pagination, soonest first
func (r *AppointmentRepository) List(orgID uuid.UUID, filter AppointmentFilter, limit, offset int) ([]models.Appointment, int64, error) {
	var appts []models.Appointment
	var total int64

	query := r.db.Model(&models.Appointment{}).Where("organization_id = ?", orgID)
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.AssignedUserID != nil {
		query = query.Where("assigned_user_id = ?", *filter.AssignedUserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("scheduled_at ASC").Limit(limit).Offset(offset).Find(&appts).Error
	if err != nil {
		return nil, 0, err
	}

	return appts, total, nil
}

// Update applies a map of updates to an organization-scoped appointment and
// appends the audit entry in the same transaction
func (r *AppointmentRepository) Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Appointment{}).
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

// Delete removes an organization-scoped appointment and appends the audit
// entry in the same transaction
func (r *AppointmentRepository) Delete(orgID, id uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND id = ?", orgID, id).Delete(&models.Appointment{})
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

// CountByClientID returns the number of appointments referencing a client
func (r *AppointmentRepository) CountByClientID(orgID, clientID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Appointment{}).
		Where("organization_id = ? AND client_id = ?", orgID, clientID).
		Count(&n).Error
	return n, err
}
