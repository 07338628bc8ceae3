package repository

import (
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for organization
// memberships. Membership changes are security-relevant, so every mutation
// carries an audit entry committed in the same transaction.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create adds a user to an organization and appends the audit entry in the
// same transaction
func (r *MembershipRepository) Create(membership *models.OrganizationMembership, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(membership).Error; err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.NewAuditWriteError(err)
		}
		return nil
	})
}

// GetByUserID retrieves all memberships for a user with each organization
// preloaded
func (r *MembershipRepository) GetByUserID(userID uuid.UUID) ([]models.OrganizationMembership, error) {
	var memberships []models.OrganizationMembership
	err := r.db.Preload("Organization").Where("user_id = ?", userID).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByOrganizationID retrieves memberships for an organization with the
// member's user record preloaded, with pagination
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error) {
	var memberships []models.OrganizationMembership
	var total int64

	if err := r.db.Model(&models.OrganizationMembership{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).
		Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// GetByOrgAndUser retrieves a single membership
func (r *MembershipRepository) GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error) {
	var membership models.OrganizationMembership
	err := r.db.First(&membership, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// UpdateRole changes a member's role and appends the audit entry in the
// same transaction
func (r *MembershipRepository) UpdateRole(orgID, userID uuid.UUID, role models.MembershipRole, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.OrganizationMembership{}).
			Where("organization_id = ? AND user_id = ?", orgID, userID).
			Update("role", role)
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

// Delete removes a user from an organization and appends the audit entry in
// the same transaction
func (r *MembershipRepository) Delete(orgID, userID uuid.UUID, entry *models.AuditLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("organization_id = ? AND user_id = ?", orgID, userID).
			Delete(&models.OrganizationMembership{})
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
