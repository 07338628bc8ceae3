package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity type names used in audit actions and entity_type columns
const (
	EntityTypeOrganization   = "organization"
	EntityTypeMembership     = "membership"
	EntityTypeClient         = "client"
	EntityTypeDocument       = "document"
	EntityTypeAppointment    = "appointment"
	EntityTypeTaxCalculation = "tax_calculation"
	EntityTypeInvoice        = "invoice"
)

// Audit verbs
const (
	VerbCreate     = "create"
	VerbUpdate     = "update"
	VerbDelete     = "delete"
	VerbDeactivate = "deactivate"
	VerbAdd        = "add"
	VerbRoleChange = "role_change"
	VerbRemove     = "remove"
)

// NewAuditEntry builds the audit record for one mutating operation. before
// and after are entity snapshots (either may be nil: create has no before,
// delete no after). A snapshot that cannot be serialized means the operation
// cannot be audited, which fails the operation itself.
func NewAuditEntry(ctx *tenant.Context, entityType, verb string, entityID uuid.UUID, before, after interface{}) (*models.AuditLog, error) {
	changes := models.AuditChanges{}
	if before != nil {
		raw, err := json.Marshal(before)
		if err != nil {
			return nil, apperrors.NewAuditWriteError(err)
		}
		changes.Before = raw
	}
	if after != nil {
		raw, err := json.Marshal(after)
		if err != nil {
			return nil, apperrors.NewAuditWriteError(err)
		}
		changes.After = raw
	}
	rawChanges, err := json.Marshal(changes)
	if err != nil {
		return nil, apperrors.NewAuditWriteError(err)
	}

	return &models.AuditLog{
		ID:             uuid.New(),
		OrganizationID: ctx.OrganizationID,
		UserID:         ctx.UserID,
		Action:         models.AuditAction(entityType, verb),
		EntityType:     entityType,
		EntityID:       entityID,
		Changes:        rawChanges,
		IPAddress:      ctx.IPAddress,
		UserAgent:      ctx.UserAgent,
	}, nil
}

// AuditService exposes the read side of the audit trail. Writes happen
// inside the business repositories, in the same transaction as the mutation
// they record.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditLogQuery holds the supported audit trail filters
type AuditLogQuery struct {
	EntityType string     `form:"entity_type"`
	EntityID   *uuid.UUID `form:"entity_id"`
	UserID     *uuid.UUID `form:"user_id"`
	Action     string     `form:"action"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// AuditLogListResponse represents a paginated page of audit entries
type AuditLogListResponse struct {
	Entries  []models.AuditLog `json:"entries"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Query returns audit entries for the caller's organization, newest first
func (s *AuditService) Query(ctx *tenant.Context, query AuditLogQuery, page, pageSize int) (*AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	filter := repository.AuditLogFilter{
		EntityType: query.EntityType,
		EntityID:   query.EntityID,
		UserID:     query.UserID,
		Action:     query.Action,
		From:       query.From,
		To:         query.To,
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.Query(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}

	return &AuditLogListResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves one audit entry within the caller's organization
func (s *AuditService) GetByID(ctx *tenant.Context, id uuid.UUID) (*models.AuditLog, error) {
	entry, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log entry: %w", err)
	}
	return entry, nil
}
