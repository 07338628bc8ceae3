package service

import (
	"errors"
	"fmt"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentService handles business logic for appointments
type AppointmentService struct {
	repo           repository.AppointmentRepositoryInterface
	clientRepo     repository.ClientRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	repo repository.AppointmentRepositoryInterface,
	clientRepo repository.ClientRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *AppointmentService {
	return &AppointmentService{
		repo:           repo,
		clientRepo:     clientRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateAppointmentRequest represents the request to create an appointment.
// Client and assignee are both optional; an appointment can be internal.
type CreateAppointmentRequest struct {
	ClientID        *uuid.UUID `json:"client_id"`
	AssignedUserID  *uuid.UUID `json:"assigned_user_id"`
	Title           string     `json:"title" validate:"required,min=1,max=200"`
	Notes           string     `json:"notes"`
	ScheduledAt     time.Time  `json:"scheduled_at" validate:"required"`
	DurationMinutes int        `json:"duration_minutes" validate:"required,min=5,max=1440"`
	Location        string     `json:"location" validate:"max=255"`
}

// UpdateAppointmentRequest represents the request to update an appointment
type UpdateAppointmentRequest struct {
	ClientID        *uuid.UUID               `json:"client_id"`
	AssignedUserID  *uuid.UUID               `json:"assigned_user_id"`
	Title           string                   `json:"title" validate:"required,min=1,max=200"`
	Notes           string                   `json:"notes"`
	ScheduledAt     time.Time                `json:"scheduled_at" validate:"required"`
	DurationMinutes int                      `json:"duration_minutes" validate:"required,min=5,max=1440"`
	Location        string                   `json:"location" validate:"max=255"`
	Status          models.AppointmentStatus `json:"status" validate:"required"`
}

// AppointmentResponse represents the response for appointment operations
type AppointmentResponse struct {
	ID              uuid.UUID                `json:"id"`
	OrganizationID  uuid.UUID                `json:"organization_id"`
	ClientID        *uuid.UUID               `json:"client_id,omitempty"`
	AssignedUserID  *uuid.UUID               `json:"assigned_user_id,omitempty"`
	Title           string                   `json:"title"`
	Notes           string                   `json:"notes"`
	ScheduledAt     time.Time                `json:"scheduled_at"`
	DurationMinutes int                      `json:"duration_minutes"`
	Location        string                   `json:"location"`
	Status          models.AppointmentStatus `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// AppointmentListResponse represents a paginated list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// checkReferences verifies that the optional client and assignee references
// resolve inside the caller's organization. The assignee must hold a
// membership in the organization; a bare user account is not enough.
func (s *AppointmentService) checkReferences(ctx *tenant.Context, clientID, assignedUserID *uuid.UUID) error {
	if clientID != nil {
		if _, err := s.clientRepo.GetByID(ctx.OrganizationID, *clientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAppointmentClientCrossTenant
			}
			return fmt.Errorf("failed to resolve client: %w", err)
		}
	}
	if assignedUserID != nil {
		if _, err := s.membershipRepo.GetByOrgAndUser(ctx.OrganizationID, *assignedUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAppointmentAssigneeCrossTenant
			}
			return fmt.Errorf("failed to resolve assignee: %w", err)
		}
	}
	return nil
}

// Create creates a new appointment in the caller's organization
func (s *AppointmentService) Create(ctx *tenant.Context, req *CreateAppointmentRequest) (*AppointmentResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkReferences(ctx, req.ClientID, req.AssignedUserID); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:        req.ClientID,
		AssignedUserID:  req.AssignedUserID,
		Title:           req.Title,
		Notes:           req.Notes,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		Status:          models.AppointmentStatusScheduled,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeAppointment, VerbCreate, appointment.ID, nil, appointment)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(appointment, entry); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return s.toResponse(appointment), nil
}

// GetByID retrieves an appointment by ID
func (s *AppointmentService) GetByID(ctx *tenant.Context, id uuid.UUID) (*AppointmentResponse, error) {
	appointment, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return s.toResponse(appointment), nil
}

// List retrieves the organization's appointments with pagination. The
// From/To filter bounds must be ordered when both are present.
func (s *AppointmentService) List(ctx *tenant.Context, filter repository.AppointmentFilter, page, pageSize int) (*AppointmentListResponse, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	appointments, total, err := s.repo.List(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	responses := make([]AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *s.toResponse(&appointment)
	}

	return &AppointmentListResponse{
		Appointments: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update updates an appointment
func (s *AppointmentService) Update(ctx *tenant.Context, id uuid.UUID, req *UpdateAppointmentRequest) (*AppointmentResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	if err := s.checkReferences(ctx, req.ClientID, req.AssignedUserID); err != nil {
		return nil, err
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	after := *before
	after.ClientID = req.ClientID
	after.AssignedUserID = req.AssignedUserID
	after.Title = req.Title
	after.Notes = req.Notes
	after.ScheduledAt = req.ScheduledAt
	after.DurationMinutes = req.DurationMinutes
	after.Location = req.Location
	after.Status = req.Status

	entry, err := NewAuditEntry(ctx, EntityTypeAppointment, VerbUpdate, id, before, &after)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"client_id":        req.ClientID,
		"assigned_user_id": req.AssignedUserID,
		"title":            req.Title,
		"notes":            req.Notes,
		"scheduled_at":     req.ScheduledAt,
		"duration_minutes": req.DurationMinutes,
		"location":         req.Location,
		"status":           req.Status,
	}

	if err := s.repo.Update(ctx.OrganizationID, id, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated appointment: %w", err)
	}

	return s.toResponse(updated), nil
}

// Delete removes an appointment
func (s *AppointmentService) Delete(ctx *tenant.Context, id uuid.UUID) error {
	if !ctx.CanWrite() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to get appointment: %w", err)
	}

	entry, err := NewAuditEntry(ctx, EntityTypeAppointment, VerbDelete, id, before, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx.OrganizationID, id, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return nil
}

// toResponse converts an appointment model to response
func (s *AppointmentService) toResponse(appointment *models.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appointment.ID,
		OrganizationID:  appointment.OrganizationID,
		ClientID:        appointment.ClientID,
		AssignedUserID:  appointment.AssignedUserID,
		Title:           appointment.Title,
		Notes:           appointment.Notes,
		ScheduledAt:     appointment.ScheduledAt,
		DurationMinutes: appointment.DurationMinutes,
		Location:        appointment.Location,
		Status:          appointment.Status,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
