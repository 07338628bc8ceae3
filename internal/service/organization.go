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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100,alphanum|containsany=-_"`
	DisplayName string `json:"display_name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	DisplayName string                       `json:"display_name" validate:"required,min=1,max=200"`
	Description string                       `json:"description" validate:"max=1000"`
	Settings    *models.OrganizationSettings `json:"settings"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID                   `json:"id"`
	Name        string                      `json:"name"`
	DisplayName string                      `json:"display_name"`
	Description string                      `json:"description"`
	IsActive    bool                        `json:"is_active"`
	Settings    models.OrganizationSettings `json:"settings"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// Create creates a new organization with the calling user as its first
// admin member. The caller does not need an existing tenant context; the
// new organization becomes one they can select.
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest, ipAddress, userAgent string) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrOrganizationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check organization name: %w", err)
	}

	settingsJSON, err := json.Marshal(models.DefaultOrganizationSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default settings: %w", err)
	}

	org := &models.Organization{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		IsActive:    true,
		Settings:    settingsJSON,
	}

	membership := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           models.MembershipRoleAdmin,
	}

	// The creator is the acting identity for the onboarding audit trail.
	ctx := &tenant.Context{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           models.MembershipRoleAdmin,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeOrganization, VerbCreate, org.ID, nil, org)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWithOwner(org, membership, entry); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org)
}

// Get retrieves the caller's organization
func (s *OrganizationService) Get(ctx *tenant.Context) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(ctx.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org)
}

// Update updates the caller's organization. Admin only.
func (s *OrganizationService) Update(ctx *tenant.Context, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if !ctx.IsAdmin() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	before, err := s.repo.GetByID(ctx.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	updates := map[string]interface{}{
		"display_name": req.DisplayName,
		"description":  req.Description,
	}

	after := *before
	after.DisplayName = req.DisplayName
	after.Description = req.Description

	if req.Settings != nil {
		settingsJSON, err := json.Marshal(req.Settings)
		if err != nil {
			return nil, fmt.Errorf("failed to encode settings: %w", err)
		}
		updates["settings"] = settingsJSON
		after.Settings = settingsJSON
	}

	entry, err := NewAuditEntry(ctx, EntityTypeOrganization, VerbUpdate, ctx.OrganizationID, before, &after)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx.OrganizationID, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated organization: %w", err)
	}

	return s.toResponse(updated)
}

// Deactivate marks the organization inactive. Organizations are never
// deleted; deactivation blocks future tenant resolution while keeping
// history intact. Admin only.
func (s *OrganizationService) Deactivate(ctx *tenant.Context) error {
	if !ctx.IsAdmin() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	after := *before
	after.IsActive = false

	entry, err := NewAuditEntry(ctx, EntityTypeOrganization, VerbDeactivate, ctx.OrganizationID, before, &after)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"is_active": false}
	if err := s.repo.Update(ctx.OrganizationID, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}

	return nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) (*OrganizationResponse, error) {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		DisplayName: org.DisplayName,
		Description: org.Description,
		IsActive:    org.IsActive,
		Settings:    org.ParsedSettings(),
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}, nil
}
