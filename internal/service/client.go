package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientService handles business logic for clients
type ClientService struct {
	repo      repository.ClientRepositoryInterface
	validator *validator.Validate
}

// NewClientService creates a new client service
func NewClientService(repo repository.ClientRepositoryInterface, validator *validator.Validate) *ClientService {
	return &ClientService{
		repo:      repo,
		validator: validator,
	}
}

// CreateClientRequest represents the request to create a client. There is no
// organization field: the organization is always taken from the resolved
// request context.
type CreateClientRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Email      string            `json:"email" validate:"omitempty,email,max=255"`
	Phone      string            `json:"phone" validate:"max=30"`
	Address    string            `json:"address" validate:"max=500"`
	TIN        string            `json:"tin" validate:"max=20"`
	ClientType models.ClientType `json:"client_type" validate:"required"`
	Notes      string            `json:"notes"`
}

// UpdateClientRequest represents the request to update a client
type UpdateClientRequest struct {
	Name       string              `json:"name" validate:"required,min=1,max=200"`
	Email      string              `json:"email" validate:"omitempty,email,max=255"`
	Phone      string              `json:"phone" validate:"max=30"`
	Address    string              `json:"address" validate:"max=500"`
	TIN        string              `json:"tin" validate:"max=20"`
	ClientType models.ClientType   `json:"client_type" validate:"required"`
	Status     models.ClientStatus `json:"status" validate:"required"`
	Notes      string              `json:"notes"`
}

// ClientResponse represents the response for client operations
type ClientResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone"`
	Address        string              `json:"address"`
	TIN            string              `json:"tin"`
	ClientType     models.ClientType   `json:"client_type"`
	Status         models.ClientStatus `json:"status"`
	Notes          string              `json:"notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Clients  []ClientResponse `json:"clients"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new client in the caller's organization
func (s *ClientService) Create(ctx *tenant.Context, req *CreateClientRequest) (*ClientResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ClientType.IsValid() {
		return nil, apperrors.NewValidationError("client_type", "unknown client type")
	}

	client := &models.Client{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: ctx.OrganizationID,
		},
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		TIN:        req.TIN,
		ClientType: req.ClientType,
		Status:     models.ClientStatusActive,
		Notes:      req.Notes,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeClient, VerbCreate, client.ID, nil, client)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(client, entry); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return s.toResponse(client), nil
}

// GetByID retrieves a client by ID. A client in another organization is
// reported as not found.
func (s *ClientService) GetByID(ctx *tenant.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return s.toResponse(client), nil
}

// List retrieves the organization's clients with pagination
func (s *ClientService) List(ctx *tenant.Context, filter repository.ClientFilter, page, pageSize int) (*ClientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	clients, total, err := s.repo.List(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = *s.toResponse(&client)
	}

	return &ClientListResponse{
		Clients:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a client. The organization id cannot be changed: it is not
// part of the request type and never appears in the updates map.
func (s *ClientService) Update(ctx *tenant.Context, id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ClientType.IsValid() {
		return nil, apperrors.NewValidationError("client_type", "unknown client type")
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	after := *before
	after.Name = req.Name
	after.Email = req.Email
	after.Phone = req.Phone
	after.Address = req.Address
	after.TIN = req.TIN
	after.ClientType = req.ClientType
	after.Status = req.Status
	after.Notes = req.Notes

	entry, err := NewAuditEntry(ctx, EntityTypeClient, VerbUpdate, id, before, &after)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"email":       req.Email,
		"phone":       req.Phone,
		"address":     req.Address,
		"tin":         req.TIN,
		"client_type": req.ClientType,
		"status":      req.Status,
		"notes":       req.Notes,
	}

	if err := s.repo.Update(ctx.OrganizationID, id, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated client: %w", err)
	}

	return s.toResponse(updated), nil
}

// Delete removes a client. Deletion is blocked while documents,
// appointments, tax calculations or invoices still reference the client;
// dependent records are never cascaded.
func (s *ClientService) Delete(ctx *tenant.Context, id uuid.UUID) error {
	if !ctx.CanWrite() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return fmt.Errorf("failed to get client: %w", err)
	}

	dependents, err := s.repo.CountDependents(ctx.OrganizationID, id)
	if err != nil {
		return fmt.Errorf("failed to check client dependents: %w", err)
	}
	if len(dependents) > 0 {
		names := make([]string, 0, len(dependents))
		for name := range dependents {
			names = append(names, name)
		}
		sort.Strings(names)
		return apperrors.NewReferentialIntegrityError("client", strings.Join(names, ", "))
	}

	entry, err := NewAuditEntry(ctx, EntityTypeClient, VerbDelete, id, before, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx.OrganizationID, id, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}

// toResponse converts a client model to response
func (s *ClientService) toResponse(client *models.Client) *ClientResponse {
	return &ClientResponse{
		ID:             client.ID,
		OrganizationID: client.OrganizationID,
		Name:           client.Name,
		Email:          client.Email,
		Phone:          client.Phone,
		Address:        client.Address,
		TIN:            client.TIN,
		ClientType:     client.ClientType,
		Status:         client.Status,
		Notes:          client.Notes,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}
}
