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

// DocumentService handles business logic for document metadata
type DocumentService struct {
	repo       repository.DocumentRepositoryInterface
	clientRepo repository.ClientRepositoryInterface
	validator  *validator.Validate
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface, clientRepo repository.ClientRepositoryInterface, validator *validator.Validate) *DocumentService {
	return &DocumentService{
		repo:       repo,
		clientRepo: clientRepo,
		validator:  validator,
	}
}

// CreateDocumentRequest represents the request to register a document
type CreateDocumentRequest struct {
	ClientID    uuid.UUID               `json:"client_id" validate:"required"`
	Title       string                  `json:"title" validate:"required,min=1,max=200"`
	Category    models.DocumentCategory `json:"category" validate:"required"`
	FileName    string                  `json:"file_name" validate:"required,max=255"`
	ContentType string                  `json:"content_type" validate:"max=100"`
	SizeBytes   int64                   `json:"size_bytes" validate:"min=0"`
	StorageKey  string                  `json:"storage_key" validate:"required,max=500"`
}

// UpdateDocumentRequest represents the request to update document metadata.
// The file reference itself is immutable; only descriptive fields change.
type UpdateDocumentRequest struct {
	Title    string                  `json:"title" validate:"required,min=1,max=200"`
	Category models.DocumentCategory `json:"category" validate:"required"`
}

// DocumentResponse represents the response for document operations
type DocumentResponse struct {
	ID             uuid.UUID               `json:"id"`
	OrganizationID uuid.UUID               `json:"organization_id"`
	ClientID       uuid.UUID               `json:"client_id"`
	Title          string                  `json:"title"`
	Category       models.DocumentCategory `json:"category"`
	FileName       string                  `json:"file_name"`
	ContentType    string                  `json:"content_type"`
	SizeBytes      int64                   `json:"size_bytes"`
	StorageKey     string                  `json:"storage_key"`
	UploadedBy     uuid.UUID               `json:"uploaded_by"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create registers a new document for a client in the caller's organization.
// The client reference is resolved inside the same organization; a client id
// that belongs to another organization or does not exist at all is rejected
// identically.
func (s *DocumentService) Create(ctx *tenant.Context, req *CreateDocumentRequest) (*DocumentResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown document category")
	}

	if _, err := s.clientRepo.GetByID(ctx.OrganizationID, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentClientCrossTenant
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	document := &models.Document{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:    req.ClientID,
		Title:       req.Title,
		Category:    req.Category,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StorageKey:  req.StorageKey,
		UploadedBy:  ctx.UserID,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeDocument, VerbCreate, document.ID, nil, document)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(document, entry); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return s.toResponse(document), nil
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(ctx *tenant.Context, id uuid.UUID) (*DocumentResponse, error) {
	document, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return s.toResponse(document), nil
}

// List retrieves the organization's documents with pagination
func (s *DocumentService) List(ctx *tenant.Context, filter repository.DocumentFilter, page, pageSize int) (*DocumentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	documents, total, err := s.repo.List(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(documents))
	for i, document := range documents {
		responses[i] = *s.toResponse(&document)
	}

	return &DocumentListResponse{
		Documents: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a document's descriptive metadata
func (s *DocumentService) Update(ctx *tenant.Context, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown document category")
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	after := *before
	after.Title = req.Title
	after.Category = req.Category

	entry, err := NewAuditEntry(ctx, EntityTypeDocument, VerbUpdate, id, before, &after)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":    req.Title,
		"category": req.Category,
	}

	if err := s.repo.Update(ctx.OrganizationID, id, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated document: %w", err)
	}

	return s.toResponse(updated), nil
}

// Delete removes a document record
func (s *DocumentService) Delete(ctx *tenant.Context, id uuid.UUID) error {
	if !ctx.CanWrite() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	entry, err := NewAuditEntry(ctx, EntityTypeDocument, VerbDelete, id, before, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx.OrganizationID, id, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// toResponse converts a document model to response
func (s *DocumentService) toResponse(document *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:             document.ID,
		OrganizationID: document.OrganizationID,
		ClientID:       document.ClientID,
		Title:          document.Title,
		Category:       document.Category,
		FileName:       document.FileName,
		ContentType:    document.ContentType,
		SizeBytes:      document.SizeBytes,
		StorageKey:     document.StorageKey,
		UploadedBy:     document.UploadedBy,
		CreatedAt:      document.CreatedAt,
		UpdatedAt:      document.UpdatedAt,
	}
}
