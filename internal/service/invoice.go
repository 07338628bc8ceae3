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

// InvoiceService handles business logic for invoices
type InvoiceService struct {
	repo       repository.InvoiceRepositoryInterface
	clientRepo repository.ClientRepositoryInterface
	validator  *validator.Validate
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(repo repository.InvoiceRepositoryInterface, clientRepo repository.ClientRepositoryInterface, validator *validator.Validate) *InvoiceService {
	return &InvoiceService{
		repo:       repo,
		clientRepo: clientRepo,
		validator:  validator,
	}
}

// InvoiceLineItemRequest represents a single invoice line. Quantity and
// unit price are bounded so line subtotals stay within int64 through the
// basis-point tax multiplication.
type InvoiceLineItemRequest struct {
	Description    string `json:"description" validate:"required,max=255"`
	Quantity       int    `json:"quantity" validate:"required,min=1,max=10000"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0,max=10000000000"`
	TaxRateBps     int    `json:"tax_rate_bps" validate:"min=0,max=10000"`
}

// CreateInvoiceRequest represents the request to create an invoice.
// Totals are computed from the line items; any totals in the payload
// are ignored.
type CreateInvoiceRequest struct {
	ClientID      uuid.UUID                `json:"client_id" validate:"required"`
	InvoiceNumber string                   `json:"invoice_number" validate:"required,min=1,max=50"`
	Currency      string                   `json:"currency" validate:"omitempty,len=3"`
	IssueDate     time.Time                `json:"issue_date" validate:"required"`
	DueDate       time.Time                `json:"due_date" validate:"required"`
	LineItems     []InvoiceLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents the request to update an invoice
type UpdateInvoiceRequest struct {
	InvoiceNumber string                   `json:"invoice_number" validate:"required,min=1,max=50"`
	Status        models.InvoiceStatus     `json:"status" validate:"required"`
	Currency      string                   `json:"currency" validate:"omitempty,len=3"`
	IssueDate     time.Time                `json:"issue_date" validate:"required"`
	DueDate       time.Time                `json:"due_date" validate:"required"`
	LineItems     []InvoiceLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

// InvoiceResponse represents the response for invoice operations
type InvoiceResponse struct {
	ID             uuid.UUID                `json:"id"`
	OrganizationID uuid.UUID                `json:"organization_id"`
	ClientID       uuid.UUID                `json:"client_id"`
	InvoiceNumber  string                   `json:"invoice_number"`
	Status         models.InvoiceStatus     `json:"status"`
	Currency       string                   `json:"currency"`
	IssueDate      time.Time                `json:"issue_date"`
	DueDate        time.Time                `json:"due_date"`
	LineItems      []models.InvoiceLineItem `json:"line_items"`
	SubtotalCents  int64                    `json:"subtotal_cents"`
	TaxCents       int64                    `json:"tax_cents"`
	TotalCents     int64                    `json:"total_cents"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// InvoiceListResponse represents a paginated list of invoices
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// buildLineItems converts request lines into stored lines and totals
func buildLineItems(reqs []InvoiceLineItemRequest) (items []models.InvoiceLineItem, subtotal, tax int64) {
	items = make([]models.InvoiceLineItem, len(reqs))
	for i, r := range reqs {
		lineSubtotal := int64(r.Quantity) * r.UnitPriceCents
		lineTax := lineSubtotal * int64(r.TaxRateBps) / 10000
		items[i] = models.InvoiceLineItem{
			Description:    r.Description,
			Quantity:       r.Quantity,
			UnitPriceCents: r.UnitPriceCents,
			TaxRateBps:     r.TaxRateBps,
			AmountCents:    lineSubtotal + lineTax,
		}
		subtotal += lineSubtotal
		tax += lineTax
	}
	return items, subtotal, tax
}

// Create creates a new invoice in the caller's organization. The invoice
// number must be unique within the organization only.
func (s *InvoiceService) Create(ctx *tenant.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, apperrors.NewValidationError("due_date", "due date precedes issue date")
	}

	if _, err := s.clientRepo.GetByID(ctx.OrganizationID, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceClientCrossTenant
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	if _, err := s.repo.GetByNumber(ctx.OrganizationID, req.InvoiceNumber); err == nil {
		return nil, apperrors.ErrInvoiceNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check invoice number: %w", err)
	}

	items, subtotal, tax := buildLineItems(req.LineItems)
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "GYD"
	}

	invoice := &models.Invoice{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		Status:        models.InvoiceStatusDraft,
		Currency:      currency,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		LineItems:     itemsJSON,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeInvoice, VerbCreate, invoice.ID, nil, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(invoice, entry); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return s.toResponse(invoice)
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx *tenant.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return s.toResponse(invoice)
}

// List retrieves the organization's invoices with pagination
func (s *InvoiceService) List(ctx *tenant.Context, filter repository.InvoiceFilter, page, pageSize int) (*InvoiceListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	invoices, total, err := s.repo.List(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		resp, err := s.toResponse(&invoice)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &InvoiceListResponse{
		Invoices: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an invoice and recomputes its totals
func (s *InvoiceService) Update(ctx *tenant.Context, id uuid.UUID, req *UpdateInvoiceRequest) (*InvoiceResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	if req.DueDate.Before(req.IssueDate) {
		return nil, apperrors.NewValidationError("due_date", "due date precedes issue date")
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if req.InvoiceNumber != before.InvoiceNumber {
		if _, err := s.repo.GetByNumber(ctx.OrganizationID, req.InvoiceNumber); err == nil {
			return nil, apperrors.ErrInvoiceNumberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check invoice number: %w", err)
		}
	}

	items, subtotal, tax := buildLineItems(req.LineItems)
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = before.Currency
	}

	after := *before
	after.InvoiceNumber = req.InvoiceNumber
	after.Status = req.Status
	after.Currency = currency
	after.IssueDate = req.IssueDate
	after.DueDate = req.DueDate
	after.LineItems = itemsJSON
	after.SubtotalCents = subtotal
	after.TaxCents = tax
	after.TotalCents = subtotal + tax

	entry, err := NewAuditEntry(ctx, EntityTypeInvoice, VerbUpdate, id, before, &after)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"invoice_number": req.InvoiceNumber,
		"status":         req.Status,
		"currency":       currency,
		"issue_date":     req.IssueDate,
		"due_date":       req.DueDate,
		"line_items":     itemsJSON,
		"subtotal_cents": subtotal,
		"tax_cents":      tax,
		"total_cents":    subtotal + tax,
	}

	if err := s.repo.Update(ctx.OrganizationID, id, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated invoice: %w", err)
	}

	return s.toResponse(updated)
}

// Delete removes an invoice. Only draft and cancelled invoices can be
// deleted; issued invoices stay on the books.
func (s *InvoiceService) Delete(ctx *tenant.Context, id uuid.UUID) error {
	if !ctx.CanWrite() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to get invoice: %w", err)
	}

	if !before.Status.Deletable() {
		return apperrors.ErrInvoiceNotDeletable
	}

	entry, err := NewAuditEntry(ctx, EntityTypeInvoice, VerbDelete, id, before, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx.OrganizationID, id, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}

// toResponse converts an invoice model to response
func (s *InvoiceService) toResponse(invoice *models.Invoice) (*InvoiceResponse, error) {
	var items []models.InvoiceLineItem
	if len(invoice.LineItems) > 0 {
		if err := json.Unmarshal(invoice.LineItems, &items); err != nil {
			return nil, fmt.Errorf("failed to decode line items: %w", err)
		}
	}

	return &InvoiceResponse{
		ID:             invoice.ID,
		OrganizationID: invoice.OrganizationID,
		ClientID:       invoice.ClientID,
		InvoiceNumber:  invoice.InvoiceNumber,
		Status:         invoice.Status,
		Currency:       invoice.Currency,
		IssueDate:      invoice.IssueDate,
		DueDate:        invoice.DueDate,
		LineItems:      items,
		SubtotalCents:  invoice.SubtotalCents,
		TaxCents:       invoice.TaxCents,
		TotalCents:     invoice.TotalCents,
		CreatedAt:      invoice.CreatedAt,
		UpdatedAt:      invoice.UpdatedAt,
	}, nil
}
