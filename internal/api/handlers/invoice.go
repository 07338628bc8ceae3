package handlers

import (
	"errors"
	"net/http"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles HTTP requests for invoices
type InvoiceHandler struct {
	service service.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service service.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// CreateInvoice handles POST /api/v1/invoices
// @Summary Create a new invoice
// @Description Create an invoice for a client; totals are computed from the line items
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body service.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} service.InvoiceResponse "Successfully created invoice"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 409 {object} map[string]interface{} "Invoice number already in use"
// @Failure 422 {object} map[string]interface{} "Client reference cannot be resolved"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.service.Create(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsCrossTenantReference(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice"})
		}
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoice handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Description Get a specific invoice by its UUID
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} service.InvoiceResponse "Successfully retrieved invoice"
// @Failure 400 {object} map[string]interface{} "Invalid invoice ID"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID: invalid UUID format"})
		return
	}

	invoice, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice"})
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// ListInvoices handles GET /api/v1/invoices
// @Summary List invoices
// @Description List the organization's invoices with optional filters and pagination
// @Tags invoices
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client ID"
// @Param status query string false "Filter by status"
// @Param issued_from query string false "Issue date lower bound (RFC 3339)"
// @Param issued_to query string false "Issue date upper bound (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InvoiceListResponse "Successfully retrieved invoices"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	filter := repository.InvoiceFilter{
		Status: models.InvoiceStatus(c.Query("status")),
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id filter"})
			return
		}
		filter.ClientID = &clientID
	}
	if fromStr := c.Query("issued_from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issued_from filter, expected RFC 3339"})
			return
		}
		filter.IssuedFrom = &from
	}
	if toStr := c.Query("issued_to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issued_to filter, expected RFC 3339"})
			return
		}
		filter.IssuedTo = &to
	}
	page, pageSize := parsePagination(c)

	invoices, err := h.service.List(ctx, filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// UpdateInvoice handles PUT /api/v1/invoices/:id
// @Summary Update an invoice
// @Description Update an invoice's details; totals are recomputed from the line items
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param invoice body service.UpdateInvoiceRequest true "Updated invoice data"
// @Success 200 {object} service.InvoiceResponse "Successfully updated invoice"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Failure 409 {object} map[string]interface{} "Invoice number already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID: invalid UUID format"})
		return
	}

	var req service.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.service.Update(ctx, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /api/v1/invoices/:id
// @Summary Delete an invoice
// @Description Delete a draft or cancelled invoice; issued invoices cannot be deleted
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 204 {string} string "Successfully deleted invoice"
// @Failure 400 {object} map[string]interface{} "Invalid invoice ID"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Invoice not found"
// @Failure 409 {object} map[string]interface{} "Invoice status does not allow deletion"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvoiceNotDeletable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
