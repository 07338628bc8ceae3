package handlers

import (
	"net/http"
	"strconv"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaxCalculationHandler handles HTTP requests for tax calculations
type TaxCalculationHandler struct {
	service service.TaxCalculationServiceInterface
}

// NewTaxCalculationHandler creates a new tax calculation handler
func NewTaxCalculationHandler(service service.TaxCalculationServiceInterface) *TaxCalculationHandler {
	return &TaxCalculationHandler{service: service}
}

// CreateTaxCalculation handles POST /api/v1/tax-calculations
// @Summary Create a new tax calculation
// @Description Create a tax calculation for a client; derived amounts are computed server-side
// @Tags tax-calculations
// @Accept json
// @Produce json
// @Param calculation body service.CreateTaxCalculationRequest true "Tax calculation data"
// @Success 201 {object} service.TaxCalculationResponse "Successfully created tax calculation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 422 {object} map[string]interface{} "Client reference cannot be resolved"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tax-calculations [post]
func (h *TaxCalculationHandler) CreateTaxCalculation(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.CreateTaxCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calculation, err := h.service.Create(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsCrossTenantReference(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tax calculation"})
		}
		return
	}

	c.JSON(http.StatusCreated, calculation)
}

// GetTaxCalculation handles GET /api/v1/tax-calculations/:id
// @Summary Get tax calculation by ID
// @Description Get a specific tax calculation by its UUID
// @Tags tax-calculations
// @Accept json
// @Produce json
// @Param id path string true "Tax calculation ID (UUID)"
// @Success 200 {object} service.TaxCalculationResponse "Successfully retrieved tax calculation"
// @Failure 400 {object} map[string]interface{} "Invalid tax calculation ID"
// @Failure 404 {object} map[string]interface{} "Tax calculation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tax-calculations/{id} [get]
func (h *TaxCalculationHandler) GetTaxCalculation(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tax calculation ID: invalid UUID format"})
		return
	}

	calculation, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get tax calculation"})
		return
	}

	c.JSON(http.StatusOK, calculation)
}

// ListTaxCalculations handles GET /api/v1/tax-calculations
// @Summary List tax calculations
// @Description List the organization's tax calculations with optional filters and pagination
// @Tags tax-calculations
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client ID"
// @Param tax_year query int false "Filter by tax year"
// @Param calculation_type query string false "Filter by type (income, property, vat, paye)"
// @Param status query string false "Filter by status (draft, final)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TaxCalculationListResponse "Successfully retrieved tax calculations"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tax-calculations [get]
func (h *TaxCalculationHandler) ListTaxCalculations(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	filter := repository.TaxCalculationFilter{
		CalculationType: models.TaxCalculationType(c.Query("calculation_type")),
		Status:          models.TaxCalculationStatus(c.Query("status")),
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id filter"})
			return
		}
		filter.ClientID = &clientID
	}
	if yearStr := c.Query("tax_year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tax_year filter"})
			return
		}
		filter.TaxYear = year
	}
	page, pageSize := parsePagination(c)

	calculations, err := h.service.List(ctx, filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tax calculations"})
		return
	}

	c.JSON(http.StatusOK, calculations)
}

// UpdateTaxCalculation handles PUT /api/v1/tax-calculations/:id
// @Summary Update a tax calculation
// @Description Update a tax calculation's inputs; derived amounts are recomputed
// @Tags tax-calculations
// @Accept json
// @Produce json
// @Param id path string true "Tax calculation ID (UUID)"
// @Param calculation body service.UpdateTaxCalculationRequest true "Updated tax calculation data"
// @Success 200 {object} service.TaxCalculationResponse "Successfully updated tax calculation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Tax calculation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tax-calculations/{id} [put]
func (h *TaxCalculationHandler) UpdateTaxCalculation(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tax calculation ID: invalid UUID format"})
		return
	}

	var req service.UpdateTaxCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	calculation, err := h.service.Update(ctx, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tax calculation"})
		}
		return
	}

	c.JSON(http.StatusOK, calculation)
}

// DeleteTaxCalculation handles DELETE /api/v1/tax-calculations/:id
// @Summary Delete a tax calculation
// @Description Delete a tax calculation
// @Tags tax-calculations
// @Accept json
// @Produce json
// @Param id path string true "Tax calculation ID (UUID)"
// @Success 204 {string} string "Successfully deleted tax calculation"
// @Failure 400 {object} map[string]interface{} "Invalid tax calculation ID"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Tax calculation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /tax-calculations/{id} [delete]
func (h *TaxCalculationHandler) DeleteTaxCalculation(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tax calculation ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tax calculation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
