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

// AppointmentHandler handles HTTP requests for appointments
type AppointmentHandler struct {
	service service.AppointmentServiceInterface
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service service.AppointmentServiceInterface) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// CreateAppointment handles POST /api/v1/appointments
// @Summary Create a new appointment
// @Description Create an appointment in the caller's organization
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body service.CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} service.AppointmentResponse "Successfully created appointment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 422 {object} map[string]interface{} "Client or assignee reference cannot be resolved"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, err := h.service.Create(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsCrossTenantReference(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointment handles GET /api/v1/appointments/:id
// @Summary Get appointment by ID
// @Description Get a specific appointment by its UUID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} service.AppointmentResponse "Successfully retrieved appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID: invalid UUID format"})
		return
	}

	appointment, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get appointment"})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// ListAppointments handles GET /api/v1/appointments
// @Summary List appointments
// @Description List the organization's appointments with optional filters and pagination
// @Tags appointments
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client ID"
// @Param assigned_user_id query string false "Filter by assigned user ID"
// @Param status query string false "Filter by status"
// @Param from query string false "Scheduled-at lower bound (RFC 3339)"
// @Param to query string false "Scheduled-at upper bound (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AppointmentListResponse "Successfully retrieved appointments"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	filter := repository.AppointmentFilter{
		Status: models.AppointmentStatus(c.Query("status")),
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id filter"})
			return
		}
		filter.ClientID = &clientID
	}
	if assigneeStr := c.Query("assigned_user_id"); assigneeStr != "" {
		assigneeID, err := uuid.Parse(assigneeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigned_user_id filter"})
			return
		}
		filter.AssignedUserID = &assigneeID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from filter, expected RFC 3339"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to filter, expected RFC 3339"})
			return
		}
		filter.To = &to
	}
	page, pageSize := parsePagination(c)

	appointments, err := h.service.List(ctx, filter, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointment handles PUT /api/v1/appointments/:id
// @Summary Update an appointment
// @Description Update an appointment's details and status
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Param appointment body service.UpdateAppointmentRequest true "Updated appointment data"
// @Success 200 {object} service.AppointmentResponse "Successfully updated appointment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 422 {object} map[string]interface{} "Client or assignee reference cannot be resolved"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID: invalid UUID format"})
		return
	}

	var req service.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	appointment, err := h.service.Update(ctx, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsCrossTenantReference(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment handles DELETE /api/v1/appointments/:id
// @Summary Delete an appointment
// @Description Delete an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 204 {string} string "Successfully deleted appointment"
// @Failure 400 {object} map[string]interface{} "Invalid appointment ID"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Appointment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete appointment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
