package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles HTTP requests for the audit trail
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListAuditLogs handles GET /api/v1/audit-logs
// @Summary List audit entries
// @Description List the acting organization's audit trail, newest first, with optional filters
// @Tags audit
// @Accept json
// @Produce json
// @Param entity_type query string false "Filter by entity type"
// @Param entity_id query string false "Filter by entity ID (UUID)"
// @Param user_id query string false "Filter by acting user ID (UUID)"
// @Param action query string false "Filter by action, e.g. invoice:create"
// @Param from query string false "Filter entries at or after this time (RFC3339)"
// @Param to query string false "Filter entries before this time (RFC3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AuditLogListResponse "Successfully retrieved audit entries"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	query := service.AuditLogQuery{
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
	}
	if raw := c.Query("entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entity_id: invalid UUID format"})
			return
		}
		query.EntityID = &id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id: invalid UUID format"})
			return
		}
		query.UserID = &id
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from time: expected RFC3339"})
			return
		}
		query.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to time: expected RFC3339"})
			return
		}
		query.To = &t
	}

	page, pageSize := parsePagination(c)
	result, err := h.service.Query(ctx, query, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAuditLog handles GET /api/v1/audit-logs/:id
// @Summary Get an audit entry
// @Description Get a single audit entry by ID within the acting organization
// @Tags audit
// @Accept json
// @Produce json
// @Param id path string true "Audit entry ID (UUID)"
// @Success 200 {object} models.AuditLog "Successfully retrieved audit entry"
// @Failure 400 {object} map[string]interface{} "Invalid audit entry ID"
// @Failure 404 {object} map[string]interface{} "Audit entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /audit-logs/{id} [get]
func (h *AuditHandler) GetAuditLog(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audit entry ID: invalid UUID format"})
		return
	}

	entry, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
