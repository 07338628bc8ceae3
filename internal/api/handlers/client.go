package handlers

import (
	"net/http"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	service service.ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(service service.ClientServiceInterface) *ClientHandler {
	return &ClientHandler{service: service}
}

// CreateClient handles POST /api/v1/clients
// @Summary Create a new client
// @Description Create a new client in the caller's organization
// @Tags clients
// @Accept json
// @Produce json
// @Param client body service.CreateClientRequest true "Client data"
// @Success 201 {object} service.ClientResponse "Successfully created client"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Create(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClient handles GET /api/v1/clients/:id
// @Summary Get client by ID
// @Description Get a specific client by its UUID
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 200 {object} service.ClientResponse "Successfully retrieved client"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
		return
	}

	client, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients handles GET /api/v1/clients
// @Summary List clients
// @Description List the organization's clients with optional filters and pagination
// @Tags clients
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (active, archived)"
// @Param client_type query string false "Filter by type (individual, business)"
// @Param search query string false "Search by name, email or TIN"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ClientListResponse "Successfully retrieved clients"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	filter := repository.ClientFilter{
		Status:     models.ClientStatus(c.Query("status")),
		ClientType: models.ClientType(c.Query("client_type")),
		Search:     c.Query("search"),
	}
	page, pageSize := parsePagination(c)

	clients, err := h.service.List(ctx, filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateClient handles PUT /api/v1/clients/:id
// @Summary Update a client
// @Description Update a client's details
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Param client body service.UpdateClientRequest true "Updated client data"
// @Success 200 {object} service.ClientResponse "Successfully updated client"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
		return
	}

	var req service.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	client, err := h.service.Update(ctx, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /api/v1/clients/:id
// @Summary Delete a client
// @Description Delete a client with no remaining documents, appointments, tax calculations or invoices
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID (UUID)"
// @Success 204 {string} string "Successfully deleted client"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Client not found"
// @Failure 409 {object} map[string]interface{} "Client still has dependent records"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsReferentialIntegrity(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
