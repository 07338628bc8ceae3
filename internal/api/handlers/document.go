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

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	service service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// CreateDocument handles POST /api/v1/documents
// @Summary Register a new document
// @Description Register document metadata for a client in the caller's organization
// @Tags documents
// @Accept json
// @Produce json
// @Param document body service.CreateDocumentRequest true "Document data"
// @Success 201 {object} service.DocumentResponse "Successfully registered document"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 422 {object} map[string]interface{} "Client reference cannot be resolved"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	document, err := h.service.Create(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsCrossTenantReference(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register document"})
		}
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocument handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get a specific document's metadata by its UUID
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse "Successfully retrieved document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	document, err := h.service.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document"})
		return
	}

	c.JSON(http.StatusOK, document)
}

// ListDocuments handles GET /api/v1/documents
// @Summary List documents
// @Description List the organization's documents with optional filters and pagination
// @Tags documents
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client ID"
// @Param category query string false "Filter by category"
// @Param search query string false "Search by title or file name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DocumentListResponse "Successfully retrieved documents"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	filter := repository.DocumentFilter{
		Category: models.DocumentCategory(c.Query("category")),
		Search:   c.Query("search"),
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client_id filter"})
			return
		}
		filter.ClientID = &clientID
	}
	page, pageSize := parsePagination(c)

	documents, err := h.service.List(ctx, filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// UpdateDocument handles PUT /api/v1/documents/:id
// @Summary Update document metadata
// @Description Update a document's title and category
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param document body service.UpdateDocumentRequest true "Updated document data"
// @Success 200 {object} service.DocumentResponse "Successfully updated document"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	var req service.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	document, err := h.service.Update(ctx, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		}
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument handles DELETE /api/v1/documents/:id
// @Summary Delete a document
// @Description Delete a document's metadata record
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 204 {string} string "Successfully deleted document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 403 {object} map[string]interface{} "Role does not permit writes"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
