package handlers

import (
	"net/http"

	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles HTTP requests for staff directory lookups
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// SearchDirectory handles GET /api/v1/directory/search
// @Summary Search the staff directory
// @Description Search directory users by name prefix; used to find a colleague's email before adding them as a member
// @Tags directory
// @Accept json
// @Produce json
// @Param name query string true "Name prefix to search for"
// @Success 200 {array} service.DirectoryUser "Matching directory users"
// @Failure 400 {object} map[string]interface{} "Missing name parameter"
// @Failure 503 {object} map[string]interface{} "Directory not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /directory/search [get]
func (h *DirectoryHandler) SearchDirectory(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'name' is required"})
		return
	}

	users, err := h.service.SearchByName(name)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Directory search failed"})
		return
	}

	c.JSON(http.StatusOK, users)
}
