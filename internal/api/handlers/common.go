package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"firmdesk-backend/internal/auth"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// tenantFromContext extracts the resolved tenant context, aborting with 401
// when the middleware did not run. Handlers behind RequireTenant can rely
// on a non-nil result.
func tenantFromContext(c *gin.Context) *tenant.Context {
	ctx, ok := auth.GetTenantContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return nil
	}
	return ctx
}

// parsePagination reads page and page_size query parameters with defaults
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// isValidationFailure reports whether the service rejected the request
// payload. Struct validation surfaces as a wrapped validator error, field
// checks as a ValidationError.
func isValidationFailure(err error) bool {
	return apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed")
}
