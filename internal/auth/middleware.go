package auth

import (
	"net/http"
	"strings"

	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextKeyUserID        = "user_id"
	contextKeyAuthClaims    = "auth_claims"
	contextKeyTenantContext = "tenant_context"

	// OrganizationHeader selects the acting organization for users who
	// belong to more than one.
	OrganizationHeader = "X-Organization-ID"
)

// AuthMiddleware provides JWT authentication and tenant resolution
type AuthMiddleware struct {
	service  *AuthService
	resolver *tenant.Resolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, resolver *tenant.Resolver) *AuthMiddleware {
	return &AuthMiddleware{service: service, resolver: resolver}
}

// RequireAuth validates JWT tokens and sets the user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyAuthClaims, claims)

		c.Next()
	}
}

// RequireTenant resolves the acting organization for the authenticated
// user and stores the tenant context for handlers. Must run after
// RequireAuth. A requested organization the user is not a member of fails
// exactly like having selected none.
func (m *AuthMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		var requestedOrg *uuid.UUID
		if header := c.GetHeader(OrganizationHeader); header != "" {
			orgID, err := uuid.Parse(header)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization id"})
				c.Abort()
				return
			}
			requestedOrg = &orgID
		}

		tenantCtx, err := m.resolver.Resolve(userID, requestedOrg)
		if err != nil {
			if apperrors.IsAuthorization(err) {
				c.JSON(http.StatusForbidden, gin.H{"error": "No organization selected", "code": "no_organization_selected"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization"})
			}
			c.Abort()
			return
		}

		tenantCtx.IPAddress = c.ClientIP()
		tenantCtx.UserAgent = c.Request.UserAgent()

		c.Set(contextKeyTenantContext, tenantCtx)
		c.Set("organization_id", tenantCtx.OrganizationID)

		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetAuthClaims extracts the full auth claims from the gin context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	value, exists := c.Get(contextKeyAuthClaims)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*AuthClaims)
	return claims, ok
}

// GetTenantContext extracts the resolved tenant context from the gin context
func GetTenantContext(c *gin.Context) (*tenant.Context, bool) {
	value, exists := c.Get(contextKeyTenantContext)
	if !exists {
		return nil, false
	}

	ctx, ok := value.(*tenant.Context)
	return ctx, ok
}
