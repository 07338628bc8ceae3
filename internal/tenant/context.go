// Package tenant resolves the organization scope of an authenticated request.
// Every repository and service operation takes a Context; nothing in the
// system reads tenant identity from ambient state.
package tenant

import (
	"github.com/google/uuid"

	"firmdesk-backend/internal/database/models"
)

// Context identifies the acting user and the single organization the request
// operates on. It is produced once per request by the Resolver and passed
// explicitly down the call chain.
type Context struct {
	OrganizationID uuid.UUID
	UserID         uuid.UUID
	Role           models.MembershipRole

	// Transport metadata captured for the audit trail; not used for
	// authorization decisions.
	IPAddress string
	UserAgent string
}

// CanWrite reports whether the context's role permits mutating operations
func (c *Context) CanWrite() bool {
	return c.Role.CanWrite()
}

// IsAdmin reports whether the context's role is organization admin
func (c *Context) IsAdmin() bool {
	return c.Role == models.MembershipRoleAdmin
}
