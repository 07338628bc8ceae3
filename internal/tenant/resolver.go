package tenant

import (
	"fmt"

	"github.com/google/uuid"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/tenant_mocks.go -package=mocks

// MembershipLookup is the slice of the membership repository the resolver needs
type MembershipLookup interface {
	GetByUserID(userID uuid.UUID) ([]models.OrganizationMembership, error)
}

// Resolver translates an authenticated user into an organization-scoped
// Context. It is a pure lookup; authentication itself happens earlier, in
// the token middleware.
type Resolver struct {
	memberships MembershipLookup
}

// NewResolver creates a new tenant context resolver
func NewResolver(memberships MembershipLookup) *Resolver {
	return &Resolver{memberships: memberships}
}

// Resolve determines the acting organization for a user. requestedOrg is the
// organization the caller asked for (X-Organization-ID header), or nil.
//
// A request for an organization the user is not a member of fails the same
// way as selecting no organization at all, so the error does not reveal
// whether the organization exists.
func (r *Resolver) Resolve(userID uuid.UUID, requestedOrg *uuid.UUID) (*Context, error) {
	all, err := r.memberships.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}

	// Deactivated organizations cannot be selected.
	memberships := make([]models.OrganizationMembership, 0, len(all))
	for _, m := range all {
		if m.Organization.ID != uuid.Nil && !m.Organization.IsActive {
			continue
		}
		memberships = append(memberships, m)
	}

	if len(memberships) == 0 {
		return nil, apperrors.ErrNoOrganizationSelected
	}

	if requestedOrg != nil {
		for _, m := range memberships {
			if m.OrganizationID == *requestedOrg {
				return &Context{
					OrganizationID: m.OrganizationID,
					UserID:         userID,
					Role:           m.Role,
				}, nil
			}
		}
		return nil, apperrors.ErrNoOrganizationSelected
	}

	if len(memberships) == 1 {
		return &Context{
			OrganizationID: memberships[0].OrganizationID,
			UserID:         userID,
			Role:           memberships[0].Role,
		}, nil
	}

	// Several memberships and no explicit selection: the caller must choose.
	return nil, apperrors.ErrNoOrganizationSelected
}
