package tenant_test

import (
	"errors"
	"testing"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/mocks"
	"firmdesk-backend/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func membership(orgID, userID uuid.UUID, role models.MembershipRole, active bool) models.OrganizationMembership {
	return models.OrganizationMembership{
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
		Organization: models.Organization{
			BaseModel: models.BaseModel{ID: orgID},
			IsActive:  active,
		},
	}
}

func TestResolveSingleMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	orgID := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return([]models.OrganizationMembership{
		membership(orgID, userID, models.MembershipRoleStaff, true),
	}, nil)

	ctx, err := resolver.Resolve(userID, nil)
	assert.NoError(t, err)
	assert.Equal(t, orgID, ctx.OrganizationID)
	assert.Equal(t, userID, ctx.UserID)
	assert.Equal(t, models.MembershipRoleStaff, ctx.Role)
}

func TestResolveRequestedOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return([]models.OrganizationMembership{
		membership(first, userID, models.MembershipRoleStaff, true),
		membership(second, userID, models.MembershipRoleAdmin, true),
	}, nil)

	ctx, err := resolver.Resolve(userID, &second)
	assert.NoError(t, err)
	assert.Equal(t, second, ctx.OrganizationID)
	assert.Equal(t, models.MembershipRoleAdmin, ctx.Role)
}

func TestResolveMultipleMembershipsRequireSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return([]models.OrganizationMembership{
		membership(uuid.New(), userID, models.MembershipRoleStaff, true),
		membership(uuid.New(), userID, models.MembershipRoleStaff, true),
	}, nil)

	_, err := resolver.Resolve(userID, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoOrganizationSelected)
}

func TestResolveNonMemberOrganizationIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return([]models.OrganizationMembership{
		membership(uuid.New(), userID, models.MembershipRoleStaff, true),
	}, nil)

	// Requesting an org the user does not belong to fails exactly like
	// selecting nothing, whether or not that org exists.
	stranger := uuid.New()
	_, err := resolver.Resolve(userID, &stranger)
	assert.ErrorIs(t, err, apperrors.ErrNoOrganizationSelected)
}

func TestResolveNoMemberships(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return(nil, nil)

	_, err := resolver.Resolve(userID, nil)
	assert.ErrorIs(t, err, apperrors.ErrNoOrganizationSelected)
}

func TestResolveSkipsInactiveOrganizations(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	inactive := uuid.New()
	active := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return([]models.OrganizationMembership{
		membership(inactive, userID, models.MembershipRoleAdmin, false),
		membership(active, userID, models.MembershipRoleStaff, true),
	}, nil).Times(2)

	// With the inactive org filtered out only one candidate remains, so it
	// resolves without explicit selection.
	ctx, err := resolver.Resolve(userID, nil)
	assert.NoError(t, err)
	assert.Equal(t, active, ctx.OrganizationID)

	// Explicitly requesting the deactivated org is refused.
	_, err = resolver.Resolve(userID, &inactive)
	assert.ErrorIs(t, err, apperrors.ErrNoOrganizationSelected)
}

func TestResolveLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := mocks.NewMockMembershipLookup(ctrl)
	resolver := tenant.NewResolver(lookup)

	userID := uuid.New()
	lookup.EXPECT().GetByUserID(userID).Return(nil, errors.New("connection refused"))

	_, err := resolver.Resolve(userID, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNoOrganizationSelected)
}

func TestContextRoles(t *testing.T) {
	admin := &tenant.Context{Role: models.MembershipRoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanWrite())

	staff := &tenant.Context{Role: models.MembershipRoleStaff}
	assert.False(t, staff.IsAdmin())
	assert.True(t, staff.CanWrite())

	readonly := &tenant.Context{Role: models.MembershipRoleReadOnly}
	assert.False(t, readonly.IsAdmin())
	assert.False(t, readonly.CanWrite())
}
