package service_test

import (
	"testing"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/mocks"
	"firmdesk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	memberService      *service.MemberService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.memberService = service.NewMemberService(suite.mockUserRepo, suite.mockMembershipRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterUser tests registering a user account
func (suite *MemberServiceTestSuite) TestRegisterUser() {
	req := &service.RegisterUserRequest{
		Email:    "dhanraj.persaud@demeraratax.gy",
		FullName: "Dhanraj Persaud",
		Password: "changeme123",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			// The hash is stored, never the password itself
			assert.NotEmpty(suite.T(), user.PasswordHash)
			assert.NotEqual(suite.T(), req.Password, user.PasswordHash)
			assert.True(suite.T(), user.IsActive)
			return nil
		}).
		Times(1)

	response, err := suite.memberService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Email, response.Email)
}

// TestRegisterUserDuplicateEmail tests registering with an email already in use
func (suite *MemberServiceTestSuite) TestRegisterUserDuplicateEmail() {
	req := &service.RegisterUserRequest{
		Email:    "dhanraj.persaud@demeraratax.gy",
		FullName: "Dhanraj Persaud",
		Password: "changeme123",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.User{Email: req.Email}, nil).
		Times(1)

	response, err := suite.memberService.Register(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), response)
}

// TestRegisterUserShortPassword tests password length validation
func (suite *MemberServiceTestSuite) TestRegisterUserShortPassword() {
	req := &service.RegisterUserRequest{
		Email:    "dhanraj.persaud@demeraratax.gy",
		FullName: "Dhanraj Persaud",
		Password: "short",
	}

	response, err := suite.memberService.Register(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestListMyMembershipsSkipsInactiveOrganizations tests that deactivated
// organizations do not show up as selectable
func (suite *MemberServiceTestSuite) TestListMyMembershipsSkipsInactiveOrganizations() {
	userID := uuid.New()

	memberships := []models.OrganizationMembership{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: uuid.New(),
			UserID:         userID,
			Role:           models.MembershipRoleAdmin,
			Organization:   models.Organization{DisplayName: "Demerara Tax Advisors", IsActive: true},
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: uuid.New(),
			UserID:         userID,
			Role:           models.MembershipRoleStaff,
			Organization:   models.Organization{DisplayName: "Closed Chambers", IsActive: false},
		},
	}

	suite.mockMembershipRepo.EXPECT().
		GetByUserID(userID).
		Return(memberships, nil).
		Times(1)

	responses, err := suite.memberService.ListMyMemberships(userID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "Demerara Tax Advisors", responses[0].OrganizationName)
}

// TestAddMember tests adding an existing user to the organization
func (suite *MemberServiceTestSuite) TestAddMember() {
	ctx := testContext(models.MembershipRoleAdmin)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "anita.sookdeo@demeraratax.gy",
		FullName:  "Anita Sookdeo",
		IsActive:  true,
	}
	req := &service.AddMemberRequest{
		Email: user.Email,
		Role:  models.MembershipRoleStaff,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(user, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, user.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(membership *models.OrganizationMembership, entry *models.AuditLog) error {
			assert.Equal(suite.T(), ctx.OrganizationID, membership.OrganizationID)
			assert.Equal(suite.T(), "membership:add", entry.Action)
			return nil
		}).
		Times(1)

	response, err := suite.memberService.AddMember(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.MembershipRoleStaff, response.Role)
}

// TestAddMemberNotAdmin tests that non-admin members cannot manage membership
func (suite *MemberServiceTestSuite) TestAddMemberNotAdmin() {
	ctx := testContext(models.MembershipRoleManager)
	req := &service.AddMemberRequest{
		Email: "anita.sookdeo@demeraratax.gy",
		Role:  models.MembershipRoleStaff,
	}

	response, err := suite.memberService.AddMember(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
	assert.Nil(suite.T(), response)
}

// TestAddMemberAlreadyMember tests adding a user who is already a member
func (suite *MemberServiceTestSuite) TestAddMemberAlreadyMember() {
	ctx := testContext(models.MembershipRoleAdmin)
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "anita.sookdeo@demeraratax.gy",
	}
	req := &service.AddMemberRequest{
		Email: user.Email,
		Role:  models.MembershipRoleStaff,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(user, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, user.ID).
		Return(&models.OrganizationMembership{}, nil).
		Times(1)

	response, err := suite.memberService.AddMember(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
	assert.Nil(suite.T(), response)
}

// TestUpdateMemberRole tests changing a member's role
func (suite *MemberServiceTestSuite) TestUpdateMemberRole() {
	ctx := testContext(models.MembershipRoleAdmin)
	memberID := uuid.New()

	existing := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: ctx.OrganizationID,
		UserID:         memberID,
		Role:           models.MembershipRoleStaff,
	}
	req := &service.UpdateMemberRoleRequest{Role: models.MembershipRoleManager}

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, memberID).
		Return(existing, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		UpdateRole(ctx.OrganizationID, memberID, models.MembershipRoleManager, gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockUserRepo.EXPECT().
		GetByID(memberID).
		Return(&models.User{BaseModel: models.BaseModel{ID: memberID}, Email: "anita.sookdeo@demeraratax.gy"}, nil).
		Times(1)

	response, err := suite.memberService.UpdateMemberRole(ctx, memberID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.MembershipRoleManager, response.Role)
}

// TestUpdateMemberRoleSelfDemotion tests that an admin cannot demote themselves
func (suite *MemberServiceTestSuite) TestUpdateMemberRoleSelfDemotion() {
	ctx := testContext(models.MembershipRoleAdmin)
	req := &service.UpdateMemberRoleRequest{Role: models.MembershipRoleStaff}

	response, err := suite.memberService.UpdateMemberRole(ctx, ctx.UserID, req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), response)
}

// TestRemoveMember tests removing a member
func (suite *MemberServiceTestSuite) TestRemoveMember() {
	ctx := testContext(models.MembershipRoleAdmin)
	memberID := uuid.New()

	existing := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: ctx.OrganizationID,
		UserID:         memberID,
		Role:           models.MembershipRoleStaff,
	}

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, memberID).
		Return(existing, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Delete(ctx.OrganizationID, memberID, gomock.Any()).
		DoAndReturn(func(orgID, userID uuid.UUID, entry *models.AuditLog) error {
			assert.Equal(suite.T(), "membership:remove", entry.Action)
			return nil
		}).
		Times(1)

	err := suite.memberService.RemoveMember(ctx, memberID)

	assert.NoError(suite.T(), err)
}

// TestRemoveMemberSelf tests that an admin cannot remove themselves
func (suite *MemberServiceTestSuite) TestRemoveMemberSelf() {
	ctx := testContext(models.MembershipRoleAdmin)

	err := suite.memberService.RemoveMember(ctx, ctx.UserID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRemoveMemberNotFound tests removing a user who is not a member
func (suite *MemberServiceTestSuite) TestRemoveMemberNotFound() {
	ctx := testContext(models.MembershipRoleAdmin)
	memberID := uuid.New()

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.memberService.RemoveMember(ctx, memberID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
