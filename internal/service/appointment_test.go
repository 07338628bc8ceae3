package service_test

import (
	"testing"
	"time"

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

// AppointmentServiceTestSuite defines the test suite for AppointmentService
type AppointmentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockAppointmentRepositoryInterface
	mockClientRepo     *mocks.MockClientRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	appointmentService *service.AppointmentService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AppointmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAppointmentRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.appointmentService = service.NewAppointmentService(
		suite.mockRepo, suite.mockClientRepo, suite.mockMembershipRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *AppointmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateInternalAppointment tests an appointment with no client or assignee
func (suite *AppointmentServiceTestSuite) TestCreateInternalAppointment() {
	ctx := testContext(models.MembershipRoleStaff)
	req := &service.CreateAppointmentRequest{
		Title:           "Quarterly planning",
		ScheduledAt:     time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Location:        "Camp Street office",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(appointment *models.Appointment, entry *models.AuditLog) error {
			assert.Equal(suite.T(), ctx.OrganizationID, appointment.OrganizationID)
			assert.Nil(suite.T(), appointment.ClientID)
			assert.Equal(suite.T(), models.AppointmentStatusScheduled, appointment.Status)
			assert.Equal(suite.T(), "appointment:create", entry.Action)
			return nil
		}).
		Times(1)

	response, err := suite.appointmentService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Title, response.Title)
}

// TestCreateAppointmentWithReferences tests resolving client and assignee
// inside the organization
func (suite *AppointmentServiceTestSuite) TestCreateAppointmentWithReferences() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	assigneeID := uuid.New()

	req := &service.CreateAppointmentRequest{
		ClientID:        &clientID,
		AssignedUserID:  &assigneeID,
		Title:           "VAT return review",
		ScheduledAt:     time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, clientID).
		Return(&models.Client{}, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, assigneeID).
		Return(&models.OrganizationMembership{}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.appointmentService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestCreateAppointmentClientCrossTenant tests a client reference the
// organization cannot see
func (suite *AppointmentServiceTestSuite) TestCreateAppointmentClientCrossTenant() {
	ctx := testContext(models.MembershipRoleStaff)
	foreignClientID := uuid.New()

	req := &service.CreateAppointmentRequest{
		ClientID:        &foreignClientID,
		Title:           "Initial consultation",
		ScheduledAt:     time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, foreignClientID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.appointmentService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAppointmentClientCrossTenant)
	assert.Nil(suite.T(), response)
}

// TestCreateAppointmentAssigneeNotMember tests that the assignee must hold
// a membership in the organization
func (suite *AppointmentServiceTestSuite) TestCreateAppointmentAssigneeNotMember() {
	ctx := testContext(models.MembershipRoleStaff)
	outsiderID := uuid.New()

	req := &service.CreateAppointmentRequest{
		AssignedUserID:  &outsiderID,
		Title:           "Filing deadline check-in",
		ScheduledAt:     time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 15,
	}

	suite.mockMembershipRepo.EXPECT().
		GetByOrgAndUser(ctx.OrganizationID, outsiderID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.appointmentService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAppointmentAssigneeCrossTenant)
	assert.True(suite.T(), apperrors.IsCrossTenantReference(err))
	assert.Nil(suite.T(), response)
}

// TestCreateAppointmentDurationTooShort tests duration validation
func (suite *AppointmentServiceTestSuite) TestCreateAppointmentDurationTooShort() {
	ctx := testContext(models.MembershipRoleStaff)

	req := &service.CreateAppointmentRequest{
		Title:           "Quick call",
		ScheduledAt:     time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 2,
	}

	response, err := suite.appointmentService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDeleteAppointmentNotFound tests deleting a missing appointment
func (suite *AppointmentServiceTestSuite) TestDeleteAppointmentNotFound() {
	ctx := testContext(models.MembershipRoleStaff)
	appointmentID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, appointmentID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.appointmentService.Delete(ctx, appointmentID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAppointmentNotFound)
}

// TestAppointmentServiceTestSuite runs the test suite
func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}
