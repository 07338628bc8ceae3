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

// DocumentServiceTestSuite defines the test suite for DocumentService
type DocumentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockDocumentRepositoryInterface
	mockClientRepo  *mocks.MockClientRepositoryInterface
	documentService *service.DocumentService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.documentService = service.NewDocumentService(suite.mockRepo, suite.mockClientRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *DocumentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDocument tests attaching a document to a client
func (suite *DocumentServiceTestSuite) TestCreateDocument() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()

	client := &models.Client{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: clientID},
			OrganizationID: ctx.OrganizationID,
		},
		Name: "Kaieteur Hardware Ltd",
	}
	req := &service.CreateDocumentRequest{
		ClientID:    clientID,
		Title:       "2025 Income Tax Return",
		Category:    models.DocumentCategoryTaxReturn,
		FileName:    "kaieteur-2025-return.pdf",
		ContentType: "application/pdf",
		SizeBytes:   482133,
		StorageKey:  "docs/2025/kaieteur-2025-return.pdf",
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, clientID).
		Return(client, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(document *models.Document, entry *models.AuditLog) error {
			assert.Equal(suite.T(), ctx.OrganizationID, document.OrganizationID)
			assert.Equal(suite.T(), ctx.UserID, document.UploadedBy)
			assert.Equal(suite.T(), "document:create", entry.Action)
			assert.Equal(suite.T(), ctx.OrganizationID, entry.OrganizationID)
			assert.Equal(suite.T(), ctx.UserID, entry.UserID)
			return nil
		}).
		Times(1)

	response, err := suite.documentService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Title, response.Title)
}

// TestCreateDocumentClientCrossTenant tests that a client in another
// organization cannot be referenced
func (suite *DocumentServiceTestSuite) TestCreateDocumentClientCrossTenant() {
	ctx := testContext(models.MembershipRoleStaff)
	foreignClientID := uuid.New()

	req := &service.CreateDocumentRequest{
		ClientID:   foreignClientID,
		Title:      "Engagement Letter",
		Category:   models.DocumentCategoryContract,
		FileName:   "engagement.pdf",
		StorageKey: "docs/engagement.pdf",
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, foreignClientID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.documentService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentClientCrossTenant)
	assert.True(suite.T(), apperrors.IsCrossTenantReference(err))
	assert.Nil(suite.T(), response)
}

// TestCreateDocumentUnknownCategory tests category validation
func (suite *DocumentServiceTestSuite) TestCreateDocumentUnknownCategory() {
	ctx := testContext(models.MembershipRoleStaff)

	req := &service.CreateDocumentRequest{
		ClientID:   uuid.New(),
		Title:      "Engagement Letter",
		Category:   models.DocumentCategory("spreadsheet"),
		FileName:   "engagement.pdf",
		StorageKey: "docs/engagement.pdf",
	}

	response, err := suite.documentService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "category")
}

// TestCreateDocumentReadOnlyRole tests that readonly members cannot upload
func (suite *DocumentServiceTestSuite) TestCreateDocumentReadOnlyRole() {
	ctx := testContext(models.MembershipRoleReadOnly)

	req := &service.CreateDocumentRequest{
		ClientID:   uuid.New(),
		Title:      "Engagement Letter",
		Category:   models.DocumentCategoryContract,
		FileName:   "engagement.pdf",
		StorageKey: "docs/engagement.pdf",
	}

	response, err := suite.documentService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
	assert.Nil(suite.T(), response)
}

// TestGetDocumentNotFound tests that a missing document maps to not found
func (suite *DocumentServiceTestSuite) TestGetDocumentNotFound() {
	ctx := testContext(models.MembershipRoleStaff)
	documentID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, documentID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.documentService.GetByID(ctx, documentID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentNotFound)
	assert.Nil(suite.T(), response)
}

// TestDeleteDocument tests deleting a document
func (suite *DocumentServiceTestSuite) TestDeleteDocument() {
	ctx := testContext(models.MembershipRoleManager)
	documentID := uuid.New()

	document := &models.Document{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: documentID},
			OrganizationID: ctx.OrganizationID,
		},
		Title:    "2025 Income Tax Return",
		Category: models.DocumentCategoryTaxReturn,
	}

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, documentID).
		Return(document, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Delete(ctx.OrganizationID, documentID, gomock.Any()).
		DoAndReturn(func(orgID, id uuid.UUID, entry *models.AuditLog) error {
			assert.Equal(suite.T(), "document:delete", entry.Action)
			return nil
		}).
		Times(1)

	err := suite.documentService.Delete(ctx, documentID)

	assert.NoError(suite.T(), err)
}

// TestDocumentServiceTestSuite runs the test suite
func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
