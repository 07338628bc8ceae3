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

// InvoiceServiceTestSuite defines the test suite for InvoiceService
type InvoiceServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockInvoiceRepositoryInterface
	mockClientRepo *mocks.MockClientRepositoryInterface
	invoiceService *service.InvoiceService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockInvoiceRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.invoiceService = service.NewInvoiceService(suite.mockRepo, suite.mockClientRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *InvoiceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvoiceServiceTestSuite) clientInOrg(orgID uuid.UUID) *models.Client {
	return &models.Client{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
		},
		Name:       "Kaieteur Hardware Ltd",
		ClientType: models.ClientTypeBusiness,
		Status:     models.ClientStatusActive,
	}
}

// TestCreateInvoice tests creating an invoice and computing its totals
func (suite *InvoiceServiceTestSuite) TestCreateInvoice() {
	ctx := testContext(models.MembershipRoleStaff)
	client := suite.clientInOrg(ctx.OrganizationID)

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      client.ID,
		InvoiceNumber: "INV-2026-014",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		LineItems: []service.InvoiceLineItemRequest{
			{Description: "Annual tax return preparation", Quantity: 1, UnitPriceCents: 5_000_000, TaxRateBps: 1400},
			{Description: "Payroll filings", Quantity: 4, UnitPriceCents: 750_000, TaxRateBps: 1400},
		},
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, client.ID).
		Return(client, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByNumber(ctx.OrganizationID, req.InvoiceNumber).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(invoice *models.Invoice, entry *models.AuditLog) error {
			assert.Equal(suite.T(), ctx.OrganizationID, invoice.OrganizationID)
			assert.Equal(suite.T(), models.InvoiceStatusDraft, invoice.Status)
			assert.Equal(suite.T(), "GYD", invoice.Currency)
			assert.Equal(suite.T(), "invoice:create", entry.Action)
			return nil
		}).
		Times(1)

	response, err := suite.invoiceService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	// 5,000,000 + 4*750,000 = 8,000,000 subtotal; 14% VAT = 1,120,000
	assert.Equal(suite.T(), int64(8_000_000), response.SubtotalCents)
	assert.Equal(suite.T(), int64(1_120_000), response.TaxCents)
	assert.Equal(suite.T(), int64(9_120_000), response.TotalCents)
	assert.Len(suite.T(), response.LineItems, 2)
}

// TestCreateInvoiceDuplicateNumber tests that a number already used in the
// organization is rejected
func (suite *InvoiceServiceTestSuite) TestCreateInvoiceDuplicateNumber() {
	ctx := testContext(models.MembershipRoleStaff)
	client := suite.clientInOrg(ctx.OrganizationID)

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      client.ID,
		InvoiceNumber: "INV-2026-001",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		LineItems: []service.InvoiceLineItemRequest{
			{Description: "Consultation", Quantity: 1, UnitPriceCents: 1_500_000},
		},
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, client.ID).
		Return(client, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		GetByNumber(ctx.OrganizationID, req.InvoiceNumber).
		Return(&models.Invoice{InvoiceNumber: req.InvoiceNumber}, nil).
		Times(1)

	response, err := suite.invoiceService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvoiceNumberExists)
	assert.Nil(suite.T(), response)
}

// TestCreateInvoiceClientCrossTenant tests that a client id from another
// organization is rejected as a cross-tenant reference
func (suite *InvoiceServiceTestSuite) TestCreateInvoiceClientCrossTenant() {
	ctx := testContext(models.MembershipRoleStaff)
	foreignClientID := uuid.New()

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      foreignClientID,
		InvoiceNumber: "INV-2026-002",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		LineItems: []service.InvoiceLineItemRequest{
			{Description: "Consultation", Quantity: 1, UnitPriceCents: 1_500_000},
		},
	}

	// The scoped lookup cannot see the other tenant's client
	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, foreignClientID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.invoiceService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvoiceClientCrossTenant)
	assert.True(suite.T(), apperrors.IsCrossTenantReference(err))
	assert.Nil(suite.T(), response)
}

// TestCreateInvoiceDueBeforeIssue tests date ordering validation
func (suite *InvoiceServiceTestSuite) TestCreateInvoiceDueBeforeIssue() {
	ctx := testContext(models.MembershipRoleStaff)

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      uuid.New(),
		InvoiceNumber: "INV-2026-003",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 0, -7),
		LineItems: []service.InvoiceLineItemRequest{
			{Description: "Consultation", Quantity: 1, UnitPriceCents: 1_500_000},
		},
	}

	response, err := suite.invoiceService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "due_date")
}

// TestCreateInvoiceNoLineItems tests that at least one line is required
func (suite *InvoiceServiceTestSuite) TestCreateInvoiceNoLineItems() {
	ctx := testContext(models.MembershipRoleStaff)

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      uuid.New(),
		InvoiceNumber: "INV-2026-004",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
	}

	response, err := suite.invoiceService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateInvoiceUnitPriceTooLarge tests that a unit price past the
// upper bound is rejected before any arithmetic happens
func (suite *InvoiceServiceTestSuite) TestCreateInvoiceUnitPriceTooLarge() {
	ctx := testContext(models.MembershipRoleStaff)

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateInvoiceRequest{
		ClientID:      uuid.New(),
		InvoiceNumber: "INV-2026-005",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		LineItems: []service.InvoiceLineItemRequest{
			{
				Description:    "Engagement retainer",
				Quantity:       10000,
				UnitPriceCents: 1 << 60,
				TaxRateBps:     1400,
			},
		},
	}

	response, err := suite.invoiceService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
	assert.Contains(suite.T(), err.Error(), "UnitPriceCents")
}

// TestDeleteDraftInvoice tests that draft invoices can be deleted
func (suite *InvoiceServiceTestSuite) TestDeleteDraftInvoice() {
	ctx := testContext(models.MembershipRoleStaff)
	invoiceID := uuid.New()

	invoice := &models.Invoice{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: invoiceID},
			OrganizationID: ctx.OrganizationID,
		},
		InvoiceNumber: "INV-2026-005",
		Status:        models.InvoiceStatusDraft,
	}

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, invoiceID).
		Return(invoice, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Delete(ctx.OrganizationID, invoiceID, gomock.Any()).
		Return(nil).
		Times(1)

	err := suite.invoiceService.Delete(ctx, invoiceID)

	assert.NoError(suite.T(), err)
}

// TestDeleteSentInvoice tests that issued invoices stay on the books
func (suite *InvoiceServiceTestSuite) TestDeleteSentInvoice() {
	ctx := testContext(models.MembershipRoleStaff)
	invoiceID := uuid.New()

	invoice := &models.Invoice{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: invoiceID},
			OrganizationID: ctx.OrganizationID,
		},
		InvoiceNumber: "INV-2026-006",
		Status:        models.InvoiceStatusSent,
	}

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, invoiceID).
		Return(invoice, nil).
		Times(1)

	err := suite.invoiceService.Delete(ctx, invoiceID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvoiceNotDeletable)
}

// TestUpdateInvoiceKeepsNumberWithoutPreflight tests that an unchanged
// number skips the uniqueness check
func (suite *InvoiceServiceTestSuite) TestUpdateInvoiceKeepsNumberWithoutPreflight() {
	ctx := testContext(models.MembershipRoleStaff)
	invoiceID := uuid.New()

	issue := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Invoice{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: invoiceID},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:      uuid.New(),
		InvoiceNumber: "INV-2026-007",
		Status:        models.InvoiceStatusDraft,
		Currency:      "GYD",
		IssueDate:     issue,
		DueDate:       issue.AddDate(0, 1, 0),
		LineItems:     []byte(`[]`),
	}

	req := &service.UpdateInvoiceRequest{
		InvoiceNumber: existing.InvoiceNumber,
		Status:        models.InvoiceStatusSent,
		IssueDate:     existing.IssueDate,
		DueDate:       existing.DueDate,
		LineItems: []service.InvoiceLineItemRequest{
			{Description: "Consultation", Quantity: 2, UnitPriceCents: 1_000_000, TaxRateBps: 1400},
		},
	}

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, invoiceID).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(ctx.OrganizationID, invoiceID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
			assert.Equal(suite.T(), int64(2_000_000), updates["subtotal_cents"])
			assert.Equal(suite.T(), int64(280_000), updates["tax_cents"])
			assert.Equal(suite.T(), int64(2_280_000), updates["total_cents"])
			return nil
		}).
		Times(1)

	updated := *existing
	updated.Status = models.InvoiceStatusSent
	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, invoiceID).
		Return(&updated, nil).
		Times(1)

	response, err := suite.invoiceService.Update(ctx, invoiceID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.InvoiceStatusSent, response.Status)
}

// TestInvoiceServiceTestSuite runs the test suite
func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
