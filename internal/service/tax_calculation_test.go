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

// TaxCalculationServiceTestSuite defines the test suite for TaxCalculationService
type TaxCalculationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockTaxCalculationRepositoryInterface
	mockClientRepo *mocks.MockClientRepositoryInterface
	taxService     *service.TaxCalculationService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TaxCalculationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTaxCalculationRepositoryInterface(suite.ctrl)
	suite.mockClientRepo = mocks.NewMockClientRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.taxService = service.NewTaxCalculationService(suite.mockRepo, suite.mockClientRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *TaxCalculationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaxCalculationServiceTestSuite) expectClient(orgID uuid.UUID, clientID uuid.UUID) {
	client := &models.Client{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: clientID},
			OrganizationID: orgID,
		},
		Name: "Savitri Ramnarine",
	}
	suite.mockClientRepo.EXPECT().
		GetByID(orgID, clientID).
		Return(client, nil).
		Times(1)
}

// TestCreateIncomeCalculation tests income tax within the lower band
func (suite *TaxCalculationServiceTestSuite) TestCreateIncomeCalculation() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	// GYD 3,600,000 gross, no deductions: taxable 2,300,000 after the
	// personal allowance, all inside the 28% band.
	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeIncome,
		Inputs: service.TaxCalculationInputs{
			GrossIncomeCents: 360_000_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(calc *models.TaxCalculation, entry *models.AuditLog) error {
			assert.Equal(suite.T(), ctx.OrganizationID, calc.OrganizationID)
			assert.Equal(suite.T(), models.TaxCalculationStatusDraft, calc.Status)
			assert.Equal(suite.T(), "tax_calculation:create", entry.Action)
			return nil
		}).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(360_000_000), response.GrossAmountCents)
	assert.Equal(suite.T(), int64(230_000_000), response.TaxableCents)
	assert.Equal(suite.T(), int64(64_400_000), response.TaxDueCents)
}

// TestCreateIncomeCalculationUpperBand tests income tax crossing into the 40% band
func (suite *TaxCalculationServiceTestSuite) TestCreateIncomeCalculationUpperBand() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	// GYD 60,000,000 gross: taxable 58,700,000; the first 3,120,000 at 28%
	// and the rest at 40%.
	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeIncome,
		Inputs: service.TaxCalculationInputs{
			GrossIncomeCents: 6_000_000_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(5_870_000_000), response.TaxableCents)
	assert.Equal(suite.T(), int64(2_310_560_000), response.TaxDueCents)
}

// TestCreateIncomeCalculationBelowAllowance tests that income under the
// personal allowance owes nothing
func (suite *TaxCalculationServiceTestSuite) TestCreateIncomeCalculationBelowAllowance() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeIncome,
		Inputs: service.TaxCalculationInputs{
			GrossIncomeCents: 100_000_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(0), response.TaxableCents)
	assert.Equal(suite.T(), int64(0), response.TaxDueCents)
}

// TestCreateVATCalculation tests output VAT net of input tax
func (suite *TaxCalculationServiceTestSuite) TestCreateVATCalculation() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	// 14% of 10,000,000 is 1,400,000; minus 400,000 input tax.
	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeVAT,
		Inputs: service.TaxCalculationInputs{
			TaxableSuppliesCents: 10_000_000,
			InputTaxCents:        400_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(1_000_000), response.TaxDueCents)
}

// TestCreateVATCalculationInputTaxExceedsOutput tests that a refund
// position clamps to zero rather than going negative
func (suite *TaxCalculationServiceTestSuite) TestCreateVATCalculationInputTaxExceedsOutput() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeVAT,
		Inputs: service.TaxCalculationInputs{
			TaxableSuppliesCents: 1_000_000,
			InputTaxCents:        500_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(0), response.TaxDueCents)
}

// TestCreatePropertyCalculation tests net property tax above the threshold
func (suite *TaxCalculationServiceTestSuite) TestCreatePropertyCalculation() {
	ctx := testContext(models.MembershipRoleStaff)
	clientID := uuid.New()
	suite.expectClient(ctx.OrganizationID, clientID)

	// Net property 5,000,000,000 minus the 4,000,000,000 threshold leaves
	// 1,000,000,000 taxed at 0.75%.
	req := &service.CreateTaxCalculationRequest{
		ClientID:        clientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeProperty,
		Inputs: service.TaxCalculationInputs{
			PropertyValueCents: 5_200_000_000,
			LiabilitiesCents:   200_000_000,
		},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), int64(1_000_000_000), response.TaxableCents)
	assert.Equal(suite.T(), int64(7_500_000), response.TaxDueCents)
}

// TestCreateCalculationClientCrossTenant tests the scoped client lookup
func (suite *TaxCalculationServiceTestSuite) TestCreateCalculationClientCrossTenant() {
	ctx := testContext(models.MembershipRoleStaff)
	foreignClientID := uuid.New()

	req := &service.CreateTaxCalculationRequest{
		ClientID:        foreignClientID,
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeIncome,
	}

	suite.mockClientRepo.EXPECT().
		GetByID(ctx.OrganizationID, foreignClientID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.taxService.Create(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTaxCalculationClientCrossTenant)
	assert.Nil(suite.T(), response)
}

// TestCreateCalculationUnknownType tests type validation
func (suite *TaxCalculationServiceTestSuite) TestCreateCalculationUnknownType() {
	ctx := testContext(models.MembershipRoleStaff)

	req := &service.CreateTaxCalculationRequest{
		ClientID:        uuid.New(),
		TaxYear:         2025,
		CalculationType: models.TaxCalculationType("capital_gains"),
	}

	response, err := suite.taxService.Create(ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "calculation_type")
}

// TestUpdateCalculationRecomputes tests that derived amounts follow the
// updated inputs
func (suite *TaxCalculationServiceTestSuite) TestUpdateCalculationRecomputes() {
	ctx := testContext(models.MembershipRoleStaff)
	calcID := uuid.New()

	existing := &models.TaxCalculation{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: calcID},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:        uuid.New(),
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeVAT,
		Inputs:          []byte(`{}`),
		Status:          models.TaxCalculationStatusDraft,
	}

	req := &service.UpdateTaxCalculationRequest{
		TaxYear:         2025,
		CalculationType: models.TaxCalculationTypeVAT,
		Inputs: service.TaxCalculationInputs{
			TaxableSuppliesCents: 20_000_000,
		},
		Status: models.TaxCalculationStatusFinal,
	}

	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, calcID).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(ctx.OrganizationID, calcID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error {
			assert.Equal(suite.T(), int64(2_800_000), updates["tax_due_cents"])
			assert.Equal(suite.T(), models.TaxCalculationStatusFinal, updates["status"])
			return nil
		}).
		Times(1)

	updated := *existing
	updated.TaxDueCents = 2_800_000
	updated.Status = models.TaxCalculationStatusFinal
	suite.mockRepo.EXPECT().
		GetByID(ctx.OrganizationID, calcID).
		Return(&updated, nil).
		Times(1)

	response, err := suite.taxService.Update(ctx, calcID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.TaxCalculationStatusFinal, response.Status)
}

// TestTaxCalculationServiceTestSuite runs the test suite
func TestTaxCalculationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxCalculationServiceTestSuite))
}
