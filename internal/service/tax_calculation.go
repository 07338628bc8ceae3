package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guyana tax parameters in GYD cents. The personal allowance is the annual
// threshold below which employment income is untaxed.
const (
	personalAllowanceCents = 130_000_000 // GYD 1,300,000 per year
	incomeLowerRateBps     = 2800        // 28% on the first band
	incomeUpperRateBps     = 4000        // 40% above the band ceiling
	incomeBandCeilingCents = 312_000_000 // GYD 3,120,000 taxable band ceiling
	vatRateBps             = 1400        // 14%
	propertyRateBps        = 75          // 0.75% on net property above threshold
	propertyThresholdCents = 4_000_000_000
)

// TaxCalculationService handles business logic for tax calculations
type TaxCalculationService struct {
	repo       repository.TaxCalculationRepositoryInterface
	clientRepo repository.ClientRepositoryInterface
	validator  *validator.Validate
}

// NewTaxCalculationService creates a new tax calculation service
func NewTaxCalculationService(repo repository.TaxCalculationRepositoryInterface, clientRepo repository.ClientRepositoryInterface, validator *validator.Validate) *TaxCalculationService {
	return &TaxCalculationService{
		repo:       repo,
		clientRepo: clientRepo,
		validator:  validator,
	}
}

// TaxCalculationInputs captures the figures the preparer entered. Amounts
// are GYD cents. Which fields matter depends on the calculation type.
type TaxCalculationInputs struct {
	GrossIncomeCents     int64 `json:"gross_income_cents,omitempty"`
	DeductionsCents      int64 `json:"deductions_cents,omitempty"`
	TaxableSuppliesCents int64 `json:"taxable_supplies_cents,omitempty"`
	InputTaxCents        int64 `json:"input_tax_cents,omitempty"`
	PropertyValueCents   int64 `json:"property_value_cents,omitempty"`
	LiabilitiesCents     int64 `json:"liabilities_cents,omitempty"`
	MonthsCovered        int   `json:"months_covered,omitempty"`
}

// CreateTaxCalculationRequest represents the request to create a tax calculation
type CreateTaxCalculationRequest struct {
	ClientID        uuid.UUID                 `json:"client_id" validate:"required"`
	TaxYear         int                       `json:"tax_year" validate:"required,min=2000,max=2100"`
	CalculationType models.TaxCalculationType `json:"calculation_type" validate:"required"`
	Inputs          TaxCalculationInputs      `json:"inputs"`
}

// UpdateTaxCalculationRequest represents the request to update a tax
// calculation. Finalized calculations can only change status back to draft.
type UpdateTaxCalculationRequest struct {
	TaxYear         int                         `json:"tax_year" validate:"required,min=2000,max=2100"`
	CalculationType models.TaxCalculationType   `json:"calculation_type" validate:"required"`
	Inputs          TaxCalculationInputs        `json:"inputs"`
	Status          models.TaxCalculationStatus `json:"status" validate:"required"`
}

// TaxCalculationResponse represents the response for tax calculation operations
type TaxCalculationResponse struct {
	ID               uuid.UUID                   `json:"id"`
	OrganizationID   uuid.UUID                   `json:"organization_id"`
	ClientID         uuid.UUID                   `json:"client_id"`
	TaxYear          int                         `json:"tax_year"`
	CalculationType  models.TaxCalculationType   `json:"calculation_type"`
	Inputs           TaxCalculationInputs        `json:"inputs"`
	GrossAmountCents int64                       `json:"gross_amount_cents"`
	TaxableCents     int64                       `json:"taxable_cents"`
	TaxDueCents      int64                       `json:"tax_due_cents"`
	Status           models.TaxCalculationStatus `json:"status"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// TaxCalculationListResponse represents a paginated list of tax calculations
type TaxCalculationListResponse struct {
	TaxCalculations []TaxCalculationResponse `json:"tax_calculations"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// computeTax derives gross, taxable and due amounts from the inputs for the
// given calculation type. Negative intermediates clamp to zero.
func computeTax(calcType models.TaxCalculationType, in TaxCalculationInputs) (gross, taxable, due int64) {
	clamp := func(v int64) int64 {
		if v < 0 {
			return 0
		}
		return v
	}

	switch calcType {
	case models.TaxCalculationTypeIncome:
		gross = clamp(in.GrossIncomeCents)
		taxable = clamp(gross - in.DeductionsCents - personalAllowanceCents)
		if taxable <= incomeBandCeilingCents {
			due = taxable * incomeLowerRateBps / 10000
		} else {
			due = incomeBandCeilingCents*incomeLowerRateBps/10000 +
				(taxable-incomeBandCeilingCents)*incomeUpperRateBps/10000
		}
	case models.TaxCalculationTypePAYE:
		// PAYE is the income computation prorated over the months covered.
		months := in.MonthsCovered
		if months < 1 || months > 12 {
			months = 12
		}
		annualGross := clamp(in.GrossIncomeCents) * 12 / int64(months)
		annualTaxable := clamp(annualGross - in.DeductionsCents*12/int64(months) - personalAllowanceCents)
		var annualDue int64
		if annualTaxable <= incomeBandCeilingCents {
			annualDue = annualTaxable * incomeLowerRateBps / 10000
		} else {
			annualDue = incomeBandCeilingCents*incomeLowerRateBps/10000 +
				(annualTaxable-incomeBandCeilingCents)*incomeUpperRateBps/10000
		}
		gross = clamp(in.GrossIncomeCents)
		taxable = annualTaxable * int64(months) / 12
		due = annualDue * int64(months) / 12
	case models.TaxCalculationTypeVAT:
		gross = clamp(in.TaxableSuppliesCents)
		taxable = gross
		due = clamp(gross*vatRateBps/10000 - in.InputTaxCents)
	case models.TaxCalculationTypeProperty:
		gross = clamp(in.PropertyValueCents)
		taxable = clamp(gross - in.LiabilitiesCents - propertyThresholdCents)
		due = taxable * propertyRateBps / 10000
	}
	return gross, taxable, due
}

// Create creates a new tax calculation for a client in the caller's
// organization. Derived amounts are computed on the server; client-supplied
// totals are ignored.
func (s *TaxCalculationService) Create(ctx *tenant.Context, req *CreateTaxCalculationRequest) (*TaxCalculationResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.CalculationType.IsValid() {
		return nil, apperrors.NewValidationError("calculation_type", "unknown calculation type")
	}

	if _, err := s.clientRepo.GetByID(ctx.OrganizationID, req.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaxCalculationClientCrossTenant
		}
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	inputsJSON, err := json.Marshal(req.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inputs: %w", err)
	}

	gross, taxable, due := computeTax(req.CalculationType, req.Inputs)

	calculation := &models.TaxCalculation{
		TenantModel: models.TenantModel{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: ctx.OrganizationID,
		},
		ClientID:         req.ClientID,
		TaxYear:          req.TaxYear,
		CalculationType:  req.CalculationType,
		Inputs:           inputsJSON,
		GrossAmountCents: gross,
		TaxableCents:     taxable,
		TaxDueCents:      due,
		Status:           models.TaxCalculationStatusDraft,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeTaxCalculation, VerbCreate, calculation.ID, nil, calculation)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(calculation, entry); err != nil {
		return nil, fmt.Errorf("failed to create tax calculation: %w", err)
	}

	return s.toResponse(calculation)
}

// GetByID retrieves a tax calculation by ID
func (s *TaxCalculationService) GetByID(ctx *tenant.Context, id uuid.UUID) (*TaxCalculationResponse, error) {
	calculation, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaxCalculationNotFound
		}
		return nil, fmt.Errorf("failed to get tax calculation: %w", err)
	}

	return s.toResponse(calculation)
}

// List retrieves the organization's tax calculations with pagination
func (s *TaxCalculationService) List(ctx *tenant.Context, filter repository.TaxCalculationFilter, page, pageSize int) (*TaxCalculationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	calculations, total, err := s.repo.List(ctx.OrganizationID, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax calculations: %w", err)
	}

	responses := make([]TaxCalculationResponse, len(calculations))
	for i, calculation := range calculations {
		resp, err := s.toResponse(&calculation)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &TaxCalculationListResponse{
		TaxCalculations: responses,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	}, nil
}

// Update updates a tax calculation and recomputes the derived amounts
func (s *TaxCalculationService) Update(ctx *tenant.Context, id uuid.UUID, req *UpdateTaxCalculationRequest) (*TaxCalculationResponse, error) {
	if !ctx.CanWrite() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.CalculationType.IsValid() {
		return nil, apperrors.NewValidationError("calculation_type", "unknown calculation type")
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaxCalculationNotFound
		}
		return nil, fmt.Errorf("failed to get tax calculation: %w", err)
	}

	inputsJSON, err := json.Marshal(req.Inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inputs: %w", err)
	}

	gross, taxable, due := computeTax(req.CalculationType, req.Inputs)

	after := *before
	after.TaxYear = req.TaxYear
	after.CalculationType = req.CalculationType
	after.Inputs = inputsJSON
	after.GrossAmountCents = gross
	after.TaxableCents = taxable
	after.TaxDueCents = due
	after.Status = req.Status

	entry, err := NewAuditEntry(ctx, EntityTypeTaxCalculation, VerbUpdate, id, before, &after)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"tax_year":           req.TaxYear,
		"calculation_type":   req.CalculationType,
		"inputs":             inputsJSON,
		"gross_amount_cents": gross,
		"taxable_cents":      taxable,
		"tax_due_cents":      due,
		"status":             req.Status,
	}

	if err := s.repo.Update(ctx.OrganizationID, id, updates, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaxCalculationNotFound
		}
		return nil, fmt.Errorf("failed to update tax calculation: %w", err)
	}

	updated, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tax calculation: %w", err)
	}

	return s.toResponse(updated)
}

// Delete removes a tax calculation
func (s *TaxCalculationService) Delete(ctx *tenant.Context, id uuid.UUID) error {
	if !ctx.CanWrite() {
		return apperrors.ErrInsufficientRole
	}

	before, err := s.repo.GetByID(ctx.OrganizationID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaxCalculationNotFound
		}
		return fmt.Errorf("failed to get tax calculation: %w", err)
	}

	entry, err := NewAuditEntry(ctx, EntityTypeTaxCalculation, VerbDelete, id, before, nil)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx.OrganizationID, id, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaxCalculationNotFound
		}
		return fmt.Errorf("failed to delete tax calculation: %w", err)
	}

	return nil
}

// toResponse converts a tax calculation model to response
func (s *TaxCalculationService) toResponse(calculation *models.TaxCalculation) (*TaxCalculationResponse, error) {
	var inputs TaxCalculationInputs
	if len(calculation.Inputs) > 0 {
		if err := json.Unmarshal(calculation.Inputs, &inputs); err != nil {
			return nil, fmt.Errorf("failed to decode inputs: %w", err)
		}
	}

	return &TaxCalculationResponse{
		ID:               calculation.ID,
		OrganizationID:   calculation.OrganizationID,
		ClientID:         calculation.ClientID,
		TaxYear:          calculation.TaxYear,
		CalculationType:  calculation.CalculationType,
		Inputs:           inputs,
		GrossAmountCents: calculation.GrossAmountCents,
		TaxableCents:     calculation.TaxableCents,
		TaxDueCents:      calculation.TaxDueCents,
		Status:           calculation.Status,
		CreatedAt:        calculation.CreatedAt,
		UpdatedAt:        calculation.UpdatedAt,
	}, nil
}
