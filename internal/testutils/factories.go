package testutils

import (
	"encoding/json"
	"time"

	"firmdesk-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	settings, _ := json.Marshal(models.DefaultOrganizationSettings())
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-firm-" + id.String()[:8],
		DisplayName: "Test Firm",
		Description: "A test firm",
		IsActive:    true,
		Settings:    settings,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name
	return org
}

// Inactive creates a deactivated organization
func (f *OrganizationFactory) Inactive() *models.Organization {
	org := f.Create()
	org.IsActive = false
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    "user-" + id.String()[:8] + "@test.gy",
		FullName: "Test User",
		IsActive: true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// MembershipFactory provides methods to create test OrganizationMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test membership linking the given user to the given organization
func (f *MembershipFactory) Create(orgID, userID uuid.UUID, role models.MembershipRole) *models.OrganizationMembership {
	return &models.OrganizationMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with default values
func (f *ClientFactory) Create() *models.Client {
	id := uuid.New()
	return &models.Client{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: uuid.New(),
		},
		Name:       "Test Client " + id.String()[:8],
		Email:      "client-" + id.String()[:8] + "@test.gy",
		Phone:      "+592-600-0000",
		Address:    "123 Main Street, Georgetown",
		TIN:        "100" + id.String()[:6],
		ClientType: models.ClientTypeIndividual,
		Status:     models.ClientStatusActive,
	}
}

// WithOrganization sets the organization ID for the client
func (f *ClientFactory) WithOrganization(orgID uuid.UUID) *models.Client {
	client := f.Create()
	client.OrganizationID = orgID
	return client
}

// WithType sets a custom client type
func (f *ClientFactory) WithType(clientType models.ClientType) *models.Client {
	client := f.Create()
	client.ClientType = clientType
	return client
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document belonging to the given org and client
func (f *DocumentFactory) Create(orgID, clientID, uploadedBy uuid.UUID) *models.Document {
	id := uuid.New()
	return &models.Document{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: orgID,
		},
		ClientID:    clientID,
		Title:       "Test Document " + id.String()[:8],
		Category:    models.DocumentCategoryTaxReturn,
		FileName:    "return-2025.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		StorageKey:  "documents/" + id.String(),
		UploadedBy:  uploadedBy,
	}
}

// AppointmentFactory provides methods to create test Appointment data
type AppointmentFactory struct{}

// NewAppointmentFactory creates a new AppointmentFactory
func NewAppointmentFactory() *AppointmentFactory {
	return &AppointmentFactory{}
}

// Create creates a test Appointment in the given org
func (f *AppointmentFactory) Create(orgID uuid.UUID) *models.Appointment {
	id := uuid.New()
	return &models.Appointment{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: orgID,
		},
		Title:           "Consultation " + id.String()[:8],
		ScheduledAt:     time.Now().Add(24 * time.Hour).Truncate(time.Second),
		DurationMinutes: 30,
		Location:        "Main office",
		Status:          models.AppointmentStatusScheduled,
	}
}

// WithClient attaches the appointment to a client
func (f *AppointmentFactory) WithClient(orgID, clientID uuid.UUID) *models.Appointment {
	appt := f.Create(orgID)
	appt.ClientID = &clientID
	return appt
}

// TaxCalculationFactory provides methods to create test TaxCalculation data
type TaxCalculationFactory struct{}

// NewTaxCalculationFactory creates a new TaxCalculationFactory
func NewTaxCalculationFactory() *TaxCalculationFactory {
	return &TaxCalculationFactory{}
}

// Create creates a test income tax calculation for the given org and client
func (f *TaxCalculationFactory) Create(orgID, clientID uuid.UUID) *models.TaxCalculation {
	inputs, _ := json.Marshal(map[string]interface{}{
		"gross_income_cents": 240_000_000,
		"deductions_cents":   0,
	})
	return &models.TaxCalculation{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: orgID,
		},
		ClientID:         clientID,
		TaxYear:          2025,
		CalculationType:  models.TaxCalculationTypeIncome,
		Inputs:           inputs,
		GrossAmountCents: 240_000_000,
		TaxableCents:     110_000_000,
		TaxDueCents:      30_800_000,
		Status:           models.TaxCalculationStatusDraft,
	}
}

// InvoiceFactory provides methods to create test Invoice data
type InvoiceFactory struct{}

// NewInvoiceFactory creates a new InvoiceFactory
func NewInvoiceFactory() *InvoiceFactory {
	return &InvoiceFactory{}
}

// Create creates a test draft Invoice for the given org and client
func (f *InvoiceFactory) Create(orgID, clientID uuid.UUID) *models.Invoice {
	id := uuid.New()
	lineItems, _ := json.Marshal([]models.InvoiceLineItem{
		{
			Description:    "Tax return preparation",
			Quantity:       1,
			UnitPriceCents: 2_500_000,
			TaxRateBps:     1400,
			AmountCents:    2_500_000,
		},
	})
	return &models.Invoice{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			OrganizationID: orgID,
		},
		ClientID:      clientID,
		InvoiceNumber: "INV-" + id.String()[:8],
		Status:        models.InvoiceStatusDraft,
		Currency:      "GYD",
		IssueDate:     time.Now().Truncate(24 * time.Hour),
		DueDate:       time.Now().Add(14 * 24 * time.Hour).Truncate(24 * time.Hour),
		LineItems:     lineItems,
		SubtotalCents: 2_500_000,
		TaxCents:      350_000,
		TotalCents:    2_850_000,
	}
}

// WithNumber sets a custom invoice number
func (f *InvoiceFactory) WithNumber(orgID, clientID uuid.UUID, number string) *models.Invoice {
	invoice := f.Create(orgID, clientID)
	invoice.InvoiceNumber = number
	return invoice
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	User           *UserFactory
	Membership     *MembershipFactory
	Client         *ClientFactory
	Document       *DocumentFactory
	Appointment    *AppointmentFactory
	TaxCalculation *TaxCalculationFactory
	Invoice        *InvoiceFactory
	AuditEntry     *AuditEntryFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		User:           NewUserFactory(),
		Membership:     NewMembershipFactory(),
		Client:         NewClientFactory(),
		Document:       NewDocumentFactory(),
		Appointment:    NewAppointmentFactory(),
		TaxCalculation: NewTaxCalculationFactory(),
		Invoice:        NewInvoiceFactory(),
		AuditEntry:     NewAuditEntryFactory(),
	}
}

// AuditEntryFactory provides methods to create test AuditLog data
type AuditEntryFactory struct{}

// NewAuditEntryFactory creates a new AuditEntryFactory
func NewAuditEntryFactory() *AuditEntryFactory {
	return &AuditEntryFactory{}
}

// Create creates a test audit entry for the given org, actor and entity
func (f *AuditEntryFactory) Create(orgID, userID uuid.UUID, action, entityType string, entityID uuid.UUID) *models.AuditLog {
	changes, _ := json.Marshal(map[string]interface{}{"after": map[string]string{"name": "value"}})
	return &models.AuditLog{
		ID:             uuid.New(),
		OrganizationID: orgID,
		UserID:         userID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		Changes:        changes,
		IPAddress:      "127.0.0.1",
		UserAgent:      "test-agent",
	}
}
