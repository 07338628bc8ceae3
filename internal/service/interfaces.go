package service

import (
	"firmdesk-backend/internal/database/models"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ClientServiceInterface defines the interface for client service
type ClientServiceInterface interface {
	Create(ctx *tenant.Context, req *CreateClientRequest) (*ClientResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*ClientResponse, error)
	List(ctx *tenant.Context, filter repository.ClientFilter, page, pageSize int) (*ClientListResponse, error)
	Update(ctx *tenant.Context, id uuid.UUID, req *UpdateClientRequest) (*ClientResponse, error)
	Delete(ctx *tenant.Context, id uuid.UUID) error
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	Create(ctx *tenant.Context, req *CreateDocumentRequest) (*DocumentResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*DocumentResponse, error)
	List(ctx *tenant.Context, filter repository.DocumentFilter, page, pageSize int) (*DocumentListResponse, error)
	Update(ctx *tenant.Context, id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error)
	Delete(ctx *tenant.Context, id uuid.UUID) error
}

// AppointmentServiceInterface defines the interface for appointment service
type AppointmentServiceInterface interface {
	Create(ctx *tenant.Context, req *CreateAppointmentRequest) (*AppointmentResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*AppointmentResponse, error)
	List(ctx *tenant.Context, filter repository.AppointmentFilter, page, pageSize int) (*AppointmentListResponse, error)
	Update(ctx *tenant.Context, id uuid.UUID, req *UpdateAppointmentRequest) (*AppointmentResponse, error)
	Delete(ctx *tenant.Context, id uuid.UUID) error
}

// TaxCalculationServiceInterface defines the interface for tax calculation service
type TaxCalculationServiceInterface interface {
	Create(ctx *tenant.Context, req *CreateTaxCalculationRequest) (*TaxCalculationResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*TaxCalculationResponse, error)
	List(ctx *tenant.Context, filter repository.TaxCalculationFilter, page, pageSize int) (*TaxCalculationListResponse, error)
	Update(ctx *tenant.Context, id uuid.UUID, req *UpdateTaxCalculationRequest) (*TaxCalculationResponse, error)
	Delete(ctx *tenant.Context, id uuid.UUID) error
}

// InvoiceServiceInterface defines the interface for invoice service
type InvoiceServiceInterface interface {
	Create(ctx *tenant.Context, req *CreateInvoiceRequest) (*InvoiceResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*InvoiceResponse, error)
	List(ctx *tenant.Context, filter repository.InvoiceFilter, page, pageSize int) (*InvoiceListResponse, error)
	Update(ctx *tenant.Context, id uuid.UUID, req *UpdateInvoiceRequest) (*InvoiceResponse, error)
	Delete(ctx *tenant.Context, id uuid.UUID) error
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest, ipAddress, userAgent string) (*OrganizationResponse, error)
	Get(ctx *tenant.Context) (*OrganizationResponse, error)
	Update(ctx *tenant.Context, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Deactivate(ctx *tenant.Context) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	Register(req *RegisterUserRequest) (*UserResponse, error)
	ListMyMemberships(userID uuid.UUID) ([]MembershipResponse, error)
	ListMembers(ctx *tenant.Context, page, pageSize int) (*MemberListResponse, error)
	AddMember(ctx *tenant.Context, req *AddMemberRequest) (*MemberResponse, error)
	UpdateMemberRole(ctx *tenant.Context, userID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error)
	RemoveMember(ctx *tenant.Context, userID uuid.UUID) error
}

// AuditServiceInterface defines the interface for the audit query service
type AuditServiceInterface interface {
	Query(ctx *tenant.Context, query AuditLogQuery, page, pageSize int) (*AuditLogListResponse, error)
	GetByID(ctx *tenant.Context, id uuid.UUID) (*models.AuditLog, error)
}

// DirectoryServiceInterface defines the interface for the staff directory
type DirectoryServiceInterface interface {
	SearchByName(name string) ([]DirectoryUser, error)
}
