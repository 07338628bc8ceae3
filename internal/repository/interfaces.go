package repository

import (
	"firmdesk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(org *models.Organization, membership *models.OrganizationMembership, entry *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	Update(id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithMemberships(id uuid.UUID) (*models.User, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.OrganizationMembership, entry *models.AuditLog) error
	GetByUserID(userID uuid.UUID) ([]models.OrganizationMembership, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.OrganizationMembership, int64, error)
	GetByOrgAndUser(orgID, userID uuid.UUID) (*models.OrganizationMembership, error)
	UpdateRole(orgID, userID uuid.UUID, role models.MembershipRole, entry *models.AuditLog) error
	Delete(orgID, userID uuid.UUID, entry *models.AuditLog) error
}

// ClientRepositoryInterface defines the interface for client repository operations
type ClientRepositoryInterface interface {
	Create(client *models.Client, entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.Client, error)
	List(orgID uuid.UUID, filter ClientFilter, limit, offset int) ([]models.Client, int64, error)
	Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
	Delete(orgID, id uuid.UUID, entry *models.AuditLog) error
	CountDependents(orgID, clientID uuid.UUID) (map[string]int64, error)
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(doc *models.Document, entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.Document, error)
	List(orgID uuid.UUID, filter DocumentFilter, limit, offset int) ([]models.Document, int64, error)
	Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
	Delete(orgID, id uuid.UUID, entry *models.AuditLog) error
	CountByClientID(orgID, clientID uuid.UUID) (int64, error)
}

// AppointmentRepositoryInterface defines the interface for appointment repository operations
type AppointmentRepositoryInterface interface {
	Create(appt *models.Appointment, entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.Appointment, error)
	List(orgID uuid.UUID, filter AppointmentFilter, limit, offset int) ([]models.Appointment, int64, error)
	Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
	Delete(orgID, id uuid.UUID, entry *models.AuditLog) error
	CountByClientID(orgID, clientID uuid.UUID) (int64, error)
}

// TaxCalculationRepositoryInterface defines the interface for tax calculation repository operations
type TaxCalculationRepositoryInterface interface {
	Create(calc *models.TaxCalculation, entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.TaxCalculation, error)
	List(orgID uuid.UUID, filter TaxCalculationFilter, limit, offset int) ([]models.TaxCalculation, int64, error)
	Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
	Delete(orgID, id uuid.UUID, entry *models.AuditLog) error
	CountByClientID(orgID, clientID uuid.UUID) (int64, error)
}

// InvoiceRepositoryInterface defines the interface for invoice repository operations
type InvoiceRepositoryInterface interface {
	Create(invoice *models.Invoice, entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.Invoice, error)
	GetByNumber(orgID uuid.UUID, number string) (*models.Invoice, error)
	List(orgID uuid.UUID, filter InvoiceFilter, limit, offset int) ([]models.Invoice, int64, error)
	Update(orgID, id uuid.UUID, updates map[string]interface{}, entry *models.AuditLog) error
	Delete(orgID, id uuid.UUID, entry *models.AuditLog) error
	CountByClientID(orgID, clientID uuid.UUID) (int64, error)
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	GetByID(orgID, id uuid.UUID) (*models.AuditLog, error)
	Query(orgID uuid.UUID, filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}
