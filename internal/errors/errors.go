package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// It is deliberately returned both when an id does not exist and when it
// belongs to another organization, so a caller cannot probe other tenants.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// CrossTenantReferenceError represents a write that tried to link an entity
// to a foreign key owned by another organization. A nonexistent referenced id
// produces the same error, so the two cases cannot be told apart.
type CrossTenantReferenceError struct {
	Entity string // the entity being written, e.g. "document"
	Field  string // the offending foreign key, e.g. "client_id"
}

func (e *CrossTenantReferenceError) Error() string {
	return fmt.Sprintf("%s references a %s outside the organization", e.Entity, e.Field)
}

// Is enables errors.Is() comparison for CrossTenantReferenceError
func (e *CrossTenantReferenceError) Is(target error) bool {
	t, ok := target.(*CrossTenantReferenceError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Field == t.Field
}

// ReferentialIntegrityError represents a delete blocked because dependent
// rows still reference the entity and the deletion policy forbids cascading.
type ReferentialIntegrityError struct {
	Entity    string
	Dependent string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s cannot be deleted while %s records reference it", e.Entity, e.Dependent)
}

// Is enables errors.Is() comparison for ReferentialIntegrityError
func (e *ReferentialIntegrityError) Is(target error) bool {
	t, ok := target.(*ReferentialIntegrityError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AuditWriteError represents a failed audit-log append. The business mutation
// that triggered it is rolled back; the system never commits an unaudited write.
type AuditWriteError struct {
	Cause error
}

func (e *AuditWriteError) Error() string {
	return fmt.Sprintf("audit write failed: %v", e.Cause)
}

func (e *AuditWriteError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound   = &NotFoundError{Entity: "organization"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound     = &NotFoundError{Entity: "membership"}
	ErrClientNotFound         = &NotFoundError{Entity: "client"}
	ErrDocumentNotFound       = &NotFoundError{Entity: "document"}
	ErrAppointmentNotFound    = &NotFoundError{Entity: "appointment"}
	ErrTaxCalculationNotFound = &NotFoundError{Entity: "tax calculation"}
	ErrInvoiceNotFound        = &NotFoundError{Entity: "invoice"}
	ErrAuditLogNotFound       = &NotFoundError{Entity: "audit log entry"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists    = &AlreadyExistsError{Entity: "membership", Context: "for this user in the organization"}
	ErrInvoiceNumberExists = &AlreadyExistsError{Entity: "invoice", Context: "with this number in the organization"}
)

// Cross-Tenant Reference Errors
var (
	ErrDocumentClientCrossTenant       = &CrossTenantReferenceError{Entity: "document", Field: "client_id"}
	ErrAppointmentClientCrossTenant    = &CrossTenantReferenceError{Entity: "appointment", Field: "client_id"}
	ErrAppointmentAssigneeCrossTenant  = &CrossTenantReferenceError{Entity: "appointment", Field: "assigned_user_id"}
	ErrTaxCalculationClientCrossTenant = &CrossTenantReferenceError{Entity: "tax calculation", Field: "client_id"}
	ErrInvoiceClientCrossTenant        = &CrossTenantReferenceError{Entity: "invoice", Field: "client_id"}
)

// Referential Integrity Errors
var (
	ErrClientHasDependents = &ReferentialIntegrityError{Entity: "client", Dependent: "dependent"}
)

// Business Logic Errors
var (
	ErrInvoiceNotDeletable     = errors.New("only draft or cancelled invoices can be deleted")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrAuditLogImmutable       = errors.New("audit log entries cannot be modified or deleted")
)

// Authentication / Tenant Context Errors
var (
	ErrInvalidSession          = &AuthenticationError{Message: "no valid session"}
	ErrInvalidCredentials      = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
	ErrRefreshTokenExpired     = errors.New("refresh token has expired")
	ErrNoOrganizationSelected  = &AuthorizationError{Message: "no organization selected for this request"}
	ErrInsufficientRole        = &AuthorizationError{Message: "role does not permit this operation"}
	ErrUserInactive            = &AuthenticationError{Message: "user account is deactivated"}
	ErrDirectoryNotConfigured  = &ConfigurationError{Message: "staff directory is not configured"}
	ErrOAuthProviderNotFound   = &ConfigurationError{Message: "oauth provider is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsCrossTenantReference checks if an error is a CrossTenantReferenceError
func IsCrossTenantReference(err error) bool {
	var crossErr *CrossTenantReferenceError
	return errors.As(err, &crossErr)
}

// IsReferentialIntegrity checks if an error is a ReferentialIntegrityError
func IsReferentialIntegrity(err error) bool {
	var refErr *ReferentialIntegrityError
	return errors.As(err, &refErr)
}

// IsAuditWrite checks if an error is an AuditWriteError
func IsAuditWrite(err error) bool {
	var auditErr *AuditWriteError
	return errors.As(err, &auditErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewCrossTenantReferenceError creates a new CrossTenantReferenceError
func NewCrossTenantReferenceError(entity, field string) error {
	return &CrossTenantReferenceError{Entity: entity, Field: field}
}

// NewReferentialIntegrityError creates a new ReferentialIntegrityError
func NewReferentialIntegrityError(entity, dependent string) error {
	return &ReferentialIntegrityError{Entity: entity, Dependent: dependent}
}

// NewAuditWriteError wraps a failed audit append
func NewAuditWriteError(cause error) error {
	return &AuditWriteError{Cause: cause}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
