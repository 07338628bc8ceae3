package models

// MembershipRole represents the role of a user within an organization
type MembershipRole string

const (
	MembershipRoleAdmin    MembershipRole = "admin"
	MembershipRoleManager  MembershipRole = "manager"
	MembershipRoleStaff    MembershipRole = "staff"
	MembershipRoleReadOnly MembershipRole = "readonly"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleManager, MembershipRoleStaff, MembershipRoleReadOnly:
		return true
	}
	return false
}

// CanWrite reports whether the role may perform mutating operations
func (r MembershipRole) CanWrite() bool {
	switch r {
	case MembershipRoleAdmin, MembershipRoleManager, MembershipRoleStaff:
		return true
	}
	return false
}

// ClientType distinguishes individual taxpayers from registered businesses
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeBusiness   ClientType = "business"
)

// IsValid checks if the ClientType is valid
func (t ClientType) IsValid() bool {
	switch t {
	case ClientTypeIndividual, ClientTypeBusiness:
		return true
	}
	return false
}

// ClientStatus represents the lifecycle state of a client record
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusArchived ClientStatus = "archived"
)

// IsValid checks if the ClientStatus is valid
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusArchived:
		return true
	}
	return false
}

// DocumentCategory classifies uploaded documents
type DocumentCategory string

const (
	DocumentCategoryTaxReturn       DocumentCategory = "tax_return"
	DocumentCategoryContract        DocumentCategory = "contract"
	DocumentCategoryImmigrationForm DocumentCategory = "immigration_form"
	DocumentCategoryCorrespondence  DocumentCategory = "correspondence"
	DocumentCategoryOther           DocumentCategory = "other"
)

// IsValid checks if the DocumentCategory is valid
func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryTaxReturn, DocumentCategoryContract, DocumentCategoryImmigrationForm,
		DocumentCategoryCorrespondence, DocumentCategoryOther:
		return true
	}
	return false
}

// AppointmentStatus represents the state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// IsValid checks if the AppointmentStatus is valid
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// TaxCalculationType identifies which Guyanese tax regime a calculation covers
type TaxCalculationType string

const (
	TaxCalculationTypeIncome   TaxCalculationType = "income"
	TaxCalculationTypeProperty TaxCalculationType = "property"
	TaxCalculationTypeVAT      TaxCalculationType = "vat"
	TaxCalculationTypePAYE     TaxCalculationType = "paye"
)

// IsValid checks if the TaxCalculationType is valid
func (t TaxCalculationType) IsValid() bool {
	switch t {
	case TaxCalculationTypeIncome, TaxCalculationTypeProperty, TaxCalculationTypeVAT, TaxCalculationTypePAYE:
		return true
	}
	return false
}

// TaxCalculationStatus represents the state of a tax calculation
type TaxCalculationStatus string

const (
	TaxCalculationStatusDraft TaxCalculationStatus = "draft"
	TaxCalculationStatusFinal TaxCalculationStatus = "final"
)

// IsValid checks if the TaxCalculationStatus is valid
func (s TaxCalculationStatus) IsValid() bool {
	switch s {
	case TaxCalculationStatusDraft, TaxCalculationStatusFinal:
		return true
	}
	return false
}

// InvoiceStatus represents the state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the InvoiceStatus is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Deletable reports whether an invoice in this status may be deleted
func (s InvoiceStatus) Deletable() bool {
	return s == InvoiceStatusDraft || s == InvoiceStatusCancelled
}
