package models

import (
	"github.com/google/uuid"
)

// Document represents file metadata attached to a client. File contents live
// in external storage; only the storage key is recorded here.
type Document struct {
	TenantModel
	ClientID    uuid.UUID        `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string           `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Category    DocumentCategory `json:"category" gorm:"type:varchar(30);not null;default:'other'" validate:"required"`
	FileName    string           `json:"file_name" gorm:"size:255" validate:"max=255"`
	ContentType string           `json:"content_type" gorm:"size:100" validate:"max=100"`
	SizeBytes   int64            `json:"size_bytes" gorm:"not null;default:0" validate:"min=0"`
	StorageKey  string           `json:"storage_key" gorm:"size:500" validate:"max=500"`
	UploadedBy  uuid.UUID        `json:"uploaded_by" gorm:"type:uuid;not null"`

	// Relationships
	Client Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
