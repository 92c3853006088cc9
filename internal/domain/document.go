package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus tracks a document through its processing pipeline.
type DocumentStatus string

const (
	DocumentUploaded   DocumentStatus = "uploaded"
	DocumentProcessing DocumentStatus = "processing"
	DocumentProcessed  DocumentStatus = "processed"
	DocumentFailed     DocumentStatus = "failed"
)

// Valid reports whether s is one of the enumerated statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentUploaded, DocumentProcessing, DocumentProcessed, DocumentFailed:
		return true
	}
	return false
}

// Document is a file attached to a matter. The file contents live in object
// storage; only the metadata row is tenant-scoped here.
type Document struct {
	ID          uuid.UUID      `json:"id"`
	TenantID    uuid.UUID      `json:"tenant_id"`
	MatterID    uuid.UUID      `json:"matter_id"`
	Title       string         `json:"title"`
	FileName    string         `json:"file_name"`
	FilePath    string         `json:"file_path"`
	FileSize    int64          `json:"file_size"`
	FileType    string         `json:"file_type"`
	Description string         `json:"description,omitempty"`
	Status      DocumentStatus `json:"status"`
	UploadedBy  uuid.UUID      `json:"uploaded_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
