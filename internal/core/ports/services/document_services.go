package services

import (
	"context"
	"io"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// DocumentUpload carries an uploaded file's stream and metadata into the service.
type DocumentUpload struct {
	ProjectID   string
	Kind        domain.DocumentKind
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	GetDocumentByID(ctx context.Context, userID, documentID string) (*domain.Document, error)
	ListDocumentsByProject(ctx context.Context, userID, projectID string, kind domain.DocumentKind) ([]domain.Document, error)

	// GetDownloadURL returns a short-lived presigned URL for the stored object.
	GetDownloadURL(ctx context.Context, userID, documentID string) (string, error)
}

// DocumentWriterSvc defines write operations for documents
type DocumentWriterSvc interface {
	// UploadDocument stores the file in object storage and records it.
	UploadDocument(ctx context.Context, userID string, upload DocumentUpload) (*domain.Document, error)

	// DeleteDocument removes the record and the stored object. Uploader or managers only.
	DeleteDocument(ctx context.Context, userID, documentID string) error
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
