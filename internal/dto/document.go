package dto

import (
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// DocumentResponse defines data returned for a stored file's metadata row.
// DownloadURL is a presigned URL, present only on single-document fetches.
type DocumentResponse struct {
	DocumentID     string              `json:"documentID"`
	OrganizationID string              `json:"organizationID"`
	ProjectID      *string             `json:"projectID,omitempty"`
	Kind           domain.DocumentKind `json:"kind"`
	FileName       string              `json:"fileName"`
	FileSize       int64               `json:"fileSize"`
	FileType       string              `json:"fileType"`
	UploadedBy     string              `json:"uploadedBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	DownloadURL    string              `json:"downloadURL,omitempty"`
}

// ToDocumentResponse converts domain.Document to DTO.
func ToDocumentResponse(d *domain.Document, downloadURL string) DocumentResponse {
	return DocumentResponse{
		DocumentID:     d.DocumentID,
		OrganizationID: d.OrganizationID,
		ProjectID:      d.ProjectID,
		Kind:           d.Kind,
		FileName:       d.FileName,
		FileSize:       d.FileSize,
		FileType:       d.FileType,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
		DownloadURL:    downloadURL,
	}
}

// ListDocumentsResponse wraps a list of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToListDocumentsResponse converts a slice of domain.Document to DTO.
func ToListDocumentsResponse(ds []domain.Document) ListDocumentsResponse {
	list := make([]DocumentResponse, len(ds))
	for i := range ds {
		list[i] = ToDocumentResponse(&ds[i], "")
	}
	return ListDocumentsResponse{Documents: list}
}
