package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// DocumentRepositoryFacade defines persistence for the unified documents
// table. Kind distinguishes plain documents, drawings, receipts and proposals.
type DocumentRepositoryFacade interface {
	SaveDocument(ctx context.Context, document domain.Document) error
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocumentsByProject(ctx context.Context, projectID string, kind domain.DocumentKind) ([]domain.Document, error)
	UpdateDocument(ctx context.Context, document domain.Document) error
	DeleteDocument(ctx context.Context, documentID string) error
}
