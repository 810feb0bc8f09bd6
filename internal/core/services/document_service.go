package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/storage"
)

// maxUploadBytes caps a single multipart upload at 50 MiB.
const maxUploadBytes = 50 << 20

// documentService implements the DocumentSvcFacade interface
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
	store        storage.ObjectStore
}

// NewDocumentService creates a new document service with the provided dependencies
func NewDocumentService(
	documentRepo portsrepo.DocumentRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	store storage.ObjectStore,
	authorizer portssvc.AuthorizerSvcFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService:  BaseService{Authorizer: authorizer},
		documentRepo: documentRepo,
		projectRepo:  projectRepo,
		store:        store,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// findVisibleDocument loads a document and checks tenant membership.
func (s *documentService) findVisibleDocument(ctx context.Context, userID, documentID string) (*domain.Document, *domain.Profile, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, document.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return document, profile, nil
}

// GetDocumentByID retrieves a document visible to the caller
func (s *documentService) GetDocumentByID(ctx context.Context, userID, documentID string) (*domain.Document, error) {
	document, _, err := s.findVisibleDocument(ctx, userID, documentID)
	return document, err
}

// ListDocumentsByProject lists a project's documents of one kind
func (s *documentService) ListDocumentsByProject(ctx context.Context, userID, projectID string, kind domain.DocumentKind) ([]domain.Document, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListDocumentsByProject(ctx, projectID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents",
			slog.String("project_id", projectID),
			slog.String("kind", string(kind)))
		return nil, err
	}
	if documents == nil {
		return []domain.Document{}, nil
	}
	return documents, nil
}

// GetDownloadURL returns a presigned URL for the stored object
func (s *documentService) GetDownloadURL(ctx context.Context, userID, documentID string) (string, error) {
	document, _, err := s.findVisibleDocument(ctx, userID, documentID)
	if err != nil {
		return "", err
	}

	url, err := s.store.PresignedGetURL(ctx, document.FileKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to presign download URL",
			slog.String("document_id", documentID))
		return "", apperrors.NewBadGatewayError("object storage unavailable")
	}
	return url, nil
}

// UploadDocument streams the file into object storage and records the metadata
// row. A failed insert removes the just-uploaded object so storage never holds
// orphans.
func (s *documentService) UploadDocument(ctx context.Context, userID string, upload portssvc.DocumentUpload) (*domain.Document, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, upload.ProjectID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID)
	if err != nil {
		return nil, err
	}

	if upload.FileName == "" {
		return nil, apperrors.NewValidationFailedError("file name is required")
	}
	if upload.Size > maxUploadBytes {
		return nil, apperrors.NewValidationFailedError("file exceeds the upload size limit")
	}

	body, err := io.ReadAll(io.LimitReader(upload.Body, maxUploadBytes+1))
	if err != nil {
		s.LogError(ctx, err, "Failed to read upload body")
		return nil, apperrors.NewBadRequestError("failed to read uploaded file")
	}
	if len(body) > maxUploadBytes {
		return nil, apperrors.NewValidationFailedError("file exceeds the upload size limit")
	}

	documentID := uuid.NewString()
	key := storage.ObjectKey(upload.Kind, project.OrganizationID, documentID, upload.FileName)

	if err := s.store.Upload(ctx, key, upload.ContentType, body); err != nil {
		s.LogError(ctx, err, "Failed to upload object", slog.String("key", key))
		return nil, apperrors.NewBadGatewayError("object storage unavailable")
	}

	now := time.Now()
	document := domain.Document{
		DocumentID:     documentID,
		OrganizationID: project.OrganizationID,
		ProjectID:      &upload.ProjectID,
		Kind:           upload.Kind,
		FileName:       upload.FileName,
		FileKey:        key,
		FileSize:       int64(len(body)),
		FileType:       upload.ContentType,
		UploadedBy:     profile.ProfileID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.LogError(ctx, err, "Failed to save document row", slog.String("document_id", documentID))
		if cleanupErr := s.store.Delete(ctx, key); cleanupErr != nil {
			s.LogError(ctx, cleanupErr, "Failed to remove orphaned object", slog.String("key", key))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Document uploaded",
		slog.String("document_id", documentID),
		slog.String("project_id", upload.ProjectID),
		slog.String("kind", string(upload.Kind)))
	return &document, nil
}

// DeleteDocument removes the record and the stored object. Uploader or
// managers only.
func (s *documentService) DeleteDocument(ctx context.Context, userID, documentID string) error {
	document, profile, err := s.findVisibleDocument(ctx, userID, documentID)
	if err != nil {
		return err
	}
	if document.UploadedBy != profile.ProfileID && !profile.IsManager() {
		return apperrors.NewForbiddenError("only the uploader or a manager may delete this document")
	}

	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete document row",
				slog.String("document_id", documentID))
		}
		return err
	}

	// The row is authoritative; a failed object delete only leaks storage and
	// gets logged rather than surfaced.
	if err := s.store.Delete(ctx, document.FileKey); err != nil {
		s.LogError(ctx, err, "Failed to delete stored object", slog.String("key", document.FileKey))
	}

	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}
