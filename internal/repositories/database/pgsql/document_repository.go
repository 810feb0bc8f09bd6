package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
)

const documentColumns = `document_id, organization_id, project_id, kind, file_name, file_key, file_size, file_type, uploaded_by, created_at, updated_at`

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	query := fmt.Sprintf(`
		INSERT INTO documents (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`, documentColumns)
	_, err := r.Pool.Exec(ctx, query,
		document.DocumentID, document.OrganizationID, document.ProjectID, document.Kind,
		document.FileName, document.FileKey, document.FileSize, document.FileType,
		document.UploadedBy, document.CreatedAt, document.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", document.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE document_id = $1;`, documentColumns)
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query document %s: %w", documentID, err)
	}
	document, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Document])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document %s: %w", documentID, err)
	}
	return &document, nil
}

func (r *PgxDocumentRepository) ListDocumentsByProject(ctx context.Context, projectID string, kind domain.DocumentKind) ([]domain.Document, error) {
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE project_id = $1 AND kind = $2 ORDER BY created_at DESC, document_id;`, documentColumns)
	rows, err := r.Pool.Query(ctx, query, projectID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents for project %s: %w", projectID, err)
	}
	documents, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Document])
	if err != nil {
		return nil, fmt.Errorf("failed to collect documents: %w", err)
	}
	return documents, nil
}

func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	query := `
		UPDATE documents SET project_id = $2, file_name = $3, updated_at = $4
		WHERE document_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		document.DocumentID, document.ProjectID, document.FileName, document.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", document.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	query := `DELETE FROM documents WHERE document_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
