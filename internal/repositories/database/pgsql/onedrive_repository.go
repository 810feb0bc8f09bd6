package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
)

const (
	connectionColumns = `connection_id, organization_id, account_email, access_token, refresh_token, token_expiry, last_sync_at, created_at, updated_at`
	driveFileColumns  = `file_id, connection_id, organization_id, remote_file_id, file_name, web_url, file_size, client_name_guess, project_name_guess, project_id, created_at, updated_at`
)

type PgxOneDriveRepository struct {
	BaseRepository
}

func newPgxOneDriveRepository(db *pgxpool.Pool) portsrepo.OneDriveRepositoryFacade {
	return &PgxOneDriveRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OneDriveRepositoryFacade = (*PgxOneDriveRepository)(nil)

func (r *PgxOneDriveRepository) SaveConnection(ctx context.Context, conn domain.OneDriveConnection) error {
	query := fmt.Sprintf(`
		INSERT INTO onedrive_connections (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, connectionColumns)
	_, err := r.Pool.Exec(ctx, query,
		conn.ConnectionID, conn.OrganizationID, conn.AccountEmail, conn.AccessToken,
		conn.RefreshToken, conn.TokenExpiry, conn.LastSyncAt, conn.CreatedAt, conn.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save OneDrive connection %s: %w", conn.ConnectionID, err)
	}
	return nil
}

func (r *PgxOneDriveRepository) FindConnectionByOrganization(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
	query := fmt.Sprintf(`SELECT %s FROM onedrive_connections WHERE organization_id = $1;`, connectionColumns)
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query OneDrive connection for organization %s: %w", organizationID, err)
	}
	conn, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.OneDriveConnection])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find OneDrive connection for organization %s: %w", organizationID, err)
	}
	return &conn, nil
}

func (r *PgxOneDriveRepository) UpdateConnectionTokens(ctx context.Context, connectionID, accessToken, refreshToken string, expiry time.Time) error {
	query := `
		UPDATE onedrive_connections
		SET access_token = $2, refresh_token = $3, token_expiry = $4, updated_at = now()
		WHERE connection_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, connectionID, accessToken, refreshToken, expiry)
	if err != nil {
		return fmt.Errorf("failed to update tokens for connection %s: %w", connectionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOneDriveRepository) UpdateLastSyncAt(ctx context.Context, connectionID string, syncedAt time.Time) error {
	query := `UPDATE onedrive_connections SET last_sync_at = $2, updated_at = now() WHERE connection_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, connectionID, syncedAt)
	if err != nil {
		return fmt.Errorf("failed to update sync cursor for connection %s: %w", connectionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOneDriveRepository) DeleteConnection(ctx context.Context, connectionID string) error {
	query := `DELETE FROM onedrive_connections WHERE connection_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, connectionID)
	if err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", connectionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertFile mirrors one remote file keyed by (connection_id, remote_file_id),
// so repeated syncs update in place instead of duplicating rows. A freshly
// parsed guess or project link wins over the stored one; the original file_id
// and created_at survive.
func (r *PgxOneDriveRepository) UpsertFile(ctx context.Context, file domain.OneDriveFile) error {
	query := fmt.Sprintf(`
		INSERT INTO onedrive_files (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (connection_id, remote_file_id) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			web_url = EXCLUDED.web_url,
			file_size = EXCLUDED.file_size,
			client_name_guess = EXCLUDED.client_name_guess,
			project_name_guess = EXCLUDED.project_name_guess,
			project_id = EXCLUDED.project_id,
			updated_at = EXCLUDED.updated_at;
	`, driveFileColumns)
	_, err := r.Pool.Exec(ctx, query,
		file.FileID, file.ConnectionID, file.OrganizationID, file.RemoteFileID,
		file.FileName, file.WebURL, file.FileSize, file.ClientNameGuess,
		file.ProjectNameGuess, file.ProjectID, file.CreatedAt, file.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert OneDrive file %s: %w", file.RemoteFileID, err)
	}
	return nil
}

func (r *PgxOneDriveRepository) FindFileByRemoteID(ctx context.Context, connectionID, remoteFileID string) (*domain.OneDriveFile, error) {
	query := fmt.Sprintf(`SELECT %s FROM onedrive_files WHERE connection_id = $1 AND remote_file_id = $2;`, driveFileColumns)
	rows, err := r.Pool.Query(ctx, query, connectionID, remoteFileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query OneDrive file %s: %w", remoteFileID, err)
	}
	file, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.OneDriveFile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find OneDrive file %s: %w", remoteFileID, err)
	}
	return &file, nil
}

func (r *PgxOneDriveRepository) ListFilesByOrganization(ctx context.Context, organizationID string) ([]domain.OneDriveFile, error) {
	query := fmt.Sprintf(`SELECT %s FROM onedrive_files WHERE organization_id = $1 ORDER BY file_name, file_id;`, driveFileColumns)
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query OneDrive files for organization %s: %w", organizationID, err)
	}
	files, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.OneDriveFile])
	if err != nil {
		return nil, fmt.Errorf("failed to collect OneDrive files: %w", err)
	}
	return files, nil
}

func (r *PgxOneDriveRepository) DeleteFilesByConnection(ctx context.Context, connectionID string) error {
	query := `DELETE FROM onedrive_files WHERE connection_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, connectionID); err != nil {
		return fmt.Errorf("failed to delete OneDrive files for connection %s: %w", connectionID, err)
	}
	return nil
}
