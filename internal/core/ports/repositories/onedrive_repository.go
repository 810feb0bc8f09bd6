package repositories

import (
	"context"
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// OneDriveRepositoryFacade persists OneDrive connections and the mirror of
// remote files. UpsertFile keys on (connection_id, remote_file_id) so repeated
// syncs update in place instead of duplicating rows.
type OneDriveRepositoryFacade interface {
	SaveConnection(ctx context.Context, conn domain.OneDriveConnection) error
	FindConnectionByOrganization(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error)
	UpdateConnectionTokens(ctx context.Context, connectionID, accessToken, refreshToken string, expiry time.Time) error
	UpdateLastSyncAt(ctx context.Context, connectionID string, syncedAt time.Time) error
	DeleteConnection(ctx context.Context, connectionID string) error

	UpsertFile(ctx context.Context, file domain.OneDriveFile) error
	FindFileByRemoteID(ctx context.Context, connectionID, remoteFileID string) (*domain.OneDriveFile, error)
	ListFilesByOrganization(ctx context.Context, organizationID string) ([]domain.OneDriveFile, error)
	DeleteFilesByConnection(ctx context.Context, connectionID string) error
}
