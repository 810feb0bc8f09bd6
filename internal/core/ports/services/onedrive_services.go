package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// OneDriveSvcFacade drives the OneDrive integration: OAuth connect,
// incremental file sync and disconnect. Admin only for connect/disconnect;
// managers may trigger a sync.
type OneDriveSvcFacade interface {
	// GetAuthURL returns the Microsoft consent URL for the caller's organization.
	GetAuthURL(ctx context.Context, userID string) (string, error)

	// ExchangeCode completes the OAuth flow and stores the connection.
	ExchangeCode(ctx context.Context, userID, code string) (*domain.OneDriveConnection, error)

	// SyncFiles lists the drive, mirrors new or changed files, parses their
	// names and creates projects for complete guesses. A provider error aborts
	// the batch without advancing the sync cursor.
	SyncFiles(ctx context.Context, userID string) (*dto.SyncResponse, error)

	// Disconnect removes the connection and its mirrored file rows.
	Disconnect(ctx context.Context, userID string) error

	// GetConnection returns the organization's connection, if any.
	GetConnection(ctx context.Context, userID string) (*domain.OneDriveConnection, error)

	// ListFiles returns the mirrored files for the caller's organization.
	ListFiles(ctx context.Context, userID string) ([]domain.OneDriveFile, error)
}
