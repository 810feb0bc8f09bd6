package dto

import (
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// OneDriveAction selects the operation for the single integration endpoint.
type OneDriveAction string

const (
	ActionGetAuthURL   OneDriveAction = "get_auth_url"
	ActionExchangeCode OneDriveAction = "exchange_code"
	ActionSyncFiles    OneDriveAction = "sync_files"
	ActionDisconnect   OneDriveAction = "disconnect"
)

// OneDriveActionRequest is the action-selector payload of POST /onedrive.
type OneDriveActionRequest struct {
	Action       OneDriveAction `json:"action" binding:"required,oneof=get_auth_url exchange_code sync_files disconnect"`
	Code         string         `json:"code"`
	ConnectionID string         `json:"connectionID"`
}

// AuthURLResponse returns the consent redirect URL for get_auth_url.
type AuthURLResponse struct {
	URL string `json:"url"`
}

// ConnectionResponse defines data returned for a OneDrive connection.
type ConnectionResponse struct {
	ConnectionID   string     `json:"connectionID"`
	OrganizationID string     `json:"organizationID"`
	AccountEmail   *string    `json:"accountEmail,omitempty"`
	LastSyncAt     *time.Time `json:"lastSyncAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToConnectionResponse converts domain.OneDriveConnection to DTO. Tokens are
// never exposed.
func ToConnectionResponse(c *domain.OneDriveConnection) ConnectionResponse {
	return ConnectionResponse{
		ConnectionID:   c.ConnectionID,
		OrganizationID: c.OrganizationID,
		AccountEmail:   c.AccountEmail,
		LastSyncAt:     c.LastSyncAt,
		CreatedAt:      c.CreatedAt,
	}
}

// SyncResponse reports the outcome of one sync_files batch.
type SyncResponse struct {
	Success         bool `json:"success"`
	FilesProcessed  int  `json:"filesProcessed"`
	ProjectsCreated int  `json:"projectsCreated"`
}

// DisconnectResponse reports the outcome of a disconnect action.
type DisconnectResponse struct {
	Success bool `json:"success"`
}

// OneDriveFileResponse defines data returned for a mirrored remote file.
type OneDriveFileResponse struct {
	FileID           string    `json:"fileID"`
	RemoteFileID     string    `json:"remoteFileID"`
	FileName         string    `json:"fileName"`
	WebURL           *string   `json:"webURL,omitempty"`
	FileSize         int64     `json:"fileSize"`
	ClientNameGuess  *string   `json:"clientNameGuess,omitempty"`
	ProjectNameGuess *string   `json:"projectNameGuess,omitempty"`
	ProjectID        *string   `json:"projectID,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToOneDriveFileResponse converts domain.OneDriveFile to DTO.
func ToOneDriveFileResponse(f *domain.OneDriveFile) OneDriveFileResponse {
	return OneDriveFileResponse{
		FileID:           f.FileID,
		RemoteFileID:     f.RemoteFileID,
		FileName:         f.FileName,
		WebURL:           f.WebURL,
		FileSize:         f.FileSize,
		ClientNameGuess:  f.ClientNameGuess,
		ProjectNameGuess: f.ProjectNameGuess,
		ProjectID:        f.ProjectID,
		CreatedAt:        f.CreatedAt,
	}
}

// ListOneDriveFilesResponse wraps a list of mirrored files.
type ListOneDriveFilesResponse struct {
	Files []OneDriveFileResponse `json:"files"`
}

// ToListOneDriveFilesResponse converts a slice of domain.OneDriveFile to DTO.
func ToListOneDriveFilesResponse(fs []domain.OneDriveFile) ListOneDriveFilesResponse {
	list := make([]OneDriveFileResponse, len(fs))
	for i := range fs {
		list[i] = ToOneDriveFileResponse(&fs[i])
	}
	return ListOneDriveFilesResponse{Files: list}
}
