package domain

import "time"

// OneDriveConnection holds the OAuth state for one organization's OneDrive link.
// LastSyncAt is the only sync cursor; a crash mid-batch means the next run simply
// re-lists and re-upserts (at-least-once).
type OneDriveConnection struct {
	ConnectionID   string     `json:"connectionID" db:"connection_id"`
	OrganizationID string     `json:"organizationID" db:"organization_id"`
	AccountEmail   *string    `json:"accountEmail" db:"account_email"`
	AccessToken    string     `json:"-" db:"access_token"`
	RefreshToken   string     `json:"-" db:"refresh_token"`
	TokenExpiry    time.Time  `json:"tokenExpiry" db:"token_expiry"`
	LastSyncAt     *time.Time `json:"lastSyncAt" db:"last_sync_at"`
	AuditFields
}

// OneDriveFile mirrors one remote file, keyed by the provider's immutable file id.
// ClientNameGuess/ProjectNameGuess come from the filename heuristic and may be nil.
type OneDriveFile struct {
	FileID           string  `json:"fileID" db:"file_id"`
	ConnectionID     string  `json:"connectionID" db:"connection_id"`
	OrganizationID   string  `json:"organizationID" db:"organization_id"`
	RemoteFileID     string  `json:"remoteFileID" db:"remote_file_id"`
	FileName         string  `json:"fileName" db:"file_name"`
	WebURL           *string `json:"webURL" db:"web_url"`
	FileSize         int64   `json:"fileSize" db:"file_size"`
	ClientNameGuess  *string `json:"clientNameGuess" db:"client_name_guess"`
	ProjectNameGuess *string `json:"projectNameGuess" db:"project_name_guess"`
	ProjectID        *string `json:"projectID" db:"project_id"`
	AuditFields
}
