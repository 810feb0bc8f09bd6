package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/msgraph"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils/fileparse"
)

// onedriveService implements the OneDriveSvcFacade interface
type onedriveService struct {
	BaseService
	onedriveRepo portsrepo.OneDriveRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
	graph        msgraph.Client
}

// NewOneDriveService creates a new OneDrive service with the provided dependencies
func NewOneDriveService(
	onedriveRepo portsrepo.OneDriveRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	graph msgraph.Client,
	authorizer portssvc.AuthorizerSvcFacade,
) portssvc.OneDriveSvcFacade {
	return &onedriveService{
		BaseService:  BaseService{Authorizer: authorizer},
		onedriveRepo: onedriveRepo,
		projectRepo:  projectRepo,
		graph:        graph,
	}
}

var _ portssvc.OneDriveSvcFacade = (*onedriveService)(nil)

// GetAuthURL returns the Microsoft consent URL. Admin only.
func (s *onedriveService) GetAuthURL(ctx context.Context, userID string) (string, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, profile.OrganizationID); err != nil {
		return "", err
	}

	// The organization id doubles as the OAuth state so the callback can be
	// matched to its tenant.
	return s.graph.AuthCodeURL(profile.OrganizationID), nil
}

// ExchangeCode completes the OAuth flow and stores the connection. Admin only.
// One connection per organization; reconnecting replaces the stored tokens.
func (s *onedriveService) ExchangeCode(ctx context.Context, userID, code string) (*domain.OneDriveConnection, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, profile.OrganizationID); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, apperrors.NewValidationFailedError("authorization code is required")
	}

	token, err := s.graph.ExchangeCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange OneDrive authorization code")
		return nil, apperrors.NewBadGatewayError("failed to exchange authorization code")
	}

	email, err := s.graph.GetUserEmail(ctx, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch connected account email")
		return nil, apperrors.NewBadGatewayError("failed to query Microsoft Graph")
	}

	existing, err := s.onedriveRepo.FindConnectionByOrganization(ctx, profile.OrganizationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if err := s.onedriveRepo.UpdateConnectionTokens(ctx, existing.ConnectionID, token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
			s.LogError(ctx, err, "Failed to refresh connection tokens",
				slog.String("connection_id", existing.ConnectionID))
			return nil, err
		}
		existing.AccessToken = token.AccessToken
		existing.RefreshToken = token.RefreshToken
		existing.TokenExpiry = token.Expiry
		return existing, nil
	}

	now := time.Now()
	conn := domain.OneDriveConnection{
		ConnectionID:   uuid.NewString(),
		OrganizationID: profile.OrganizationID,
		AccountEmail:   &email,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiry:    token.Expiry,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.onedriveRepo.SaveConnection(ctx, conn); err != nil {
		s.LogError(ctx, err, "Failed to save OneDrive connection",
			slog.String("connection_id", conn.ConnectionID))
		return nil, err
	}

	s.LogInfo(ctx, "OneDrive connected",
		slog.String("connection_id", conn.ConnectionID),
		slog.String("organization_id", profile.OrganizationID))
	return &conn, nil
}

// GetConnection returns the organization's connection, if any
func (s *onedriveService) GetConnection(ctx context.Context, userID string) (*domain.OneDriveConnection, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.onedriveRepo.FindConnectionByOrganization(ctx, profile.OrganizationID)
}

// ListFiles returns the mirrored files for the caller's organization
func (s *onedriveService) ListFiles(ctx context.Context, userID string) ([]domain.OneDriveFile, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	files, err := s.onedriveRepo.ListFilesByOrganization(ctx, profile.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list OneDrive files",
			slog.String("organization_id", profile.OrganizationID))
		return nil, err
	}
	if files == nil {
		return []domain.OneDriveFile{}, nil
	}
	return files, nil
}

// SyncFiles lists the drive root and mirrors each file by its remote id, so a
// repeated run with the same listing is a no-op. A complete (client, project)
// guess from the filename finds or creates the matching project. Any provider
// error aborts the batch before the sync cursor advances.
func (s *onedriveService) SyncFiles(ctx context.Context, userID string) (*dto.SyncResponse, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, profile.OrganizationID); err != nil {
		return nil, err
	}

	conn, err := s.onedriveRepo.FindConnectionByOrganization(ctx, profile.OrganizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("no OneDrive connection for this organization")
		}
		return nil, err
	}

	token := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		Expiry:       conn.TokenExpiry,
	}

	// The token source refreshes an expired token on first use. A rotated
	// token must be written back, or the stored refresh token goes stale
	// once Microsoft invalidates it.
	current, err := s.graph.TokenSource(ctx, token).Token()
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh OneDrive token",
			slog.String("connection_id", conn.ConnectionID))
		return nil, apperrors.NewBadGatewayError("failed to refresh OneDrive token")
	}
	if current.AccessToken != conn.AccessToken {
		refreshToken := current.RefreshToken
		if refreshToken == "" {
			refreshToken = conn.RefreshToken
		}
		if err := s.onedriveRepo.UpdateConnectionTokens(ctx, conn.ConnectionID, current.AccessToken, refreshToken, current.Expiry); err != nil {
			s.LogError(ctx, err, "Failed to persist refreshed tokens",
				slog.String("connection_id", conn.ConnectionID))
			return nil, err
		}
	}

	items, err := s.graph.ListRootChildren(ctx, current)
	if err != nil {
		s.LogError(ctx, err, "OneDrive listing failed",
			slog.String("connection_id", conn.ConnectionID))
		return nil, apperrors.NewBadGatewayError("failed to list OneDrive files")
	}

	resp := &dto.SyncResponse{Success: true}
	for _, item := range items {
		if item.Folder != nil {
			continue
		}

		guess := fileparse.ParseFileName(item.Name)

		var projectID *string
		if guess.Complete() {
			project, created, err := s.projectRepo.FindOrCreateByClientAndName(ctx, s.projectCandidate(profile, guess))
			if err != nil {
				s.LogError(ctx, err, "Failed to find or create project for synced file",
					slog.String("file_name", item.Name))
				return nil, err
			}
			projectID = &project.ProjectID
			if created {
				resp.ProjectsCreated++
			}
		}

		now := time.Now()
		file := domain.OneDriveFile{
			FileID:         uuid.NewString(),
			ConnectionID:   conn.ConnectionID,
			OrganizationID: conn.OrganizationID,
			RemoteFileID:   item.ID,
			FileName:       item.Name,
			FileSize:       item.Size,
			ProjectID:      projectID,
			AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
		if item.WebURL != "" {
			webURL := item.WebURL
			file.WebURL = &webURL
		}
		if guess.ClientName != "" {
			clientName := guess.ClientName
			file.ClientNameGuess = &clientName
		}
		if guess.ProjectName != "" {
			projectName := guess.ProjectName
			file.ProjectNameGuess = &projectName
		}

		if err := s.onedriveRepo.UpsertFile(ctx, file); err != nil {
			s.LogError(ctx, err, "Failed to upsert mirrored file",
				slog.String("remote_file_id", item.ID))
			return nil, err
		}
		resp.FilesProcessed++
	}

	if err := s.onedriveRepo.UpdateLastSyncAt(ctx, conn.ConnectionID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to advance sync cursor",
			slog.String("connection_id", conn.ConnectionID))
		return nil, err
	}

	s.LogInfo(ctx, "OneDrive sync completed",
		slog.String("connection_id", conn.ConnectionID),
		slog.Int("files_processed", resp.FilesProcessed),
		slog.Int("projects_created", resp.ProjectsCreated))
	return resp, nil
}

// projectCandidate builds the project row a complete filename guess maps to.
// The syncing user's profile becomes the creator.
func (s *onedriveService) projectCandidate(profile *domain.Profile, guess fileparse.Result) domain.Project {
	now := time.Now()
	clientName := guess.ClientName
	return domain.Project{
		ProjectID:      uuid.NewString(),
		OrganizationID: profile.OrganizationID,
		Name:           guess.ProjectName,
		ProjectType:    "general",
		Status:         domain.ProjectPlanning,
		ClientName:     &clientName,
		CreatedBy:      profile.ProfileID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
}

// Disconnect removes the connection and its mirrored file rows. Admin only.
func (s *onedriveService) Disconnect(ctx context.Context, userID string) error {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, profile.OrganizationID); err != nil {
		return err
	}

	conn, err := s.onedriveRepo.FindConnectionByOrganization(ctx, profile.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.onedriveRepo.DeleteFilesByConnection(ctx, conn.ConnectionID); err != nil {
		s.LogError(ctx, err, "Failed to delete mirrored files",
			slog.String("connection_id", conn.ConnectionID))
		return err
	}
	if err := s.onedriveRepo.DeleteConnection(ctx, conn.ConnectionID); err != nil {
		s.LogError(ctx, err, "Failed to delete connection",
			slog.String("connection_id", conn.ConnectionID))
		return err
	}

	s.LogInfo(ctx, "OneDrive disconnected",
		slog.String("connection_id", conn.ConnectionID),
		slog.String("organization_id", profile.OrganizationID))
	return nil
}
