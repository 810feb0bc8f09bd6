package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/msgraph"
)

type OneDriveServiceTestSuite struct {
	suite.Suite
	mockOneDriveRepo *MockOneDriveRepository
	mockProjectRepo  *MockProjectRepository
	mockOrgRepo      *MockOrganizationRepository
	mockGraph        *MockGraphClient
	service          portssvc.OneDriveSvcFacade

	userID     string
	orgID      string
	connection *domain.OneDriveConnection
}

func (suite *OneDriveServiceTestSuite) SetupTest() {
	suite.mockOneDriveRepo = new(MockOneDriveRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.mockGraph = new(MockGraphClient)

	authorizer := services.NewAuthorizerService(suite.mockOrgRepo)
	suite.service = services.NewOneDriveService(suite.mockOneDriveRepo, suite.mockProjectRepo, suite.mockGraph, authorizer)

	suite.userID = uuid.NewString()
	suite.orgID = uuid.NewString()
	suite.connection = &domain.OneDriveConnection{
		ConnectionID:   uuid.NewString(),
		OrganizationID: suite.orgID,
		AccessToken:    "access",
		RefreshToken:   "refresh",
		TokenExpiry:    time.Now().Add(time.Hour),
	}

	// The stored token is still valid by default, so no refresh happens.
	suite.mockGraph.TokenSourceFn = func(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
		return oauth2.StaticTokenSource(token)
	}
}

func (suite *OneDriveServiceTestSuite) setProfile(role domain.ProfileRole) {
	profile := &domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         suite.userID,
		OrganizationID: suite.orgID,
		Role:           role,
	}
	suite.mockOrgRepo.FindProfileByUserIDFn = func(ctx context.Context, userID string) (*domain.Profile, error) {
		return profile, nil
	}
}

func folderFacet(childCount int) *struct {
	ChildCount int `json:"childCount"`
} {
	return &struct {
		ChildCount int `json:"childCount"`
	}{ChildCount: childCount}
}

func (suite *OneDriveServiceTestSuite) TestSyncFiles_MirrorsFilesAndCreatesProjects() {
	ctx := context.Background()
	suite.setProfile(domain.RolePM)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		suite.Equal(suite.orgID, organizationID)
		return suite.connection, nil
	}

	items := []msgraph.DriveItem{
		{ID: "remote-folder", Name: "Drawings", Folder: folderFacet(3)},
		{ID: "remote-1", Name: "Invoice_Acme_Roof_2024.pdf", Size: 2048, WebURL: "https://onedrive.example/remote-1"},
		{ID: "remote-2", Name: "notes.txt", Size: 64},
	}
	suite.mockGraph.ListRootChildrenFn = func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
		suite.Equal(suite.connection.AccessToken, token.AccessToken)
		return items, nil
	}

	project := &domain.Project{
		ProjectID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "Roof",
	}
	suite.mockProjectRepo.FindOrCreateByClientAndNameFn = func(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error) {
		suite.Equal(suite.orgID, candidate.OrganizationID)
		suite.Require().NotNil(candidate.ClientName)
		suite.Equal("Acme", *candidate.ClientName)
		suite.Equal("Roof", candidate.Name)
		suite.Equal(domain.ProjectPlanning, candidate.Status)
		return project, true, nil
	}

	var upserted []domain.OneDriveFile
	suite.mockOneDriveRepo.UpsertFileFn = func(ctx context.Context, file domain.OneDriveFile) error {
		upserted = append(upserted, file)
		return nil
	}
	suite.mockOneDriveRepo.On("UpdateLastSyncAt", ctx, suite.connection.ConnectionID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	resp, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Success)
	suite.Equal(2, resp.FilesProcessed)
	suite.Equal(1, resp.ProjectsCreated)

	suite.Require().Len(upserted, 2)
	invoiceFile := upserted[0]
	suite.Equal("remote-1", invoiceFile.RemoteFileID)
	suite.Equal(suite.connection.ConnectionID, invoiceFile.ConnectionID)
	suite.Require().NotNil(invoiceFile.ProjectID)
	suite.Equal(project.ProjectID, *invoiceFile.ProjectID)
	suite.Require().NotNil(invoiceFile.ClientNameGuess)
	suite.Equal("Acme", *invoiceFile.ClientNameGuess)
	suite.Require().NotNil(invoiceFile.WebURL)

	// A single-word name yields no project guess; the file is still mirrored.
	notesFile := upserted[1]
	suite.Equal("remote-2", notesFile.RemoteFileID)
	suite.Nil(notesFile.ProjectID)

	suite.mockOneDriveRepo.AssertNotCalled(suite.T(), "UpdateConnectionTokens")
	suite.mockOneDriveRepo.AssertExpectations(suite.T())
}

// Running the sync again over an unchanged listing must not duplicate
// anything: the project lookup finds the existing row, the mirror upserts the
// same remote ids, and the created counter stays at zero.
func (suite *OneDriveServiceTestSuite) TestSyncFiles_SecondRunIsIdempotent() {
	ctx := context.Background()
	suite.setProfile(domain.RolePM)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return suite.connection, nil
	}
	suite.mockGraph.ListRootChildrenFn = func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
		return []msgraph.DriveItem{
			{ID: "remote-1", Name: "Invoice_Acme_Roof_2024.pdf", Size: 2048},
			{ID: "remote-2", Name: "notes.txt", Size: 64},
		}, nil
	}

	project := &domain.Project{
		ProjectID:      uuid.NewString(),
		OrganizationID: suite.orgID,
		Name:           "Roof",
	}
	lookups := 0
	suite.mockProjectRepo.FindOrCreateByClientAndNameFn = func(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error) {
		lookups++
		// Only the first run inserts; after that the row already exists.
		return project, lookups == 1, nil
	}

	var runs [][]string
	var current []string
	suite.mockOneDriveRepo.UpsertFileFn = func(ctx context.Context, file domain.OneDriveFile) error {
		current = append(current, file.RemoteFileID)
		return nil
	}
	suite.mockOneDriveRepo.On("UpdateLastSyncAt", ctx, suite.connection.ConnectionID, mock.AnythingOfType("time.Time")).
		Return(nil).Twice()

	first, err := suite.service.SyncFiles(ctx, suite.userID)
	suite.Require().NoError(err)
	runs = append(runs, current)
	current = nil

	second, err := suite.service.SyncFiles(ctx, suite.userID)
	suite.Require().NoError(err)
	runs = append(runs, current)

	suite.Equal(2, first.FilesProcessed)
	suite.Equal(1, first.ProjectsCreated)
	suite.Equal(2, second.FilesProcessed)
	suite.Equal(0, second.ProjectsCreated)
	suite.Equal(2, lookups)

	// Both runs address the same remote rows, so the unique
	// (connection, remote_file_id) upsert leaves a single mirror per file.
	suite.Equal(runs[0], runs[1])
	suite.Equal([]string{"remote-1", "remote-2"}, runs[1])

	suite.mockOneDriveRepo.AssertExpectations(suite.T())
}

// When the token source hands back a rotated token, the new credentials must
// be written to the connection row before the listing proceeds with them.
func (suite *OneDriveServiceTestSuite) TestSyncFiles_PersistsRotatedTokens() {
	ctx := context.Background()
	suite.setProfile(domain.RoleAdmin)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return suite.connection, nil
	}

	rotated := &oauth2.Token{
		AccessToken:  "rotated-access",
		RefreshToken: "rotated-refresh",
		Expiry:       time.Now().Add(2 * time.Hour),
	}
	suite.mockGraph.TokenSourceFn = func(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
		suite.Equal(suite.connection.RefreshToken, token.RefreshToken)
		return oauth2.StaticTokenSource(rotated)
	}
	suite.mockOneDriveRepo.On("UpdateConnectionTokens", ctx, suite.connection.ConnectionID,
		"rotated-access", "rotated-refresh", rotated.Expiry).Return(nil).Once()

	suite.mockGraph.ListRootChildrenFn = func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
		suite.Equal("rotated-access", token.AccessToken)
		return nil, nil
	}
	suite.mockOneDriveRepo.On("UpdateLastSyncAt", ctx, suite.connection.ConnectionID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	resp, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(0, resp.FilesProcessed)
	suite.mockOneDriveRepo.AssertExpectations(suite.T())
}

// Microsoft sometimes omits the refresh token from a refresh response; the
// stored one must then be kept rather than overwritten with an empty string.
func (suite *OneDriveServiceTestSuite) TestSyncFiles_KeepsRefreshTokenWhenRotationOmitsIt() {
	ctx := context.Background()
	suite.setProfile(domain.RoleAdmin)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return suite.connection, nil
	}

	rotated := &oauth2.Token{
		AccessToken: "rotated-access",
		Expiry:      time.Now().Add(2 * time.Hour),
	}
	suite.mockGraph.TokenSourceFn = func(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
		return oauth2.StaticTokenSource(rotated)
	}
	suite.mockOneDriveRepo.On("UpdateConnectionTokens", ctx, suite.connection.ConnectionID,
		"rotated-access", suite.connection.RefreshToken, rotated.Expiry).Return(nil).Once()

	suite.mockGraph.ListRootChildrenFn = func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
		return nil, nil
	}
	suite.mockOneDriveRepo.On("UpdateLastSyncAt", ctx, suite.connection.ConnectionID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	_, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.mockOneDriveRepo.AssertExpectations(suite.T())
}

func (suite *OneDriveServiceTestSuite) TestSyncFiles_UpsertFailureLeavesCursorUntouched() {
	ctx := context.Background()
	suite.setProfile(domain.RoleAdmin)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return suite.connection, nil
	}
	suite.mockGraph.ListRootChildrenFn = func(ctx context.Context, token *oauth2.Token) ([]msgraph.DriveItem, error) {
		return []msgraph.DriveItem{{ID: "remote-1", Name: "notes.txt"}}, nil
	}
	suite.mockOneDriveRepo.UpsertFileFn = func(ctx context.Context, file domain.OneDriveFile) error {
		return apperrors.NewInternalServerError("upsert failed")
	}

	resp, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.mockOneDriveRepo.AssertNotCalled(suite.T(), "UpdateLastSyncAt")
}

func (suite *OneDriveServiceTestSuite) TestSyncFiles_DesignerForbidden() {
	ctx := context.Background()
	suite.setProfile(domain.RoleDesigner)

	resp, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockOneDriveRepo.AssertNotCalled(suite.T(), "FindConnectionByOrganization")
}

func (suite *OneDriveServiceTestSuite) TestSyncFiles_NoConnection() {
	ctx := context.Background()
	suite.setProfile(domain.RolePM)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return nil, apperrors.ErrNotFound
	}

	resp, err := suite.service.SyncFiles(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockGraph.AssertNotCalled(suite.T(), "ListRootChildren")
}

func (suite *OneDriveServiceTestSuite) TestDisconnect_RemovesFilesThenConnection() {
	ctx := context.Background()
	suite.setProfile(domain.RoleAdmin)

	suite.mockOneDriveRepo.FindConnectionByOrganizationFn = func(ctx context.Context, organizationID string) (*domain.OneDriveConnection, error) {
		return suite.connection, nil
	}
	suite.mockOneDriveRepo.On("DeleteFilesByConnection", ctx, suite.connection.ConnectionID).Return(nil).Once()
	suite.mockOneDriveRepo.On("DeleteConnection", ctx, suite.connection.ConnectionID).Return(nil).Once()

	err := suite.service.Disconnect(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.mockOneDriveRepo.AssertExpectations(suite.T())
}

func (suite *OneDriveServiceTestSuite) TestExchangeCode_PMForbidden() {
	ctx := context.Background()
	suite.setProfile(domain.RolePM)

	conn, err := suite.service.ExchangeCode(ctx, suite.userID, "code")

	suite.Require().Error(err)
	suite.Nil(conn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestOneDriveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OneDriveServiceTestSuite))
}
