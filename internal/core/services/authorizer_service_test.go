package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/services"
)

type AuthorizerServiceTestSuite struct {
	suite.Suite
	mockOrgRepo *MockOrganizationRepository
	service     portssvc.AuthorizerSvcFacade

	userID  string
	orgID   string
	profile *domain.Profile
}

func (suite *AuthorizerServiceTestSuite) SetupTest() {
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewAuthorizerService(suite.mockOrgRepo)

	suite.userID = uuid.NewString()
	suite.orgID = uuid.NewString()
	suite.profile = &domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         suite.userID,
		OrganizationID: suite.orgID,
		FullName:       "Test Member",
		Role:           domain.RoleDesigner,
	}
}

func (suite *AuthorizerServiceTestSuite) TestResolveProfile_Success() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.ResolveProfile(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.profile, profile)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

func (suite *AuthorizerServiceTestSuite) TestResolveProfile_NotFound() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.ResolveProfile(ctx, suite.userID)

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AuthorizerServiceTestSuite) TestRequireMember_SameOrganization() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireMember(ctx, suite.userID, suite.orgID)

	suite.Require().NoError(err)
	suite.Equal(suite.orgID, profile.OrganizationID)
}

// Membership failures must be indistinguishable from missing rows: any role,
// any other organization, the answer is not-found rather than forbidden.
func (suite *AuthorizerServiceTestSuite) TestRequireMember_CrossOrganizationIsNotFound() {
	ctx := context.Background()
	suite.profile.Role = domain.RoleAdmin
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireMember(ctx, suite.userID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthorizerServiceTestSuite) TestRequireManager_DesignerForbidden() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireManager(ctx, suite.userID, suite.orgID)

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthorizerServiceTestSuite) TestRequireManager_PMAllowed() {
	ctx := context.Background()
	suite.profile.Role = domain.RolePM
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireManager(ctx, suite.userID, suite.orgID)

	suite.Require().NoError(err)
	suite.Equal(domain.RolePM, profile.Role)
}

func (suite *AuthorizerServiceTestSuite) TestRequireBiller_AccountantAllowed() {
	ctx := context.Background()
	suite.profile.Role = domain.RoleAccountant
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireBiller(ctx, suite.userID, suite.orgID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAccountant, profile.Role)
}

func (suite *AuthorizerServiceTestSuite) TestRequireBiller_DesignerForbidden() {
	ctx := context.Background()
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireBiller(ctx, suite.userID, suite.orgID)

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthorizerServiceTestSuite) TestRequireAdmin_PMForbidden() {
	ctx := context.Background()
	suite.profile.Role = domain.RolePM
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireAdmin(ctx, suite.userID, suite.orgID)

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AuthorizerServiceTestSuite) TestRequireAdmin_AdminAllowed() {
	ctx := context.Background()
	suite.profile.Role = domain.RoleAdmin
	suite.mockOrgRepo.On("FindProfileByUserID", ctx, suite.userID).Return(suite.profile, nil).Once()

	profile, err := suite.service.RequireAdmin(ctx, suite.userID, suite.orgID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, profile.Role)
}

func TestAuthorizerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizerServiceTestSuite))
}
