package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockOrgRepo  *MockOrganizationRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockOrgRepo = new(MockOrganizationRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockOrgRepo)
}

// --- RegisterUser ---

// Signup provisions the user, a fresh organization named after the user, and
// an admin profile linking the two, all through one repository call.
func (suite *UserServiceTestSuite) TestRegisterUser_ProvisionsTenant() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Ada",
	}

	var captured struct {
		user    domain.User
		org     domain.Organization
		profile domain.Profile
	}
	suite.mockOrgRepo.ProvisionSignupFn = func(ctx context.Context, user domain.User, org domain.Organization, profile domain.Profile) error {
		captured.user = user
		captured.org = org
		captured.profile = profile
		return nil
	}

	user, org, profile, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Require().NotNil(org)
	suite.Require().NotNil(profile)

	suite.Equal("owner@example.com", user.Email)
	suite.NotEqual("password123", user.PasswordHash)
	suite.True(utils.CheckPasswordHash("password123", user.PasswordHash))

	suite.Equal("Ada's Organization", org.Name)
	suite.Equal(user.UserID, profile.UserID)
	suite.Equal(org.OrganizationID, profile.OrganizationID)
	suite.Equal(domain.RoleAdmin, profile.Role)
	suite.Equal("Ada", profile.FullName)

	// The rows handed to the provisioning transaction are the ones returned.
	suite.Equal(*user, captured.user)
	suite.Equal(*org, captured.org)
	suite.Equal(*profile, captured.profile)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		Name:     "Bea",
	}

	suite.mockOrgRepo.On("ProvisionSignup", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.Organization"), mock.AnythingOfType("domain.Profile")).
		Return(apperrors.ErrDuplicate).Once()

	user, org, profile, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.Nil(org)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOrgRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "login@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "login@example.com", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "login@example.com",
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "login@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "login@example.com", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// Unknown emails produce the same error as a bad password.
func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
