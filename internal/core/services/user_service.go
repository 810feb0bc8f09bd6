package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	orgRepo  portsrepo.OrganizationRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade, orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

// RegisterUser creates the user, a fresh organization named after them and an
// admin profile, all in a single transaction. Signup is the only way an
// organization comes into existence through the API.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Organization, *domain.Profile, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, nil, nil, apperrors.NewInternalServerError("failed to hash password")
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           fmt.Sprintf("%s's Organization", req.Name),
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	profile := domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         user.UserID,
		OrganizationID: org.OrganizationID,
		FullName:       req.Name,
		Role:           domain.RoleAdmin,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.orgRepo.ProvisionSignup(ctx, user, org, profile); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, nil, apperrors.NewConflictError("email already registered")
		}
		s.LogError(ctx, err, "Failed to provision signup", slog.String("user_id", user.UserID))
		return nil, nil, nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("organization_id", org.OrganizationID))
	return &user, &org, &profile, nil
}

// AuthenticateUser authenticates a user with email and password
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user during authentication")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// UpdateRefreshToken stores the refresh token hash and its expiry for a user
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, &refreshTokenHash, &refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "Failed to update refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

// ClearRefreshToken clears the refresh token for a user
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}
