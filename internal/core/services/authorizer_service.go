package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/middleware"
)

// authorizerService resolves profiles and enforces tenant scoping. Profile
// lookups go through the per-request cache in the context, so a request pays
// for at most one database round trip no matter how many checks it makes.
// FindProfileByUserID is a plain query with no policy of its own, which keeps
// the resolve path from recursing into another check.
type authorizerService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewAuthorizerService creates a new authorizer service
func NewAuthorizerService(orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.AuthorizerSvcFacade {
	return &authorizerService{orgRepo: orgRepo}
}

var _ portssvc.AuthorizerSvcFacade = (*authorizerService)(nil)

// ResolveProfile returns the caller's profile, consulting the request cache first.
func (s *authorizerService) ResolveProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if cache := middleware.GetProfileCacheFromCtx(ctx); cache != nil {
		if profile, ok := cache.Get(userID); ok {
			return profile, nil
		}
	}

	profile, err := s.orgRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve profile", slog.String("user_id", userID))
		}
		return nil, err
	}

	if cache := middleware.GetProfileCacheFromCtx(ctx); cache != nil {
		cache.Put(userID, profile)
	}
	return profile, nil
}

// RequireMember checks the caller belongs to organizationID. Membership
// failures surface as ErrNotFound so callers cannot distinguish another
// tenant's rows from rows that do not exist.
func (s *authorizerService) RequireMember(ctx context.Context, userID, organizationID string) (*domain.Profile, error) {
	profile, err := s.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.OrganizationID != organizationID {
		s.LogDebug(ctx, "Cross-organization access denied",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, apperrors.ErrNotFound
	}
	return profile, nil
}

// RequireManager checks membership and an admin or pm role.
func (s *authorizerService) RequireManager(ctx context.Context, userID, organizationID string) (*domain.Profile, error) {
	profile, err := s.RequireMember(ctx, userID, organizationID)
	if err != nil {
		return nil, err
	}
	if !profile.IsManager() {
		return nil, apperrors.NewForbiddenError("manager role required")
	}
	return profile, nil
}

// RequireBiller checks membership and an admin, pm or accountant role.
func (s *authorizerService) RequireBiller(ctx context.Context, userID, organizationID string) (*domain.Profile, error) {
	profile, err := s.RequireMember(ctx, userID, organizationID)
	if err != nil {
		return nil, err
	}
	if !profile.IsBiller() {
		return nil, apperrors.NewForbiddenError("billing role required")
	}
	return profile, nil
}

// RequireAdmin checks membership and the admin role.
func (s *authorizerService) RequireAdmin(ctx context.Context, userID, organizationID string) (*domain.Profile, error) {
	profile, err := s.RequireMember(ctx, userID, organizationID)
	if err != nil {
		return nil, err
	}
	if profile.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbiddenError("admin role required")
	}
	return profile, nil
}
