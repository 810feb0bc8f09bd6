package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade, authorizer portssvc.AuthorizerSvcFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{
		BaseService: BaseService{Authorizer: authorizer},
		orgRepo:     orgRepo,
	}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// GetOrganizationByID retrieves the caller's organization
func (s *organizationService) GetOrganizationByID(ctx context.Context, userID, organizationID string) (*domain.Organization, error) {
	if _, err := s.Authorizer.RequireMember(ctx, userID, organizationID); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization",
				slog.String("organization_id", organizationID))
		}
		return nil, err
	}
	return org, nil
}

// ListProfiles lists the members of the caller's organization
func (s *organizationService) ListProfiles(ctx context.Context, userID, organizationID string) ([]domain.Profile, error) {
	if _, err := s.Authorizer.RequireMember(ctx, userID, organizationID); err != nil {
		return nil, err
	}
	profiles, err := s.orgRepo.ListProfilesByOrganization(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list profiles",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if profiles == nil {
		return []domain.Profile{}, nil
	}
	return profiles, nil
}

// GetMyProfile returns the caller's own profile
func (s *organizationService) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.Authorizer.ResolveProfile(ctx, userID)
}

// UpdateOrganization renames an organization. Admin only.
func (s *organizationService) UpdateOrganization(ctx context.Context, userID, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	org.Name = req.Name
	org.UpdatedAt = time.Now()

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization updated", slog.String("organization_id", organizationID))
	return org, nil
}

// DeleteOrganization removes the organization. Dependent rows go with it via
// the schema's cascade rules. Admin only.
func (s *organizationService) DeleteOrganization(ctx context.Context, userID, organizationID string) error {
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, organizationID); err != nil {
		return err
	}

	if err := s.orgRepo.DeleteOrganization(ctx, organizationID); err != nil {
		s.LogError(ctx, err, "Failed to delete organization",
			slog.String("organization_id", organizationID))
		return err
	}

	s.LogInfo(ctx, "Organization deleted", slog.String("organization_id", organizationID))
	return nil
}

// UpdateProfileRole changes a member's role. Admin only. The target profile
// must be in the caller's organization.
func (s *organizationService) UpdateProfileRole(ctx context.Context, userID, organizationID, profileID string, req dto.UpdateProfileRoleRequest) (*domain.Profile, error) {
	if _, err := s.Authorizer.RequireAdmin(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	target, err := s.orgRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if target.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	if !req.Role.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid role")
	}

	if err := s.orgRepo.UpdateProfileRole(ctx, profileID, req.Role); err != nil {
		s.LogError(ctx, err, "Failed to update profile role",
			slog.String("profile_id", profileID))
		return nil, err
	}

	target.Role = req.Role
	target.UpdatedAt = time.Now()

	s.LogInfo(ctx, "Profile role updated",
		slog.String("profile_id", profileID),
		slog.String("role", string(req.Role)))
	return target, nil
}
