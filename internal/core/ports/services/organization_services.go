package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// OrganizationReaderSvc defines read operations for organizations and profiles
type OrganizationReaderSvc interface {
	// GetOrganizationByID retrieves the caller's organization.
	GetOrganizationByID(ctx context.Context, userID, organizationID string) (*domain.Organization, error)

	// ListProfiles lists the members of the caller's organization.
	ListProfiles(ctx context.Context, userID, organizationID string) ([]domain.Profile, error)

	// GetMyProfile returns the caller's own profile.
	GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// OrganizationWriterSvc defines write operations for organizations and profiles
type OrganizationWriterSvc interface {
	// UpdateOrganization updates organization details. Admin only.
	UpdateOrganization(ctx context.Context, userID, organizationID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error)

	// DeleteOrganization removes the organization and everything it owns. Admin only.
	DeleteOrganization(ctx context.Context, userID, organizationID string) error

	// UpdateProfileRole changes a member's role. Admin only.
	UpdateProfileRole(ctx context.Context, userID, organizationID, profileID string, req dto.UpdateProfileRoleRequest) (*domain.Profile, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
}
