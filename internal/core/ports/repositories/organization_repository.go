package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// OrganizationRepositoryFacade defines persistence for the tenant directory:
// organizations, profiles and the signup provisioning transaction.
type OrganizationRepositoryFacade interface {
	// ProvisionSignup inserts the user, their new organization and the creator's
	// admin profile in a single transaction.
	ProvisionSignup(ctx context.Context, user domain.User, org domain.Organization, profile domain.Profile) error

	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, org domain.Organization) error
	// DeleteOrganization removes the tenant root; the schema's ON DELETE CASCADE
	// clauses remove every dependent row.
	DeleteOrganization(ctx context.Context, organizationID string) error

	// FindProfileByUserID is the organization resolver's backing query. It must
	// stay a plain single-row lookup with no authorization hook of its own.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
	ListProfilesByOrganization(ctx context.Context, organizationID string) ([]domain.Profile, error)
	UpdateProfileRole(ctx context.Context, profileID string, role domain.ProfileRole) error
}
