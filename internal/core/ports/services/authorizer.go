package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// AuthorizerSvcFacade resolves the calling user's profile and enforces
// tenant scoping. Every service method that touches organization-owned rows
// goes through one of these checks before reading or writing.
type AuthorizerSvcFacade interface {
	// ResolveProfile returns the profile for the authenticated user, caching
	// the lookup for the remainder of the request.
	ResolveProfile(ctx context.Context, userID string) (*domain.Profile, error)

	// RequireMember resolves the caller's profile and checks it belongs to
	// organizationID. A caller from another organization gets ErrNotFound so
	// foreign rows are indistinguishable from absent ones.
	RequireMember(ctx context.Context, userID, organizationID string) (*domain.Profile, error)

	// RequireManager is RequireMember plus an admin-or-pm role check.
	RequireManager(ctx context.Context, userID, organizationID string) (*domain.Profile, error)

	// RequireBiller is RequireMember plus an admin, pm or accountant role
	// check. It guards invoice and payment mutations.
	RequireBiller(ctx context.Context, userID, organizationID string) (*domain.Profile, error)

	// RequireAdmin is RequireMember plus an admin role check.
	RequireAdmin(ctx context.Context, userID, organizationID string) (*domain.Profile, error)
}
