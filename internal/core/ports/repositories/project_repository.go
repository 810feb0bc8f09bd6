package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// ProjectRepositoryFacade defines persistence operations for projects.
type ProjectRepositoryFacade interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	// ListProjectsByOrganization pages with a keyset token over (created_at, id).
	ListProjectsByOrganization(ctx context.Context, organizationID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error

	// FindOrCreateByClientAndName looks up a project by (organization,
	// client_name, name) and inserts the candidate only when absent, in one
	// transaction. An existing match is returned untouched. The bool reports
	// whether a row was created.
	FindOrCreateByClientAndName(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error)
}
