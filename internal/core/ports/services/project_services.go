package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project visible to the caller.
	GetProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error)

	// ListProjects retrieves a page of the caller's organization's projects,
	// optionally filtered by status.
	ListProjects(ctx context.Context, userID string, status *domain.ProjectStatus, limit int, nextToken string) ([]domain.Project, string, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	// CreateProject creates a project in the caller's organization.
	CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error)

	// UpdateProject updates a project. Managers only.
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project and its dependents. Managers only.
	DeleteProject(ctx context.Context, userID, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
