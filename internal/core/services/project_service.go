package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

const defaultProjectListLimit = 50

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, authorizer portssvc.AuthorizerSvcFacade) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{Authorizer: authorizer},
		projectRepo: projectRepo,
	}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// findVisibleProject loads a project and checks the caller belongs to its
// organization. Foreign projects come back as ErrNotFound.
func (s *projectService) findVisibleProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProjectByID retrieves a project visible to the caller
func (s *projectService) GetProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.findVisibleProject(ctx, userID, projectID)
}

// ListProjects retrieves a page of the caller's organization's projects
func (s *projectService) ListProjects(ctx context.Context, userID string, status *domain.ProjectStatus, limit int, nextToken string) ([]domain.Project, string, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if limit <= 0 || limit > 200 {
		limit = defaultProjectListLimit
	}
	var tokenPtr *string
	if nextToken != "" {
		tokenPtr = &nextToken
	}

	projects, next, err := s.projectRepo.ListProjectsByOrganization(ctx, profile.OrganizationID, status, limit, tokenPtr)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects",
			slog.String("organization_id", profile.OrganizationID))
		return nil, "", err
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	var nextOut string
	if next != nil {
		nextOut = *next
	}
	return projects, nextOut, nil
}

// CreateProject creates a project in the caller's organization
func (s *projectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	profile, err := s.Authorizer.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.ProjectPlanning
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid project status")
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:        uuid.NewString(),
		OrganizationID:   profile.OrganizationID,
		Name:             req.Name,
		ProjectType:      req.ProjectType,
		Status:           status,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		ClientPhone:      req.ClientPhone,
		Address:          req.Address,
		EstimatedBudget:  req.EstimatedBudget,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ManagerProfileID: req.ManagerProfileID,
		CreatedBy:        profile.ProfileID,
		AuditFields:      domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("organization_id", profile.OrganizationID))
	return &project, nil
}

// UpdateProject applies a partial update. Managers only.
func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.findVisibleProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, project.OrganizationID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ProjectType != nil {
		project.ProjectType = *req.ProjectType
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationFailedError("invalid project status")
		}
		project.Status = *req.Status
	}
	if req.ClientName != nil {
		project.ClientName = req.ClientName
	}
	if req.ClientEmail != nil {
		project.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != nil {
		project.ClientPhone = req.ClientPhone
	}
	if req.Address != nil {
		project.Address = req.Address
	}
	if req.EstimatedBudget != nil {
		project.EstimatedBudget = req.EstimatedBudget
	}
	if req.ActualCost != nil {
		project.ActualCost = req.ActualCost
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.ManagerProfileID != nil {
		project.ManagerProfileID = req.ManagerProfileID
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project and its dependents. Managers only.
func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	project, err := s.findVisibleProject(ctx, userID, projectID)
	if err != nil {
		return err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, project.OrganizationID); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		}
		return err
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
