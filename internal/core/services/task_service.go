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

// taskService implements the TaskSvcFacade interface
type taskService struct {
	BaseService
	taskRepo    portsrepo.TaskRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	orgRepo     portsrepo.OrganizationRepositoryFacade
}

// NewTaskService creates a new task service with the provided dependencies
func NewTaskService(
	taskRepo portsrepo.TaskRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	orgRepo portsrepo.OrganizationRepositoryFacade,
	authorizer portssvc.AuthorizerSvcFacade,
) portssvc.TaskSvcFacade {
	return &taskService{
		BaseService: BaseService{Authorizer: authorizer},
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

// findVisibleTask loads a task and checks the caller belongs to its organization.
func (s *taskService) findVisibleTask(ctx context.Context, userID, taskID string) (*domain.Task, *domain.Profile, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, task.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return task, profile, nil
}

// requireTaskMutator allows the creator or a manager to mutate a task.
func requireTaskMutator(task *domain.Task, profile *domain.Profile) error {
	if task.CreatedBy == profile.ProfileID || profile.IsManager() {
		return nil
	}
	return apperrors.NewForbiddenError("only the task creator or a manager may modify this task")
}

// GetTaskByID retrieves a task visible to the caller
func (s *taskService) GetTaskByID(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, _, err := s.findVisibleTask(ctx, userID, taskID)
	return task, err
}

// ListTasksByProject lists the tasks of a project visible to the caller
func (s *taskService) ListTasksByProject(ctx context.Context, userID, projectID string) ([]domain.Task, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListTasksByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks", slog.String("project_id", projectID))
		return nil, err
	}
	if tasks == nil {
		return []domain.Task{}, nil
	}
	return tasks, nil
}

// CreateTask creates a task inside a project
func (s *taskService) CreateTask(ctx context.Context, userID, projectID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.TaskPending
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid task status")
	}

	now := time.Now()
	task := domain.Task{
		TaskID:         uuid.NewString(),
		ProjectID:      projectID,
		OrganizationID: project.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		EstimatedHours: req.EstimatedHours,
		EstimatedCost:  req.EstimatedCost,
		DueDate:        req.DueDate,
		CreatedBy:      profile.ProfileID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task", slog.String("task_id", task.TaskID))
		return nil, err
	}

	s.LogInfo(ctx, "Task created",
		slog.String("task_id", task.TaskID),
		slog.String("project_id", projectID))
	return &task, nil
}

// UpdateTask applies a partial update. Creator or managers only.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	task, profile, err := s.findVisibleTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireTaskMutator(task, profile); err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationFailedError("invalid task status")
		}
		task.Status = *req.Status
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = req.ActualHours
	}
	if req.EstimatedCost != nil {
		task.EstimatedCost = req.EstimatedCost
	}
	if req.ActualCost != nil {
		task.ActualCost = req.ActualCost
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.UpdateTask(ctx, *task); err != nil {
		s.LogError(ctx, err, "Failed to update task", slog.String("task_id", taskID))
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task and its assignments. Creator or managers only.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	task, profile, err := s.findVisibleTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if err := requireTaskMutator(task, profile); err != nil {
		return err
	}

	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		}
		return err
	}
	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID))
	return nil
}

// CreateAssignment logs work on a task. Members may log their own work;
// managers may log anyone's. Unique per (task, profile, date).
func (s *taskService) CreateAssignment(ctx context.Context, userID, taskID string, req dto.CreateAssignmentRequest) (*domain.TaskAssignment, error) {
	task, profile, err := s.findVisibleTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	target, err := s.orgRepo.FindProfileByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if target.OrganizationID != task.OrganizationID {
		return nil, apperrors.ErrNotFound
	}
	if target.ProfileID != profile.ProfileID && !profile.IsManager() {
		return nil, apperrors.NewForbiddenError("members may only log their own work")
	}

	now := time.Now()
	assignment := domain.TaskAssignment{
		AssignmentID: uuid.NewString(),
		TaskID:       taskID,
		ProfileID:    req.ProfileID,
		DateWorked:   req.DateWorked,
		Hours:        req.Hours,
		Cost:         req.Cost,
		Notes:        req.Notes,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.taskRepo.SaveAssignment(ctx, assignment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("work already logged for this task, profile and date")
		}
		s.LogError(ctx, err, "Failed to save assignment",
			slog.String("assignment_id", assignment.AssignmentID))
		return nil, err
	}
	return &assignment, nil
}

// ListAssignmentsByTask lists the assignments of a task visible to the caller
func (s *taskService) ListAssignmentsByTask(ctx context.Context, userID, taskID string) ([]domain.TaskAssignment, error) {
	if _, _, err := s.findVisibleTask(ctx, userID, taskID); err != nil {
		return nil, err
	}
	assignments, err := s.taskRepo.ListAssignmentsByTask(ctx, taskID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignments", slog.String("task_id", taskID))
		return nil, err
	}
	if assignments == nil {
		return []domain.TaskAssignment{}, nil
	}
	return assignments, nil
}

// findVisibleAssignment loads an assignment and checks tenant membership via
// its parent task.
func (s *taskService) findVisibleAssignment(ctx context.Context, userID, assignmentID string) (*domain.TaskAssignment, *domain.Profile, error) {
	assignment, err := s.taskRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, nil, err
	}
	task, err := s.taskRepo.FindTaskByID(ctx, assignment.TaskID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, task.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return assignment, profile, nil
}

// UpdateAssignment updates an assignment. Own rows or managers only.
func (s *taskService) UpdateAssignment(ctx context.Context, userID, assignmentID string, req dto.UpdateAssignmentRequest) (*domain.TaskAssignment, error) {
	assignment, profile, err := s.findVisibleAssignment(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.ProfileID != profile.ProfileID && !profile.IsManager() {
		return nil, apperrors.NewForbiddenError("members may only modify their own work logs")
	}

	if req.Hours != nil {
		assignment.Hours = req.Hours
	}
	if req.Cost != nil {
		assignment.Cost = req.Cost
	}
	if req.Notes != nil {
		assignment.Notes = req.Notes
	}
	assignment.UpdatedAt = time.Now()

	if err := s.taskRepo.UpdateAssignment(ctx, *assignment); err != nil {
		s.LogError(ctx, err, "Failed to update assignment",
			slog.String("assignment_id", assignmentID))
		return nil, err
	}
	return assignment, nil
}

// DeleteAssignment removes an assignment. Own rows or managers only.
func (s *taskService) DeleteAssignment(ctx context.Context, userID, assignmentID string) error {
	assignment, profile, err := s.findVisibleAssignment(ctx, userID, assignmentID)
	if err != nil {
		return err
	}
	if assignment.ProfileID != profile.ProfileID && !profile.IsManager() {
		return apperrors.NewForbiddenError("members may only delete their own work logs")
	}

	if err := s.taskRepo.DeleteAssignment(ctx, assignmentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete assignment",
				slog.String("assignment_id", assignmentID))
		}
		return err
	}
	return nil
}
