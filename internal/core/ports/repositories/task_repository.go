package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// TaskRepositoryFacade defines persistence operations for tasks and their
// per-day assignments.
type TaskRepositoryFacade interface {
	SaveTask(ctx context.Context, task domain.Task) error
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	DeleteTask(ctx context.Context, taskID string) error

	SaveAssignment(ctx context.Context, assignment domain.TaskAssignment) error
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.TaskAssignment, error)
	ListAssignmentsByTask(ctx context.Context, taskID string) ([]domain.TaskAssignment, error)
	UpdateAssignment(ctx context.Context, assignment domain.TaskAssignment) error
	DeleteAssignment(ctx context.Context, assignmentID string) error
}
