package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// TaskReaderSvc defines read operations for tasks and assignments
type TaskReaderSvc interface {
	GetTaskByID(ctx context.Context, userID, taskID string) (*domain.Task, error)
	ListTasksByProject(ctx context.Context, userID, projectID string) ([]domain.Task, error)
	ListAssignmentsByTask(ctx context.Context, userID, taskID string) ([]domain.TaskAssignment, error)
}

// TaskWriterSvc defines write operations for tasks and assignments
type TaskWriterSvc interface {
	CreateTask(ctx context.Context, userID, projectID string, req dto.CreateTaskRequest) (*domain.Task, error)

	// UpdateTask updates a task. Creator or managers only.
	UpdateTask(ctx context.Context, userID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task and its assignments. Creator or managers only.
	DeleteTask(ctx context.Context, userID, taskID string) error

	// CreateAssignment logs work on a task. Members may log their own work;
	// managers may log anyone's.
	CreateAssignment(ctx context.Context, userID, taskID string, req dto.CreateAssignmentRequest) (*domain.TaskAssignment, error)

	UpdateAssignment(ctx context.Context, userID, assignmentID string, req dto.UpdateAssignmentRequest) (*domain.TaskAssignment, error)
	DeleteAssignment(ctx context.Context, userID, assignmentID string) error
}

// TaskSvcFacade combines all task-related service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
