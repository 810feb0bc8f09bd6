package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// CreateTaskRequest defines data for creating a task inside a project.
type CreateTaskRequest struct {
	Title          string            `json:"title" binding:"required"`
	Description    *string           `json:"description"`
	Status         domain.TaskStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	EstimatedHours *decimal.Decimal  `json:"estimatedHours"`
	EstimatedCost  *decimal.Decimal  `json:"estimatedCost"`
	DueDate        *time.Time        `json:"dueDate"`
}

// UpdateTaskRequest defines data for partially updating a task.
type UpdateTaskRequest struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Status         *domain.TaskStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	EstimatedHours *decimal.Decimal   `json:"estimatedHours"`
	ActualHours    *decimal.Decimal   `json:"actualHours"`
	EstimatedCost  *decimal.Decimal   `json:"estimatedCost"`
	ActualCost     *decimal.Decimal   `json:"actualCost"`
	DueDate        *time.Time         `json:"dueDate"`
}

// TaskResponse defines data returned for a task.
type TaskResponse struct {
	TaskID         string            `json:"taskID"`
	ProjectID      string            `json:"projectID"`
	OrganizationID string            `json:"organizationID"`
	Title          string            `json:"title"`
	Description    *string           `json:"description,omitempty"`
	Status         domain.TaskStatus `json:"status"`
	EstimatedHours *decimal.Decimal  `json:"estimatedHours,omitempty"`
	ActualHours    *decimal.Decimal  `json:"actualHours,omitempty"`
	EstimatedCost  *decimal.Decimal  `json:"estimatedCost,omitempty"`
	ActualCost     *decimal.Decimal  `json:"actualCost,omitempty"`
	DueDate        *time.Time        `json:"dueDate,omitempty"`
	CreatedBy      string            `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ToTaskResponse converts domain.Task to DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:         t.TaskID,
		ProjectID:      t.ProjectID,
		OrganizationID: t.OrganizationID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		EstimatedCost:  t.EstimatedCost,
		ActualCost:     t.ActualCost,
		DueDate:        t.DueDate,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ListTasksResponse wraps a list of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToListTasksResponse converts a slice of domain.Task to DTO.
func ToListTasksResponse(ts []domain.Task) ListTasksResponse {
	list := make([]TaskResponse, len(ts))
	for i := range ts {
		list[i] = ToTaskResponse(&ts[i])
	}
	return ListTasksResponse{Tasks: list}
}

// --- Task assignment DTOs ---

// CreateAssignmentRequest records one profile's work on a task for a day.
type CreateAssignmentRequest struct {
	ProfileID  string           `json:"profileID" binding:"required"`
	DateWorked time.Time        `json:"dateWorked" binding:"required"`
	Hours      *decimal.Decimal `json:"hours"`
	Cost       *decimal.Decimal `json:"cost"`
	Notes      *string          `json:"notes"`
}

// UpdateAssignmentRequest defines data for updating an assignment.
type UpdateAssignmentRequest struct {
	Hours *decimal.Decimal `json:"hours"`
	Cost  *decimal.Decimal `json:"cost"`
	Notes *string          `json:"notes"`
}

// AssignmentResponse defines data returned for a task assignment.
type AssignmentResponse struct {
	AssignmentID string           `json:"assignmentID"`
	TaskID       string           `json:"taskID"`
	ProfileID    string           `json:"profileID"`
	DateWorked   time.Time        `json:"dateWorked"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToAssignmentResponse converts domain.TaskAssignment to DTO.
func ToAssignmentResponse(a *domain.TaskAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: a.AssignmentID,
		TaskID:       a.TaskID,
		ProfileID:    a.ProfileID,
		DateWorked:   a.DateWorked,
		Hours:        a.Hours,
		Cost:         a.Cost,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
	}
}

// ListAssignmentsResponse wraps a list of task assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// ToListAssignmentsResponse converts a slice of domain.TaskAssignment to DTO.
func ToListAssignmentsResponse(as []domain.TaskAssignment) ListAssignmentsResponse {
	list := make([]AssignmentResponse, len(as))
	for i := range as {
		list[i] = ToAssignmentResponse(&as[i])
	}
	return ListAssignmentsResponse{Assignments: list}
}
