package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work inside a project.
type Task struct {
	TaskID         string           `json:"taskID" db:"task_id"`
	ProjectID      string           `json:"projectID" db:"project_id"`
	OrganizationID string           `json:"organizationID" db:"organization_id"`
	Title          string           `json:"title" db:"title"`
	Description    *string          `json:"description" db:"description"`
	Status         TaskStatus       `json:"status" db:"status"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours" db:"estimated_hours"`
	ActualHours    *decimal.Decimal `json:"actualHours" db:"actual_hours"`
	EstimatedCost  *decimal.Decimal `json:"estimatedCost" db:"estimated_cost"`
	ActualCost     *decimal.Decimal `json:"actualCost" db:"actual_cost"`
	DueDate        *time.Time       `json:"dueDate" db:"due_date"`
	CreatedBy      string           `json:"createdBy" db:"created_by"`
	AuditFields
}

// TaskAssignment records one profile's work on a task for one day.
// Unique per (task, user, date_worked).
type TaskAssignment struct {
	AssignmentID string           `json:"assignmentID" db:"assignment_id"`
	TaskID       string           `json:"taskID" db:"task_id"`
	ProfileID    string           `json:"profileID" db:"profile_id"`
	DateWorked   time.Time        `json:"dateWorked" db:"date_worked"`
	Hours        *decimal.Decimal `json:"hours" db:"hours"`
	Cost         *decimal.Decimal `json:"cost" db:"cost"`
	Notes        *string          `json:"notes" db:"notes"`
	AuditFields
}
