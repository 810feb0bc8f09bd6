package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
)

const (
	taskColumns       = `task_id, project_id, organization_id, title, description, status, estimated_hours, actual_hours, estimated_cost, actual_cost, due_date, created_by, created_at, updated_at`
	assignmentColumns = `assignment_id, task_id, profile_id, date_worked, hours, cost, notes, created_at, updated_at`
)

type PgxTaskRepository struct {
	BaseRepository
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := fmt.Sprintf(`
		INSERT INTO tasks (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`, taskColumns)
	_, err := r.Pool.Exec(ctx, query,
		task.TaskID, task.ProjectID, task.OrganizationID, task.Title, task.Description,
		task.Status, task.EstimatedHours, task.ActualHours, task.EstimatedCost,
		task.ActualCost, task.DueDate, task.CreatedBy, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save task %s: %w", task.TaskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE task_id = $1;`, taskColumns)
	rows, err := r.Pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task %s: %w", taskID, err)
	}
	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) ListTasksByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE project_id = $1 ORDER BY created_at, task_id;`, taskColumns)
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for project %s: %w", projectID, err)
	}
	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Task])
	if err != nil {
		return nil, fmt.Errorf("failed to collect tasks: %w", err)
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks SET
			title = $2, description = $3, status = $4, estimated_hours = $5,
			actual_hours = $6, estimated_cost = $7, actual_cost = $8,
			due_date = $9, updated_at = $10
		WHERE task_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		task.TaskID, task.Title, task.Description, task.Status, task.EstimatedHours,
		task.ActualHours, task.EstimatedCost, task.ActualCost, task.DueDate, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", task.TaskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	query := `DELETE FROM tasks WHERE task_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveAssignment inserts a work log row. The (task, profile, date_worked)
// unique constraint maps to ErrDuplicate.
func (r *PgxTaskRepository) SaveAssignment(ctx context.Context, assignment domain.TaskAssignment) error {
	query := fmt.Sprintf(`
		INSERT INTO task_assignments (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, assignmentColumns)
	_, err := r.Pool.Exec(ctx, query,
		assignment.AssignmentID, assignment.TaskID, assignment.ProfileID,
		assignment.DateWorked, assignment.Hours, assignment.Cost, assignment.Notes,
		assignment.CreatedAt, assignment.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save assignment %s: %w", assignment.AssignmentID, err)
	}
	return nil
}

func (r *PgxTaskRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.TaskAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM task_assignments WHERE assignment_id = $1;`, assignmentColumns)
	rows, err := r.Pool.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment %s: %w", assignmentID, err)
	}
	assignment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.TaskAssignment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment %s: %w", assignmentID, err)
	}
	return &assignment, nil
}

func (r *PgxTaskRepository) ListAssignmentsByTask(ctx context.Context, taskID string) ([]domain.TaskAssignment, error) {
	query := fmt.Sprintf(`SELECT %s FROM task_assignments WHERE task_id = $1 ORDER BY date_worked, assignment_id;`, assignmentColumns)
	rows, err := r.Pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for task %s: %w", taskID, err)
	}
	assignments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.TaskAssignment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect assignments: %w", err)
	}
	return assignments, nil
}

func (r *PgxTaskRepository) UpdateAssignment(ctx context.Context, assignment domain.TaskAssignment) error {
	query := `
		UPDATE task_assignments SET hours = $2, cost = $3, notes = $4, updated_at = $5
		WHERE assignment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		assignment.AssignmentID, assignment.Hours, assignment.Cost,
		assignment.Notes, assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update assignment %s: %w", assignment.AssignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteAssignment(ctx context.Context, assignmentID string) error {
	query := `DELETE FROM task_assignments WHERE assignment_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", assignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
