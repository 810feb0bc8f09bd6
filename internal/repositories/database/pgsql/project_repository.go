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
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils/pagination"
)

const projectColumns = `project_id, organization_id, name, project_type, status, client_name, client_email, client_phone, address, estimated_budget, actual_cost, start_date, end_date, manager_profile_id, created_by, created_at, updated_at`

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO projects (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`, projectColumns)
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID, project.OrganizationID, project.Name, project.ProjectType,
		project.Status, project.ClientName, project.ClientEmail, project.ClientPhone,
		project.Address, project.EstimatedBudget, project.ActualCost,
		project.StartDate, project.EndDate, project.ManagerProfileID,
		project.CreatedBy, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = $1;`, projectColumns)
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project %s: %w", projectID, err)
	}
	project, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	return &project, nil
}

// ListProjectsByOrganization pages with a keyset token over (created_at, id); a
// non-nil returned token means more rows exist.
func (r *PgxProjectRepository) ListProjectsByOrganization(ctx context.Context, organizationID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE organization_id = $1`, projectColumns)
	args := []any{organizationID}

	if status != nil {
		args = append(args, *status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token")
		}
		args = append(args, createdAt, id)
		query += fmt.Sprintf(` AND (created_at, project_id) > ($%d, $%d)`, len(args)-1, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY created_at, project_id LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query projects for organization %s: %w", organizationID, err)
	}
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect projects: %w", err)
	}

	var token *string
	if len(projects) > limit {
		projects = projects[:limit]
		last := projects[len(projects)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ProjectID)
		token = &t
	}
	return projects, token, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects SET
			name = $2, project_type = $3, status = $4, client_name = $5,
			client_email = $6, client_phone = $7, address = $8,
			estimated_budget = $9, actual_cost = $10, start_date = $11,
			end_date = $12, manager_profile_id = $13, updated_at = $14
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		project.ProjectID, project.Name, project.ProjectType, project.Status,
		project.ClientName, project.ClientEmail, project.ClientPhone, project.Address,
		project.EstimatedBudget, project.ActualCost, project.StartDate, project.EndDate,
		project.ManagerProfileID, project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	query := `DELETE FROM projects WHERE project_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOrCreateByClientAndName looks up a project by (organization, client_name,
// name) and inserts the candidate only when absent, all inside one transaction
// so concurrent syncs cannot double-create.
func (r *PgxProjectRepository) FindOrCreateByClientAndName(ctx context.Context, candidate domain.Project) (*domain.Project, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer r.Rollback(ctx, tx)

	findQuery := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE organization_id = $1 AND client_name = $2 AND name = $3
		LIMIT 1;
	`, projectColumns)
	rows, err := tx.Query(ctx, findQuery, candidate.OrganizationID, candidate.ClientName, candidate.Name)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query project by client and name: %w", err)
	}
	existing, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Project])
	if err == nil {
		if commitErr := r.Commit(ctx, tx); commitErr != nil {
			return nil, false, commitErr
		}
		return &existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to find project by client and name: %w", err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO projects (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`, projectColumns)
	_, err = tx.Exec(ctx, insertQuery,
		candidate.ProjectID, candidate.OrganizationID, candidate.Name, candidate.ProjectType,
		candidate.Status, candidate.ClientName, candidate.ClientEmail, candidate.ClientPhone,
		candidate.Address, candidate.EstimatedBudget, candidate.ActualCost,
		candidate.StartDate, candidate.EndDate, candidate.ManagerProfileID,
		candidate.CreatedBy, candidate.CreatedAt, candidate.UpdatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert project %s: %w", candidate.ProjectID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}
	return &candidate, true, nil
}
