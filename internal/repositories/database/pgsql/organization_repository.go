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

const profileColumns = `profile_id, user_id, organization_id, full_name, role, created_at, updated_at`

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// ProvisionSignup inserts the user, their new organization and the creator's
// admin profile in a single transaction. A duplicate email maps to ErrDuplicate.
func (r *PgxOrganizationRepository) ProvisionSignup(ctx context.Context, user domain.User, org domain.Organization, profile domain.Profile) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	userQuery := `
		INSERT INTO users (user_id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, userQuery,
		user.UserID, user.Email, user.PasswordHash, user.Name, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert user %s: %w", user.UserID, err)
	}

	orgQuery := `
		INSERT INTO organizations (organization_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, orgQuery,
		org.OrganizationID, org.Name, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert organization %s: %w", org.OrganizationID, err)
	}

	profileQuery := `
		INSERT INTO profiles (profile_id, user_id, organization_id, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, profileQuery,
		profile.ProfileID, profile.UserID, profile.OrganizationID,
		profile.FullName, profile.Role, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert profile %s: %w", profile.ProfileID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT organization_id, name, created_at, updated_at FROM organizations WHERE organization_id = $1;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query organization %s: %w", organizationID, err)
	}
	org, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Organization])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}
	return &org, nil
}

func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `UPDATE organizations SET name = $2, updated_at = $3 WHERE organization_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, org.OrganizationID, org.Name, org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", org.OrganizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrganization removes the tenant root; ON DELETE CASCADE takes the rest.
func (r *PgxOrganizationRepository) DeleteOrganization(ctx context.Context, organizationID string) error {
	query := `DELETE FROM organizations WHERE organization_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete organization %s: %w", organizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProfileByUserID is a plain single-row lookup; authorization happens in
// the service layer on top of it.
func (r *PgxOrganizationRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE user_id = $1;`, profileColumns)
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile for user %s: %w", userID, err)
	}
	profile, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *PgxOrganizationRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE profile_id = $1;`, profileColumns)
	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profile %s: %w", profileID, err)
	}
	profile, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile %s: %w", profileID, err)
	}
	return &profile, nil
}

func (r *PgxOrganizationRepository) ListProfilesByOrganization(ctx context.Context, organizationID string) ([]domain.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE organization_id = $1 ORDER BY created_at, profile_id;`, profileColumns)
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles for organization %s: %w", organizationID, err)
	}
	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Profile])
	if err != nil {
		return nil, fmt.Errorf("failed to collect profiles: %w", err)
	}
	return profiles, nil
}

func (r *PgxOrganizationRepository) UpdateProfileRole(ctx context.Context, profileID string, role domain.ProfileRole) error {
	query := `UPDATE profiles SET role = $2, updated_at = now() WHERE profile_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, profileID, role)
	if err != nil {
		return fmt.Errorf("failed to update role for profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
