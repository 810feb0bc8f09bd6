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
	expenseColumns  = `expense_id, project_id, organization_id, description, amount, category, expense_date, vendor_id, tax_rate, tax_amount, manual_tax_override, receipt_key, created_by, created_at, updated_at`
	categoryColumns = `category_id, organization_id, name, description, created_at, updated_at`
	vendorColumns   = `vendor_id, organization_id, name, contact_email, contact_phone, default_category_id, created_at, updated_at`
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := fmt.Sprintf(`
		INSERT INTO expenses (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`, expenseColumns)
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.ProjectID, expense.OrganizationID, expense.Description,
		expense.Amount, expense.Category, expense.ExpenseDate, expense.VendorID,
		expense.TaxRate, expense.TaxAmount, expense.ManualTaxOverride, expense.ReceiptKey,
		expense.CreatedBy, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ExpenseID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE expense_id = $1;`, expenseColumns)
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, err)
	}
	expense, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) ListExpensesByOrganization(ctx context.Context, organizationID string, projectID *string) ([]domain.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE organization_id = $1`, expenseColumns)
	args := []any{organizationID}
	if projectID != nil {
		args = append(args, *projectID)
		query += ` AND project_id = $2`
	}
	query += ` ORDER BY expense_date DESC, expense_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for organization %s: %w", organizationID, err)
	}
	expenses, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Expense])
	if err != nil {
		return nil, fmt.Errorf("failed to collect expenses: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses SET
			description = $2, amount = $3, category = $4, expense_date = $5,
			vendor_id = $6, tax_rate = $7, tax_amount = $8, manual_tax_override = $9,
			receipt_key = $10, updated_at = $11
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.Description, expense.Amount, expense.Category,
		expense.ExpenseDate, expense.VendorID, expense.TaxRate, expense.TaxAmount,
		expense.ManualTaxOverride, expense.ReceiptKey, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expenses WHERE expense_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Categories ---

// SaveCategory inserts a lookup row. The per-organization unique name maps to
// ErrDuplicate.
func (r *PgxExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := fmt.Sprintf(`
		INSERT INTO expense_categories (%s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, categoryColumns)
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID, category.OrganizationID, category.Name,
		category.Description, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save expense category %s: %w", category.CategoryID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM expense_categories WHERE category_id = $1;`, categoryColumns)
	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense category %s: %w", categoryID, err)
	}
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.ExpenseCategory])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxExpenseRepository) ListCategoriesByOrganization(ctx context.Context, organizationID string) ([]domain.ExpenseCategory, error) {
	query := fmt.Sprintf(`SELECT %s FROM expense_categories WHERE organization_id = $1 ORDER BY name;`, categoryColumns)
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories for organization %s: %w", organizationID, err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ExpenseCategory])
	if err != nil {
		return nil, fmt.Errorf("failed to collect expense categories: %w", err)
	}
	return categories, nil
}

func (r *PgxExpenseRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM expense_categories WHERE category_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete expense category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Vendors ---

func (r *PgxExpenseRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	query := fmt.Sprintf(`
		INSERT INTO vendors (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, vendorColumns)
	_, err := r.Pool.Exec(ctx, query,
		vendor.VendorID, vendor.OrganizationID, vendor.Name, vendor.ContactEmail,
		vendor.ContactPhone, vendor.DefaultCategoryID, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save vendor %s: %w", vendor.VendorID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE vendor_id = $1;`, vendorColumns)
	rows, err := r.Pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor %s: %w", vendorID, err)
	}
	vendor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Vendor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor %s: %w", vendorID, err)
	}
	return &vendor, nil
}

func (r *PgxExpenseRepository) ListVendorsByOrganization(ctx context.Context, organizationID string) ([]domain.Vendor, error) {
	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE organization_id = $1 ORDER BY name;`, vendorColumns)
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors for organization %s: %w", organizationID, err)
	}
	vendors, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Vendor])
	if err != nil {
		return nil, fmt.Errorf("failed to collect vendors: %w", err)
	}
	return vendors, nil
}

func (r *PgxExpenseRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact_email = $3, contact_phone = $4,
			default_category_id = $5, updated_at = $6
		WHERE vendor_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vendor.VendorID, vendor.Name, vendor.ContactEmail, vendor.ContactPhone,
		vendor.DefaultCategoryID, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update vendor %s: %w", vendor.VendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	query := `DELETE FROM vendors WHERE vendor_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
