package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence for expenses, expense
// categories and vendors.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesByOrganization(ctx context.Context, organizationID string, projectID *string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListCategoriesByOrganization(ctx context.Context, organizationID string) ([]domain.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendorsByOrganization(ctx context.Context, organizationID string) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	DeleteVendor(ctx context.Context, vendorID string) error
}
