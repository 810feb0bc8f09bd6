package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses, categories and vendors.
// List operations are scoped to the caller's own organization.
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string, projectID *string) ([]domain.Expense, error)

	ListCategories(ctx context.Context, userID string) ([]domain.ExpenseCategory, error)
	ListVendors(ctx context.Context, userID string) ([]domain.Vendor, error)
	GetVendorByID(ctx context.Context, userID, vendorID string) (*domain.Vendor, error)
}

// ExpenseWriterSvc defines write operations for expenses, categories and vendors
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense updates an expense. Creator or managers only.
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	CreateCategory(ctx context.Context, userID string, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	CreateVendor(ctx context.Context, userID string, req dto.CreateVendorRequest) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, userID, vendorID string, req dto.UpdateVendorRequest) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, userID, vendorID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
