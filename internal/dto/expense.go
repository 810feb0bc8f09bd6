package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// --- Expense DTOs ---

// CreateExpenseRequest defines data for recording a project expense.
type CreateExpenseRequest struct {
	ProjectID         string           `json:"projectID" binding:"required"`
	Description       string           `json:"description" binding:"required"`
	Amount            decimal.Decimal  `json:"amount" binding:"required"`
	Category          string           `json:"category" binding:"required"`
	ExpenseDate       time.Time        `json:"expenseDate" binding:"required"`
	VendorID          *string          `json:"vendorID"`
	TaxRate           *decimal.Decimal `json:"taxRate"`
	TaxAmount         *decimal.Decimal `json:"taxAmount"`
	ManualTaxOverride bool             `json:"manualTaxOverride"`
}

// UpdateExpenseRequest defines data for updating an expense.
type UpdateExpenseRequest struct {
	Description       *string          `json:"description"`
	Amount            *decimal.Decimal `json:"amount"`
	Category          *string          `json:"category"`
	ExpenseDate       *time.Time       `json:"expenseDate"`
	VendorID          *string          `json:"vendorID"`
	TaxRate           *decimal.Decimal `json:"taxRate"`
	TaxAmount         *decimal.Decimal `json:"taxAmount"`
	ManualTaxOverride *bool            `json:"manualTaxOverride"`
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID         string           `json:"expenseID"`
	ProjectID         string           `json:"projectID"`
	OrganizationID    string           `json:"organizationID"`
	Description       string           `json:"description"`
	Amount            decimal.Decimal  `json:"amount"`
	Category          string           `json:"category"`
	ExpenseDate       time.Time        `json:"expenseDate"`
	VendorID          *string          `json:"vendorID,omitempty"`
	TaxRate           *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount         *decimal.Decimal `json:"taxAmount,omitempty"`
	ManualTaxOverride bool             `json:"manualTaxOverride"`
	ReceiptKey        *string          `json:"receiptKey,omitempty"`
	CreatedBy         string           `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:         e.ExpenseID,
		ProjectID:         e.ProjectID,
		OrganizationID:    e.OrganizationID,
		Description:       e.Description,
		Amount:            e.Amount,
		Category:          e.Category,
		ExpenseDate:       e.ExpenseDate,
		VendorID:          e.VendorID,
		TaxRate:           e.TaxRate,
		TaxAmount:         e.TaxAmount,
		ManualTaxOverride: e.ManualTaxOverride,
		ReceiptKey:        e.ReceiptKey,
		CreatedBy:         e.CreatedBy,
		CreatedAt:         e.CreatedAt,
	}
}

// ListExpensesResponse wraps a list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts a slice of domain.Expense to DTO.
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	list := make([]ExpenseResponse, len(es))
	for i := range es {
		list[i] = ToExpenseResponse(&es[i])
	}
	return ListExpensesResponse{Expenses: list}
}

// --- Expense category DTOs ---

// CreateExpenseCategoryRequest defines data for an organization lookup category.
type CreateExpenseCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// ExpenseCategoryResponse defines data returned for a category.
type ExpenseCategoryResponse struct {
	CategoryID     string  `json:"categoryID"`
	OrganizationID string  `json:"organizationID"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
}

// ToExpenseCategoryResponse converts domain.ExpenseCategory to DTO.
func ToExpenseCategoryResponse(c *domain.ExpenseCategory) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		CategoryID:     c.CategoryID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Description:    c.Description,
	}
}

// ListExpenseCategoriesResponse wraps a list of categories.
type ListExpenseCategoriesResponse struct {
	Categories []ExpenseCategoryResponse `json:"categories"`
}

// ToListExpenseCategoriesResponse converts a slice of categories to DTO.
func ToListExpenseCategoriesResponse(cs []domain.ExpenseCategory) ListExpenseCategoriesResponse {
	list := make([]ExpenseCategoryResponse, len(cs))
	for i := range cs {
		list[i] = ToExpenseCategoryResponse(&cs[i])
	}
	return ListExpenseCategoriesResponse{Categories: list}
}

// --- Vendor DTOs ---

// CreateVendorRequest defines data for an organization vendor.
type CreateVendorRequest struct {
	Name              string  `json:"name" binding:"required"`
	ContactEmail      *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone      *string `json:"contactPhone"`
	DefaultCategoryID *string `json:"defaultCategoryID"`
}

// UpdateVendorRequest defines data for updating a vendor.
type UpdateVendorRequest struct {
	Name              *string `json:"name"`
	ContactEmail      *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone      *string `json:"contactPhone"`
	DefaultCategoryID *string `json:"defaultCategoryID"`
}

// VendorResponse defines data returned for a vendor.
type VendorResponse struct {
	VendorID          string  `json:"vendorID"`
	OrganizationID    string  `json:"organizationID"`
	Name              string  `json:"name"`
	ContactEmail      *string `json:"contactEmail,omitempty"`
	ContactPhone      *string `json:"contactPhone,omitempty"`
	DefaultCategoryID *string `json:"defaultCategoryID,omitempty"`
}

// ToVendorResponse converts domain.Vendor to DTO.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:          v.VendorID,
		OrganizationID:    v.OrganizationID,
		Name:              v.Name,
		ContactEmail:      v.ContactEmail,
		ContactPhone:      v.ContactPhone,
		DefaultCategoryID: v.DefaultCategoryID,
	}
}

// ListVendorsResponse wraps a list of vendors.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// ToListVendorsResponse converts a slice of domain.Vendor to DTO.
func ToListVendorsResponse(vs []domain.Vendor) ListVendorsResponse {
	list := make([]VendorResponse, len(vs))
	for i := range vs {
		list[i] = ToVendorResponse(&vs[i])
	}
	return ListVendorsResponse{Vendors: list}
}
