package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a project cost entry. Category is free text; the lookup table below
// only feeds suggestions.
type Expense struct {
	ExpenseID         string           `json:"expenseID" db:"expense_id"`
	ProjectID         string           `json:"projectID" db:"project_id"`
	OrganizationID    string           `json:"organizationID" db:"organization_id"`
	Description       string           `json:"description" db:"description"`
	Amount            decimal.Decimal  `json:"amount" db:"amount"`
	Category          string           `json:"category" db:"category"`
	ExpenseDate       time.Time        `json:"expenseDate" db:"expense_date"`
	VendorID          *string          `json:"vendorID" db:"vendor_id"`
	TaxRate           *decimal.Decimal `json:"taxRate" db:"tax_rate"`
	TaxAmount         *decimal.Decimal `json:"taxAmount" db:"tax_amount"`
	ManualTaxOverride bool             `json:"manualTaxOverride" db:"manual_tax_override"`
	ReceiptKey        *string          `json:"receiptKey" db:"receipt_key"`
	CreatedBy         string           `json:"createdBy" db:"created_by"`
	AuditFields
}

// ExpenseCategory is an organization-scoped lookup row.
type ExpenseCategory struct {
	CategoryID     string  `json:"categoryID" db:"category_id"`
	OrganizationID string  `json:"organizationID" db:"organization_id"`
	Name           string  `json:"name" db:"name"`
	Description    *string `json:"description" db:"description"`
	AuditFields
}

// Vendor is an organization-scoped supplier, optionally pointing at a default
// expense category.
type Vendor struct {
	VendorID          string  `json:"vendorID" db:"vendor_id"`
	OrganizationID    string  `json:"organizationID" db:"organization_id"`
	Name              string  `json:"name" db:"name"`
	ContactEmail      *string `json:"contactEmail" db:"contact_email"`
	ContactPhone      *string `json:"contactPhone" db:"contact_phone"`
	DefaultCategoryID *string `json:"defaultCategoryID" db:"default_category_id"`
	AuditFields
}
