package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a billable offering attached to a project.
type Service struct {
	ServiceID      string          `json:"serviceID" db:"service_id"`
	ProjectID      string          `json:"projectID" db:"project_id"`
	OrganizationID string          `json:"organizationID" db:"organization_id"`
	Name           string          `json:"name" db:"name"`
	Description    *string         `json:"description" db:"description"`
	UnitPrice      decimal.Decimal `json:"unitPrice" db:"unit_price"`
	PaymentStatus  *string         `json:"paymentStatus" db:"payment_status"`
	AuditFields
}

// Invoice bills a project. Status is free-form text (draft/sent/paid/overdue by
// convention, not enforced in schema).
//
// Invariant, re-derived on every payment mutation inside the same transaction:
// PaidAmount = sum of the invoice's payment amounts (0 when none) and
// BalanceDue = TotalAmount - PaidAmount.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID" db:"invoice_id"`
	ProjectID      string          `json:"projectID" db:"project_id"`
	OrganizationID string          `json:"organizationID" db:"organization_id"`
	InvoiceNumber  string          `json:"invoiceNumber" db:"invoice_number"`
	Status         string          `json:"status" db:"status"`
	IssueDate      *time.Time      `json:"issueDate" db:"issue_date"`
	DueDate        *time.Time      `json:"dueDate" db:"due_date"`
	TotalAmount    decimal.Decimal `json:"totalAmount" db:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	BalanceDue     decimal.Decimal `json:"balanceDue" db:"balance_due"`
	Notes          *string         `json:"notes" db:"notes"`
	CreatedBy      string          `json:"createdBy" db:"created_by"`
	AuditFields
}

// InvoiceItem is a line on an invoice, optionally priced from a Service.
// TotalPrice is stored independently of Quantity*UnitPrice; mismatches (manual
// discounts) are allowed.
type InvoiceItem struct {
	ItemID      string          `json:"itemID" db:"item_id"`
	InvoiceID   string          `json:"invoiceID" db:"invoice_id"`
	ServiceID   *string         `json:"serviceID" db:"service_id"`
	Description string          `json:"description" db:"description"`
	Quantity    decimal.Decimal `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice  decimal.Decimal `json:"totalPrice" db:"total_price"`
	AuditFields
}

// Payment records money received against an invoice.
type Payment struct {
	PaymentID   string          `json:"paymentID" db:"payment_id"`
	InvoiceID   string          `json:"invoiceID" db:"invoice_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate time.Time       `json:"paymentDate" db:"payment_date"`
	Method      *string         `json:"method" db:"method"`
	Notes       *string         `json:"notes" db:"notes"`
	AuditFields
}
