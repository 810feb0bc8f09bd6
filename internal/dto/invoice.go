package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// --- Service DTOs ---

// CreateServiceRequest defines data for a billable offering under a project.
type CreateServiceRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   *string         `json:"description"`
	UnitPrice     decimal.Decimal `json:"unitPrice" binding:"required"`
	PaymentStatus *string         `json:"paymentStatus"`
}

// UpdateServiceRequest defines data for updating a service.
type UpdateServiceRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	PaymentStatus *string          `json:"paymentStatus"`
}

// ServiceResponse defines data returned for a service.
type ServiceResponse struct {
	ServiceID      string          `json:"serviceID"`
	ProjectID      string          `json:"projectID"`
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	PaymentStatus  *string         `json:"paymentStatus,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToServiceResponse converts domain.Service to DTO.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:      s.ServiceID,
		ProjectID:      s.ProjectID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Description:    s.Description,
		UnitPrice:      s.UnitPrice,
		PaymentStatus:  s.PaymentStatus,
		CreatedAt:      s.CreatedAt,
	}
}

// ListServicesResponse wraps a list of services.
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ToListServicesResponse converts a slice of domain.Service to DTO.
func ToListServicesResponse(ss []domain.Service) ListServicesResponse {
	list := make([]ServiceResponse, len(ss))
	for i := range ss {
		list[i] = ToServiceResponse(&ss[i])
	}
	return ListServicesResponse{Services: list}
}

// --- Invoice DTOs ---

// CreateInvoiceRequest defines data for creating an invoice under a project.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Status        string          `json:"status"`
	IssueDate     *time.Time      `json:"issueDate"`
	DueDate       *time.Time      `json:"dueDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes         *string         `json:"notes"`
}

// UpdateInvoiceRequest defines data for updating an invoice. Paid amount and
// balance due are derived and cannot be set directly.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string          `json:"invoiceNumber"`
	Status        *string          `json:"status"`
	IssueDate     *time.Time       `json:"issueDate"`
	DueDate       *time.Time       `json:"dueDate"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	Notes         *string          `json:"notes"`
}

// InvoiceResponse defines data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string          `json:"invoiceID"`
	ProjectID      string          `json:"projectID"`
	OrganizationID string          `json:"organizationID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	Status         string          `json:"status"`
	IssueDate      *time.Time      `json:"issueDate,omitempty"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToInvoiceResponse converts domain.Invoice to DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		ProjectID:      inv.ProjectID,
		OrganizationID: inv.OrganizationID,
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         inv.Status,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		BalanceDue:     inv.BalanceDue,
		Notes:          inv.Notes,
		CreatedBy:      inv.CreatedBy,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to DTO.
func ToListInvoicesResponse(invs []domain.Invoice) ListInvoicesResponse {
	list := make([]InvoiceResponse, len(invs))
	for i := range invs {
		list[i] = ToInvoiceResponse(&invs[i])
	}
	return ListInvoicesResponse{Invoices: list}
}

// --- Invoice item DTOs ---

// CreateInvoiceItemRequest defines data for adding a line to an invoice.
// TotalPrice is stored as given; it is not forced to equal quantity x unit price.
type CreateInvoiceItemRequest struct {
	ServiceID   *string         `json:"serviceID"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TotalPrice  decimal.Decimal `json:"totalPrice" binding:"required"`
}

// UpdateInvoiceItemRequest defines data for updating a line.
type UpdateInvoiceItemRequest struct {
	ServiceID   *string          `json:"serviceID"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TotalPrice  *decimal.Decimal `json:"totalPrice"`
}

// InvoiceItemResponse defines data returned for an invoice line.
type InvoiceItemResponse struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	ServiceID   *string         `json:"serviceID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// ToInvoiceItemResponse converts domain.InvoiceItem to DTO.
func ToInvoiceItemResponse(it *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      it.ItemID,
		InvoiceID:   it.InvoiceID,
		ServiceID:   it.ServiceID,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TotalPrice:  it.TotalPrice,
	}
}

// ListInvoiceItemsResponse wraps a list of invoice lines.
type ListInvoiceItemsResponse struct {
	Items []InvoiceItemResponse `json:"items"`
}

// ToListInvoiceItemsResponse converts a slice of domain.InvoiceItem to DTO.
func ToListInvoiceItemsResponse(its []domain.InvoiceItem) ListInvoiceItemsResponse {
	list := make([]InvoiceItemResponse, len(its))
	for i := range its {
		list[i] = ToInvoiceItemResponse(&its[i])
	}
	return ListInvoiceItemsResponse{Items: list}
}

// --- Payment DTOs ---

// CreatePaymentRequest defines data for recording a payment against an invoice.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Method      *string         `json:"method"`
	Notes       *string         `json:"notes"`
}

// UpdatePaymentRequest defines data for correcting a payment.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Method      *string          `json:"method"`
	Notes       *string          `json:"notes"`
}

// PaymentResponse returns the payment together with the re-derived invoice
// totals, so the caller sees the post-mutation state atomically.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      *string         `json:"method,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	Invoice     InvoiceResponse `json:"invoice"`
}

// ToPaymentResponse converts a payment plus its recalculated invoice to DTO.
func ToPaymentResponse(p *domain.Payment, inv *domain.Invoice) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		Invoice:     ToInvoiceResponse(inv),
	}
}

// PaymentSummary is a payment row without the embedded invoice.
type PaymentSummary struct {
	PaymentID   string          `json:"paymentID"`
	InvoiceID   string          `json:"invoiceID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      *string         `json:"method,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListPaymentsResponse wraps a list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentSummary `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to DTO.
func ToListPaymentsResponse(ps []domain.Payment) ListPaymentsResponse {
	list := make([]PaymentSummary, len(ps))
	for i, p := range ps {
		list[i] = PaymentSummary{
			PaymentID:   p.PaymentID,
			InvoiceID:   p.InvoiceID,
			Amount:      p.Amount,
			PaymentDate: p.PaymentDate,
			Method:      p.Method,
			Notes:       p.Notes,
			CreatedAt:   p.CreatedAt,
		}
	}
	return ListPaymentsResponse{Payments: list}
}
