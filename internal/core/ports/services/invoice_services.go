package services

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
)

// BillingReaderSvc defines read operations for services, invoices, items and payments
type BillingReaderSvc interface {
	GetServiceByID(ctx context.Context, userID, serviceID string) (*domain.Service, error)
	ListServicesByProject(ctx context.Context, userID, projectID string) ([]domain.Service, error)

	GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	ListInvoicesByProject(ctx context.Context, userID, projectID string) ([]domain.Invoice, error)
	ListItemsByInvoice(ctx context.Context, userID, invoiceID string) ([]domain.InvoiceItem, error)
	ListPaymentsByInvoice(ctx context.Context, userID, invoiceID string) ([]domain.Payment, error)
}

// BillingWriterSvc defines write operations for services, invoices, items and payments
type BillingWriterSvc interface {
	CreateService(ctx context.Context, userID, projectID string, req dto.CreateServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, userID, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, userID, serviceID string) error

	CreateInvoice(ctx context.Context, userID, projectID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error

	CreateItem(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error)
	UpdateItem(ctx context.Context, userID, itemID string, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error

	// CreatePayment records a payment and returns it with the re-derived
	// parent invoice. The recompute happens in the same transaction as the
	// insert.
	CreatePayment(ctx context.Context, userID, invoiceID string, req dto.CreatePaymentRequest) (*domain.Payment, *domain.Invoice, error)
	UpdatePayment(ctx context.Context, userID, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, *domain.Invoice, error)
	DeletePayment(ctx context.Context, userID, paymentID string) (*domain.Invoice, error)
}

// BillingSvcFacade combines all billing-related service interfaces
type BillingSvcFacade interface {
	BillingReaderSvc
	BillingWriterSvc
}
