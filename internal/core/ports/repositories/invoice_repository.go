package repositories

import (
	"context"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence for billing: services, invoices,
// invoice items and payments. Every payment mutation re-derives the parent
// invoice's paid_amount/balance_due inside the same transaction and returns the
// invoice as committed.
type InvoiceRepositoryFacade interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServicesByProject(ctx context.Context, projectID string) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error

	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoicesByProject(ctx context.Context, projectID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
	DeleteInvoice(ctx context.Context, invoiceID string) error

	SaveItem(ctx context.Context, item domain.InvoiceItem) error
	FindItemByID(ctx context.Context, itemID string) (*domain.InvoiceItem, error)
	ListItemsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	UpdateItem(ctx context.Context, item domain.InvoiceItem) error
	DeleteItem(ctx context.Context, itemID string) error

	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)
	SavePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error)
	UpdatePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error)
	DeletePaymentAndRecalculate(ctx context.Context, paymentID, invoiceID string) (*domain.Invoice, error)
}
