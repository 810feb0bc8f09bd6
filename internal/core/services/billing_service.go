package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/apperrors"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portsrepo "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/repositories"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils/billing"
)

// billingService implements the BillingSvcFacade interface
type billingService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewBillingService creates a new billing service with the provided dependencies
func NewBillingService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	authorizer portssvc.AuthorizerSvcFacade,
) portssvc.BillingSvcFacade {
	return &billingService{
		BaseService: BaseService{Authorizer: authorizer},
		invoiceRepo: invoiceRepo,
		projectRepo: projectRepo,
	}
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// findVisibleProject checks the caller belongs to the project's organization.
func (s *billingService) findVisibleProject(ctx context.Context, userID, projectID string) (*domain.Project, *domain.Profile, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, project.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return project, profile, nil
}

// findVisibleInvoice checks the caller belongs to the invoice's organization.
func (s *billingService) findVisibleInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, *domain.Profile, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.Authorizer.RequireMember(ctx, userID, invoice.OrganizationID)
	if err != nil {
		return nil, nil, err
	}
	return invoice, profile, nil
}

// findBillableInvoice is findVisibleInvoice plus a billing-role check. Invoice
// and payment mutations go through it.
func (s *billingService) findBillableInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireBiller(ctx, userID, invoice.OrganizationID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// findManagedInvoice is findVisibleInvoice plus a manager-role check. Line
// item mutations go through it.
func (s *billingService) findManagedInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, invoice.OrganizationID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// --- Services ---

// GetServiceByID retrieves a billable service visible to the caller
func (s *billingService) GetServiceByID(ctx context.Context, userID, serviceID string) (*domain.Service, error) {
	svc, err := s.invoiceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireMember(ctx, userID, svc.OrganizationID); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListServicesByProject lists a project's billable services
func (s *billingService) ListServicesByProject(ctx context.Context, userID, projectID string) ([]domain.Service, error) {
	if _, _, err := s.findVisibleProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	services, err := s.invoiceRepo.ListServicesByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list services", slog.String("project_id", projectID))
		return nil, err
	}
	if services == nil {
		return []domain.Service{}, nil
	}
	return services, nil
}

// CreateService creates a billable service under a project
func (s *billingService) CreateService(ctx context.Context, userID, projectID string, req dto.CreateServiceRequest) (*domain.Service, error) {
	project, _, err := s.findVisibleProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	svc := domain.Service{
		ServiceID:      uuid.NewString(),
		ProjectID:      projectID,
		OrganizationID: project.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		PaymentStatus:  req.PaymentStatus,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.invoiceRepo.SaveService(ctx, svc); err != nil {
		s.LogError(ctx, err, "Failed to save service", slog.String("service_id", svc.ServiceID))
		return nil, err
	}
	return &svc, nil
}

// findManagedService loads a service and checks the caller holds a manager
// role in its organization.
func (s *billingService) findManagedService(ctx context.Context, userID, serviceID string) (*domain.Service, error) {
	svc, err := s.invoiceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authorizer.RequireManager(ctx, userID, svc.OrganizationID); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService updates a billable service
func (s *billingService) UpdateService(ctx context.Context, userID, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.findManagedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.UnitPrice != nil {
		svc.UnitPrice = *req.UnitPrice
	}
	if req.PaymentStatus != nil {
		svc.PaymentStatus = req.PaymentStatus
	}
	svc.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateService(ctx, *svc); err != nil {
		s.LogError(ctx, err, "Failed to update service", slog.String("service_id", serviceID))
		return nil, err
	}
	return svc, nil
}

// DeleteService removes a billable service
func (s *billingService) DeleteService(ctx context.Context, userID, serviceID string) error {
	if _, err := s.findManagedService(ctx, userID, serviceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteService(ctx, serviceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete service", slog.String("service_id", serviceID))
		}
		return err
	}
	return nil
}

// --- Invoices ---

// GetInvoiceByID retrieves an invoice visible to the caller
func (s *billingService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, _, err := s.findVisibleInvoice(ctx, userID, invoiceID)
	return invoice, err
}

// ListInvoicesByProject lists a project's invoices
func (s *billingService) ListInvoicesByProject(ctx context.Context, userID, projectID string) ([]domain.Invoice, error) {
	if _, _, err := s.findVisibleProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListInvoicesByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("project_id", projectID))
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// CreateInvoice creates an invoice under a project. Paid amount starts at zero
// and balance due equals the total.
func (s *billingService) CreateInvoice(ctx context.Context, userID, projectID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	project, profile, err := s.findVisibleProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	paid, balance := billing.CalculateInvoiceTotals(req.TotalAmount, nil)

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		ProjectID:      projectID,
		OrganizationID: project.OrganizationID,
		InvoiceNumber:  req.InvoiceNumber,
		Status:         status,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		TotalAmount:    req.TotalAmount,
		PaidAmount:     paid,
		BalanceDue:     balance,
		Notes:          req.Notes,
		CreatedBy:      profile.ProfileID,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("invoice number already used in this organization")
		}
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("project_id", projectID))
	return &invoice, nil
}

// UpdateInvoice updates invoice fields. Changing the total re-derives the
// balance in the repository against the current payment sum.
func (s *billingService) UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	invoice, err := s.findBillableInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.IssueDate != nil {
		invoice.IssueDate = req.IssueDate
	}
	if req.DueDate != nil {
		invoice.DueDate = req.DueDate
	}
	if req.TotalAmount != nil {
		invoice.TotalAmount = *req.TotalAmount
		invoice.BalanceDue = invoice.TotalAmount.Sub(invoice.PaidAmount)
	}
	if req.Notes != nil {
		invoice.Notes = req.Notes
	}
	invoice.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice with its items and payments
func (s *billingService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	if _, err := s.findBillableInvoice(ctx, userID, invoiceID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		}
		return err
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// --- Invoice items ---

// ListItemsByInvoice lists an invoice's line items
func (s *billingService) ListItemsByInvoice(ctx context.Context, userID, invoiceID string) ([]domain.InvoiceItem, error) {
	if _, _, err := s.findVisibleInvoice(ctx, userID, invoiceID); err != nil {
		return nil, err
	}
	items, err := s.invoiceRepo.ListItemsByInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice items", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if items == nil {
		return []domain.InvoiceItem{}, nil
	}
	return items, nil
}

// CreateItem adds a line to an invoice. TotalPrice is stored as given.
func (s *billingService) CreateItem(ctx context.Context, userID, invoiceID string, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	invoice, err := s.findManagedInvoice(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.ServiceID != nil {
		svc, err := s.invoiceRepo.FindServiceByID(ctx, *req.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.OrganizationID != invoice.OrganizationID {
			return nil, apperrors.ErrNotFound
		}
	}

	now := time.Now()
	item := domain.InvoiceItem{
		ItemID:      uuid.NewString(),
		InvoiceID:   invoiceID,
		ServiceID:   req.ServiceID,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalPrice:  req.TotalPrice,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.invoiceRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save invoice item", slog.String("item_id", item.ItemID))
		return nil, err
	}
	return &item, nil
}

// findManagedItem loads an item and checks the caller holds a manager role in
// the owning invoice's organization.
func (s *billingService) findManagedItem(ctx context.Context, userID, itemID string) (*domain.InvoiceItem, error) {
	item, err := s.invoiceRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findManagedInvoice(ctx, userID, item.InvoiceID); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem updates a line item
func (s *billingService) UpdateItem(ctx context.Context, userID, itemID string, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	item, err := s.findManagedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.ServiceID != nil {
		item.ServiceID = req.ServiceID
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.TotalPrice != nil {
		item.TotalPrice = *req.TotalPrice
	}
	item.UpdatedAt = time.Now()

	if err := s.invoiceRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update invoice item", slog.String("item_id", itemID))
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a line item
func (s *billingService) DeleteItem(ctx context.Context, userID, itemID string) error {
	if _, err := s.findManagedItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.invoiceRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete invoice item", slog.String("item_id", itemID))
		}
		return err
	}
	return nil
}

// --- Payments ---

// ListPaymentsByInvoice lists an invoice's payments
func (s *billingService) ListPaymentsByInvoice(ctx context.Context, userID, invoiceID string) ([]domain.Payment, error) {
	if _, _, err := s.findVisibleInvoice(ctx, userID, invoiceID); err != nil {
		return nil, err
	}
	payments, err := s.invoiceRepo.ListPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// CreatePayment records a payment. The repository inserts the row and
// re-derives the invoice totals in one transaction; the refreshed invoice
// comes back with the payment.
func (s *billingService) CreatePayment(ctx context.Context, userID, invoiceID string, req dto.CreatePaymentRequest) (*domain.Payment, *domain.Invoice, error) {
	if _, err := s.findBillableInvoice(ctx, userID, invoiceID); err != nil {
		return nil, nil, err
	}
	if err := billing.ValidatePaymentAmount(req.Amount); err != nil {
		return nil, nil, apperrors.NewValidationFailedError(err.Error())
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		InvoiceID:   invoiceID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	invoice, err := s.invoiceRepo.SavePaymentAndRecalculate(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("payment_id", payment.PaymentID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", invoiceID))
	return &payment, invoice, nil
}

// UpdatePayment corrects a payment and returns the re-derived invoice
func (s *billingService) UpdatePayment(ctx context.Context, userID, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, *domain.Invoice, error) {
	payment, err := s.invoiceRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := s.findBillableInvoice(ctx, userID, payment.InvoiceID); err != nil {
		return nil, nil, err
	}

	if req.Amount != nil {
		if err := billing.ValidatePaymentAmount(*req.Amount); err != nil {
			return nil, nil, apperrors.NewValidationFailedError(err.Error())
		}
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Method != nil {
		payment.Method = req.Method
	}
	if req.Notes != nil {
		payment.Notes = req.Notes
	}
	payment.UpdatedAt = time.Now()

	invoice, err := s.invoiceRepo.UpdatePaymentAndRecalculate(ctx, *payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, nil, err
	}
	return payment, invoice, nil
}

// DeletePayment removes a payment and returns the re-derived invoice
func (s *billingService) DeletePayment(ctx context.Context, userID, paymentID string) (*domain.Invoice, error) {
	payment, err := s.invoiceRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findBillableInvoice(ctx, userID, payment.InvoiceID); err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.DeletePaymentAndRecalculate(ctx, paymentID, payment.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return invoice, nil
}
