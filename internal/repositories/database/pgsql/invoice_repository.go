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
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils/billing"
)

const (
	serviceColumns = `service_id, project_id, organization_id, name, description, unit_price, payment_status, created_at, updated_at`
	invoiceColumns = `invoice_id, project_id, organization_id, invoice_number, status, issue_date, due_date, total_amount, paid_amount, balance_due, notes, created_by, created_at, updated_at`
	itemColumns    = `item_id, invoice_id, service_id, description, quantity, unit_price, total_price, created_at, updated_at`
	paymentColumns = `payment_id, invoice_id, amount, payment_date, method, notes, created_at, updated_at`
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// --- Services ---

func (r *PgxInvoiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := fmt.Sprintf(`
		INSERT INTO services (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, serviceColumns)
	_, err := r.Pool.Exec(ctx, query,
		service.ServiceID, service.ProjectID, service.OrganizationID, service.Name,
		service.Description, service.UnitPrice, service.PaymentStatus,
		service.CreatedAt, service.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save service %s: %w", service.ServiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE service_id = $1;`, serviceColumns)
	rows, err := r.Pool.Query(ctx, query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service %s: %w", serviceID, err)
	}
	service, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Service])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service %s: %w", serviceID, err)
	}
	return &service, nil
}

func (r *PgxInvoiceRepository) ListServicesByProject(ctx context.Context, projectID string) ([]domain.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE project_id = $1 ORDER BY created_at, service_id;`, serviceColumns)
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services for project %s: %w", projectID, err)
	}
	services, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect services: %w", err)
	}
	return services, nil
}

func (r *PgxInvoiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
		UPDATE services SET name = $2, description = $3, unit_price = $4,
			payment_status = $5, updated_at = $6
		WHERE service_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		service.ServiceID, service.Name, service.Description, service.UnitPrice,
		service.PaymentStatus, service.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	query := `DELETE FROM services WHERE service_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", serviceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Invoices ---

// SaveInvoice inserts an invoice. The per-organization unique invoice number
// maps to ErrDuplicate.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := fmt.Sprintf(`
		INSERT INTO invoices (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`, invoiceColumns)
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID, invoice.ProjectID, invoice.OrganizationID, invoice.InvoiceNumber,
		invoice.Status, invoice.IssueDate, invoice.DueDate, invoice.TotalAmount,
		invoice.PaidAmount, invoice.BalanceDue, invoice.Notes, invoice.CreatedBy,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE invoice_id = $1;`, invoiceColumns)
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice %s: %w", invoiceID, err)
	}
	invoice, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByProject(ctx context.Context, projectID string) ([]domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE project_id = $1 ORDER BY created_at, invoice_id;`, invoiceColumns)
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for project %s: %w", projectID, err)
	}
	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Invoice])
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoices: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices SET
			invoice_number = $2, status = $3, issue_date = $4, due_date = $5,
			total_amount = $6, paid_amount = $7, balance_due = $8, notes = $9,
			updated_at = $10
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID, invoice.InvoiceNumber, invoice.Status, invoice.IssueDate,
		invoice.DueDate, invoice.TotalAmount, invoice.PaidAmount, invoice.BalanceDue,
		invoice.Notes, invoice.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	query := `DELETE FROM invoices WHERE invoice_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Items ---

func (r *PgxInvoiceRepository) SaveItem(ctx context.Context, item domain.InvoiceItem) error {
	query := fmt.Sprintf(`
		INSERT INTO invoice_items (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, itemColumns)
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID, item.InvoiceID, item.ServiceID, item.Description,
		item.Quantity, item.UnitPrice, item.TotalPrice, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save invoice item %s: %w", item.ItemID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InvoiceItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoice_items WHERE item_id = $1;`, itemColumns)
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice item %s: %w", itemID, err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.InvoiceItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice item %s: %w", itemID, err)
	}
	return &item, nil
}

func (r *PgxInvoiceRepository) ListItemsByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at, item_id;`, itemColumns)
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for invoice %s: %w", invoiceID, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InvoiceItem])
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice items: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceRepository) UpdateItem(ctx context.Context, item domain.InvoiceItem) error {
	query := `
		UPDATE invoice_items SET
			service_id = $2, description = $3, quantity = $4, unit_price = $5,
			total_price = $6, updated_at = $7
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ItemID, item.ServiceID, item.Description, item.Quantity,
		item.UnitPrice, item.TotalPrice, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update invoice item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteItem(ctx context.Context, itemID string) error {
	query := `DELETE FROM invoice_items WHERE item_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Payments ---

func (r *PgxInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE payment_id = $1;`, paymentColumns)
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment %s: %w", paymentID, err)
	}
	payment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return &payment, nil
}

func (r *PgxInvoiceRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE invoice_id = $1 ORDER BY payment_date, payment_id;`, paymentColumns)
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoice %s: %w", invoiceID, err)
	}
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect payments: %w", err)
	}
	return payments, nil
}

// SavePaymentAndRecalculate inserts the payment and re-derives the parent
// invoice's totals in one transaction, returning the invoice as committed.
func (r *PgxInvoiceRepository) SavePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := fmt.Sprintf(`
		INSERT INTO payments (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, paymentColumns)
	_, err = tx.Exec(ctx, insertQuery,
		payment.PaymentID, payment.InvoiceID, payment.Amount, payment.PaymentDate,
		payment.Method, payment.Notes, payment.CreatedAt, payment.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	invoice, err := r.recalculateInvoiceInTx(ctx, tx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdatePaymentAndRecalculate applies a payment correction and re-derives the
// invoice totals in one transaction.
func (r *PgxInvoiceRepository) UpdatePaymentAndRecalculate(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE payments SET amount = $2, payment_date = $3, method = $4, notes = $5, updated_at = $6
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		payment.PaymentID, payment.Amount, payment.PaymentDate,
		payment.Method, payment.Notes, payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment %s: %w", payment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	invoice, err := r.recalculateInvoiceInTx(ctx, tx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeletePaymentAndRecalculate removes the payment and re-derives the invoice
// totals in one transaction.
func (r *PgxInvoiceRepository) DeletePaymentAndRecalculate(ctx context.Context, paymentID, invoiceID string) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	invoice, err := r.recalculateInvoiceInTx(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return invoice, nil
}

// recalculateInvoiceInTx locks the invoice row, re-derives paid_amount and
// balance_due from the full current payment set and writes them back. The
// totals are never patched incrementally.
func (r *PgxInvoiceRepository) recalculateInvoiceInTx(ctx context.Context, tx pgx.Tx, invoiceID string) (*domain.Invoice, error) {
	lockQuery := fmt.Sprintf(`SELECT %s FROM invoices WHERE invoice_id = $1 FOR UPDATE;`, invoiceColumns)
	rows, err := tx.Query(ctx, lockQuery, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}
	invoice, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Invoice])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice %s for recalculation: %w", invoiceID, err)
	}

	paymentRows, err := tx.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM payments WHERE invoice_id = $1;`, paymentColumns), invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoice %s: %w", invoiceID, err)
	}
	payments, err := pgx.CollectRows(paymentRows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect payments for invoice %s: %w", invoiceID, err)
	}

	invoice.PaidAmount, invoice.BalanceDue = billing.CalculateInvoiceTotals(invoice.TotalAmount, payments)

	updateQuery := `
		UPDATE invoices SET paid_amount = $2, balance_due = $3, updated_at = now()
		WHERE invoice_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, invoiceID, invoice.PaidAmount, invoice.BalanceDue); err != nil {
		return nil, fmt.Errorf("failed to write recalculated totals for invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}
