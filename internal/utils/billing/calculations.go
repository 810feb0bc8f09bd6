package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
)

// CalculateInvoiceTotals re-derives the paid amount and balance due for an
// invoice from the full current set of its payments. It is never patched
// incrementally: re-deriving keeps the invariant correct under out-of-order
// deletes and manual corrections. Zero payments yield paidAmount=0.
func CalculateInvoiceTotals(totalAmount decimal.Decimal, payments []domain.Payment) (paidAmount, balanceDue decimal.Decimal) {
	paidAmount = decimal.Zero
	for _, p := range payments {
		paidAmount = paidAmount.Add(p.Amount)
	}
	balanceDue = totalAmount.Sub(paidAmount)
	return paidAmount, balanceDue
}

// ValidatePaymentAmount checks that a payment amount is positive.
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("payment amount must be positive, got %s", amount.String())
	}
	return nil
}

// ItemTotalMatches reports whether an invoice item's stored total equals
// quantity x unit price. The schema does not enforce this (manual discounts are
// allowed); callers only use it for advisory checks.
func ItemTotalMatches(item domain.InvoiceItem) bool {
	return item.Quantity.Mul(item.UnitPrice).Equal(item.TotalPrice)
}
