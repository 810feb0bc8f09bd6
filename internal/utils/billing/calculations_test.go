package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/utils/billing"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateInvoiceTotals(t *testing.T) {
	tests := []struct {
		name        string
		totalAmount string
		payments    []string
		wantPaid    string
		wantBalance string
	}{
		{
			name:        "no payments",
			totalAmount: "1500.00",
			payments:    nil,
			wantPaid:    "0",
			wantBalance: "1500.00",
		},
		{
			name:        "single payment",
			totalAmount: "1500.00",
			payments:    []string{"500.00"},
			wantPaid:    "500.00",
			wantBalance: "1000.00",
		},
		{
			name:        "multiple payments fully paid",
			totalAmount: "1500.00",
			payments:    []string{"500.00", "250.50", "749.50"},
			wantPaid:    "1500.00",
			wantBalance: "0",
		},
		{
			name:        "overpayment yields negative balance",
			totalAmount: "100.00",
			payments:    []string{"150.00"},
			wantPaid:    "150.00",
			wantBalance: "-50.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := make([]domain.Payment, len(tt.payments))
			for i, amt := range tt.payments {
				payments[i] = domain.Payment{Amount: dec(amt)}
			}

			paid, balance := billing.CalculateInvoiceTotals(dec(tt.totalAmount), payments)
			assert.True(t, dec(tt.wantPaid).Equal(paid), "paid: want %s got %s", tt.wantPaid, paid)
			assert.True(t, dec(tt.wantBalance).Equal(balance), "balance: want %s got %s", tt.wantBalance, balance)
		})
	}
}

func TestValidatePaymentAmount(t *testing.T) {
	assert.NoError(t, billing.ValidatePaymentAmount(dec("0.01")))
	assert.Error(t, billing.ValidatePaymentAmount(decimal.Zero))
	assert.Error(t, billing.ValidatePaymentAmount(dec("-5")))
}

func TestItemTotalMatches(t *testing.T) {
	item := domain.InvoiceItem{Quantity: dec("3"), UnitPrice: dec("10.00"), TotalPrice: dec("30.00")}
	assert.True(t, billing.ItemTotalMatches(item))

	// A mismatching total is legal (manual discount), just detectable.
	item.TotalPrice = dec("25.00")
	assert.False(t, billing.ItemTotalMatches(item))
}
