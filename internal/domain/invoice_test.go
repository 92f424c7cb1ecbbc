package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func validDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func testInvoice(total, paid string) *Invoice {
	inv := &Invoice{
		BaseModel:     BaseModel{ID: uuid.New()},
		UserID:        "user-1",
		InvoiceNumber: "INV-2026-001",
		ClientName:    "Nana Adjei",
		Currency:      "GHS",
		PaymentMethod: "Mobile Money",
		Services: []ServiceLine{
			{ID: uuid.New(), Description: "Logo Design", Rate: dec(total), Quantity: 1, Amount: dec(total)},
		},
		Subtotal: dec(total),
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		NetSales: dec(total),
		Total:    dec(total),
		Paid:     dec(paid),
		Status:   InvoiceStatusUnpaid,
	}
	inv.Balance = decimal.NullDecimal{Decimal: inv.Total.Sub(inv.Paid), Valid: true}
	return inv
}

func TestCleanServices(t *testing.T) {
	lines := []ServiceLine{
		{Description: "Logo Design", Rate: dec("650"), Quantity: 1},
		{Description: "   ", Rate: dec("100"), Quantity: 1},
		{Description: "Flyer", Rate: decimal.Zero, Quantity: 3},
		{Description: "Poster", Rate: dec("250"), Quantity: 2},
		{Description: "Business Cards", Rate: dec("200"), Quantity: 0},
	}

	cleaned := CleanServices(lines)

	require.Len(t, cleaned, 2)
	assert.Equal(t, "Logo Design", cleaned[0].Description)
	assert.Equal(t, "Poster", cleaned[1].Description)
	assert.True(t, cleaned[1].Amount.Equal(dec("500")))
	for _, l := range cleaned {
		assert.NotEqual(t, uuid.Nil, l.ID)
	}
}

func TestCleanServicesDropsZeroQuantityLine(t *testing.T) {
	lines := []ServiceLine{
		{Description: "Logo Design", Rate: dec("500"), Quantity: 0},
	}

	// rate times zero is zero, so the line never bills
	assert.Empty(t, CleanServices(lines))
}

func TestComputeTotals(t *testing.T) {
	inv := &Invoice{
		Services: []ServiceLine{
			{Description: "Logo Design", Rate: dec("650"), Quantity: 1, Amount: dec("650")},
			{Description: "Flyer", Rate: dec("250"), Quantity: 2, Amount: dec("500")},
		},
		Discount: dec("150"),
		Tax:      dec("50"),
	}

	inv.ComputeTotals()

	assert.True(t, inv.Subtotal.Equal(dec("1150")))
	assert.True(t, inv.NetSales.Equal(dec("1000")))
	assert.True(t, inv.Total.Equal(dec("1050")))
	require.True(t, inv.Balance.Valid)
	assert.True(t, inv.Balance.Decimal.Equal(dec("1050")))
}

func TestComputeTotalsDiscountNotClamped(t *testing.T) {
	inv := &Invoice{
		Services: []ServiceLine{{Description: "Flyer", Rate: dec("100"), Quantity: 1, Amount: dec("100")}},
		Discount: dec("150"),
	}

	inv.ComputeTotals()

	assert.True(t, inv.NetSales.Equal(dec("-50")))
	assert.True(t, inv.Total.Equal(dec("-50")))
}

func TestInvoiceValidate(t *testing.T) {
	base := func() *Invoice { return testInvoice("500", "0") }

	tests := []struct {
		name     string
		mutate   func(*Invoice)
		wantRule ValidationRule
	}{
		{"valid", func(inv *Invoice) {}, ""},
		{"missing client name", func(inv *Invoice) { inv.ClientName = "  " }, RuleClientNameRequired},
		{"no services", func(inv *Invoice) { inv.Services = nil }, RuleServiceRequired},
		{"no payment info", func(inv *Invoice) {
			inv.PaymentMethod = ""
			inv.AccountNumber = ""
			inv.PaymentLink = ""
		}, RulePaymentInfoRequired},
		{"account number alone suffices", func(inv *Invoice) {
			inv.PaymentMethod = ""
			inv.AccountNumber = "0200044821"
		}, ""},
		{"zero total", func(inv *Invoice) { inv.Total = decimal.Zero }, RuleTotalMustBePositive},
		{"negative total", func(inv *Invoice) { inv.Total = dec("-10") }, RuleTotalMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := base()
			tt.mutate(inv)
			err := inv.Validate()
			if tt.wantRule == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantRule, verr.Rule)
		})
	}
}

func TestApplyPaymentPartial(t *testing.T) {
	inv := testInvoice("500", "0")
	now := time.Now()

	entry, err := inv.ApplyPayment(dec("200"), "Mobile Money", "2026-09-01", "deposit", now)

	require.NoError(t, err)
	assert.True(t, inv.Paid.Equal(dec("200")))
	require.True(t, inv.Balance.Valid)
	assert.True(t, inv.Balance.Decimal.Equal(dec("300")))
	assert.Equal(t, InvoiceStatusPending, inv.Status)
	require.Len(t, inv.History, 1)
	assert.True(t, entry.Amount.Equal(dec("200")))
	assert.Equal(t, "Mobile Money", entry.Method)
	assert.Equal(t, "2026-09-01", entry.Date)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestApplyPaymentSettles(t *testing.T) {
	inv := testInvoice("500", "200")
	inv.Status = InvoiceStatusPending

	_, err := inv.ApplyPayment(dec("300"), "Bank Transfer", "", "", time.Now())

	require.NoError(t, err)
	assert.True(t, inv.Paid.Equal(dec("500")))
	assert.True(t, inv.Balance.Decimal.Equal(decimal.Zero))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}

func TestApplyPaymentRejections(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		method  string
		paid    string
		wantErr error
	}{
		{"zero amount", decimal.Zero, "Cash", "0", ErrPaymentNotPositive},
		{"negative amount", dec("-5"), "Cash", "0", ErrPaymentNotPositive},
		{"blank method", dec("100"), "   ", "0", ErrPaymentMethodRequired},
		{"exceeds balance", dec("600"), "Cash", "0", ErrPaymentExceedsBalance},
		{"exceeds remaining balance", dec("400"), "Cash", "200", ErrPaymentExceedsBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testInvoice("500", tt.paid)
			before := *inv

			_, err := inv.ApplyPayment(tt.amount, tt.method, "", "", time.Now())

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			// rejected payments leave the invoice untouched
			assert.True(t, inv.Paid.Equal(before.Paid))
			assert.Equal(t, before.Status, inv.Status)
			assert.Len(t, inv.History, len(before.History))
		})
	}
}

func TestPaidInvoiceRejectsAnyPayment(t *testing.T) {
	inv := testInvoice("500", "500")
	inv.Status = InvoiceStatusPaid

	_, err := inv.ApplyPayment(dec("0.01"), "Cash", "", "", time.Now())

	assert.ErrorIs(t, err, ErrPaymentExceedsBalance)
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
}

func TestCurrentBalanceFallback(t *testing.T) {
	// legacy records may predate the balance column
	inv := testInvoice("500", "150")
	inv.Balance = decimal.NullDecimal{}

	assert.True(t, inv.CurrentBalance().Equal(dec("350")))

	inv.Balance = validDec("275")
	assert.True(t, inv.CurrentBalance().Equal(dec("275")))
}

func TestPaidToDate(t *testing.T) {
	inv := testInvoice("500", "350")
	assert.True(t, inv.PaidToDate().Equal(dec("350")), "falls back to paid without history")

	inv.History = []PaymentEntry{
		{ID: uuid.New(), Amount: dec("100")},
		{ID: uuid.New(), Amount: dec("150")},
	}
	assert.True(t, inv.PaidToDate().Equal(dec("250")))
}

func TestFullReceipt(t *testing.T) {
	inv := testInvoice("500", "200")
	inv.Status = InvoiceStatusPending

	r := inv.FullReceipt()

	assert.Equal(t, "INV-2026-001-RCP", r.ReceiptNumber)
	assert.True(t, r.AmountDue.Equal(dec("500")))
	assert.True(t, r.PaidToDate.Equal(dec("200")))
	assert.True(t, r.Remaining.Equal(dec("300")))
	assert.False(t, r.Partial)

	// a settled invoice reports the full total as paid even if the
	// stored paid field lags behind
	inv.Status = InvoiceStatusPaid
	r = inv.FullReceipt()
	assert.True(t, r.PaidToDate.Equal(dec("500")))
	assert.True(t, r.Remaining.Equal(decimal.Zero))
}

func TestPaymentReceipt(t *testing.T) {
	inv := testInvoice("500", "0")
	now := time.Now()
	entry, err := inv.ApplyPayment(dec("200"), "Mobile Money", "", "", now)
	require.NoError(t, err)

	r := inv.PaymentReceipt(*entry)

	assert.Equal(t, "INV-2026-001-RCP-"+entry.ID.String(), r.ReceiptNumber)
	assert.True(t, r.AmountDue.Equal(dec("200")))
	assert.True(t, r.PaidToDate.Equal(dec("200")))
	assert.True(t, r.Remaining.Equal(dec("300")))
	assert.True(t, r.Partial)
	require.NotNil(t, r.Entry)
	assert.Equal(t, entry.ID, r.Entry.ID)
}

func TestPaymentReceiptRemainingClampedAtZero(t *testing.T) {
	inv := testInvoice("500", "0")
	inv.History = []PaymentEntry{{ID: uuid.New(), Amount: dec("600")}}

	r := inv.PaymentReceipt(inv.History[0])

	assert.True(t, r.Remaining.Equal(decimal.Zero))
}
