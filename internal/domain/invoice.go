package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/curioyard/studio-api/internal/money"
)

// Payment application errors
var (
	ErrPaymentNotPositive    = errors.New("payment amount must be greater than zero")
	ErrPaymentMethodRequired = errors.New("payment method is required")
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds outstanding balance")
)

// CurrentBalance returns the stored balance, falling back to total minus
// paid for records saved before the balance column existed.
func (inv *Invoice) CurrentBalance() decimal.Decimal {
	if inv.Balance.Valid {
		return inv.Balance.Decimal
	}
	return money.Balance(inv.Total, inv.Paid)
}

// PaidToDate sums the payment history, falling back to the paid field for
// records without itemized history.
func (inv *Invoice) PaidToDate() decimal.Decimal {
	if len(inv.History) == 0 {
		return inv.Paid
	}
	sum := decimal.Zero
	for _, e := range inv.History {
		sum = sum.Add(e.Amount)
	}
	return money.Round2(sum)
}

// CleanServices drops lines with a blank description or a non-positive
// amount and recomputes each remaining line amount from rate and quantity.
func CleanServices(lines []ServiceLine) []ServiceLine {
	cleaned := make([]ServiceLine, 0, len(lines))
	for _, l := range lines {
		l.Description = strings.TrimSpace(l.Description)
		l.Amount = money.LineAmount(l.Rate, l.Quantity)
		if l.Description == "" || !l.Amount.IsPositive() {
			continue
		}
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		cleaned = append(cleaned, l)
	}
	return cleaned
}

// ComputeTotals recalculates the derived money fields from the service
// lines, discount and tax. Balance accounts for payments already recorded.
func (inv *Invoice) ComputeTotals() {
	amounts := make([]decimal.Decimal, len(inv.Services))
	for i, l := range inv.Services {
		amounts[i] = l.Amount
	}
	inv.Subtotal = money.Subtotal(amounts)
	inv.NetSales = money.NetSales(inv.Subtotal, inv.Discount)
	inv.Total = money.Total(inv.NetSales, inv.Tax)
	inv.Balance = decimal.NullDecimal{Decimal: money.Balance(inv.Total, inv.Paid), Valid: true}
}

// Validate applies the save rules. Callers run CleanServices and
// ComputeTotals first; validation never mutates the invoice.
func (inv *Invoice) Validate() error {
	if strings.TrimSpace(inv.ClientName) == "" {
		return NewValidationError(RuleClientNameRequired, "Client name is required")
	}
	if len(inv.Services) == 0 {
		return NewValidationError(RuleServiceRequired, "At least one service with an amount is required")
	}
	if strings.TrimSpace(inv.PaymentMethod) == "" &&
		strings.TrimSpace(inv.AccountNumber) == "" &&
		strings.TrimSpace(inv.PaymentLink) == "" {
		return NewValidationError(RulePaymentInfoRequired, "Add payment details (method, account number or payment link)")
	}
	if !inv.Total.IsPositive() {
		return NewValidationError(RuleTotalMustBePositive, "Invoice total must be greater than zero")
	}
	return nil
}

// ApplyPayment validates and records one payment. On success the paid
// amount, balance, status and history are updated together; on error the
// invoice is untouched. A PAID invoice has balance <= 0, so the
// exceeds-balance rule also rejects payments against settled invoices.
func (inv *Invoice) ApplyPayment(amount decimal.Decimal, method, date, notes string, now time.Time) (*PaymentEntry, error) {
	if !amount.IsPositive() {
		return nil, ErrPaymentNotPositive
	}
	if strings.TrimSpace(method) == "" {
		return nil, ErrPaymentMethodRequired
	}
	if amount.GreaterThan(inv.CurrentBalance()) {
		return nil, ErrPaymentExceedsBalance
	}

	if strings.TrimSpace(date) == "" {
		date = now.Format("2006-01-02")
	}
	entry := PaymentEntry{
		ID:         uuid.New(),
		Amount:     money.Round2(amount),
		Method:     strings.TrimSpace(method),
		Date:       date,
		Notes:      strings.TrimSpace(notes),
		RecordedAt: now,
	}

	inv.Paid = money.Round2(inv.Paid.Add(entry.Amount))
	newBalance := money.Balance(inv.Total, inv.Paid)
	inv.Balance = decimal.NullDecimal{Decimal: newBalance, Valid: true}
	inv.History = append(inv.History, entry)

	switch {
	case newBalance.LessThanOrEqual(decimal.Zero):
		inv.Status = InvoiceStatusPaid
	case inv.Paid.IsPositive():
		inv.Status = InvoiceStatusPending
	}

	return &inv.History[len(inv.History)-1], nil
}
