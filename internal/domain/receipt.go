package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/curioyard/studio-api/internal/money"
)

// Receipt is the derived view a receipt document is rendered from. It is
// computed, never stored.
type Receipt struct {
	ReceiptNumber string          `json:"receiptNumber"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientName    string          `json:"clientName"`
	Currency      string          `json:"currency"`
	AmountDue     decimal.Decimal `json:"amountDue"`
	PaidToDate    decimal.Decimal `json:"paidToDate"`
	Remaining     decimal.Decimal `json:"remaining"`
	Method        string          `json:"method,omitempty"`
	Partial       bool            `json:"partial"`
	Entry         *PaymentEntry   `json:"entry,omitempty"`
}

// FullReceipt covers the invoice as a whole. For a settled invoice the
// paid-to-date equals the total even when the paid field lags behind.
func (inv *Invoice) FullReceipt() Receipt {
	paidToDate := inv.Paid
	if inv.Status == InvoiceStatusPaid {
		paidToDate = inv.Total
	}
	return Receipt{
		ReceiptNumber: fmt.Sprintf("%s-RCP", inv.InvoiceNumber),
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		Currency:      inv.Currency,
		AmountDue:     inv.Total,
		PaidToDate:    paidToDate,
		Remaining:     remaining(inv.Total, paidToDate),
	}
}

// PaymentReceipt covers a single payment entry. The remaining amount is
// clamped at zero for display even if the ledger balance went negative.
func (inv *Invoice) PaymentReceipt(entry PaymentEntry) Receipt {
	paidToDate := inv.PaidToDate()
	return Receipt{
		ReceiptNumber: fmt.Sprintf("%s-RCP-%s", inv.InvoiceNumber, entry.ID),
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		Currency:      inv.Currency,
		AmountDue:     entry.Amount,
		PaidToDate:    paidToDate,
		Remaining:     remaining(inv.Total, paidToDate),
		Method:        entry.Method,
		Partial:       true,
		Entry:         &entry,
	}
}

func remaining(total, paidToDate decimal.Decimal) decimal.Decimal {
	r := money.Balance(total, paidToDate)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
