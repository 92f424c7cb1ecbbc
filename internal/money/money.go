// Package money holds the decimal arithmetic shared by the invoice and
// contract ledgers. All amounts are two-decimal currency values; rounding
// is half-away-from-zero, matching how the amounts are displayed.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Dash is rendered wherever an amount is unknown. A missing amount is
// never shown as 0.00.
const Dash = "—"

// Round2 rounds to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineAmount computes rate multiplied by quantity for a single service line.
func LineAmount(rate decimal.Decimal, quantity int) decimal.Decimal {
	return Round2(rate.Mul(decimal.NewFromInt(int64(quantity))))
}

// Subtotal sums the given line amounts.
func Subtotal(lines []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l)
	}
	return Round2(sum)
}

// NetSales is subtotal minus discount. The result is not clamped; a
// discount larger than the subtotal yields a negative net.
func NetSales(subtotal, discount decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Sub(discount))
}

// Total is net sales plus tax.
func Total(net, tax decimal.Decimal) decimal.Decimal {
	return Round2(net.Add(tax))
}

// Balance is total minus paid. Overpayment yields a negative balance;
// callers decide whether to clamp for display.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	return Round2(total.Sub(paid))
}

// ParseAmount parses a user-entered amount string. Empty or unparseable
// input reports ok=false rather than zero, so absence stays distinguishable
// from an explicit 0.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Format renders an amount with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatOrDash renders the amount when present and the dash sentinel when not.
func FormatOrDash(d decimal.NullDecimal) string {
	if !d.Valid {
		return Dash
	}
	return Format(d.Decimal)
}

// Percent applies an integer percentage to an amount, e.g. Percent(a, 50)
// is half of a.
func Percent(amount decimal.Decimal, pct int) decimal.Decimal {
	return Round2(amount.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)))
}
