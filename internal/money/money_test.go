package money

import (
	"math/rand"
	"testing"

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

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no-op on two places", "12.34", "12.34"},
		{"rounds half up", "12.345", "12.35"},
		{"rounds half away from zero for negatives", "-12.345", "-12.35"},
		{"rounds down below half", "12.344", "12.34"},
		{"integer stays", "7", "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Round2(dec(tt.in))))
		})
	}
}

func TestLineAmount(t *testing.T) {
	assert.True(t, LineAmount(dec("150.50"), 3).Equal(dec("451.50")))
	assert.True(t, LineAmount(dec("0.01"), 100).Equal(dec("1.00")))
	assert.True(t, LineAmount(dec("650"), 0).Equal(decimal.Zero))
}

func TestSubtotalSumsLines(t *testing.T) {
	lines := []decimal.Decimal{dec("100.25"), dec("49.75"), dec("0.50")}
	assert.True(t, Subtotal(lines).Equal(dec("150.50")))
	assert.True(t, Subtotal(nil).Equal(decimal.Zero))
}

func TestNetSalesNotClamped(t *testing.T) {
	assert.True(t, NetSales(dec("100"), dec("150")).Equal(dec("-50")))
	assert.True(t, NetSales(dec("100"), dec("25.50")).Equal(dec("74.50")))
}

func TestBalanceNotClamped(t *testing.T) {
	assert.True(t, Balance(dec("500"), dec("600")).Equal(dec("-100")))
	assert.True(t, Balance(dec("500"), dec("200")).Equal(dec("300")))
}

func TestTotalIdentity(t *testing.T) {
	// total = subtotal - discount + tax for a handful of randomized inputs
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		subtotal := decimal.NewFromFloat(float64(r.Intn(100000)) / 100)
		discount := decimal.NewFromFloat(float64(r.Intn(10000)) / 100)
		tax := decimal.NewFromFloat(float64(r.Intn(5000)) / 100)

		total := Total(NetSales(subtotal, discount), tax)
		want := Round2(subtotal.Sub(discount).Add(tax))
		require.True(t, total.Equal(want), "subtotal=%s discount=%s tax=%s", subtotal, discount, tax)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain", "1200.50", "1200.50", true},
		{"trims spaces", "  45 ", "45.00", true},
		{"empty is absent", "", "", false},
		{"whitespace is absent", "   ", "", false},
		{"garbage is absent", "abc", "", false},
		{"explicit zero parses", "0", "0.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, Format(d))
			}
		})
	}
}

func TestFormatOrDash(t *testing.T) {
	assert.Equal(t, "1500.00", FormatOrDash(decimal.NullDecimal{Decimal: dec("1500"), Valid: true}))
	assert.Equal(t, Dash, FormatOrDash(decimal.NullDecimal{}))
	// an explicit zero is still an amount, not a dash
	assert.Equal(t, "0.00", FormatOrDash(decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "500.00", Format(Percent(dec("1000"), 50)))
	assert.Equal(t, "200.00", Format(Percent(dec("1000"), 20)))
	assert.Equal(t, "333.33", Format(Percent(dec("999.99"), 33)))
}
