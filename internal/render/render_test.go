package render

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curioyard/studio-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleInvoice() *domain.Invoice {
	inv := &domain.Invoice{
		BaseModel:     domain.BaseModel{ID: uuid.New()},
		UserID:        "user-1",
		InvoiceNumber: "INV-2026-004",
		ClientName:    "Ama Serwaa",
		InvoiceDate:   "2026-09-01",
		Currency:      "GHS",
		PaymentMethod: "Mobile Money",
		Services: []domain.ServiceLine{
			{ID: uuid.New(), Description: "Logo Design", Rate: dec("650"), Quantity: 1, Amount: dec("650")},
			{ID: uuid.New(), Description: "Flyer / Poster", Rate: dec("250"), Quantity: 2, Amount: dec("500")},
		},
		Discount: dec("50"),
		Tax:      dec("0"),
		Paid:     dec("400"),
		Status:   domain.InvoiceStatusPending,
	}
	inv.ComputeTotals()
	inv.History = []domain.PaymentEntry{
		{ID: uuid.New(), Amount: dec("400"), Method: "Mobile Money", Date: "2026-09-02", RecordedAt: time.Now()},
	}
	return inv
}

func TestRenderInvoice(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Invoice(sampleInvoice())

	require.NoError(t, err)
	assert.Contains(t, html, "INV-2026-004")
	assert.Contains(t, html, "Ama Serwaa")
	assert.Contains(t, html, "Logo Design")
	assert.Contains(t, html, "1100.00") // subtotal minus discount
	assert.Contains(t, html, "700.00")  // balance due
	assert.Contains(t, html, "Payment History")
}

func TestRenderFullReceipt(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	inv := sampleInvoice()

	receipt := inv.FullReceipt()
	html, err := r.Receipt(&receipt)

	require.NoError(t, err)
	assert.Contains(t, html, "INV-2026-004-RCP")
	assert.Contains(t, html, "GHS 1100.00")
	assert.NotContains(t, html, "Payment Receipt")
}

func TestRenderPaymentReceipt(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	inv := sampleInvoice()

	receipt := inv.PaymentReceipt(inv.History[0])
	html, err := r.Receipt(&receipt)

	require.NoError(t, err)
	assert.Contains(t, html, "Payment Receipt")
	assert.Contains(t, html, inv.History[0].ID.String())
	assert.Contains(t, html, "GHS 400.00")
}

func TestRenderContractSectionNumbering(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	graphic := domain.NewDraftContract("user-1", 1, domain.ContractTypeGraphic, now)
	graphic.ClientName = "Kofi Mensah"
	graphic.ProjectTitle = "Brand refresh"
	graphic.AgreedAmount = decimal.NullDecimal{Decimal: dec("1000"), Valid: true}
	graphic.ServicesSelected = []string{"Logo Design"}

	html, err := r.Contract(graphic)
	require.NoError(t, err)
	assert.Contains(t, html, "Graphic Design &amp; Branding")
	assert.Contains(t, html, "GHS 500.00") // 50% deposit split
	assert.Contains(t, html, "9. Termination")
	assert.NotContains(t, html, "Production &amp; Printing Disclaimer")

	merch := domain.NewDraftContract("user-1", 2, domain.ContractTypeMerch, now)
	merch.ClientName = "Kofi Mensah"
	merch.ProjectTitle = "Capsule drop"
	merch.AgreedAmount = decimal.NullDecimal{Decimal: dec("2000"), Valid: true}

	html, err = r.Contract(merch)
	require.NoError(t, err)
	assert.Contains(t, html, "Production &amp; Printing Disclaimer")
	assert.Contains(t, html, "10. Termination")
}

func TestRenderContractDashForUnsetAmount(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	c := domain.NewDraftContract("user-1", 1, domain.ContractTypeGraphic, time.Now())
	html, err := r.Contract(c)

	require.NoError(t, err)
	// unset agreed amount renders the dash sentinel, never 0.00
	assert.Contains(t, html, "GHS —")
	assert.NotContains(t, html, "GHS 0.00")
}
