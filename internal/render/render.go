package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/money"
)

// Renderer holds the parsed document templates
type Renderer struct {
	invoice  *template.Template
	receipt  *template.Template
	contract *template.Template
}

// NewRenderer parses the built-in document templates
func NewRenderer() (*Renderer, error) {
	invoice, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}
	receipt, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}
	contract, err := template.New("contract").Parse(contractTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract template: %w", err)
	}
	return &Renderer{invoice: invoice, receipt: receipt, contract: contract}, nil
}

// Invoice renders the printable invoice document
func (r *Renderer) Invoice(inv *domain.Invoice) (string, error) {
	return execute(r.invoice, NewInvoiceView(inv))
}

// Receipt renders the printable receipt document, full or partial
func (r *Renderer) Receipt(receipt *domain.Receipt) (string, error) {
	return execute(r.receipt, NewReceiptView(receipt))
}

// Contract renders the printable contract document
func (r *Renderer) Contract(c *domain.Contract) (string, error) {
	return execute(r.contract, NewContractView(c))
}

func execute(t *template.Template, view interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}
	return buf.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return money.Dash
	}
	return s
}

func orTBD(s string) string {
	if s == "" {
		return "TBD"
	}
	return s
}

func formatRange(currency string, min, max int) string {
	if min == 0 && max == 0 {
		return money.Dash
	}
	return fmt.Sprintf("%s %d – %d", currency, min, max)
}

func formatSplit(percent int, currency, amount string) string {
	return fmt.Sprintf("%d%% — %s %s", percent, currency, amount)
}

func formatRevisionsPhase(rounds int) string {
	return fmt.Sprintf("Phase 3 — Revisions (%d rounds)", rounds)
}
