// Package render turns stored ledger records into printable HTML
// documents. The ledgers supply data through the view structs here;
// formatting decisions live entirely in the templates.
package render

import (
	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/money"
)

// ServiceRow is one invoice line on the rendered document
type ServiceRow struct {
	Description string
	Rate        string
	Quantity    int
	Amount      string
}

// PaymentRow is one payment-history line on the rendered invoice
type PaymentRow struct {
	Date   string
	Method string
	Amount string
	Notes  string
}

// InvoiceView is the data an invoice document is rendered from
type InvoiceView struct {
	Number        string
	Status        string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientAddress string
	InvoiceDate   string
	DueDate       string
	Currency      string
	Services      []ServiceRow
	Subtotal      string
	Discount      string
	HasDiscount   bool
	Tax           string
	HasTax        bool
	NetSales      string
	Total         string
	Paid          string
	Balance       string
	PaymentMethod string
	AccountNumber string
	PaymentLink   string
	Notes         string
	History       []PaymentRow
}

// NewInvoiceView flattens an invoice for the template
func NewInvoiceView(inv *domain.Invoice) InvoiceView {
	v := InvoiceView{
		Number:        inv.InvoiceNumber,
		Status:        string(inv.Status),
		ClientName:    orDash(inv.ClientName),
		ClientEmail:   inv.ClientEmail,
		ClientPhone:   inv.ClientPhone,
		ClientAddress: inv.ClientAddress,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Currency:      inv.Currency,
		Subtotal:      money.Format(inv.Subtotal),
		Discount:      money.Format(inv.Discount),
		HasDiscount:   inv.Discount.IsPositive(),
		Tax:           money.Format(inv.Tax),
		HasTax:        inv.Tax.IsPositive(),
		NetSales:      money.Format(inv.NetSales),
		Total:         money.Format(inv.Total),
		Paid:          money.Format(inv.Paid),
		Balance:       money.Format(inv.CurrentBalance()),
		PaymentMethod: inv.PaymentMethod,
		AccountNumber: inv.AccountNumber,
		PaymentLink:   inv.PaymentLink,
		Notes:         inv.Notes,
	}
	for _, l := range inv.Services {
		v.Services = append(v.Services, ServiceRow{
			Description: l.Description,
			Rate:        money.Format(l.Rate),
			Quantity:    l.Quantity,
			Amount:      money.Format(l.Amount),
		})
	}
	for _, e := range inv.History {
		v.History = append(v.History, PaymentRow{
			Date:   e.Date,
			Method: e.Method,
			Amount: money.Format(e.Amount),
			Notes:  e.Notes,
		})
	}
	return v
}

// ReceiptView is the data a receipt document is rendered from
type ReceiptView struct {
	ReceiptNumber string
	InvoiceNumber string
	ClientName    string
	Currency      string
	AmountDue     string
	PaidToDate    string
	Remaining     string
	Method        string
	Date          string
	Partial       bool
}

// NewReceiptView flattens a derived receipt for the template
func NewReceiptView(r *domain.Receipt) ReceiptView {
	v := ReceiptView{
		ReceiptNumber: r.ReceiptNumber,
		InvoiceNumber: r.InvoiceNumber,
		ClientName:    orDash(r.ClientName),
		Currency:      r.Currency,
		AmountDue:     money.Format(r.AmountDue),
		PaidToDate:    money.Format(r.PaidToDate),
		Remaining:     money.Format(r.Remaining),
		Method:        r.Method,
		Partial:       r.Partial,
	}
	if r.Entry != nil {
		v.Date = r.Entry.Date
	}
	return v
}

// CatalogRow is one selected service with its rate-card range
type CatalogRow struct {
	Label    string
	GHSRange string
	USDRange string
}

// PhaseRow is one milestone of the contract payment schedule
type PhaseRow struct {
	Phase       string
	Deliverable string
	DueDate     string
	PaymentDue  string
}

// ContractView is the data a contract document is rendered from. Section
// numbering shifts when the merch-only production disclaimer is present.
type ContractView struct {
	Number              string
	TypeLabel           string
	Merch               bool
	ContractDate        string
	StartDate           string
	EndDate             string
	DesignerName        string
	DesignerEmail       string
	DesignerPhone       string
	DesignerAddress     string
	ClientName          string
	ClientCompany       string
	ClientEmail         string
	ClientPhone         string
	ClientAddress       string
	ProjectTitle        string
	Services            []CatalogRow
	CustomServices      string
	Deliverables        string
	SpecialRequirements string
	Currency            string
	AgreedAmount        string
	DepositPercent      int
	BalancePercent      int
	DepositAmount       string
	BalanceAmount       string
	RevisionsIncluded   int
	RevisionRate        string
	RushFeePercent      int
	PaymentAccount      string
	PaymentInstitution  string
	PaymentBeneficiary  string
	LicenseType         string
	Exclusivity         bool
	PortfolioRights     bool
	SourceFilesIncluded bool
	SourceFilesFee      string
	HasSourceFilesFee   bool
	Phases              []PhaseRow
	SectionTermination  int
	SectionWarranties   int
	SectionDisputes     int
	SectionGeneral      int
}

// NewContractView flattens a contract for the template, deriving the
// deposit split and the payment schedule.
func NewContractView(c *domain.Contract) ContractView {
	catalog, _ := domain.CatalogFor(c.Type)

	v := ContractView{
		Number:              c.ContractNumber,
		TypeLabel:           catalog.Label,
		Merch:               c.Type == domain.ContractTypeMerch,
		ContractDate:        c.ContractDate,
		StartDate:           c.StartDate,
		EndDate:             orTBD(c.EndDate),
		DesignerName:        c.DesignerName,
		DesignerEmail:       c.DesignerEmail,
		DesignerPhone:       c.DesignerPhone,
		DesignerAddress:     c.DesignerAddress,
		ClientName:          orDash(c.ClientName),
		ClientCompany:       orDash(c.ClientCompany),
		ClientEmail:         orDash(c.ClientEmail),
		ClientPhone:         orDash(c.ClientPhone),
		ClientAddress:       c.ClientAddress,
		ProjectTitle:        orDash(c.ProjectTitle),
		CustomServices:      c.CustomServices,
		Deliverables:        c.Deliverables,
		SpecialRequirements: c.SpecialRequirements,
		Currency:            c.Currency,
		AgreedAmount:        money.FormatOrDash(c.AgreedAmount),
		DepositPercent:      c.DepositPercent,
		BalancePercent:      100 - c.DepositPercent,
		DepositAmount:       money.FormatOrDash(c.DepositAmount()),
		BalanceAmount:       money.FormatOrDash(c.BalanceAmount()),
		RevisionsIncluded:   c.RevisionsIncluded,
		RevisionRate:        money.Format(c.RevisionRate),
		RushFeePercent:      c.RushFeePercent,
		PaymentAccount:      c.PaymentAccount,
		PaymentInstitution:  c.PaymentInstitution,
		PaymentBeneficiary:  c.PaymentBeneficiary,
		LicenseType:         c.LicenseType,
		Exclusivity:         c.Exclusivity,
		PortfolioRights:     c.PortfolioRights,
		SourceFilesIncluded: c.SourceFilesIncluded,
		SourceFilesFee:      money.FormatOrDash(c.SourceFilesFee),
		HasSourceFilesFee:   c.SourceFilesFee.Valid,
	}

	selected := make(map[string]bool, len(c.ServicesSelected))
	for _, label := range c.ServicesSelected {
		selected[label] = true
	}
	for _, s := range catalog.Services {
		if !selected[s.Label] {
			continue
		}
		v.Services = append(v.Services, CatalogRow{
			Label:    s.Label,
			GHSRange: formatRange("GHS", s.GHSMin, s.GHSMax),
			USDRange: formatRange("USD", s.USDMin, s.USDMax),
		})
	}

	v.Phases = []PhaseRow{
		{Phase: "Phase 1 — Brief & Deposit", Deliverable: "Signed contract + deposit received", DueDate: c.StartDate,
			PaymentDue: formatSplit(v.DepositPercent, c.Currency, v.DepositAmount)},
		{Phase: "Phase 2 — Concepts Presented", Deliverable: "Initial designs / drafts", DueDate: "TBD", PaymentDue: money.Dash},
		{Phase: formatRevisionsPhase(c.RevisionsIncluded), Deliverable: "Refined designs per feedback", DueDate: "TBD", PaymentDue: money.Dash},
		{Phase: "Phase 4 — Final Approval", Deliverable: "Client written sign-off", DueDate: "TBD", PaymentDue: money.Dash},
		{Phase: "Phase 5 — Final Delivery", Deliverable: "All agreed final files delivered", DueDate: v.EndDate,
			PaymentDue: formatSplit(v.BalancePercent, c.Currency, v.BalanceAmount)},
	}

	// the production disclaimer takes section 9 on merch contracts
	base := 9
	if v.Merch {
		base = 10
	}
	v.SectionTermination = base
	v.SectionWarranties = base + 1
	v.SectionDisputes = base + 2
	v.SectionGeneral = base + 3

	return v
}
