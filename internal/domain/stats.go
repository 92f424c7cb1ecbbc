package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/curioyard/studio-api/internal/money"
)

// UnknownClient groups invoices that were saved without a client name
const UnknownClient = "Unknown"

// TopClientsLimit caps the top-clients list on the dashboard
const TopClientsLimit = 5

// ClientRevenue is one row of the top-clients view
type ClientRevenue struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// InvoiceStats is the derived dashboard view over the invoice ledger
type InvoiceStats struct {
	TotalInvoices    int             `json:"totalInvoices"`
	PaidInvoices     int             `json:"paidInvoices"`
	UnpaidInvoices   int             `json:"unpaidInvoices"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	CountThisMonth   int             `json:"countThisMonth"`
	RevenueThisMonth decimal.Decimal `json:"revenueThisMonth"`
	TopClients       []ClientRevenue `json:"topClients"`
}

// ContractStats is the derived dashboard view over the contract ledger
type ContractStats struct {
	Total          int             `json:"total"`
	Graphic        int             `json:"graphic"`
	Merch          int             `json:"merch"`
	Signed         int             `json:"signed"`
	Draft          int             `json:"draft"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	ThisMonth      int             `json:"thisMonth"`
	ThisMonthValue decimal.Decimal `json:"thisMonthValue"`
}

// ComputeInvoiceStats derives the invoice dashboard from the full record
// set. A settled invoice contributes its total to paid and nothing to
// outstanding even when the stored paid field lags behind.
func ComputeInvoiceStats(invoices []Invoice, now time.Time) InvoiceStats {
	stats := InvoiceStats{
		TotalInvoices:    len(invoices),
		TotalRevenue:     decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		RevenueThisMonth: decimal.Zero,
		TopClients:       []ClientRevenue{},
	}

	type group struct {
		index int
		row   ClientRevenue
	}
	groups := map[string]*group{}
	order := 0

	for _, inv := range invoices {
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.Total)
		if inv.Status == InvoiceStatusPaid {
			stats.PaidInvoices++
			stats.TotalPaid = stats.TotalPaid.Add(inv.Total)
		} else {
			stats.UnpaidInvoices++
			stats.TotalPaid = stats.TotalPaid.Add(inv.Paid)
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.CurrentBalance())
		}

		if inSameMonth(inv.InvoiceDate, now) {
			stats.CountThisMonth++
			stats.RevenueThisMonth = stats.RevenueThisMonth.Add(inv.Total)
		}

		name := inv.ClientName
		if name == "" {
			name = UnknownClient
		}
		g, ok := groups[name]
		if !ok {
			g = &group{index: order, row: ClientRevenue{Name: name, Total: decimal.Zero}}
			groups[name] = g
			order++
		}
		g.row.Count++
		g.row.Total = g.row.Total.Add(inv.Total)
	}

	rows := make([]*group, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, g)
	}
	// stable by first appearance so revenue ties keep insertion order
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].index < rows[j].index })
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].row.Total.GreaterThan(rows[j].row.Total) })
	for i, g := range rows {
		if i == TopClientsLimit {
			break
		}
		stats.TopClients = append(stats.TopClients, g.row)
	}

	stats.TotalRevenue = money.Round2(stats.TotalRevenue)
	stats.TotalPaid = money.Round2(stats.TotalPaid)
	stats.TotalOutstanding = money.Round2(stats.TotalOutstanding)
	stats.RevenueThisMonth = money.Round2(stats.RevenueThisMonth)
	return stats
}

// ComputeContractStats derives the contract dashboard from the full
// record set. Signed counts SIGNED, ACTIVE and COMPLETED together.
func ComputeContractStats(contracts []Contract, now time.Time) ContractStats {
	stats := ContractStats{
		Total:          len(contracts),
		TotalValue:     decimal.Zero,
		ThisMonthValue: decimal.Zero,
	}

	for _, c := range contracts {
		switch c.Type {
		case ContractTypeGraphic:
			stats.Graphic++
		case ContractTypeMerch:
			stats.Merch++
		}
		switch c.Status {
		case ContractStatusSigned, ContractStatusActive, ContractStatusCompleted:
			stats.Signed++
		case ContractStatusDraft:
			stats.Draft++
		}

		value := decimal.Zero
		if c.AgreedAmount.Valid {
			value = c.AgreedAmount.Decimal
		}
		stats.TotalValue = stats.TotalValue.Add(value)
		if inSameMonth(c.ContractDate, now) {
			stats.ThisMonth++
			stats.ThisMonthValue = stats.ThisMonthValue.Add(value)
		}
	}

	stats.TotalValue = money.Round2(stats.TotalValue)
	stats.ThisMonthValue = money.Round2(stats.ThisMonthValue)
	return stats
}

// inSameMonth checks a stored date string against the calendar month of
// now. Unparseable dates never match.
func inSameMonth(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return d.Year() == now.Year() && d.Month() == now.Month()
}
