package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftContractDefaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	c := NewDraftContract("user-1", 7, ContractTypeGraphic, now)

	assert.Equal(t, "CGY-2026-007", c.ContractNumber)
	assert.Equal(t, ContractStatusDraft, c.Status)
	assert.Equal(t, ContractTypeGraphic, c.Type)
	assert.Equal(t, "2026-09-01", c.ContractDate)
	assert.Equal(t, "2026-09-01", c.StartDate)
	assert.Empty(t, c.ServicesSelected)
	assert.Equal(t, "GHS", c.Currency)
	assert.Equal(t, 50, c.DepositPercent)
	assert.Equal(t, 2, c.RevisionsIncluded)
	assert.True(t, c.RevisionRate.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 20, c.RushFeePercent)
	assert.Equal(t, "Non-exclusive commercial", c.LicenseType)
	assert.True(t, c.PortfolioRights)
	assert.False(t, c.Exclusivity)
	assert.False(t, c.SourceFilesIncluded)
	assert.False(t, c.AgreedAmount.Valid)
	assert.Nil(t, c.SavedDate)
}

func TestDuplicateContract(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	saved := now.Add(-48 * time.Hour)
	src := NewDraftContract("user-1", 3, ContractTypeMerch, now.AddDate(0, -2, 0))
	src.ClientName = "Ama Serwaa"
	src.ProjectTitle = "Clothing line launch"
	src.Status = ContractStatusSigned
	src.AgreedAmount = validDec("4200")
	src.DepositPercent = 40
	src.ServicesSelected = []string{"Tech Packs (Production Ready)"}
	src.SavedDate = &saved

	dup := src.Duplicate(9, now)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "CGY-2026-009", dup.ContractNumber)
	assert.Equal(t, ContractStatusDraft, dup.Status)
	assert.Nil(t, dup.SavedDate)
	assert.Equal(t, "2026-09-01", dup.ContractDate)

	// financial terms carry over verbatim
	assert.True(t, dup.AgreedAmount.Decimal.Equal(dec("4200")))
	assert.Equal(t, 40, dup.DepositPercent)
	assert.Equal(t, src.ClientName, dup.ClientName)
	assert.Equal(t, src.ProjectTitle, dup.ProjectTitle)
	assert.Equal(t, src.ServicesSelected, dup.ServicesSelected)

	// the selection is a copy, not a shared slice
	dup.ServicesSelected[0] = "changed"
	assert.Equal(t, "Tech Packs (Production Ready)", src.ServicesSelected[0])
}

func TestContractValidate(t *testing.T) {
	base := func() *Contract {
		c := NewDraftContract("user-1", 1, ContractTypeGraphic, time.Now())
		c.ClientName = "Ama Serwaa"
		c.ProjectTitle = "Brand refresh"
		c.AgreedAmount = validDec("1000")
		return c
	}

	tests := []struct {
		name     string
		mutate   func(*Contract)
		wantRule ValidationRule
	}{
		{"valid", func(c *Contract) {}, ""},
		{"missing client name", func(c *Contract) { c.ClientName = " " }, RuleClientNameRequired},
		{"missing project title", func(c *Contract) { c.ProjectTitle = "" }, RuleProjectTitleRequired},
		{"missing agreed amount", func(c *Contract) { c.AgreedAmount = decimal.NullDecimal{} }, RuleAmountRequired},
		// zero is present, and presence is all the rule asks for
		{"zero agreed amount accepted", func(c *Contract) { c.AgreedAmount = validDec("0") }, ""},
		{"service outside catalog", func(c *Contract) {
			c.ServicesSelected = []string{"Tech Packs (Production Ready)"}
		}, RuleServiceRequired},
		{"service from own catalog", func(c *Contract) {
			c.ServicesSelected = []string{"Logo Design"}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
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

func TestContractDepositSplit(t *testing.T) {
	c := NewDraftContract("user-1", 1, ContractTypeGraphic, time.Now())
	c.AgreedAmount = validDec("1000")
	c.DepositPercent = 50

	deposit := c.DepositAmount()
	balance := c.BalanceAmount()

	require.True(t, deposit.Valid)
	require.True(t, balance.Valid)
	assert.Equal(t, "500.00", deposit.Decimal.StringFixed(2))
	assert.Equal(t, "500.00", balance.Decimal.StringFixed(2))

	c.DepositPercent = 30
	assert.Equal(t, "300.00", c.DepositAmount().Decimal.StringFixed(2))
	assert.Equal(t, "700.00", c.BalanceAmount().Decimal.StringFixed(2))
}

func TestContractDepositSentinelWhenAmountUnset(t *testing.T) {
	c := NewDraftContract("user-1", 1, ContractTypeGraphic, time.Now())

	assert.False(t, c.DepositAmount().Valid)
	assert.False(t, c.BalanceAmount().Valid)
}

func TestCatalogFor(t *testing.T) {
	graphic, ok := CatalogFor(ContractTypeGraphic)
	require.True(t, ok)
	assert.Equal(t, "Graphic Design & Branding", graphic.Label)
	assert.Len(t, graphic.Services, 6)
	assert.Equal(t, "Logo Design", graphic.Services[0].Label)
	assert.Equal(t, 650, graphic.Services[0].GHSMin)
	assert.Equal(t, 1800, graphic.Services[0].GHSMax)

	merch, ok := CatalogFor(ContractTypeMerch)
	require.True(t, ok)
	assert.Equal(t, "Clothing & Merch Design", merch.Label)
	assert.Len(t, merch.Services, 4)

	_, ok = CatalogFor(ContractType("print"))
	assert.False(t, ok)
}

func TestInCatalog(t *testing.T) {
	assert.True(t, InCatalog(ContractTypeGraphic, "Packaging Design"))
	assert.False(t, InCatalog(ContractTypeGraphic, "Tech Packs (Production Ready)"))
	assert.True(t, InCatalog(ContractTypeMerch, "Brand Campaign Posters"))
	assert.False(t, InCatalog(ContractType("print"), "Logo Design"))
}

func TestNumberFormatting(t *testing.T) {
	assert.Equal(t, "INV-2026-001", FormatInvoiceNumber(2026, 1))
	assert.Equal(t, "INV-2026-042", FormatInvoiceNumber(2026, 42))
	assert.Equal(t, "INV-2026-1042", FormatInvoiceNumber(2026, 1042))
	assert.Equal(t, "CGY-2025-007", FormatContractNumber(2025, 7))
}
