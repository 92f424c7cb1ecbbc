package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/curioyard/studio-api/internal/money"
)

// Studio identity pre-filled on every new contract
const (
	studioName    = "Curio Graphics Yard"
	studioEmail   = "curiographicsyard@gmail.com"
	studioAddress = "Koforidua, E7-0979-957, Ghana"
)

// Default payment channel pre-filled on every new contract
const (
	defaultPaymentAccount     = "0200044821"
	defaultPaymentInstitution = "Telecel"
	defaultPaymentBeneficiary = "David Amo"
)

// NewDraftContract builds a fully defaulted draft bound to the catalog for
// the given type. No services are pre-selected and nothing is persisted.
func NewDraftContract(userID string, sequence int, contractType ContractType, now time.Time) *Contract {
	today := now.Format("2006-01-02")
	return &Contract{
		BaseModel:          BaseModel{ID: uuid.New()},
		UserID:             userID,
		ContractNumber:     FormatContractNumber(now.Year(), sequence),
		Sequence:           sequence,
		Type:               contractType,
		Status:             ContractStatusDraft,
		ContractDate:       today,
		StartDate:          today,
		DesignerName:       studioName,
		DesignerEmail:      studioEmail,
		DesignerAddress:    studioAddress,
		ServicesSelected:   []string{},
		Currency:           "GHS",
		DepositPercent:     50,
		RevisionsIncluded:  2,
		RevisionRate:       decimal.NewFromInt(150),
		RushFeePercent:     20,
		PaymentAccount:     defaultPaymentAccount,
		PaymentInstitution: defaultPaymentInstitution,
		PaymentBeneficiary: defaultPaymentBeneficiary,
		LicenseType:        "Non-exclusive commercial",
		PortfolioRights:    true,
	}
}

// Duplicate clones the contract into a fresh draft. Everything carries
// over except identity, number, status, saved date and contract date.
func (c *Contract) Duplicate(sequence int, now time.Time) *Contract {
	dup := *c
	dup.BaseModel = BaseModel{ID: uuid.New()}
	dup.ContractNumber = FormatContractNumber(now.Year(), sequence)
	dup.Sequence = sequence
	dup.Status = ContractStatusDraft
	dup.SavedDate = nil
	dup.ContractDate = now.Format("2006-01-02")
	dup.ServicesSelected = append([]string(nil), c.ServicesSelected...)
	return &dup
}

// Validate applies the contract save rules. Only presence of the agreed
// amount is required, not positivity; the invoice ledger is stricter.
func (c *Contract) Validate() error {
	if strings.TrimSpace(c.ClientName) == "" {
		return NewValidationError(RuleClientNameRequired, "Client name is required")
	}
	if strings.TrimSpace(c.ProjectTitle) == "" {
		return NewValidationError(RuleProjectTitleRequired, "Project title is required")
	}
	if !c.AgreedAmount.Valid {
		return NewValidationError(RuleAmountRequired, "Agreed amount is required")
	}
	for _, label := range c.ServicesSelected {
		if !InCatalog(c.Type, label) {
			return NewValidationError(RuleServiceRequired, fmt.Sprintf("Service %q is not in the %s catalog", label, c.Type))
		}
	}
	return nil
}

// DepositAmount derives the upfront split. Unset while the agreed amount
// is unset; rendered as the dash sentinel, never as 0.00.
func (c *Contract) DepositAmount() decimal.NullDecimal {
	if !c.AgreedAmount.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: money.Percent(c.AgreedAmount.Decimal, c.DepositPercent),
		Valid:   true,
	}
}

// BalanceAmount derives the on-delivery split, the complement of the deposit.
func (c *Contract) BalanceAmount() decimal.NullDecimal {
	if !c.AgreedAmount.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: money.Percent(c.AgreedAmount.Decimal, 100-c.DepositPercent),
		Valid:   true,
	}
}

// FormatContractNumber renders the display number, e.g. CGY-2026-007
func FormatContractNumber(year, sequence int) string {
	return fmt.Sprintf("CGY-%d-%03d", year, sequence)
}

// FormatInvoiceNumber renders the display number, e.g. INV-2026-007
func FormatInvoiceNumber(year, sequence int) string {
	return fmt.Sprintf("INV-%d-%03d", year, sequence)
}
