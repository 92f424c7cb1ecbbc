package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseModel holds the fields shared by all stored records
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPending, InvoiceStatusPaid:
		return true
	}
	return false
}

// ContractStatus represents the lifecycle state of a contract
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "DRAFT"
	ContractStatusSent      ContractStatus = "SENT"
	ContractStatusSigned    ContractStatus = "SIGNED"
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusCompleted ContractStatus = "COMPLETED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

// IsValid checks if the contract status is valid
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusSent, ContractStatusSigned,
		ContractStatusActive, ContractStatusCompleted, ContractStatusCancelled:
		return true
	}
	return false
}

// ContractType selects which service catalog a contract draws from
type ContractType string

const (
	ContractTypeGraphic ContractType = "graphic"
	ContractTypeMerch   ContractType = "merch"
)

// IsValid checks if the contract type is valid
func (t ContractType) IsValid() bool {
	return t == ContractTypeGraphic || t == ContractTypeMerch
}

// SequenceKind identifies which ledger a document counter belongs to
type SequenceKind string

const (
	SequenceKindInvoice  SequenceKind = "invoice"
	SequenceKindContract SequenceKind = "contract"
)

// ServiceLine is a single billed line on an invoice
type ServiceLine struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentEntry records one received payment against an invoice
type PaymentEntry struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt time.Time       `json:"recordedAt"`
}

// Invoice is one row per document; service lines and payment history are
// embedded JSON since the record travels as a single flat document.
type Invoice struct {
	BaseModel
	UserID        string              `gorm:"type:varchar(100);not null;index" json:"userId"`
	InvoiceNumber string              `gorm:"type:varchar(50);not null;index" json:"invoiceNumber"`
	Sequence      int                 `gorm:"not null;default:0" json:"sequence"`
	ClientName    string              `gorm:"type:varchar(200);not null" json:"clientName"`
	ClientEmail   string              `gorm:"type:varchar(255)" json:"clientEmail,omitempty"`
	ClientPhone   string              `gorm:"type:varchar(50)" json:"clientPhone,omitempty"`
	ClientAddress string              `gorm:"type:varchar(500)" json:"clientAddress,omitempty"`
	InvoiceDate   string              `gorm:"type:varchar(20)" json:"invoiceDate"`
	DueDate       string              `gorm:"type:varchar(20)" json:"dueDate,omitempty"`
	Services      []ServiceLine       `gorm:"serializer:json" json:"services"`
	Subtotal      decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"subtotal"`
	Discount      decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"discount"`
	Tax           decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"tax"`
	NetSales      decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"netSales"`
	Total         decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"total"`
	Paid          decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:0" json:"paid"`
	Balance       decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"balance"`
	Status        InvoiceStatus       `gorm:"type:varchar(20);not null;default:'UNPAID';index" json:"status"`
	Currency      string              `gorm:"type:varchar(10);not null;default:'GHS'" json:"currency"`
	PaymentMethod string              `gorm:"type:varchar(100)" json:"paymentMethod,omitempty"`
	AccountNumber string              `gorm:"type:varchar(100)" json:"accountNumber,omitempty"`
	PaymentLink   string              `gorm:"type:varchar(500)" json:"paymentLink,omitempty"`
	Notes         string              `gorm:"type:text" json:"notes,omitempty"`
	History       []PaymentEntry      `gorm:"serializer:json;column:payment_history" json:"paymentHistory"`
	SavedDate     *time.Time          `gorm:"column:saved_date;index" json:"savedDate,omitempty"`
}

// Contract is one row per agreement; the selected catalog services are
// embedded JSON alongside the financial and IP terms.
type Contract struct {
	BaseModel
	UserID              string              `gorm:"type:varchar(100);not null;index" json:"userId"`
	ContractNumber      string              `gorm:"type:varchar(50);not null;index" json:"contractNumber"`
	Sequence            int                 `gorm:"not null;default:0" json:"sequence"`
	Type                ContractType        `gorm:"type:varchar(20);not null;index" json:"type"`
	Status              ContractStatus      `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	ContractDate        string              `gorm:"type:varchar(20)" json:"contractDate"`
	StartDate           string              `gorm:"type:varchar(20)" json:"startDate,omitempty"`
	EndDate             string              `gorm:"type:varchar(20)" json:"endDate,omitempty"`
	DesignerName        string              `gorm:"type:varchar(200)" json:"designerName,omitempty"`
	DesignerEmail       string              `gorm:"type:varchar(255)" json:"designerEmail,omitempty"`
	DesignerPhone       string              `gorm:"type:varchar(50)" json:"designerPhone,omitempty"`
	DesignerAddress     string              `gorm:"type:varchar(500)" json:"designerAddress,omitempty"`
	ClientName          string              `gorm:"type:varchar(200)" json:"clientName"`
	ClientCompany       string              `gorm:"type:varchar(200)" json:"clientCompany,omitempty"`
	ClientEmail         string              `gorm:"type:varchar(255)" json:"clientEmail,omitempty"`
	ClientPhone         string              `gorm:"type:varchar(50)" json:"clientPhone,omitempty"`
	ClientAddress       string              `gorm:"type:varchar(500)" json:"clientAddress,omitempty"`
	ProjectTitle        string              `gorm:"type:varchar(300)" json:"projectTitle"`
	ServicesSelected    []string            `gorm:"serializer:json" json:"servicesSelected"`
	CustomServices      string              `gorm:"type:text" json:"customServices,omitempty"`
	Deliverables        string              `gorm:"type:text" json:"deliverables,omitempty"`
	AgreedAmount        decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"agreedAmount"`
	Currency            string              `gorm:"type:varchar(10);not null;default:'GHS'" json:"currency"`
	DepositPercent      int                 `gorm:"not null;default:50" json:"depositPercent"`
	RevisionsIncluded   int                 `gorm:"not null;default:2" json:"revisionsIncluded"`
	RevisionRate        decimal.Decimal     `gorm:"type:decimal(15,2);not null;default:150" json:"revisionRate"`
	RushFeePercent      int                 `gorm:"not null;default:20" json:"rushFeePercent"`
	PaymentAccount      string              `gorm:"type:varchar(100)" json:"paymentAccount,omitempty"`
	PaymentInstitution  string              `gorm:"type:varchar(100)" json:"paymentInstitution,omitempty"`
	PaymentBeneficiary  string              `gorm:"type:varchar(200)" json:"paymentBeneficiary,omitempty"`
	LicenseType         string              `gorm:"type:varchar(100);not null;default:'Non-exclusive commercial'" json:"licenseType"`
	Exclusivity         bool                `gorm:"not null;default:false" json:"exclusivity"`
	PortfolioRights     bool                `gorm:"not null;default:true" json:"portfolioRights"`
	SourceFilesIncluded bool                `gorm:"not null;default:false" json:"sourceFilesIncluded"`
	SourceFilesFee      decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"sourceFilesFee"`
	SpecialRequirements string              `gorm:"type:text" json:"specialRequirements,omitempty"`
	SavedDate           *time.Time          `gorm:"column:saved_date;index" json:"savedDate,omitempty"`
}

// DocumentSequence holds one monotonic counter per user per ledger
type DocumentSequence struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID    string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_sequence_user_kind"`
	Kind      SequenceKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_sequence_user_kind"`
	LastValue int          `gorm:"not null;default:0"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName overrides the table name for DocumentSequence
func (DocumentSequence) TableName() string {
	return "document_sequences"
}
