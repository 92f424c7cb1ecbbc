package domain

// Request DTOs. Amount fields arrive as strings and are parsed exactly
// once at the service boundary; an empty string means the amount is
// absent, which is distinct from an explicit 0.

// ServiceLineRequest is one line of an invoice save request
type ServiceLineRequest struct {
	Description string `json:"description" validate:"max=500"`
	Rate        string `json:"rate" validate:"max=30"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// InvoiceRequest creates or updates an invoice. The ledger rules (client
// name, services, payment info, positive total) are checked by the
// service after parsing; the tags here only bound the raw payload.
type InvoiceRequest struct {
	ClientName    string               `json:"clientName" validate:"max=200"`
	ClientEmail   string               `json:"clientEmail,omitempty" validate:"omitempty,email"`
	ClientPhone   string               `json:"clientPhone,omitempty" validate:"max=50"`
	ClientAddress string               `json:"clientAddress,omitempty" validate:"max=500"`
	InvoiceDate   string               `json:"invoiceDate,omitempty" validate:"max=20"`
	DueDate       string               `json:"dueDate,omitempty" validate:"max=20"`
	Services      []ServiceLineRequest `json:"services" validate:"dive"`
	Discount      string               `json:"discount,omitempty" validate:"max=30"`
	Tax           string               `json:"tax,omitempty" validate:"max=30"`
	Paid          string               `json:"paid,omitempty" validate:"max=30"`
	Status        InvoiceStatus        `json:"status,omitempty" validate:"omitempty,oneof=UNPAID PENDING PAID"`
	Currency      string               `json:"currency,omitempty" validate:"max=10"`
	PaymentMethod string               `json:"paymentMethod,omitempty" validate:"max=100"`
	AccountNumber string               `json:"accountNumber,omitempty" validate:"max=100"`
	PaymentLink   string               `json:"paymentLink,omitempty" validate:"max=500"`
	Notes         string               `json:"notes,omitempty" validate:"max=2000"`
}

// PaymentRequest records one payment against an invoice
type PaymentRequest struct {
	Amount string `json:"amount" validate:"required,max=30"`
	Method string `json:"method" validate:"max=100"`
	Date   string `json:"date,omitempty" validate:"max=20"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

// ContractRequest creates or updates a contract
type ContractRequest struct {
	Type                ContractType   `json:"type" validate:"required,oneof=graphic merch"`
	Status              ContractStatus `json:"status,omitempty" validate:"omitempty,oneof=DRAFT SENT SIGNED ACTIVE COMPLETED CANCELLED"`
	ContractDate        string         `json:"contractDate,omitempty" validate:"max=20"`
	StartDate           string         `json:"startDate,omitempty" validate:"max=20"`
	EndDate             string         `json:"endDate,omitempty" validate:"max=20"`
	DesignerName        string         `json:"designerName,omitempty" validate:"max=200"`
	DesignerEmail       string         `json:"designerEmail,omitempty" validate:"omitempty,email"`
	DesignerPhone       string         `json:"designerPhone,omitempty" validate:"max=50"`
	DesignerAddress     string         `json:"designerAddress,omitempty" validate:"max=500"`
	ClientName          string         `json:"clientName" validate:"max=200"`
	ClientCompany       string         `json:"clientCompany,omitempty" validate:"max=200"`
	ClientEmail         string         `json:"clientEmail,omitempty" validate:"omitempty,email"`
	ClientPhone         string         `json:"clientPhone,omitempty" validate:"max=50"`
	ClientAddress       string         `json:"clientAddress,omitempty" validate:"max=500"`
	ProjectTitle        string         `json:"projectTitle" validate:"max=300"`
	ServicesSelected    []string       `json:"servicesSelected,omitempty" validate:"dive,max=200"`
	CustomServices      string         `json:"customServices,omitempty" validate:"max=2000"`
	Deliverables        string         `json:"deliverables,omitempty" validate:"max=2000"`
	AgreedAmount        string         `json:"agreedAmount,omitempty" validate:"max=30"`
	Currency            string         `json:"currency,omitempty" validate:"max=10"`
	DepositPercent      *int           `json:"depositPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	RevisionsIncluded   *int           `json:"revisionsIncluded,omitempty" validate:"omitempty,gte=0"`
	RevisionRate        string         `json:"revisionRate,omitempty" validate:"max=30"`
	RushFeePercent      *int           `json:"rushFeePercent,omitempty" validate:"omitempty,gte=0"`
	PaymentAccount      string         `json:"paymentAccount,omitempty" validate:"max=100"`
	PaymentInstitution  string         `json:"paymentInstitution,omitempty" validate:"max=100"`
	PaymentBeneficiary  string         `json:"paymentBeneficiary,omitempty" validate:"max=200"`
	LicenseType         string         `json:"licenseType,omitempty" validate:"max=100"`
	Exclusivity         *bool          `json:"exclusivity,omitempty"`
	PortfolioRights     *bool          `json:"portfolioRights,omitempty"`
	SourceFilesIncluded *bool          `json:"sourceFilesIncluded,omitempty"`
	SourceFilesFee      string         `json:"sourceFilesFee,omitempty" validate:"max=30"`
	SpecialRequirements string         `json:"specialRequirements,omitempty" validate:"max=2000"`
}

// InvoiceListFilter narrows the invoice list
type InvoiceListFilter struct {
	Search string        `json:"search,omitempty"`
	Status InvoiceStatus `json:"status,omitempty"`
}

// ContractListFilter narrows the contract list
type ContractListFilter struct {
	Search string         `json:"search,omitempty"`
	Type   ContractType   `json:"type,omitempty"`
	Status ContractStatus `json:"status,omitempty"`
}

// StatsResponse bundles both ledgers' dashboards
type StatsResponse struct {
	Invoices    InvoiceStats  `json:"invoices"`
	Contracts   ContractStats `json:"contracts"`
	RefreshedAt string        `json:"refreshedAt"` // ISO 8601
}
