package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/money"
	"github.com/curioyard/studio-api/internal/repository"
)

type ContractService struct {
	repo      *repository.ContractRepository
	sequences *SequenceService
	logger    *zap.Logger
}

func NewContractService(
	repo *repository.ContractRepository,
	sequences *SequenceService,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		repo:      repo,
		sequences: sequences,
		logger:    logger,
	}
}

// NewDraft builds a fully defaulted, unsaved draft. The preview number
// uses the value the next allocation would hand out; the counter is only
// consumed when the draft is actually saved.
func (s *ContractService) NewDraft(ctx context.Context, userID string, contractType domain.ContractType) (*domain.Contract, error) {
	if !contractType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContractType, contractType)
	}
	seq, err := s.sequences.PeekContractSequence(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract sequence: %w", err)
	}
	return domain.NewDraftContract(userID, seq, contractType, time.Now()), nil
}

// Create validates and persists a new contract, consuming one counter
// increment.
func (s *ContractService) Create(ctx context.Context, userID string, req *domain.ContractRequest) (*domain.Contract, error) {
	contract, err := s.buildContract(userID, req)
	if err != nil {
		return nil, err
	}
	if err := contract.Validate(); err != nil {
		return nil, err
	}

	number, seq, err := s.sequences.NextContractNumber(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate contract number: %w", err)
	}
	contract.ID = uuid.New()
	contract.ContractNumber = number
	contract.Sequence = seq
	now := time.Now()
	contract.SavedDate = &now

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.logger.Info("Contract created",
		zap.String("user_id", userID),
		zap.String("contract_number", contract.ContractNumber),
		zap.String("type", string(contract.Type)),
	)
	return contract, nil
}

// Update validates and persists changes to an existing contract. Edits
// never consume a sequence number.
func (s *ContractService) Update(ctx context.Context, userID string, id uuid.UUID, req *domain.ContractRequest) (*domain.Contract, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	contract, err := s.buildContract(userID, req)
	if err != nil {
		return nil, err
	}
	contract.BaseModel = existing.BaseModel
	contract.ContractNumber = existing.ContractNumber
	contract.Sequence = existing.Sequence
	if err := contract.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	contract.SavedDate = &now

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.logger.Info("Contract updated",
		zap.String("user_id", userID),
		zap.String("contract_number", contract.ContractNumber),
	)
	return contract, nil
}

// Duplicate clones a contract into a fresh draft with the next sequence
// number. Financial terms carry over verbatim; identity, status, saved
// date and contract date do not.
func (s *ContractService) Duplicate(ctx context.Context, userID string, id uuid.UUID) (*domain.Contract, error) {
	src, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	_, seq, err := s.sequences.NextContractNumber(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate contract number: %w", err)
	}
	dup := src.Duplicate(seq, time.Now())

	if err := s.repo.Create(ctx, dup); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	s.logger.Info("Contract duplicated",
		zap.String("user_id", userID),
		zap.String("source_number", src.ContractNumber),
		zap.String("contract_number", dup.ContractNumber),
	)
	return dup, nil
}

// GetByID returns one contract owned by the user
func (s *ContractService) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Contract, error) {
	contract, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load contract: %w", err)
	}
	return contract, nil
}

// List returns the user's contracts, newest first
func (s *ContractService) List(ctx context.Context, userID string, filter domain.ContractListFilter) ([]domain.Contract, error) {
	return s.repo.List(ctx, userID, filter)
}

// Delete removes a contract by id. The consumed sequence number is not
// released.
func (s *ContractService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	s.logger.Info("Contract deleted",
		zap.String("user_id", userID),
		zap.String("contract_id", id.String()),
	)
	return nil
}

// Catalog returns the rate card for a contract type
func (s *ContractService) Catalog(contractType domain.ContractType) (domain.ContractCatalog, error) {
	catalog, ok := domain.CatalogFor(contractType)
	if !ok {
		return domain.ContractCatalog{}, fmt.Errorf("%w: %s", ErrInvalidContractType, contractType)
	}
	return catalog, nil
}

// buildContract overlays the request on a fully defaulted draft. Amount
// strings parse exactly once here; an empty agreed amount stays unset.
func (s *ContractService) buildContract(userID string, req *domain.ContractRequest) (*domain.Contract, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContractType, req.Type)
	}

	contract := domain.NewDraftContract(userID, 0, req.Type, time.Now())
	contract.ContractNumber = ""

	if req.Status != "" {
		contract.Status = req.Status
	}
	if req.ContractDate != "" {
		contract.ContractDate = req.ContractDate
	}
	if req.StartDate != "" {
		contract.StartDate = req.StartDate
	}
	contract.EndDate = req.EndDate
	if req.DesignerName != "" {
		contract.DesignerName = req.DesignerName
	}
	if req.DesignerEmail != "" {
		contract.DesignerEmail = req.DesignerEmail
	}
	contract.DesignerPhone = req.DesignerPhone
	if req.DesignerAddress != "" {
		contract.DesignerAddress = req.DesignerAddress
	}
	contract.ClientName = req.ClientName
	contract.ClientCompany = req.ClientCompany
	contract.ClientEmail = req.ClientEmail
	contract.ClientPhone = req.ClientPhone
	contract.ClientAddress = req.ClientAddress
	contract.ProjectTitle = req.ProjectTitle
	if req.ServicesSelected != nil {
		contract.ServicesSelected = req.ServicesSelected
	}
	contract.CustomServices = req.CustomServices
	contract.Deliverables = req.Deliverables

	if req.AgreedAmount != "" {
		amount, ok := money.ParseAmount(req.AgreedAmount)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.AgreedAmount)
		}
		contract.AgreedAmount = decimal.NullDecimal{Decimal: amount, Valid: true}
	}
	if req.Currency != "" {
		contract.Currency = req.Currency
	}
	if req.DepositPercent != nil {
		contract.DepositPercent = *req.DepositPercent
	}
	if req.RevisionsIncluded != nil {
		contract.RevisionsIncluded = *req.RevisionsIncluded
	}
	if req.RevisionRate != "" {
		rate, ok := money.ParseAmount(req.RevisionRate)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.RevisionRate)
		}
		contract.RevisionRate = rate
	}
	if req.RushFeePercent != nil {
		contract.RushFeePercent = *req.RushFeePercent
	}
	if req.PaymentAccount != "" {
		contract.PaymentAccount = req.PaymentAccount
	}
	if req.PaymentInstitution != "" {
		contract.PaymentInstitution = req.PaymentInstitution
	}
	if req.PaymentBeneficiary != "" {
		contract.PaymentBeneficiary = req.PaymentBeneficiary
	}
	if req.LicenseType != "" {
		contract.LicenseType = req.LicenseType
	}
	if req.Exclusivity != nil {
		contract.Exclusivity = *req.Exclusivity
	}
	if req.PortfolioRights != nil {
		contract.PortfolioRights = *req.PortfolioRights
	}
	if req.SourceFilesIncluded != nil {
		contract.SourceFilesIncluded = *req.SourceFilesIncluded
	}
	if req.SourceFilesFee != "" {
		fee, ok := money.ParseAmount(req.SourceFilesFee)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.SourceFilesFee)
		}
		contract.SourceFilesFee = decimal.NullDecimal{Decimal: fee, Valid: true}
	}
	contract.SpecialRequirements = req.SpecialRequirements

	return contract, nil
}
