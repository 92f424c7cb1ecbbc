package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/repository"
)

// SequenceService hands out document numbers for both ledgers. Each user
// has one invoice counter and one contract counter; a value is consumed
// exactly once per newly created record and never reused after deletes.
//
// Format: {PREFIX}-{YEAR}-{SEQUENCE}
// Example: INV-2026-001, CGY-2026-042
type SequenceService struct {
	repo   *repository.SequenceRepository
	logger *zap.Logger
}

// NewSequenceService creates a new SequenceService
func NewSequenceService(repo *repository.SequenceRepository, logger *zap.Logger) *SequenceService {
	return &SequenceService{repo: repo, logger: logger}
}

// NextInvoiceNumber allocates the next invoice sequence for the user and
// returns both the formatted display number and the raw value.
func (s *SequenceService) NextInvoiceNumber(ctx context.Context, userID string) (string, int, error) {
	seq, err := s.repo.Next(ctx, userID, domain.SequenceKindInvoice)
	if err != nil {
		return "", 0, err
	}
	number := domain.FormatInvoiceNumber(time.Now().Year(), seq)
	s.logger.Debug("Allocated invoice number",
		zap.String("user_id", userID),
		zap.String("number", number),
	)
	return number, seq, nil
}

// NextContractNumber allocates the next contract sequence for the user
// and returns both the formatted display number and the raw value.
func (s *SequenceService) NextContractNumber(ctx context.Context, userID string) (string, int, error) {
	seq, err := s.repo.Next(ctx, userID, domain.SequenceKindContract)
	if err != nil {
		return "", 0, err
	}
	number := domain.FormatContractNumber(time.Now().Year(), seq)
	s.logger.Debug("Allocated contract number",
		zap.String("user_id", userID),
		zap.String("number", number),
	)
	return number, seq, nil
}

// PeekContractSequence returns the value the next contract allocation
// would hand out, without consuming it. Draft previews use this; the real
// allocation happens at save.
func (s *SequenceService) PeekContractSequence(ctx context.Context, userID string) (int, error) {
	current, err := s.repo.Current(ctx, userID, domain.SequenceKindContract)
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}
