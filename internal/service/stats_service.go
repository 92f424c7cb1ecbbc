package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/repository"
)

// StatsService derives the dashboard views over both ledgers. Snapshots
// are cached per user and refreshed by a background job while the API
// runs; the refresh is a read-only poll, last write wins.
type StatsService struct {
	invoiceRepo  *repository.InvoiceRepository
	contractRepo *repository.ContractRepository
	logger       *zap.Logger

	mu    sync.RWMutex
	cache map[string]*domain.StatsResponse
}

func NewStatsService(
	invoiceRepo *repository.InvoiceRepository,
	contractRepo *repository.ContractRepository,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		invoiceRepo:  invoiceRepo,
		contractRepo: contractRepo,
		logger:       logger,
		cache:        make(map[string]*domain.StatsResponse),
	}
}

// Get returns the user's dashboard, serving the cached snapshot when one
// exists and computing a fresh one otherwise.
func (s *StatsService) Get(ctx context.Context, userID string) (*domain.StatsResponse, error) {
	s.mu.RLock()
	cached, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}
	return s.Refresh(ctx, userID)
}

// Refresh recomputes the user's dashboard from the full record sets and
// replaces the cached snapshot.
func (s *StatsService) Refresh(ctx context.Context, userID string) (*domain.StatsResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, userID, domain.InvoiceListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	contracts, err := s.contractRepo.List(ctx, userID, domain.ContractListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load contracts: %w", err)
	}

	now := time.Now()
	snapshot := &domain.StatsResponse{
		Invoices:    domain.ComputeInvoiceStats(invoices, now),
		Contracts:   domain.ComputeContractStats(contracts, now),
		RefreshedAt: now.UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.cache[userID] = snapshot
	s.mu.Unlock()

	return snapshot, nil
}

// RefreshAll recomputes snapshots for every user currently in the cache.
// Called from the scheduler; users enter the cache on their first stats
// request.
func (s *StatsService) RefreshAll(ctx context.Context) error {
	s.mu.RLock()
	users := make([]string, 0, len(s.cache))
	for userID := range s.cache {
		users = append(users, userID)
	}
	s.mu.RUnlock()

	for _, userID := range users {
		if _, err := s.Refresh(ctx, userID); err != nil {
			s.logger.Warn("Stats refresh failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
	return nil
}
