package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/repository"
)

func newStatsFixture(t *testing.T) (*StatsService, *InvoiceService, *ContractService) {
	t.Helper()
	db := setupTestDB(t)
	invoiceRepo := repository.NewInvoiceRepository(db)
	contractRepo := repository.NewContractRepository(db)
	sequences := NewSequenceService(repository.NewSequenceRepository(db), zap.NewNop())
	invoices := NewInvoiceService(invoiceRepo, sequences, zap.NewNop())
	contracts := NewContractService(contractRepo, sequences, zap.NewNop())
	stats := NewStatsService(invoiceRepo, contractRepo, zap.NewNop())
	return stats, invoices, contracts
}

func TestStatsAggregatesBothLedgers(t *testing.T) {
	stats, invoices, contracts := newStatsFixture(t)
	ctx := context.Background()

	created, err := invoices.Create(ctx, "user-1", validInvoiceRequest())
	require.NoError(t, err)
	_, _, err = invoices.RecordPayment(ctx, "user-1", created.ID, &domain.PaymentRequest{
		Amount: "650", Method: "Mobile Money",
	})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, "user-1", validContractRequest())
	require.NoError(t, err)

	snapshot, err := stats.Get(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.Invoices.TotalInvoices)
	assert.Equal(t, 1, snapshot.Invoices.PaidInvoices)
	assert.True(t, snapshot.Invoices.TotalPaid.Equal(decimal.NewFromInt(650)))
	assert.True(t, snapshot.Invoices.TotalOutstanding.IsZero())
	assert.Equal(t, 1, snapshot.Contracts.Total)
	assert.True(t, snapshot.Contracts.TotalValue.Equal(decimal.NewFromInt(2500)))
	assert.NotEmpty(t, snapshot.RefreshedAt)
}

func TestStatsGetServesCachedSnapshot(t *testing.T) {
	stats, invoices, _ := newStatsFixture(t)
	ctx := context.Background()

	first, err := stats.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Invoices.TotalInvoices)

	_, err = invoices.Create(ctx, "user-1", validInvoiceRequest())
	require.NoError(t, err)

	// still the stale snapshot until something refreshes it
	cached, err := stats.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, cached.Invoices.TotalInvoices)

	fresh, err := stats.Refresh(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Invoices.TotalInvoices)
}

func TestStatsRefreshAllCoversKnownUsers(t *testing.T) {
	stats, invoices, _ := newStatsFixture(t)
	ctx := context.Background()

	_, err := stats.Get(ctx, "user-1")
	require.NoError(t, err)

	_, err = invoices.Create(ctx, "user-1", validInvoiceRequest())
	require.NoError(t, err)

	require.NoError(t, stats.RefreshAll(ctx))

	snapshot, err := stats.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Invoices.TotalInvoices)
}
