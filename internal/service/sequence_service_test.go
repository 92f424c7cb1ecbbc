package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/repository"
)

func newSequenceService(t *testing.T) *SequenceService {
	t.Helper()
	db := setupTestDB(t)
	return NewSequenceService(repository.NewSequenceRepository(db), zap.NewNop())
}

func TestNextInvoiceNumberFormat(t *testing.T) {
	svc := newSequenceService(t)
	ctx := context.Background()
	year := time.Now().Year()

	number, seq, err := svc.NextInvoiceNumber(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, seq)
	assert.Equal(t, fmt.Sprintf("INV-%d-001", year), number)
}

func TestSequencesAreMonotonic(t *testing.T) {
	svc := newSequenceService(t)
	ctx := context.Background()

	for want := 1; want <= 5; want++ {
		_, seq, err := svc.NextInvoiceNumber(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, seq)
	}
}

func TestInvoiceAndContractCountersAreIndependent(t *testing.T) {
	svc := newSequenceService(t)
	ctx := context.Background()

	_, invSeq, err := svc.NextInvoiceNumber(ctx, "user-1")
	require.NoError(t, err)
	number, conSeq, err := svc.NextContractNumber(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, invSeq)
	assert.Equal(t, 1, conSeq)
	assert.Equal(t, fmt.Sprintf("CGY-%d-001", time.Now().Year()), number)
}

func TestPeekContractSequence(t *testing.T) {
	svc := newSequenceService(t)
	ctx := context.Background()

	peek, err := svc.PeekContractSequence(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, peek)

	// peeking does not consume
	peek, err = svc.PeekContractSequence(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, peek)

	_, seq, err := svc.NextContractNumber(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	peek, err = svc.PeekContractSequence(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, peek)
}

func TestSequencesWiderThanThreeDigits(t *testing.T) {
	svc := newSequenceService(t)
	ctx := context.Background()

	for i := 0; i < 999; i++ {
		_, _, err := svc.NextInvoiceNumber(ctx, "user-1")
		require.NoError(t, err)
	}

	number, seq, err := svc.NextInvoiceNumber(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1000, seq)
	assert.Equal(t, fmt.Sprintf("INV-%d-1000", time.Now().Year()), number)
}
