package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/curioyard/studio-api/internal/database"
	"github.com/curioyard/studio-api/internal/repository"
)

// setupTestDB opens a fresh in-memory database per test. The named DSN
// keeps the schema alive across pooled connections within one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func newInvoiceService(t *testing.T) *InvoiceService {
	t.Helper()
	db := setupTestDB(t)
	sequences := NewSequenceService(repository.NewSequenceRepository(db), zap.NewNop())
	return NewInvoiceService(repository.NewInvoiceRepository(db), sequences, zap.NewNop())
}

func newContractService(t *testing.T) *ContractService {
	t.Helper()
	db := setupTestDB(t)
	sequences := NewSequenceService(repository.NewSequenceRepository(db), zap.NewNop())
	return NewContractService(repository.NewContractRepository(db), sequences, zap.NewNop())
}
