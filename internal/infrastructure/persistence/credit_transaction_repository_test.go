package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.CreditTransactionModel{})
	require.NoError(t, err)

	return db
}

func newLedgerEntry(t *testing.T, tenantID, customerID uuid.UUID, txType partner.TransactionType, amount, balanceAfter string) *partner.CreditTransaction {
	source := partner.TransactionSourceIndent
	if txType == partner.TransactionTypeCredit {
		source = partner.TransactionSourcePayment
	}
	entry, err := partner.NewCreditTransaction(tenantID, customerID, uuid.New(), txType, source,
		decimal.RequireFromString(amount), decimal.RequireFromString(balanceAfter))
	require.NoError(t, err)
	return entry
}

func TestGormCreditTransactionRepository_SaveAndFind(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormCreditTransactionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()

	t.Run("round-trips a ledger entry", func(t *testing.T) {
		entry := newLedgerEntry(t, tenantID, customerID, partner.TransactionTypeDebit, "8000", "8000")
		require.NoError(t, repo.Save(ctx, entry))

		found, err := repo.FindByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, found.ID)
		assert.Equal(t, partner.TransactionTypeDebit, found.Type)
		assert.Equal(t, partner.TransactionSourceIndent, found.Source)
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("8000")))
		assert.True(t, found.BalanceAfter.Equal(decimal.RequireFromString("8000")))
	})

	t.Run("returns ErrNotFound for missing entry", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCreditTransactionRepository_FindByCustomer(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormCreditTransactionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()

	require.NoError(t, repo.Save(ctx, newLedgerEntry(t, tenantID, customerID, partner.TransactionTypeDebit, "8000", "8000")))
	require.NoError(t, repo.Save(ctx, newLedgerEntry(t, tenantID, customerID, partner.TransactionTypeCredit, "5000", "3000")))
	require.NoError(t, repo.Save(ctx, newLedgerEntry(t, tenantID, uuid.New(), partner.TransactionTypeDebit, "2000", "2000")))

	t.Run("returns only the customer's entries", func(t *testing.T) {
		entries, err := repo.FindByCustomer(ctx, tenantID, customerID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("counts the customer's entries", func(t *testing.T) {
		count, err := repo.CountByCustomer(ctx, tenantID, customerID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormCreditTransactionRepository_FindBetween(t *testing.T) {
	db := setupLedgerTestDB(t)
	repo := NewGormCreditTransactionRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()

	early := newLedgerEntry(t, tenantID, customerID, partner.TransactionTypeDebit, "1000", "1000")
	early.RecordedAt = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, early))

	late := newLedgerEntry(t, tenantID, customerID, partner.TransactionTypeDebit, "2000", "3000")
	late.RecordedAt = time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, late))

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	entries, err := repo.FindBetween(ctx, tenantID, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, early.ID, entries[0].ID)
}
