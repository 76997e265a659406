package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelstation/backend/internal/domain/station"
)

func TestNewIndent(t *testing.T) {
	tenantID := uuid.New()
	bookletID := uuid.New()
	customerID := uuid.New()
	staffID := uuid.New()

	t.Run("derives amount from liters and price", func(t *testing.T) {
		i, err := NewIndent(tenantID, bookletID, customerID, staffID, 101,
			station.FuelTypeDiesel, decimal.NewFromInt(200), decimal.NewFromFloat(90.50))

		require.NoError(t, err)
		assert.True(t, i.Amount.Equal(decimal.NewFromInt(18100)), "got %s", i.Amount)
		assert.Equal(t, 101, i.IndentNumber)
	})

	t.Run("rejects non positive liters", func(t *testing.T) {
		_, err := NewIndent(tenantID, bookletID, customerID, staffID, 101,
			station.FuelTypeDiesel, decimal.Zero, decimal.NewFromInt(90))
		assert.Error(t, err)
	})

	t.Run("attach vehicle and shift", func(t *testing.T) {
		i, err := NewIndent(tenantID, bookletID, customerID, staffID, 101,
			station.FuelTypeDiesel, decimal.NewFromInt(200), decimal.NewFromInt(90))
		require.NoError(t, err)

		vehicleID := uuid.New()
		shiftID := uuid.New()
		require.NoError(t, i.AttachVehicle(vehicleID))
		require.NoError(t, i.AttachShift(shiftID))
		assert.Equal(t, vehicleID, *i.VehicleID)
		assert.Equal(t, shiftID, *i.ShiftID)

		assert.Error(t, i.AttachVehicle(uuid.Nil))
	})
}

func TestCreditTransaction(t *testing.T) {
	tenantID := uuid.New()
	customerID := uuid.New()
	staffID := uuid.New()

	t.Run("records ledger entry", func(t *testing.T) {
		tx, err := NewCreditTransaction(tenantID, customerID, staffID,
			TransactionTypeDebit, TransactionSourceIndent,
			decimal.NewFromInt(18100), decimal.NewFromInt(18100))

		require.NoError(t, err)
		assert.Equal(t, TransactionTypeDebit, tx.Type)
		assert.True(t, tx.BalanceAfter.Equal(decimal.NewFromInt(18100)))
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		_, err := NewCreditTransaction(tenantID, customerID, staffID,
			TransactionTypeDebit, TransactionSource("refund"),
			decimal.NewFromInt(100), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		_, err := NewCreditTransaction(tenantID, customerID, staffID,
			TransactionTypeCredit, TransactionSourcePayment,
			decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}
