package shift

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelstation/backend/internal/domain/station"
)

func mustReading(t *testing.T, fuelType station.FuelType, opening, closing, price int64) Reading {
	t.Helper()
	r, err := NewReading(uuid.New(), fuelType, decimal.NewFromInt(opening), decimal.NewFromInt(price))
	require.NoError(t, err)
	require.NoError(t, r.SetClosing(decimal.NewFromInt(closing)))
	return r
}

func TestTotalLiters(t *testing.T) {
	t.Run("sums across readings", func(t *testing.T) {
		readings := []Reading{
			mustReading(t, station.FuelTypePetrol, 1000, 1500, 100),
			mustReading(t, station.FuelTypeDiesel, 2000, 2450, 90),
		}

		assert.True(t, TotalLiters(readings).Equal(decimal.NewFromInt(950)))
	})

	t.Run("open reading contributes zero", func(t *testing.T) {
		r, err := NewReading(uuid.New(), station.FuelTypePetrol, decimal.NewFromInt(1000), decimal.NewFromInt(100))
		require.NoError(t, err)

		assert.True(t, TotalLiters([]Reading{r}).IsZero())
	})

	t.Run("empty slice is zero", func(t *testing.T) {
		assert.True(t, TotalLiters(nil).IsZero())
	})
}

func TestMeterSales(t *testing.T) {
	readings := []Reading{
		mustReading(t, station.FuelTypePetrol, 1000, 1500, 100),
		mustReading(t, station.FuelTypeDiesel, 2000, 2450, 90),
	}

	// 500*100 + 450*90
	assert.True(t, MeterSales(readings).Equal(decimal.NewFromInt(90500)))
}

func TestPaymentTotal(t *testing.T) {
	total := PaymentTotal(decimal.NewFromInt(3000), decimal.NewFromInt(4000), decimal.NewFromInt(1000))
	assert.True(t, total.Equal(decimal.NewFromInt(8000)))
}

func TestCashDifference(t *testing.T) {
	t.Run("balanced drawer", func(t *testing.T) {
		diff := CashDifference(decimal.NewFromInt(3000), decimal.NewFromInt(3000), decimal.Zero)
		assert.True(t, diff.IsZero())
	})

	t.Run("expenses paid from drawer balance out", func(t *testing.T) {
		diff := CashDifference(decimal.NewFromInt(2500), decimal.NewFromInt(3000), decimal.NewFromInt(500))
		assert.True(t, diff.IsZero())
	})

	t.Run("shortage is negative", func(t *testing.T) {
		diff := CashDifference(decimal.NewFromInt(2800), decimal.NewFromInt(3000), decimal.Zero)
		assert.True(t, diff.Equal(decimal.NewFromInt(-200)))
	})

	t.Run("excess is positive", func(t *testing.T) {
		diff := CashDifference(decimal.NewFromInt(3100), decimal.NewFromInt(3000), decimal.Zero)
		assert.True(t, diff.Equal(decimal.NewFromInt(100)))
	})
}

func TestConsumableExpenses(t *testing.T) {
	oil, err := NewConsumableAllocation("Engine Oil 1L", decimal.NewFromInt(450), 10)
	require.NoError(t, err)
	require.NoError(t, oil.SetReturned(7))

	coolant, err := NewConsumableAllocation("Coolant 500ml", decimal.NewFromInt(120), 5)
	require.NoError(t, err)
	require.NoError(t, coolant.SetReturned(5))

	total := ConsumableExpenses([]ConsumableAllocation{oil, coolant})
	assert.True(t, total.Equal(decimal.NewFromInt(1350)))
}

func TestConsumableAllocation(t *testing.T) {
	t.Run("returned cannot exceed allocated", func(t *testing.T) {
		a, err := NewConsumableAllocation("Engine Oil 1L", decimal.NewFromInt(450), 5)
		require.NoError(t, err)

		assert.Error(t, a.SetReturned(6))
		assert.Error(t, a.SetReturned(-1))
		require.NoError(t, a.SetReturned(5))
		assert.Zero(t, a.Used())
		assert.True(t, a.Expense().IsZero())
	})

	t.Run("rejects empty name and zero quantity", func(t *testing.T) {
		_, err := NewConsumableAllocation("", decimal.NewFromInt(450), 5)
		assert.Error(t, err)

		_, err = NewConsumableAllocation("Engine Oil 1L", decimal.NewFromInt(450), 0)
		assert.Error(t, err)
	})
}
