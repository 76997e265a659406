package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTankUnloadTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TankUnloadModel{}))

	return db
}

func newTestUnload(t *testing.T, tenantID uuid.UUID, fuelType station.FuelType, liters string, unloadedAt time.Time) *station.TankUnload {
	t.Helper()

	unload, err := station.NewTankUnload(tenantID, uuid.New(), fuelType,
		decimal.RequireFromString(liters), decimal.RequireFromString("500000"), unloadedAt)
	require.NoError(t, err)

	return unload
}

func TestGormTankUnloadRepository_SaveAndFind(t *testing.T) {
	db := setupTankUnloadTestDB(t)
	repo := NewGormTankUnloadRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	unload := newTestUnload(t, tenantID, station.FuelTypeDiesel, "6000", time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC))
	require.NoError(t, unload.SetInvoiceDetails("INV-4471", "TN29AB1234"))
	require.NoError(t, repo.Save(ctx, unload))

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, unload.ID)

		require.NoError(t, err)
		assert.Equal(t, station.FuelTypeDiesel, found.FuelType)
		assert.True(t, found.Liters.Equal(decimal.RequireFromString("6000")))
		assert.Equal(t, "INV-4471", found.InvoiceNumber)
		assert.Equal(t, "TN29AB1234", found.TankerNumber)
	})

	t.Run("FindByIDForTenant_WrongTenant", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(ctx, uuid.New(), unload.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormTankUnloadRepository_FilterByFuelType(t *testing.T) {
	db := setupTankUnloadTestDB(t)
	repo := NewGormTankUnloadRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	base := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypeDiesel, "6000", base)))
	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypeDiesel, "4000", base.AddDate(0, 0, 3))))
	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypePetrol, "3000", base.AddDate(0, 0, 5))))
	require.NoError(t, repo.Save(ctx, newTestUnload(t, uuid.New(), station.FuelTypeDiesel, "9000", base)))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"fuel_type": "diesel"}

	unloads, err := repo.FindAllForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	assert.Len(t, unloads, 2)

	count, err := repo.CountForTenant(ctx, tenantID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormTankUnloadRepository_FindBetween(t *testing.T) {
	db := setupTankUnloadTestDB(t)
	repo := NewGormTankUnloadRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypePetrol, "3000",
		time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypePetrol, "2000",
		time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(ctx, newTestUnload(t, tenantID, station.FuelTypeDiesel, "5000",
		time.Date(2025, 8, 5, 10, 0, 0, 0, time.UTC))))

	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	unloads, err := repo.FindBetween(ctx, tenantID, station.FuelTypePetrol, from, to)

	require.NoError(t, err)
	require.Len(t, unloads, 1)
	assert.True(t, unloads[0].Liters.Equal(decimal.RequireFromString("3000")))
}

func TestGormTankUnloadRepository_Delete(t *testing.T) {
	db := setupTankUnloadTestDB(t)
	repo := NewGormTankUnloadRepository(db)
	ctx := context.Background()

	unload := newTestUnload(t, uuid.New(), station.FuelTypeCNG, "1500", time.Now().UTC())
	require.NoError(t, repo.Save(ctx, unload))

	require.NoError(t, repo.Delete(ctx, unload.ID))

	_, err := repo.FindByID(ctx, unload.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, unload.ID), shared.ErrNotFound)
}
