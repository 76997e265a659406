package persistence

import (
	"context"
	"testing"

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

func setupFuelSettingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.FuelSettingModel{})
	require.NoError(t, err)

	return db
}

func newTestFuelSetting(t *testing.T, tenantID uuid.UUID, fuelType station.FuelType, price string) *station.FuelSetting {
	setting, err := station.NewFuelSetting(tenantID, fuelType,
		decimal.RequireFromString(price), decimal.RequireFromString("20000"))
	require.NoError(t, err)
	return setting
}

func TestGormFuelSettingRepository_SaveAndFind(t *testing.T) {
	db := setupFuelSettingTestDB(t)
	repo := NewGormFuelSettingRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("round-trips a fuel setting", func(t *testing.T) {
		setting := newTestFuelSetting(t, tenantID, station.FuelTypePetrol, "102.50")
		require.NoError(t, repo.Save(ctx, setting))

		found, err := repo.FindByFuelType(ctx, tenantID, station.FuelTypePetrol)
		require.NoError(t, err)
		assert.Equal(t, setting.ID, found.ID)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("102.50")))
		assert.True(t, found.TankCapacity.Equal(decimal.RequireFromString("20000")))
	})

	t.Run("returns ErrNotFound for unconfigured fuel", func(t *testing.T) {
		_, err := repo.FindByFuelType(ctx, tenantID, station.FuelTypeCNG)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("does not leak across tenants", func(t *testing.T) {
		_, err := repo.FindByFuelType(ctx, uuid.New(), station.FuelTypePetrol)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormFuelSettingRepository_ExistsByFuelType(t *testing.T) {
	db := setupFuelSettingTestDB(t)
	repo := NewGormFuelSettingRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestFuelSetting(t, tenantID, station.FuelTypeDiesel, "94.20")))

	exists, err := repo.ExistsByFuelType(ctx, tenantID, station.FuelTypeDiesel)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByFuelType(ctx, tenantID, station.FuelTypePetrol)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormFuelSettingRepository_FindAllForTenant(t *testing.T) {
	db := setupFuelSettingTestDB(t)
	repo := NewGormFuelSettingRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()

	require.NoError(t, repo.Save(ctx, newTestFuelSetting(t, tenantID, station.FuelTypePetrol, "102.50")))
	require.NoError(t, repo.Save(ctx, newTestFuelSetting(t, tenantID, station.FuelTypeDiesel, "94.20")))
	require.NoError(t, repo.Save(ctx, newTestFuelSetting(t, uuid.New(), station.FuelTypePetrol, "101.00")))

	settings, err := repo.FindAllForTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.Len(t, settings, 2)
}

func TestGormFuelSettingRepository_Delete(t *testing.T) {
	db := setupFuelSettingTestDB(t)
	repo := NewGormFuelSettingRepository(db)
	ctx := context.Background()

	setting := newTestFuelSetting(t, uuid.New(), station.FuelTypePetrol, "100.00")
	require.NoError(t, repo.Save(ctx, setting))

	require.NoError(t, repo.Delete(ctx, setting.ID))

	err := repo.Delete(ctx, setting.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
