package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	t.Run("creates tenant successfully", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")

		require.NoError(t, err)
		assert.NotNil(t, tenant)
		assert.Equal(t, "STN001", tenant.Code)
		assert.Equal(t, "Highway Fuel Station", tenant.Name)
		assert.Equal(t, TenantStatusActive, tenant.Status)
		assert.Equal(t, "INR", tenant.Config.Currency)
		assert.Equal(t, "Asia/Kolkata", tenant.Config.Timezone)
		assert.Equal(t, 20, tenant.Config.LowStockPercent)
		assert.Len(t, tenant.GetDomainEvents(), 1)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		tenant, err := NewTenant("stn002", "City Fuel Station")

		require.NoError(t, err)
		assert.Equal(t, "STN002", tenant.Code)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		tenant, err := NewTenant("", "City Fuel Station")

		assert.Error(t, err)
		assert.Nil(t, tenant)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "")

		assert.Error(t, err)
		assert.Nil(t, tenant)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with code exceeding max length", func(t *testing.T) {
		tenant, err := NewTenant(strings.Repeat("A", 51), "City Fuel Station")

		assert.Error(t, err)
		assert.Nil(t, tenant)
		assert.Contains(t, err.Error(), "cannot exceed 50 characters")
	})
}

func TestTenantUpdate(t *testing.T) {
	t.Run("updates basic information", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)
		oldVersion := tenant.GetVersion()

		err = tenant.Update("Highway Fuel Station Pvt Ltd", "NH-44, Hosur", "29abcde1234f1z5")

		require.NoError(t, err)
		assert.Equal(t, "Highway Fuel Station Pvt Ltd", tenant.Name)
		assert.Equal(t, "NH-44, Hosur", tenant.Address)
		assert.Equal(t, "29ABCDE1234F1Z5", tenant.GSTNumber)
		assert.Equal(t, oldVersion+1, tenant.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		err = tenant.Update("", "NH-44", "")
		assert.Error(t, err)
	})
}

func TestTenantStatusTransitions(t *testing.T) {
	t.Run("deactivate then activate", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		require.NoError(t, tenant.Deactivate())
		assert.Equal(t, TenantStatusInactive, tenant.Status)
		assert.False(t, tenant.IsActive())

		require.NoError(t, tenant.Activate())
		assert.Equal(t, TenantStatusActive, tenant.Status)
		assert.True(t, tenant.IsActive())
	})

	t.Run("activate when already active fails", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		err = tenant.Activate()
		assert.Error(t, err)
	})

	t.Run("suspend", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		require.NoError(t, tenant.Suspend())
		assert.Equal(t, TenantStatusSuspended, tenant.Status)
		assert.Error(t, tenant.Suspend())
	})
}

func TestTenantUpdateConfig(t *testing.T) {
	t.Run("replaces config keeping defaults for blanks", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		err = tenant.UpdateConfig(TenantConfig{LowStockPercent: 15, InvoicePrefix: "HFS"})

		require.NoError(t, err)
		assert.Equal(t, 15, tenant.Config.LowStockPercent)
		assert.Equal(t, "HFS", tenant.Config.InvoicePrefix)
		assert.Equal(t, "INR", tenant.Config.Currency)
		assert.Equal(t, "Asia/Kolkata", tenant.Config.Timezone)
	})

	t.Run("rejects low stock percent out of range", func(t *testing.T) {
		tenant, err := NewTenant("STN001", "Highway Fuel Station")
		require.NoError(t, err)

		err = tenant.UpdateConfig(TenantConfig{LowStockPercent: 150})
		assert.Error(t, err)
	})
}

func TestTenantStatusIsValid(t *testing.T) {
	assert.True(t, TenantStatusActive.IsValid())
	assert.True(t, TenantStatusInactive.IsValid())
	assert.True(t, TenantStatusSuspended.IsValid())
	assert.False(t, TenantStatus("deleted").IsValid())
}
