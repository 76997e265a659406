package station

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFuelSettingRepository is a mock implementation of station.FuelSettingRepository
type MockFuelSettingRepository struct {
	mock.Mock
}

func (m *MockFuelSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.FuelSetting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.FuelSetting), args.Error(1)
}

func (m *MockFuelSettingRepository) FindByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType) (*station.FuelSetting, error) {
	args := m.Called(ctx, tenantID, fuelType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.FuelSetting), args.Error(1)
}

func (m *MockFuelSettingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]station.FuelSetting, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]station.FuelSetting), args.Error(1)
}

func (m *MockFuelSettingRepository) Save(ctx context.Context, setting *station.FuelSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockFuelSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFuelSettingRepository) ExistsByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType) (bool, error) {
	args := m.Called(ctx, tenantID, fuelType)
	return args.Bool(0), args.Error(1)
}

// MockTankUnloadRepository is a mock implementation of station.TankUnloadRepository
type MockTankUnloadRepository struct {
	mock.Mock
}

func (m *MockTankUnloadRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.TankUnload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.TankUnload), args.Error(1)
}

func (m *MockTankUnloadRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*station.TankUnload, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.TankUnload), args.Error(1)
}

func (m *MockTankUnloadRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.TankUnload, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]station.TankUnload), args.Error(1)
}

func (m *MockTankUnloadRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, from, to time.Time) ([]station.TankUnload, error) {
	args := m.Called(ctx, tenantID, fuelType, from, to)
	return args.Get(0).([]station.TankUnload), args.Error(1)
}

func (m *MockTankUnloadRepository) Save(ctx context.Context, unload *station.TankUnload) error {
	args := m.Called(ctx, unload)
	return args.Error(0)
}

func (m *MockTankUnloadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTankUnloadRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPumpRepository is a mock implementation of station.PumpRepository
type MockPumpRepository struct {
	mock.Mock
}

func (m *MockPumpRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Pump, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Pump), args.Error(1)
}

func (m *MockPumpRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*station.Pump, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Pump), args.Error(1)
}

func (m *MockPumpRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.Pump, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]station.Pump), args.Error(1)
}

func (m *MockPumpRepository) FindOperational(ctx context.Context, tenantID uuid.UUID) ([]station.Pump, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]station.Pump), args.Error(1)
}

func (m *MockPumpRepository) Save(ctx context.Context, pump *station.Pump) error {
	args := m.Called(ctx, pump)
	return args.Error(0)
}

func (m *MockPumpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPumpRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDailyReadingRepository is a mock implementation of station.DailyReadingRepository
type MockDailyReadingRepository struct {
	mock.Mock
}

func (m *MockDailyReadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.DailyReading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.DailyReading), args.Error(1)
}

func (m *MockDailyReadingRepository) FindByDate(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, date time.Time) (*station.DailyReading, error) {
	args := m.Called(ctx, tenantID, fuelType, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.DailyReading), args.Error(1)
}

func (m *MockDailyReadingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.DailyReading, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]station.DailyReading), args.Error(1)
}

func (m *MockDailyReadingRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, from, to time.Time) ([]station.DailyReading, error) {
	args := m.Called(ctx, tenantID, fuelType, from, to)
	return args.Get(0).([]station.DailyReading), args.Error(1)
}

func (m *MockDailyReadingRepository) Save(ctx context.Context, reading *station.DailyReading) error {
	args := m.Called(ctx, reading)
	return args.Error(0)
}

func (m *MockDailyReadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDailyReadingRepository) ExistsForDate(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, date time.Time) (bool, error) {
	args := m.Called(ctx, tenantID, fuelType, date)
	return args.Bool(0), args.Error(1)
}
