package report

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	infraprinting "github.com/fuelstation/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockShiftRepository is a mock implementation of shift.Repository
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveByStaff(ctx context.Context, tenantID, staffID uuid.UUID) (*shift.Shift, error) {
	args := m.Called(ctx, tenantID, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]shift.Shift, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status shift.ShiftStatus, filter shared.Filter) ([]shift.Shift, error) {
	args := m.Called(ctx, tenantID, status, filter)
	return args.Get(0).([]shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindCompletedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]shift.Shift, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).([]shift.Shift), args.Error(1)
}

func (m *MockShiftRepository) Save(ctx context.Context, s *shift.Shift) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShiftRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftRepository) HasActiveShift(ctx context.Context, tenantID, staffID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, staffID)
	return args.Bool(0), args.Error(1)
}

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

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockLedgerRepository is a mock implementation of partner.CreditTransactionRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.CreditTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.CreditTransaction), args.Error(1)
}

func (m *MockLedgerRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]partner.CreditTransaction, error) {
	args := m.Called(ctx, tenantID, customerID, filter)
	return args.Get(0).([]partner.CreditTransaction), args.Error(1)
}

func (m *MockLedgerRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]partner.CreditTransaction, error) {
	args := m.Called(ctx, tenantID, from, to)
	return args.Get(0).([]partner.CreditTransaction), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, tx *partner.CreditTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLedgerRepository) CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, tenantID uuid.UUID, role identity.UserRole, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, role, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, tenantID uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, tenantID, username)
	return args.Bool(0), args.Error(1)
}

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByCode(ctx context.Context, code string) (*identity.Tenant, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByStatus(ctx context.Context, status identity.TenantStatus, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockPDFRenderer is a mock implementation of printing.PDFRenderer
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(ctx context.Context, req *infraprinting.RenderRequest) (*infraprinting.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*infraprinting.RenderResult), args.Error(1)
}

func (m *MockPDFRenderer) Close() error {
	args := m.Called()
	return args.Error(0)
}
