package partner

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

// MockVehicleRepository is a mock implementation of partner.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).([]partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*partner.Vehicle, error) {
	args := m.Called(ctx, tenantID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *partner.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookletRepository is a mock implementation of partner.IndentBookletRepository
type MockBookletRepository struct {
	mock.Mock
}

func (m *MockBookletRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.IndentBooklet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.IndentBooklet), args.Error(1)
}

func (m *MockBookletRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.IndentBooklet, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.IndentBooklet), args.Error(1)
}

func (m *MockBookletRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]partner.IndentBooklet, error) {
	args := m.Called(ctx, tenantID, customerID)
	return args.Get(0).([]partner.IndentBooklet), args.Error(1)
}

func (m *MockBookletRepository) FindActiveByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*partner.IndentBooklet, error) {
	args := m.Called(ctx, tenantID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.IndentBooklet), args.Error(1)
}

func (m *MockBookletRepository) Save(ctx context.Context, booklet *partner.IndentBooklet) error {
	args := m.Called(ctx, booklet)
	return args.Error(0)
}

func (m *MockBookletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIndentRepository is a mock implementation of partner.IndentRepository
type MockIndentRepository struct {
	mock.Mock
}

func (m *MockIndentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Indent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Indent), args.Error(1)
}

func (m *MockIndentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Indent, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Indent), args.Error(1)
}

func (m *MockIndentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Indent, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]partner.Indent), args.Error(1)
}

func (m *MockIndentRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]partner.Indent, error) {
	args := m.Called(ctx, tenantID, customerID, filter)
	return args.Get(0).([]partner.Indent), args.Error(1)
}

func (m *MockIndentRepository) FindByStaffBetween(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]partner.Indent, error) {
	args := m.Called(ctx, tenantID, staffID, from, to)
	return args.Get(0).([]partner.Indent), args.Error(1)
}

func (m *MockIndentRepository) ExistsByNumber(ctx context.Context, tenantID, bookletID uuid.UUID, indentNumber int) (bool, error) {
	args := m.Called(ctx, tenantID, bookletID, indentNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockIndentRepository) Save(ctx context.Context, indent *partner.Indent) error {
	args := m.Called(ctx, indent)
	return args.Error(0)
}

func (m *MockIndentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIndentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
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
