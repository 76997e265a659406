package station

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelType identifies a fuel product sold at the station
type FuelType string

const (
	FuelTypePetrol        FuelType = "petrol"
	FuelTypeDiesel        FuelType = "diesel"
	FuelTypePremiumPetrol FuelType = "premium_petrol"
	FuelTypeCNG           FuelType = "cng"
)

// IsValid checks if the fuel type is a known product
func (f FuelType) IsValid() bool {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypePremiumPetrol, FuelTypeCNG:
		return true
	}
	return false
}

// FuelSetting is the aggregate root for one fuel product at a
// station: its selling price and the underground tank holding it.
type FuelSetting struct {
	shared.TenantAggregateRoot
	FuelType     FuelType
	Price        decimal.Decimal
	TankCapacity decimal.Decimal
	CurrentLevel decimal.Decimal
}

// NewFuelSetting registers a fuel product for a station
func NewFuelSetting(tenantID uuid.UUID, fuelType FuelType, price, tankCapacity decimal.Decimal) (*FuelSetting, error) {
	if !fuelType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Fuel price cannot be negative")
	}
	if tankCapacity.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Tank capacity must be positive")
	}

	return &FuelSetting{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FuelType:            fuelType,
		Price:               price,
		TankCapacity:        tankCapacity,
		CurrentLevel:        decimal.Zero,
	}, nil
}

// UpdatePrice changes the selling price
func (f *FuelSetting) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Fuel price cannot be negative")
	}

	f.Price = price
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// SetCapacity changes the tank capacity. The current level is left
// untouched even if it now exceeds the capacity, since the physical
// tank cannot shrink below its contents.
func (f *FuelSetting) SetCapacity(capacity decimal.Decimal) error {
	if capacity.Sign() <= 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Tank capacity must be positive")
	}

	f.TankCapacity = capacity
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// SetLevel overwrites the current tank level, as measured by a dip
// reading or carried over from a daily closing stock entry
func (f *FuelSetting) SetLevel(level decimal.Decimal) error {
	if level.IsNegative() {
		return shared.NewDomainError("INVALID_LEVEL", "Tank level cannot be negative")
	}

	f.CurrentLevel = level
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// ApplyUnload adds delivered fuel to the tank
func (f *FuelSetting) ApplyUnload(liters decimal.Decimal) error {
	if liters.Sign() <= 0 {
		return shared.NewDomainError("INVALID_UNLOAD", "Unloaded liters must be positive")
	}
	newLevel := f.CurrentLevel.Add(liters)
	if newLevel.GreaterThan(f.TankCapacity) {
		return shared.ErrTankCapacity
	}

	f.CurrentLevel = newLevel
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}

// IsLowStock reports whether the tank is at or below the given
// percentage of its capacity
func (f *FuelSetting) IsLowStock(thresholdPercent int) bool {
	if f.TankCapacity.Sign() <= 0 {
		return false
	}
	threshold := f.TankCapacity.Mul(decimal.NewFromInt(int64(thresholdPercent))).Div(decimal.NewFromInt(100))
	return f.CurrentLevel.LessThanOrEqual(threshold)
}
