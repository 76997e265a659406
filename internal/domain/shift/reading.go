package shift

import (
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reading records the totalizer values of one pump nozzle for the
// duration of a shift. The opening value is captured when the shift
// starts and the closing value when it ends. The fuel price is frozen
// at shift start so later price changes do not affect the shift's
// meter sales.
type Reading struct {
	shared.BaseEntity
	ShiftID        uuid.UUID
	TenantID       uuid.UUID
	PumpID         uuid.UUID
	FuelType       station.FuelType
	FuelPrice      decimal.Decimal
	OpeningReading decimal.Decimal
	ClosingReading *decimal.Decimal
	// TestingFuel is fuel run through the nozzle for calibration checks.
	// It moves the totalizer but was never sold.
	TestingFuel decimal.Decimal
}

// NewReading captures the opening totalizer value for a pump nozzle
func NewReading(pumpID uuid.UUID, fuelType station.FuelType, opening, price decimal.Decimal) (Reading, error) {
	if pumpID == uuid.Nil {
		return Reading{}, shared.NewDomainError("INVALID_PUMP_ID", "Pump ID cannot be empty")
	}
	if !fuelType.IsValid() {
		return Reading{}, shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	if opening.IsNegative() {
		return Reading{}, shared.NewDomainError("INVALID_READING", "Opening reading cannot be negative")
	}
	if price.IsNegative() {
		return Reading{}, shared.NewDomainError("INVALID_PRICE", "Fuel price cannot be negative")
	}

	return Reading{
		BaseEntity:     shared.NewBaseEntity(),
		PumpID:         pumpID,
		FuelType:       fuelType,
		FuelPrice:      price,
		OpeningReading: opening,
	}, nil
}

// SetClosing records the closing totalizer value. Totalizers only
// count upward, so a closing below the opening is rejected with the
// fuel type named in the error.
func (r *Reading) SetClosing(closing decimal.Decimal) error {
	if closing.LessThan(r.OpeningReading) {
		return shared.NewDomainError("READING_OUT_OF_ORDER",
			"Closing reading for "+string(r.FuelType)+" cannot be lower than opening reading")
	}
	r.ClosingReading = &closing
	return nil
}

// SetTestingFuel records fuel dispensed for meter calibration during
// the shift. It cannot exceed the totalizer movement.
func (r *Reading) SetTestingFuel(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewDomainError("INVALID_TESTING_FUEL", "Testing fuel cannot be negative")
	}
	if r.ClosingReading != nil && qty.GreaterThan(r.ClosingReading.Sub(r.OpeningReading)) {
		return shared.NewDomainError("INVALID_TESTING_FUEL",
			"Testing fuel for "+string(r.FuelType)+" cannot exceed the dispensed volume")
	}
	r.TestingFuel = qty
	return nil
}

// Liters returns the billable volume dispensed during the shift:
// totalizer movement less testing fuel. Readings without a closing
// value contribute zero.
func (r *Reading) Liters() decimal.Decimal {
	if r.ClosingReading == nil {
		return decimal.Zero
	}
	diff := r.ClosingReading.Sub(r.OpeningReading).Sub(r.TestingFuel)
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}

// SaleAmount returns the meter sales value of this reading
func (r *Reading) SaleAmount() decimal.Decimal {
	return r.Liters().Mul(r.FuelPrice)
}
