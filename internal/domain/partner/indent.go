package partner

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Indent records one credit fueling against an indent slip. The
// amount is debited from the customer's balance in the same
// transaction that stores the indent.
type Indent struct {
	shared.TenantAggregateRoot
	IndentNumber int
	BookletID    uuid.UUID
	CustomerID   uuid.UUID
	VehicleID    *uuid.UUID
	FuelType     station.FuelType
	Liters       decimal.Decimal
	FuelPrice    decimal.Decimal
	Amount       decimal.Decimal
	ShiftID      *uuid.UUID
	RecordedBy   uuid.UUID
	RecordedAt   time.Time
	Notes        string
}

// NewIndent records a credit fueling. Amount is derived from liters
// and the fuel price ruling at the time of fueling.
func NewIndent(tenantID, bookletID, customerID, recordedBy uuid.UUID, indentNumber int, fuelType station.FuelType, liters, fuelPrice decimal.Decimal) (*Indent, error) {
	if bookletID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOOKLET_ID", "Booklet ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
	}
	if recordedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF_ID", "Recording staff ID cannot be empty")
	}
	if indentNumber <= 0 {
		return nil, shared.NewDomainError("INVALID_INDENT_NUMBER", "Indent number must be positive")
	}
	if !fuelType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	if liters.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_LITERS", "Indent liters must be positive")
	}
	if fuelPrice.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Fuel price must be positive")
	}

	return &Indent{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		IndentNumber:        indentNumber,
		BookletID:           bookletID,
		CustomerID:          customerID,
		FuelType:            fuelType,
		Liters:              liters,
		FuelPrice:           fuelPrice,
		Amount:              liters.Mul(fuelPrice),
		RecordedBy:          recordedBy,
		RecordedAt:          time.Now(),
	}, nil
}

// AttachVehicle links the fueled vehicle
func (i *Indent) AttachVehicle(vehicleID uuid.UUID) error {
	if vehicleID == uuid.Nil {
		return shared.NewDomainError("INVALID_VEHICLE_ID", "Vehicle ID cannot be empty")
	}
	i.VehicleID = &vehicleID
	i.UpdatedAt = time.Now()
	return nil
}

// AttachShift links the shift during which the fueling happened
func (i *Indent) AttachShift(shiftID uuid.UUID) error {
	if shiftID == uuid.Nil {
		return shared.NewDomainError("INVALID_SHIFT_ID", "Shift ID cannot be empty")
	}
	i.ShiftID = &shiftID
	i.UpdatedAt = time.Now()
	return nil
}
