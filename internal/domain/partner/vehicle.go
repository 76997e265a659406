package partner

import (
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleType classifies a customer vehicle
type VehicleType string

const (
	VehicleTypeTruck   VehicleType = "truck"
	VehicleTypeBus     VehicleType = "bus"
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeTractor VehicleType = "tractor"
	VehicleTypeOther   VehicleType = "other"
)

// IsValid checks if the vehicle type is known
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleTypeTruck, VehicleTypeBus, VehicleTypeCar, VehicleTypeTractor, VehicleTypeOther:
		return true
	}
	return false
}

// Vehicle is a registered vehicle of a credit customer. Indents
// reference the vehicle that was fueled.
type Vehicle struct {
	shared.TenantAggregateRoot
	CustomerID  uuid.UUID
	Number      string
	VehicleType VehicleType
	Notes       string
}

// NewVehicle registers a vehicle under a customer
func NewVehicle(tenantID, customerID uuid.UUID, number string, vehicleType VehicleType) (*Vehicle, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
	}
	number = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(number), " ", ""))
	if number == "" {
		return nil, shared.NewDomainError("INVALID_VEHICLE_NUMBER", "Vehicle number cannot be empty")
	}
	if len(number) > 20 {
		return nil, shared.NewDomainError("INVALID_VEHICLE_NUMBER", "Vehicle number cannot exceed 20 characters")
	}
	if !vehicleType.IsValid() {
		return nil, shared.NewDomainError("INVALID_VEHICLE_TYPE", "Unknown vehicle type")
	}

	return &Vehicle{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		Number:              number,
		VehicleType:         vehicleType,
	}, nil
}

// SetNotes sets free-form notes on the vehicle
func (v *Vehicle) SetNotes(notes string) {
	v.Notes = notes
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}
