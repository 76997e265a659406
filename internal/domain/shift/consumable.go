package shift

import (
	"strings"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsumableAllocation tracks sellable consumables (engine oil,
// coolant, additives) handed to an attendant at shift start. Whatever
// is not returned at shift end is charged as a shift expense.
type ConsumableAllocation struct {
	shared.BaseEntity
	ShiftID   uuid.UUID
	TenantID  uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Returned  int
}

// NewConsumableAllocation creates an allocation for a shift
func NewConsumableAllocation(name string, unitPrice decimal.Decimal, quantity int) (ConsumableAllocation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ConsumableAllocation{}, shared.NewDomainError("INVALID_CONSUMABLE_NAME", "Consumable name cannot be empty")
	}
	if len(name) > 200 {
		return ConsumableAllocation{}, shared.NewDomainError("INVALID_CONSUMABLE_NAME", "Consumable name cannot exceed 200 characters")
	}
	if unitPrice.IsNegative() {
		return ConsumableAllocation{}, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}
	if quantity <= 0 {
		return ConsumableAllocation{}, shared.NewDomainError("INVALID_QUANTITY", "Allocated quantity must be positive")
	}

	return ConsumableAllocation{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
	}, nil
}

// SetReturned records how many units came back at shift end
func (a *ConsumableAllocation) SetReturned(returned int) error {
	if returned < 0 {
		return shared.NewDomainError("INVALID_RETURNED", "Returned quantity cannot be negative")
	}
	if returned > a.Quantity {
		return shared.NewDomainError("INVALID_RETURNED", "Returned quantity cannot exceed allocated quantity")
	}
	a.Returned = returned
	return nil
}

// Used returns how many units were consumed or sold during the shift
func (a *ConsumableAllocation) Used() int {
	return a.Quantity - a.Returned
}

// Expense returns the value of the units not returned
func (a *ConsumableAllocation) Expense() decimal.Decimal {
	return a.UnitPrice.Mul(decimal.NewFromInt(int64(a.Used())))
}
