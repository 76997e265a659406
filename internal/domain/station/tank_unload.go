package station

import (
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TankUnload records a tanker delivery into one of the station's
// tanks. Applying the unload to the matching FuelSetting raises the
// tank level; the unload row itself is the audit trail.
type TankUnload struct {
	shared.TenantAggregateRoot
	FuelType      FuelType
	Liters        decimal.Decimal
	Amount        decimal.Decimal
	InvoiceNumber string
	TankerNumber  string
	UnloadedAt    time.Time
	RecordedBy    uuid.UUID
	Notes         string
}

// NewTankUnload records a fuel delivery
func NewTankUnload(tenantID, recordedBy uuid.UUID, fuelType FuelType, liters, amount decimal.Decimal, unloadedAt time.Time) (*TankUnload, error) {
	if !fuelType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	if liters.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_UNLOAD", "Unloaded liters must be positive")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Unload amount cannot be negative")
	}
	if recordedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF_ID", "Recording staff ID cannot be empty")
	}
	if unloadedAt.IsZero() {
		unloadedAt = time.Now()
	}

	return &TankUnload{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FuelType:            fuelType,
		Liters:              liters,
		Amount:              amount,
		UnloadedAt:          unloadedAt,
		RecordedBy:          recordedBy,
	}, nil
}

// SetInvoiceDetails attaches supplier invoice and tanker identifiers
func (u *TankUnload) SetInvoiceDetails(invoiceNumber, tankerNumber string) error {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	tankerNumber = strings.TrimSpace(tankerNumber)
	if len(invoiceNumber) > 100 {
		return shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 100 characters")
	}
	if len(tankerNumber) > 50 {
		return shared.NewDomainError("INVALID_TANKER_NUMBER", "Tanker number cannot exceed 50 characters")
	}

	u.InvoiceNumber = invoiceNumber
	u.TankerNumber = tankerNumber
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RatePerLiter returns the effective purchase rate of the delivery
func (u *TankUnload) RatePerLiter() decimal.Decimal {
	if u.Liters.Sign() <= 0 {
		return decimal.Zero
	}
	return u.Amount.Div(u.Liters)
}
