package station

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyReading is the end-of-day stock record for one fuel product:
// the dip-measured opening and closing stock, deliveries received,
// and the meter sales accumulated by shifts that day. The closing
// stock is carried to the FuelSetting as the new tank level.
type DailyReading struct {
	shared.TenantAggregateRoot
	FuelType     FuelType
	ReadingDate  time.Time
	OpeningStock decimal.Decimal
	Receipts     decimal.Decimal
	ClosingStock decimal.Decimal
	MeterSales   decimal.Decimal
	RecordedBy   uuid.UUID
	Notes        string
}

// NewDailyReading records a day's stock figures for a fuel product
func NewDailyReading(tenantID, recordedBy uuid.UUID, fuelType FuelType, readingDate time.Time, openingStock, receipts, closingStock, meterSales decimal.Decimal) (*DailyReading, error) {
	if !fuelType.IsValid() {
		return nil, shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	if readingDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_READING_DATE", "Reading date cannot be empty")
	}
	if openingStock.IsNegative() || closingStock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock figures cannot be negative")
	}
	if receipts.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RECEIPTS", "Receipts cannot be negative")
	}
	if meterSales.IsNegative() {
		return nil, shared.NewDomainError("INVALID_METER_SALES", "Meter sales cannot be negative")
	}
	if closingStock.GreaterThan(openingStock.Add(receipts)) {
		return nil, shared.NewDomainError("INVALID_STOCK", "Closing stock cannot exceed opening stock plus receipts")
	}

	day := time.Date(readingDate.Year(), readingDate.Month(), readingDate.Day(), 0, 0, 0, 0, readingDate.Location())

	return &DailyReading{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		FuelType:            fuelType,
		ReadingDate:         day,
		OpeningStock:        openingStock,
		Receipts:            receipts,
		ClosingStock:        closingStock,
		MeterSales:          meterSales,
		RecordedBy:          recordedBy,
	}, nil
}

// BookStock returns what the closing stock should have been if the
// meters account for every liter that left the tank
func (d *DailyReading) BookStock() decimal.Decimal {
	return d.OpeningStock.Add(d.Receipts).Sub(d.MeterSales)
}

// StockVariation returns the physical loss or gain for the day:
// the dip-measured outflow minus the meter sales. Positive values
// mean more fuel left the tank than the meters recorded, which
// points at leakage, evaporation, or unmetered draws.
func (d *DailyReading) StockVariation() decimal.Decimal {
	dispensed := d.OpeningStock.Add(d.Receipts).Sub(d.ClosingStock)
	return dispensed.Sub(d.MeterSales)
}
