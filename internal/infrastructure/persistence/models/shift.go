package models

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftModel is the persistence model for the Shift aggregate.
// Readings and consumable allocations are stored in child tables and
// loaded with the shift.
type ShiftModel struct {
	TenantAggregateModel
	StaffID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	ShiftType shift.ShiftType   `gorm:"type:varchar(20);not null"`
	Status    shift.ShiftStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	StartTime time.Time         `gorm:"not null;index"`
	EndTime   *time.Time        `gorm:"index"`

	CashSales   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CardSales   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	UPISales    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0;column:upi_sales"`
	IndentSales decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	TotalSales     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalLiters    decimal.Decimal `gorm:"type:decimal(14,3);not null;default:0"`
	CashRemaining  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ExpenseAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CashDifference decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	Notes string `gorm:"type:text"`

	Readings    []ShiftReadingModel         `gorm:"foreignKey:ShiftID"`
	Consumables []ConsumableAllocationModel `gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for GORM
func (ShiftModel) TableName() string {
	return "shifts"
}

// ShiftReadingModel is the persistence model for a pump totalizer reading.
type ShiftReadingModel struct {
	BaseModel
	ShiftID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	TenantID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	PumpID         uuid.UUID        `gorm:"type:uuid;not null"`
	FuelType       station.FuelType `gorm:"type:varchar(20);not null"`
	FuelPrice      decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	OpeningReading decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	ClosingReading *decimal.Decimal `gorm:"type:decimal(14,3)"`
	TestingFuel    decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (ShiftReadingModel) TableName() string {
	return "shift_readings"
}

// ConsumableAllocationModel is the persistence model for shift consumables.
type ConsumableAllocationModel struct {
	BaseModel
	ShiftID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Returned  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ConsumableAllocationModel) TableName() string {
	return "shift_consumables"
}

// ToDomain converts the persistence model to a domain Shift aggregate.
func (m *ShiftModel) ToDomain() *shift.Shift {
	s := &shift.Shift{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        m.ID,
					CreatedAt: m.CreatedAt,
					UpdatedAt: m.UpdatedAt,
				},
				Version: m.Version,
			},
			TenantID:  m.TenantID,
			CreatedBy: m.CreatedBy,
		},
		StaffID:        m.StaffID,
		ShiftType:      m.ShiftType,
		Status:         m.Status,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		CashSales:      m.CashSales,
		CardSales:      m.CardSales,
		UPISales:       m.UPISales,
		IndentSales:    m.IndentSales,
		TotalSales:     m.TotalSales,
		TotalLiters:    m.TotalLiters,
		CashRemaining:  m.CashRemaining,
		ExpenseAmount:  m.ExpenseAmount,
		CashDifference: m.CashDifference,
		Notes:          m.Notes,
		Readings:       make([]shift.Reading, 0, len(m.Readings)),
		Consumables:    make([]shift.ConsumableAllocation, 0, len(m.Consumables)),
	}

	for i := range m.Readings {
		s.Readings = append(s.Readings, m.Readings[i].ToDomain())
	}
	for i := range m.Consumables {
		s.Consumables = append(s.Consumables, m.Consumables[i].ToDomain())
	}

	return s
}

// FromDomain populates the persistence model from a domain Shift aggregate.
func (m *ShiftModel) FromDomain(s *shift.Shift) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.StaffID = s.StaffID
	m.ShiftType = s.ShiftType
	m.Status = s.Status
	m.StartTime = s.StartTime
	m.EndTime = s.EndTime
	m.CashSales = s.CashSales
	m.CardSales = s.CardSales
	m.UPISales = s.UPISales
	m.IndentSales = s.IndentSales
	m.TotalSales = s.TotalSales
	m.TotalLiters = s.TotalLiters
	m.CashRemaining = s.CashRemaining
	m.ExpenseAmount = s.ExpenseAmount
	m.CashDifference = s.CashDifference
	m.Notes = s.Notes

	m.Readings = make([]ShiftReadingModel, 0, len(s.Readings))
	for i := range s.Readings {
		m.Readings = append(m.Readings, ShiftReadingModelFromDomain(&s.Readings[i]))
	}
	m.Consumables = make([]ConsumableAllocationModel, 0, len(s.Consumables))
	for i := range s.Consumables {
		m.Consumables = append(m.Consumables, ConsumableAllocationModelFromDomain(&s.Consumables[i]))
	}
}

// ShiftModelFromDomain creates a new persistence model from a domain Shift aggregate.
func ShiftModelFromDomain(s *shift.Shift) *ShiftModel {
	m := &ShiftModel{}
	m.FromDomain(s)
	return m
}

// ToDomain converts the persistence model to a domain Reading.
func (m *ShiftReadingModel) ToDomain() shift.Reading {
	return shift.Reading{
		BaseEntity:     m.BaseModel.ToDomain(),
		ShiftID:        m.ShiftID,
		TenantID:       m.TenantID,
		PumpID:         m.PumpID,
		FuelType:       m.FuelType,
		FuelPrice:      m.FuelPrice,
		OpeningReading: m.OpeningReading,
		ClosingReading: m.ClosingReading,
		TestingFuel:    m.TestingFuel,
	}
}

// ShiftReadingModelFromDomain creates a persistence model from a domain Reading.
func ShiftReadingModelFromDomain(r *shift.Reading) ShiftReadingModel {
	m := ShiftReadingModel{
		ShiftID:        r.ShiftID,
		TenantID:       r.TenantID,
		PumpID:         r.PumpID,
		FuelType:       r.FuelType,
		FuelPrice:      r.FuelPrice,
		OpeningReading: r.OpeningReading,
		ClosingReading: r.ClosingReading,
		TestingFuel:    r.TestingFuel,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// ToDomain converts the persistence model to a domain ConsumableAllocation.
func (m *ConsumableAllocationModel) ToDomain() shift.ConsumableAllocation {
	return shift.ConsumableAllocation{
		BaseEntity: m.BaseModel.ToDomain(),
		ShiftID:    m.ShiftID,
		TenantID:   m.TenantID,
		Name:       m.Name,
		UnitPrice:  m.UnitPrice,
		Quantity:   m.Quantity,
		Returned:   m.Returned,
	}
}

// ConsumableAllocationModelFromDomain creates a persistence model from a domain allocation.
func ConsumableAllocationModelFromDomain(a *shift.ConsumableAllocation) ConsumableAllocationModel {
	m := ConsumableAllocationModel{
		ShiftID:   a.ShiftID,
		TenantID:  a.TenantID,
		Name:      a.Name,
		UnitPrice: a.UnitPrice,
		Quantity:  a.Quantity,
		Returned:  a.Returned,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
