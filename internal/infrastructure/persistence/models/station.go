package models

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelSettingModel is the persistence model for a fuel product.
type FuelSettingModel struct {
	TenantAggregateModel
	FuelType     station.FuelType `gorm:"type:varchar(20);not null;index:idx_fuel_settings_tenant_fuel,unique,composite:tenant_id"`
	Price        decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	TankCapacity decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	CurrentLevel decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (FuelSettingModel) TableName() string {
	return "fuel_settings"
}

// ToDomain converts the persistence model to a domain FuelSetting.
func (m *FuelSettingModel) ToDomain() *station.FuelSetting {
	s := &station.FuelSetting{
		FuelType:     m.FuelType,
		Price:        m.Price,
		TankCapacity: m.TankCapacity,
		CurrentLevel: m.CurrentLevel,
	}
	m.PopulateTenantAggregateRoot(&s.TenantAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain FuelSetting.
func (m *FuelSettingModel) FromDomain(s *station.FuelSetting) {
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	m.FuelType = s.FuelType
	m.Price = s.Price
	m.TankCapacity = s.TankCapacity
	m.CurrentLevel = s.CurrentLevel
}

// FuelSettingModelFromDomain creates a persistence model from a domain FuelSetting.
func FuelSettingModelFromDomain(s *station.FuelSetting) *FuelSettingModel {
	m := &FuelSettingModel{}
	m.FromDomain(s)
	return m
}

// PumpModel is the persistence model for a dispensing pump.
type PumpModel struct {
	TenantAggregateModel
	Name    string             `gorm:"type:varchar(100);not null"`
	Status  station.PumpStatus `gorm:"type:varchar(20);not null;default:'operational'"`
	Nozzles []NozzleModel      `gorm:"foreignKey:PumpID"`
}

// TableName returns the table name for GORM
func (PumpModel) TableName() string {
	return "pumps"
}

// NozzleModel is the persistence model for a pump nozzle.
type NozzleModel struct {
	BaseModel
	PumpID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	TenantID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Label    string           `gorm:"type:varchar(50)"`
	FuelType station.FuelType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (NozzleModel) TableName() string {
	return "pump_nozzles"
}

// ToDomain converts the persistence model to a domain Pump aggregate.
func (m *PumpModel) ToDomain() *station.Pump {
	p := &station.Pump{
		Name:    m.Name,
		Status:  m.Status,
		Nozzles: make([]station.Nozzle, 0, len(m.Nozzles)),
	}
	m.PopulateTenantAggregateRoot(&p.TenantAggregateRoot)
	for i := range m.Nozzles {
		p.Nozzles = append(p.Nozzles, m.Nozzles[i].ToDomain())
	}
	return p
}

// FromDomain populates the persistence model from a domain Pump aggregate.
func (m *PumpModel) FromDomain(p *station.Pump) {
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	m.Name = p.Name
	m.Status = p.Status
	m.Nozzles = make([]NozzleModel, 0, len(p.Nozzles))
	for i := range p.Nozzles {
		m.Nozzles = append(m.Nozzles, NozzleModelFromDomain(&p.Nozzles[i]))
	}
}

// PumpModelFromDomain creates a persistence model from a domain Pump aggregate.
func PumpModelFromDomain(p *station.Pump) *PumpModel {
	m := &PumpModel{}
	m.FromDomain(p)
	return m
}

// ToDomain converts the persistence model to a domain Nozzle.
func (m *NozzleModel) ToDomain() station.Nozzle {
	return station.Nozzle{
		BaseEntity: m.BaseModel.ToDomain(),
		PumpID:     m.PumpID,
		TenantID:   m.TenantID,
		Label:      m.Label,
		FuelType:   m.FuelType,
	}
}

// NozzleModelFromDomain creates a persistence model from a domain Nozzle.
func NozzleModelFromDomain(n *station.Nozzle) NozzleModel {
	m := NozzleModel{
		PumpID:   n.PumpID,
		TenantID: n.TenantID,
		Label:    n.Label,
		FuelType: n.FuelType,
	}
	m.FromDomainBaseEntity(n.BaseEntity)
	return m
}

// TankUnloadModel is the persistence model for a fuel delivery.
type TankUnloadModel struct {
	TenantAggregateModel
	FuelType      station.FuelType `gorm:"type:varchar(20);not null;index"`
	Liters        decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	Amount        decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	InvoiceNumber string           `gorm:"type:varchar(100)"`
	TankerNumber  string           `gorm:"type:varchar(50)"`
	UnloadedAt    time.Time        `gorm:"not null;index"`
	RecordedBy    uuid.UUID        `gorm:"type:uuid;not null"`
	Notes         string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TankUnloadModel) TableName() string {
	return "tank_unloads"
}

// ToDomain converts the persistence model to a domain TankUnload.
func (m *TankUnloadModel) ToDomain() *station.TankUnload {
	u := &station.TankUnload{
		FuelType:      m.FuelType,
		Liters:        m.Liters,
		Amount:        m.Amount,
		InvoiceNumber: m.InvoiceNumber,
		TankerNumber:  m.TankerNumber,
		UnloadedAt:    m.UnloadedAt,
		RecordedBy:    m.RecordedBy,
		Notes:         m.Notes,
	}
	m.PopulateTenantAggregateRoot(&u.TenantAggregateRoot)
	return u
}

// FromDomain populates the persistence model from a domain TankUnload.
func (m *TankUnloadModel) FromDomain(u *station.TankUnload) {
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	m.FuelType = u.FuelType
	m.Liters = u.Liters
	m.Amount = u.Amount
	m.InvoiceNumber = u.InvoiceNumber
	m.TankerNumber = u.TankerNumber
	m.UnloadedAt = u.UnloadedAt
	m.RecordedBy = u.RecordedBy
	m.Notes = u.Notes
}

// TankUnloadModelFromDomain creates a persistence model from a domain TankUnload.
func TankUnloadModelFromDomain(u *station.TankUnload) *TankUnloadModel {
	m := &TankUnloadModel{}
	m.FromDomain(u)
	return m
}

// DailyReadingModel is the persistence model for a day's stock record.
type DailyReadingModel struct {
	TenantAggregateModel
	FuelType     station.FuelType `gorm:"type:varchar(20);not null;index:idx_daily_readings_tenant_fuel_date,unique,composite:tenant_id"`
	ReadingDate  time.Time        `gorm:"not null;index:idx_daily_readings_tenant_fuel_date,unique,composite:tenant_id"`
	OpeningStock decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	Receipts     decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
	ClosingStock decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	MeterSales   decimal.Decimal  `gorm:"type:decimal(14,3);not null;default:0"`
	RecordedBy   uuid.UUID        `gorm:"type:uuid;not null"`
	Notes        string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DailyReadingModel) TableName() string {
	return "daily_readings"
}

// ToDomain converts the persistence model to a domain DailyReading.
func (m *DailyReadingModel) ToDomain() *station.DailyReading {
	r := &station.DailyReading{
		FuelType:     m.FuelType,
		ReadingDate:  m.ReadingDate,
		OpeningStock: m.OpeningStock,
		Receipts:     m.Receipts,
		ClosingStock: m.ClosingStock,
		MeterSales:   m.MeterSales,
		RecordedBy:   m.RecordedBy,
		Notes:        m.Notes,
	}
	m.PopulateTenantAggregateRoot(&r.TenantAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain DailyReading.
func (m *DailyReadingModel) FromDomain(r *station.DailyReading) {
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	m.FuelType = r.FuelType
	m.ReadingDate = r.ReadingDate
	m.OpeningStock = r.OpeningStock
	m.Receipts = r.Receipts
	m.ClosingStock = r.ClosingStock
	m.MeterSales = r.MeterSales
	m.RecordedBy = r.RecordedBy
	m.Notes = r.Notes
}

// DailyReadingModelFromDomain creates a persistence model from a domain DailyReading.
func DailyReadingModelFromDomain(r *station.DailyReading) *DailyReadingModel {
	m := &DailyReadingModel{}
	m.FromDomain(r)
	return m
}
