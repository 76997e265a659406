package models

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for a credit customer.
type CustomerModel struct {
	TenantAggregateModel
	Name        string                 `gorm:"type:varchar(200);not null;index"`
	Phone       string                 `gorm:"type:varchar(50);index"`
	Email       string                 `gorm:"type:varchar(200)"`
	GSTNumber   string                 `gorm:"type:varchar(30)"`
	Address     string                 `gorm:"type:text"`
	CreditLimit decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0"`
	Balance     decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0"`
	Status      partner.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Notes       string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		GSTNumber:   m.GSTNumber,
		Address:     m.Address,
		CreditLimit: m.CreditLimit,
		Balance:     m.Balance,
		Status:      m.Status,
		Notes:       m.Notes,
	}
	m.PopulateTenantAggregateRoot(&c.TenantAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.GSTNumber = c.GSTNumber
	m.Address = c.Address
	m.CreditLimit = c.CreditLimit
	m.Balance = c.Balance
	m.Status = c.Status
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// VehicleModel is the persistence model for a customer vehicle.
type VehicleModel struct {
	TenantAggregateModel
	CustomerID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Number      string              `gorm:"type:varchar(20);not null;index:idx_vehicles_tenant_number,unique,composite:tenant_id"`
	VehicleType partner.VehicleType `gorm:"type:varchar(20);not null"`
	Notes       string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle.
func (m *VehicleModel) ToDomain() *partner.Vehicle {
	v := &partner.Vehicle{
		CustomerID:  m.CustomerID,
		Number:      m.Number,
		VehicleType: m.VehicleType,
		Notes:       m.Notes,
	}
	m.PopulateTenantAggregateRoot(&v.TenantAggregateRoot)
	return v
}

// FromDomain populates the persistence model from a domain Vehicle.
func (m *VehicleModel) FromDomain(v *partner.Vehicle) {
	m.FromDomainTenantAggregateRoot(v.TenantAggregateRoot)
	m.CustomerID = v.CustomerID
	m.Number = v.Number
	m.VehicleType = v.VehicleType
	m.Notes = v.Notes
}

// VehicleModelFromDomain creates a persistence model from a domain Vehicle.
func VehicleModelFromDomain(v *partner.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}

// IndentBookletModel is the persistence model for an indent booklet.
type IndentBookletModel struct {
	TenantAggregateModel
	CustomerID  uuid.UUID             `gorm:"type:uuid;not null;index"`
	StartNumber int                   `gorm:"not null"`
	EndNumber   int                   `gorm:"not null"`
	NextNumber  int                   `gorm:"not null"`
	Status      partner.BookletStatus `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (IndentBookletModel) TableName() string {
	return "indent_booklets"
}

// ToDomain converts the persistence model to a domain IndentBooklet.
func (m *IndentBookletModel) ToDomain() *partner.IndentBooklet {
	b := &partner.IndentBooklet{
		CustomerID:  m.CustomerID,
		StartNumber: m.StartNumber,
		EndNumber:   m.EndNumber,
		NextNumber:  m.NextNumber,
		Status:      m.Status,
	}
	m.PopulateTenantAggregateRoot(&b.TenantAggregateRoot)
	return b
}

// FromDomain populates the persistence model from a domain IndentBooklet.
func (m *IndentBookletModel) FromDomain(b *partner.IndentBooklet) {
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	m.CustomerID = b.CustomerID
	m.StartNumber = b.StartNumber
	m.EndNumber = b.EndNumber
	m.NextNumber = b.NextNumber
	m.Status = b.Status
}

// IndentBookletModelFromDomain creates a persistence model from a domain IndentBooklet.
func IndentBookletModelFromDomain(b *partner.IndentBooklet) *IndentBookletModel {
	m := &IndentBookletModel{}
	m.FromDomain(b)
	return m
}

// IndentModel is the persistence model for a credit fueling.
type IndentModel struct {
	TenantAggregateModel
	IndentNumber int              `gorm:"not null;index:idx_indents_booklet_number,unique,composite:booklet_id"`
	BookletID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_indents_booklet_number,unique,composite:booklet_id"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	VehicleID    *uuid.UUID       `gorm:"type:uuid;index"`
	FuelType     station.FuelType `gorm:"type:varchar(20);not null"`
	Liters       decimal.Decimal  `gorm:"type:decimal(14,3);not null"`
	FuelPrice    decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Amount       decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	ShiftID      *uuid.UUID       `gorm:"type:uuid;index"`
	RecordedBy   uuid.UUID        `gorm:"type:uuid;not null;index"`
	RecordedAt   time.Time        `gorm:"not null;index"`
	Notes        string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (IndentModel) TableName() string {
	return "indents"
}

// ToDomain converts the persistence model to a domain Indent.
func (m *IndentModel) ToDomain() *partner.Indent {
	i := &partner.Indent{
		IndentNumber: m.IndentNumber,
		BookletID:    m.BookletID,
		CustomerID:   m.CustomerID,
		VehicleID:    m.VehicleID,
		FuelType:     m.FuelType,
		Liters:       m.Liters,
		FuelPrice:    m.FuelPrice,
		Amount:       m.Amount,
		ShiftID:      m.ShiftID,
		RecordedBy:   m.RecordedBy,
		RecordedAt:   m.RecordedAt,
		Notes:        m.Notes,
	}
	m.PopulateTenantAggregateRoot(&i.TenantAggregateRoot)
	return i
}

// FromDomain populates the persistence model from a domain Indent.
func (m *IndentModel) FromDomain(i *partner.Indent) {
	m.FromDomainTenantAggregateRoot(i.TenantAggregateRoot)
	m.IndentNumber = i.IndentNumber
	m.BookletID = i.BookletID
	m.CustomerID = i.CustomerID
	m.VehicleID = i.VehicleID
	m.FuelType = i.FuelType
	m.Liters = i.Liters
	m.FuelPrice = i.FuelPrice
	m.Amount = i.Amount
	m.ShiftID = i.ShiftID
	m.RecordedBy = i.RecordedBy
	m.RecordedAt = i.RecordedAt
	m.Notes = i.Notes
}

// IndentModelFromDomain creates a persistence model from a domain Indent.
func IndentModelFromDomain(i *partner.Indent) *IndentModel {
	m := &IndentModel{}
	m.FromDomain(i)
	return m
}

// CreditTransactionModel is the persistence model for a ledger entry.
type CreditTransactionModel struct {
	TenantAggregateModel
	CustomerID   uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Type         partner.TransactionType   `gorm:"type:varchar(20);not null"`
	Source       partner.TransactionSource `gorm:"type:varchar(20);not null"`
	Amount       decimal.Decimal           `gorm:"type:decimal(14,2);not null"`
	BalanceAfter decimal.Decimal           `gorm:"type:decimal(14,2);not null"`
	ReferenceID  *uuid.UUID                `gorm:"type:uuid;index"`
	RecordedBy   uuid.UUID                 `gorm:"type:uuid;not null"`
	RecordedAt   time.Time                 `gorm:"not null;index"`
	Notes        string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CreditTransactionModel) TableName() string {
	return "credit_transactions"
}

// ToDomain converts the persistence model to a domain CreditTransaction.
func (m *CreditTransactionModel) ToDomain() *partner.CreditTransaction {
	t := &partner.CreditTransaction{
		CustomerID:   m.CustomerID,
		Type:         m.Type,
		Source:       m.Source,
		Amount:       m.Amount,
		BalanceAfter: m.BalanceAfter,
		ReferenceID:  m.ReferenceID,
		RecordedBy:   m.RecordedBy,
		RecordedAt:   m.RecordedAt,
		Notes:        m.Notes,
	}
	m.PopulateTenantAggregateRoot(&t.TenantAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain CreditTransaction.
func (m *CreditTransactionModel) FromDomain(t *partner.CreditTransaction) {
	m.FromDomainTenantAggregateRoot(t.TenantAggregateRoot)
	m.CustomerID = t.CustomerID
	m.Type = t.Type
	m.Source = t.Source
	m.Amount = t.Amount
	m.BalanceAfter = t.BalanceAfter
	m.ReferenceID = t.ReferenceID
	m.RecordedBy = t.RecordedBy
	m.RecordedAt = t.RecordedAt
	m.Notes = t.Notes
}

// CreditTransactionModelFromDomain creates a persistence model from a domain CreditTransaction.
func CreditTransactionModelFromDomain(t *partner.CreditTransaction) *CreditTransactionModel {
	m := &CreditTransactionModel{}
	m.FromDomain(t)
	return m
}
