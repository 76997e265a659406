package persistence

import (
	"context"

	apppartner "github.com/fuelstation/backend/internal/application/partner"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/station"
	"gorm.io/gorm"
)

// GormPartnerTransactionScope implements the partner TransactionScope
// using GORM transactions. Recording an indent touches the booklet,
// the customer balance, the indent and the ledger, so all four writes
// commit or roll back together.
type GormPartnerTransactionScope struct {
	db *gorm.DB
}

// NewGormPartnerTransactionScope creates a new GormPartnerTransactionScope.
func NewGormPartnerTransactionScope(db *gorm.DB) *GormPartnerTransactionScope {
	return &GormPartnerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPartnerRepositories{tx: tx})
	})
}

type gormPartnerRepositories struct {
	tx *gorm.DB
}

// CustomerRepo returns the customer repository scoped to the current transaction.
func (r *gormPartnerRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// VehicleRepo returns the vehicle repository scoped to the current transaction.
func (r *gormPartnerRepositories) VehicleRepo() partner.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// BookletRepo returns the indent booklet repository scoped to the current transaction.
func (r *gormPartnerRepositories) BookletRepo() partner.IndentBookletRepository {
	return NewGormIndentBookletRepository(r.tx)
}

// IndentRepo returns the indent repository scoped to the current transaction.
func (r *gormPartnerRepositories) IndentRepo() partner.IndentRepository {
	return NewGormIndentRepository(r.tx)
}

// LedgerRepo returns the credit transaction repository scoped to the current transaction.
func (r *gormPartnerRepositories) LedgerRepo() partner.CreditTransactionRepository {
	return NewGormCreditTransactionRepository(r.tx)
}

// FuelSettingRepo returns the fuel setting repository scoped to the current transaction.
func (r *gormPartnerRepositories) FuelSettingRepo() station.FuelSettingRepository {
	return NewGormFuelSettingRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormPartnerTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormPartnerRepositories)(nil)
