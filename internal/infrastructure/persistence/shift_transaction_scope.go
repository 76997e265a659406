package persistence

import (
	"context"

	appshift "github.com/fuelstation/backend/internal/application/shift"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"gorm.io/gorm"
)

// GormShiftTransactionScope implements the shift TransactionScope
// using GORM transactions. Closing a shift writes the shift row and
// its readings together, so both land in one transaction.
type GormShiftTransactionScope struct {
	db *gorm.DB
}

// NewGormShiftTransactionScope creates a new GormShiftTransactionScope.
func NewGormShiftTransactionScope(db *gorm.DB) *GormShiftTransactionScope {
	return &GormShiftTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormShiftTransactionScope) Execute(ctx context.Context, fn func(repos appshift.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormShiftRepositories{tx: tx})
	})
}

type gormShiftRepositories struct {
	tx *gorm.DB
}

// ShiftRepo returns the shift repository scoped to the current transaction.
func (r *gormShiftRepositories) ShiftRepo() shift.Repository {
	return NewGormShiftRepository(r.tx)
}

// FuelSettingRepo returns the fuel setting repository scoped to the current transaction.
func (r *gormShiftRepositories) FuelSettingRepo() station.FuelSettingRepository {
	return NewGormFuelSettingRepository(r.tx)
}

// IndentRepo returns the indent repository scoped to the current transaction.
func (r *gormShiftRepositories) IndentRepo() partner.IndentRepository {
	return NewGormIndentRepository(r.tx)
}

var _ appshift.TransactionScope = (*GormShiftTransactionScope)(nil)
var _ appshift.TransactionalRepositories = (*gormShiftRepositories)(nil)
