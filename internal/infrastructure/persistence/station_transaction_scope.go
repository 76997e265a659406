package persistence

import (
	"context"

	appstation "github.com/fuelstation/backend/internal/application/station"
	"github.com/fuelstation/backend/internal/domain/station"
	"gorm.io/gorm"
)

// GormStationTransactionScope implements the station TransactionScope
// using GORM transactions. A tank unload adjusts the fuel setting's
// stock level and records the unload in the same transaction.
type GormStationTransactionScope struct {
	db *gorm.DB
}

// NewGormStationTransactionScope creates a new GormStationTransactionScope.
func NewGormStationTransactionScope(db *gorm.DB) *GormStationTransactionScope {
	return &GormStationTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormStationTransactionScope) Execute(ctx context.Context, fn func(repos appstation.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStationRepositories{tx: tx})
	})
}

type gormStationRepositories struct {
	tx *gorm.DB
}

// FuelSettingRepo returns the fuel setting repository scoped to the current transaction.
func (r *gormStationRepositories) FuelSettingRepo() station.FuelSettingRepository {
	return NewGormFuelSettingRepository(r.tx)
}

// TankUnloadRepo returns the tank unload repository scoped to the current transaction.
func (r *gormStationRepositories) TankUnloadRepo() station.TankUnloadRepository {
	return NewGormTankUnloadRepository(r.tx)
}

// DailyReadingRepo returns the daily reading repository scoped to the current transaction.
func (r *gormStationRepositories) DailyReadingRepo() station.DailyReadingRepository {
	return NewGormDailyReadingRepository(r.tx)
}

var _ appstation.TransactionScope = (*GormStationTransactionScope)(nil)
var _ appstation.TransactionalRepositories = (*gormStationRepositories)(nil)
