package station

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/station"
)

// TransactionScope provides transactional access to the repositories a
// tank operation touches, so a delivery record and the tank level it
// raises commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories used by
// tank operations within a transaction.
type TransactionalRepositories interface {
	// FuelSettingRepo returns the fuel setting repository scoped to the current transaction
	FuelSettingRepo() station.FuelSettingRepository
	// TankUnloadRepo returns the tank unload repository scoped to the current transaction
	TankUnloadRepo() station.TankUnloadRepository
	// DailyReadingRepo returns the daily reading repository scoped to the current transaction
	DailyReadingRepo() station.DailyReadingRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	fuelSettingRepo  station.FuelSettingRepository
	tankUnloadRepo   station.TankUnloadRepository
	dailyReadingRepo station.DailyReadingRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	fuelSettingRepo station.FuelSettingRepository,
	tankUnloadRepo station.TankUnloadRepository,
	dailyReadingRepo station.DailyReadingRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		fuelSettingRepo:  fuelSettingRepo,
		tankUnloadRepo:   tankUnloadRepo,
		dailyReadingRepo: dailyReadingRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// FuelSettingRepo returns the fuel setting repository.
func (s *NoOpTransactionScope) FuelSettingRepo() station.FuelSettingRepository {
	return s.fuelSettingRepo
}

// TankUnloadRepo returns the tank unload repository.
func (s *NoOpTransactionScope) TankUnloadRepo() station.TankUnloadRepository {
	return s.tankUnloadRepo
}

// DailyReadingRepo returns the daily reading repository.
func (s *NoOpTransactionScope) DailyReadingRepo() station.DailyReadingRepository {
	return s.dailyReadingRepo
}
