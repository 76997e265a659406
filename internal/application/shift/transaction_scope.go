package shift

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
)

// TransactionScope provides transactional access to the repositories a
// shift operation touches. When a function is executed within a scope,
// all repository operations are part of the same database transaction
// and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories used by
// shift operations within a transaction. Pump readings and consumable
// allocations are child entities of the shift and are persisted through
// the shift repository when the aggregate is saved.
type TransactionalRepositories interface {
	// ShiftRepo returns the shift repository scoped to the current transaction
	ShiftRepo() shift.Repository
	// FuelSettingRepo returns the fuel setting repository scoped to the current transaction
	FuelSettingRepo() station.FuelSettingRepository
	// IndentRepo returns the indent repository scoped to the current transaction
	IndentRepo() partner.IndentRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	shiftRepo       shift.Repository
	fuelSettingRepo station.FuelSettingRepository
	indentRepo      partner.IndentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	shiftRepo shift.Repository,
	fuelSettingRepo station.FuelSettingRepository,
	indentRepo partner.IndentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		shiftRepo:       shiftRepo,
		fuelSettingRepo: fuelSettingRepo,
		indentRepo:      indentRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ShiftRepo returns the shift repository.
func (s *NoOpTransactionScope) ShiftRepo() shift.Repository {
	return s.shiftRepo
}

// FuelSettingRepo returns the fuel setting repository.
func (s *NoOpTransactionScope) FuelSettingRepo() station.FuelSettingRepository {
	return s.fuelSettingRepo
}

// IndentRepo returns the indent repository.
func (s *NoOpTransactionScope) IndentRepo() partner.IndentRepository {
	return s.indentRepo
}
