package partner

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/station"
)

// TransactionScope provides transactional access to the repositories a
// credit operation touches. Recording an indent moves a booklet
// number, the customer balance, the indent itself and a ledger entry,
// so all four writes must commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories used by
// credit operations within a transaction.
type TransactionalRepositories interface {
	// CustomerRepo returns the customer repository scoped to the current transaction
	CustomerRepo() partner.CustomerRepository
	// VehicleRepo returns the vehicle repository scoped to the current transaction
	VehicleRepo() partner.VehicleRepository
	// BookletRepo returns the booklet repository scoped to the current transaction
	BookletRepo() partner.IndentBookletRepository
	// IndentRepo returns the indent repository scoped to the current transaction
	IndentRepo() partner.IndentRepository
	// LedgerRepo returns the credit ledger repository scoped to the current transaction
	LedgerRepo() partner.CreditTransactionRepository
	// FuelSettingRepo returns the fuel setting repository scoped to the current transaction
	FuelSettingRepo() station.FuelSettingRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing.
type NoOpTransactionScope struct {
	customerRepo    partner.CustomerRepository
	vehicleRepo     partner.VehicleRepository
	bookletRepo     partner.IndentBookletRepository
	indentRepo      partner.IndentRepository
	ledgerRepo      partner.CreditTransactionRepository
	fuelSettingRepo station.FuelSettingRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	customerRepo partner.CustomerRepository,
	vehicleRepo partner.VehicleRepository,
	bookletRepo partner.IndentBookletRepository,
	indentRepo partner.IndentRepository,
	ledgerRepo partner.CreditTransactionRepository,
	fuelSettingRepo station.FuelSettingRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		customerRepo:    customerRepo,
		vehicleRepo:     vehicleRepo,
		bookletRepo:     bookletRepo,
		indentRepo:      indentRepo,
		ledgerRepo:      ledgerRepo,
		fuelSettingRepo: fuelSettingRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CustomerRepo returns the customer repository.
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository {
	return s.customerRepo
}

// VehicleRepo returns the vehicle repository.
func (s *NoOpTransactionScope) VehicleRepo() partner.VehicleRepository {
	return s.vehicleRepo
}

// BookletRepo returns the booklet repository.
func (s *NoOpTransactionScope) BookletRepo() partner.IndentBookletRepository {
	return s.bookletRepo
}

// IndentRepo returns the indent repository.
func (s *NoOpTransactionScope) IndentRepo() partner.IndentRepository {
	return s.indentRepo
}

// LedgerRepo returns the credit ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() partner.CreditTransactionRepository {
	return s.ledgerRepo
}

// FuelSettingRepo returns the fuel setting repository.
func (s *NoOpTransactionScope) FuelSettingRepo() station.FuelSettingRepository {
	return s.fuelSettingRepo
}
