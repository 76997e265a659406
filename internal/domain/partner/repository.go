package partner

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for credit customer persistence
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Vehicle, error)
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]Vehicle, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, number string) (*Vehicle, error)
	Save(ctx context.Context, vehicle *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IndentBookletRepository defines the interface for booklet persistence
type IndentBookletRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IndentBooklet, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*IndentBooklet, error)
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]IndentBooklet, error)
	FindActiveByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*IndentBooklet, error)
	Save(ctx context.Context, booklet *IndentBooklet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IndentRepository defines the interface for indent persistence
type IndentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Indent, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Indent, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Indent, error)
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]Indent, error)
	FindByStaffBetween(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]Indent, error)
	ExistsByNumber(ctx context.Context, tenantID, bookletID uuid.UUID, indentNumber int) (bool, error)
	Save(ctx context.Context, indent *Indent) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CreditTransactionRepository defines the interface for the credit ledger
type CreditTransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditTransaction, error)
	FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]CreditTransaction, error)
	FindBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]CreditTransaction, error)
	Save(ctx context.Context, tx *CreditTransaction) error
	CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error)
}
