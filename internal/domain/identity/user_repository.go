package identity

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for staff persistence
type UserRepository interface {
	// FindByID finds a staff member by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByIDForTenant finds a staff member by ID within a station
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*User, error)

	// FindByUsername finds a staff member by username within a station
	FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*User, error)

	// FindAllForTenant finds all staff of a station matching the filter
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]User, error)

	// FindByRole finds staff of a station with the given role
	FindByRole(ctx context.Context, tenantID uuid.UUID, role UserRole, filter shared.Filter) ([]User, error)

	// Save creates or updates a staff member
	Save(ctx context.Context, user *User) error

	// Delete deletes a staff member
	Delete(ctx context.Context, id uuid.UUID) error

	// CountForTenant counts staff of a station matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByUsername checks if a username is taken within a station
	ExistsByUsername(ctx context.Context, tenantID uuid.UUID, username string) (bool, error)
}
