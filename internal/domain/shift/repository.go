package shift

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for shift persistence. Saving a
// shift persists its readings and consumable allocations with it.
type Repository interface {
	// FindByID finds a shift by ID with readings and consumables loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Shift, error)

	// FindByIDForTenant finds a shift by ID within a station
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Shift, error)

	// FindActiveByStaff finds the open shift of a staff member, if any
	FindActiveByStaff(ctx context.Context, tenantID, staffID uuid.UUID) (*Shift, error)

	// FindAllForTenant finds shifts of a station matching the filter
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Shift, error)

	// FindByStatus finds shifts of a station in the given state
	FindByStatus(ctx context.Context, tenantID uuid.UUID, status ShiftStatus, filter shared.Filter) ([]Shift, error)

	// FindCompletedBetween finds shifts that closed within the time range
	FindCompletedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]Shift, error)

	// Save creates or updates a shift together with its readings and
	// consumable allocations
	Save(ctx context.Context, s *Shift) error

	// Delete deletes a shift and its child rows
	Delete(ctx context.Context, id uuid.UUID) error

	// CountForTenant counts shifts of a station matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// HasActiveShift reports whether the staff member has an open shift
	HasActiveShift(ctx context.Context, tenantID, staffID uuid.UUID) (bool, error)
}
