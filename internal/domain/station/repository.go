package station

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FuelSettingRepository defines the interface for fuel product persistence
type FuelSettingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FuelSetting, error)
	FindByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType FuelType) (*FuelSetting, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]FuelSetting, error)
	Save(ctx context.Context, setting *FuelSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType FuelType) (bool, error)
}

// PumpRepository defines the interface for pump persistence.
// Saving a pump persists its nozzles with it.
type PumpRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Pump, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Pump, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Pump, error)
	FindOperational(ctx context.Context, tenantID uuid.UUID) ([]Pump, error)
	Save(ctx context.Context, pump *Pump) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// TankUnloadRepository defines the interface for delivery records
type TankUnloadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TankUnload, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*TankUnload, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]TankUnload, error)
	FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType FuelType, from, to time.Time) ([]TankUnload, error)
	Save(ctx context.Context, unload *TankUnload) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// DailyReadingRepository defines the interface for daily stock records
type DailyReadingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DailyReading, error)
	FindByDate(ctx context.Context, tenantID uuid.UUID, fuelType FuelType, date time.Time) (*DailyReading, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]DailyReading, error)
	FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType FuelType, from, to time.Time) ([]DailyReading, error)
	Save(ctx context.Context, reading *DailyReading) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForDate(ctx context.Context, tenantID uuid.UUID, fuelType FuelType, date time.Time) (bool, error)
}
