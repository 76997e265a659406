package station

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLowStockPercent is used when the station has not configured
// its own alert threshold.
const DefaultLowStockPercent = 20

// FuelService handles fuel products, pricing and tank deliveries
type FuelService struct {
	txScope         TransactionScope
	fuelSettingRepo station.FuelSettingRepository
	tankUnloadRepo  station.TankUnloadRepository
	logger          *zap.Logger
}

// NewFuelService creates a new fuel management service
func NewFuelService(
	txScope TransactionScope,
	fuelSettingRepo station.FuelSettingRepository,
	tankUnloadRepo station.TankUnloadRepository,
	logger *zap.Logger,
) *FuelService {
	return &FuelService{
		txScope:         txScope,
		fuelSettingRepo: fuelSettingRepo,
		tankUnloadRepo:  tankUnloadRepo,
		logger:          logger,
	}
}

// CreateFuelSetting registers a fuel product with its price and tank
func (s *FuelService) CreateFuelSetting(ctx context.Context, tenantID uuid.UUID, req CreateFuelSettingRequest) (*FuelSettingResponse, error) {
	fuelType := station.FuelType(req.FuelType)

	exists, err := s.fuelSettingRepo.ExistsByFuelType(ctx, tenantID, fuelType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "This fuel is already configured")
	}

	setting, err := station.NewFuelSetting(tenantID, fuelType, req.Price, req.TankCapacity)
	if err != nil {
		return nil, err
	}
	if !req.CurrentLevel.IsZero() {
		if err := setting.SetLevel(req.CurrentLevel); err != nil {
			return nil, err
		}
	}

	if err := s.fuelSettingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info("Fuel configured",
		zap.String("tenant_id", tenantID.String()),
		zap.String("fuel_type", req.FuelType),
		zap.String("price", req.Price.String()))

	resp := ToFuelSettingResponse(setting, DefaultLowStockPercent)
	return &resp, nil
}

// UpdatePrice changes the selling price of a fuel product. Open shifts
// are unaffected because each shift freezes the price at its start.
func (s *FuelService) UpdatePrice(ctx context.Context, tenantID uuid.UUID, fuelType string, req UpdateFuelPriceRequest) (*FuelSettingResponse, error) {
	setting, err := s.fuelSettingRepo.FindByFuelType(ctx, tenantID, station.FuelType(fuelType))
	if err != nil {
		return nil, err
	}

	oldPrice := setting.Price
	if err := setting.UpdatePrice(req.Price); err != nil {
		return nil, err
	}
	if err := s.fuelSettingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	s.logger.Info("Fuel price changed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("fuel_type", fuelType),
		zap.String("old_price", oldPrice.String()),
		zap.String("new_price", req.Price.String()))

	resp := ToFuelSettingResponse(setting, DefaultLowStockPercent)
	return &resp, nil
}

// UpdateTank adjusts tank capacity or corrects the level after a dip test
func (s *FuelService) UpdateTank(ctx context.Context, tenantID uuid.UUID, fuelType string, req UpdateTankRequest) (*FuelSettingResponse, error) {
	setting, err := s.fuelSettingRepo.FindByFuelType(ctx, tenantID, station.FuelType(fuelType))
	if err != nil {
		return nil, err
	}

	if req.TankCapacity != nil {
		if err := setting.SetCapacity(*req.TankCapacity); err != nil {
			return nil, err
		}
	}
	if req.CurrentLevel != nil {
		if err := setting.SetLevel(*req.CurrentLevel); err != nil {
			return nil, err
		}
	}
	if err := s.fuelSettingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	resp := ToFuelSettingResponse(setting, DefaultLowStockPercent)
	return &resp, nil
}

// ListFuelSettings lists the station's configured fuels
func (s *FuelService) ListFuelSettings(ctx context.Context, tenantID uuid.UUID, lowStockPercent int) ([]FuelSettingResponse, error) {
	if lowStockPercent <= 0 {
		lowStockPercent = DefaultLowStockPercent
	}
	settings, err := s.fuelSettingRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	responses := make([]FuelSettingResponse, len(settings))
	for i := range settings {
		responses[i] = ToFuelSettingResponse(&settings[i], lowStockPercent)
	}
	return responses, nil
}

// GetFuelSetting retrieves one fuel product
func (s *FuelService) GetFuelSetting(ctx context.Context, tenantID uuid.UUID, fuelType string) (*FuelSettingResponse, error) {
	setting, err := s.fuelSettingRepo.FindByFuelType(ctx, tenantID, station.FuelType(fuelType))
	if err != nil {
		return nil, err
	}
	resp := ToFuelSettingResponse(setting, DefaultLowStockPercent)
	return &resp, nil
}

// LowStockAlerts returns the fuels at or below the alert threshold
func (s *FuelService) LowStockAlerts(ctx context.Context, tenantID uuid.UUID, lowStockPercent int) ([]FuelSettingResponse, error) {
	if lowStockPercent <= 0 {
		lowStockPercent = DefaultLowStockPercent
	}
	settings, err := s.fuelSettingRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var alerts []FuelSettingResponse
	for i := range settings {
		if settings[i].IsLowStock(lowStockPercent) {
			alerts = append(alerts, ToFuelSettingResponse(&settings[i], lowStockPercent))
		}
	}
	return alerts, nil
}

// RecordUnload records a tanker delivery and raises the tank level in
// the same transaction. A delivery that would overflow the tank is
// rejected before anything is written.
func (s *FuelService) RecordUnload(ctx context.Context, tenantID uuid.UUID, req RecordUnloadRequest) (*TankUnloadResponse, error) {
	unloadedAt := time.Now()
	if req.UnloadedAt != nil {
		unloadedAt = *req.UnloadedAt
	}

	var unload *station.TankUnload
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		setting, err := repos.FuelSettingRepo().FindByFuelType(ctx, tenantID, station.FuelType(req.FuelType))
		if err != nil {
			return shared.NewDomainError("FUEL_NOT_CONFIGURED", "No tank configured for "+req.FuelType)
		}

		unload, err = station.NewTankUnload(tenantID, req.RecordedBy, setting.FuelType, req.Liters, req.Amount, unloadedAt)
		if err != nil {
			return err
		}
		if req.InvoiceNumber != "" || req.TankerNumber != "" {
			if err := unload.SetInvoiceDetails(req.InvoiceNumber, req.TankerNumber); err != nil {
				return err
			}
		}
		unload.Notes = req.Notes

		if err := setting.ApplyUnload(req.Liters); err != nil {
			return err
		}
		if err := repos.FuelSettingRepo().Save(ctx, setting); err != nil {
			return err
		}
		return repos.TankUnloadRepo().Save(ctx, unload)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tank unload recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("fuel_type", req.FuelType),
		zap.String("liters", req.Liters.String()))

	resp := ToTankUnloadResponse(unload)
	return &resp, nil
}

// GetUnload retrieves one delivery record
func (s *FuelService) GetUnload(ctx context.Context, tenantID, id uuid.UUID) (*TankUnloadResponse, error) {
	unload, err := s.tankUnloadRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTankUnloadResponse(unload)
	return &resp, nil
}

// ListUnloads lists delivery records matching the filter
func (s *FuelService) ListUnloads(ctx context.Context, tenantID uuid.UUID, filter TankUnloadListFilter) ([]TankUnloadResponse, int64, error) {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  map[string]interface{}{},
	}
	if filter.FuelType != "" {
		f.Filters["fuel_type"] = filter.FuelType
	}
	if filter.UnloadedFrom != nil {
		f.Filters["unloaded_from"] = *filter.UnloadedFrom
	}
	if filter.UnloadedTo != nil {
		f.Filters["unloaded_to"] = *filter.UnloadedTo
	}

	unloads, err := s.tankUnloadRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tankUnloadRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TankUnloadResponse, len(unloads))
	for i := range unloads {
		responses[i] = ToTankUnloadResponse(&unloads[i])
	}
	return responses, total, nil
}
