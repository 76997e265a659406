package station

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DailyReadingService handles the day-end dip stock records used to
// detect tank losses
type DailyReadingService struct {
	txScope          TransactionScope
	dailyReadingRepo station.DailyReadingRepository
	logger           *zap.Logger
}

// NewDailyReadingService creates a new daily stock record service
func NewDailyReadingService(
	txScope TransactionScope,
	dailyReadingRepo station.DailyReadingRepository,
	logger *zap.Logger,
) *DailyReadingService {
	return &DailyReadingService{
		txScope:          txScope,
		dailyReadingRepo: dailyReadingRepo,
		logger:           logger,
	}
}

// RecordReading records a day's stock figures for a fuel. One record is
// allowed per fuel per day. The tank level is synced to the measured
// closing stock in the same transaction, so the next delivery starts
// from the dip value rather than the book value.
func (s *DailyReadingService) RecordReading(ctx context.Context, tenantID uuid.UUID, req RecordDailyReadingRequest) (*DailyReadingResponse, error) {
	fuelType := station.FuelType(req.FuelType)

	var reading *station.DailyReading
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.DailyReadingRepo().ExistsForDate(ctx, tenantID, fuelType, req.ReadingDate)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "A reading for this fuel and date already exists")
		}

		setting, err := repos.FuelSettingRepo().FindByFuelType(ctx, tenantID, fuelType)
		if err != nil {
			return shared.NewDomainError("FUEL_NOT_CONFIGURED", "No tank configured for "+req.FuelType)
		}

		reading, err = station.NewDailyReading(tenantID, req.RecordedBy, fuelType, req.ReadingDate,
			req.OpeningStock, req.Receipts, req.ClosingStock, req.MeterSales)
		if err != nil {
			return err
		}
		reading.Notes = req.Notes

		if err := repos.DailyReadingRepo().Save(ctx, reading); err != nil {
			return err
		}
		if err := setting.SetLevel(req.ClosingStock); err != nil {
			return err
		}
		return repos.FuelSettingRepo().Save(ctx, setting)
	})
	if err != nil {
		return nil, err
	}

	variation := reading.StockVariation()
	if !variation.IsZero() {
		s.logger.Warn("Stock variation recorded",
			zap.String("tenant_id", tenantID.String()),
			zap.String("fuel_type", req.FuelType),
			zap.String("variation", variation.String()))
	}

	resp := ToDailyReadingResponse(reading)
	return &resp, nil
}

// GetReading retrieves one daily stock record
func (s *DailyReadingService) GetReading(ctx context.Context, tenantID, id uuid.UUID) (*DailyReadingResponse, error) {
	reading, err := s.dailyReadingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reading.TenantID != tenantID {
		return nil, shared.ErrNotFound
	}
	resp := ToDailyReadingResponse(reading)
	return &resp, nil
}

// ListReadings lists daily stock records matching the filter
func (s *DailyReadingService) ListReadings(ctx context.Context, tenantID uuid.UUID, filter DailyReadingListFilter) ([]DailyReadingResponse, error) {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  map[string]interface{}{},
	}
	if filter.FuelType != "" {
		f.Filters["fuel_type"] = filter.FuelType
	}
	if filter.DateFrom != nil {
		f.Filters["date_from"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		f.Filters["date_to"] = *filter.DateTo
	}

	readings, err := s.dailyReadingRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, err
	}
	responses := make([]DailyReadingResponse, len(readings))
	for i := range readings {
		responses[i] = ToDailyReadingResponse(&readings[i])
	}
	return responses, nil
}

// DeleteReading removes a daily stock record
func (s *DailyReadingService) DeleteReading(ctx context.Context, tenantID, id uuid.UUID) error {
	reading, err := s.dailyReadingRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reading.TenantID != tenantID {
		return shared.ErrNotFound
	}
	return s.dailyReadingRepo.Delete(ctx, reading.ID)
}
