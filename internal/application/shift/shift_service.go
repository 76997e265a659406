package shift

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShiftService handles shift lifecycle and reconciliation operations
type ShiftService struct {
	txScope   TransactionScope
	shiftRepo shift.Repository
	pumpRepo  station.PumpRepository
	logger    *zap.Logger
}

// NewShiftService creates a new shift service
func NewShiftService(
	txScope TransactionScope,
	shiftRepo shift.Repository,
	pumpRepo station.PumpRepository,
	logger *zap.Logger,
) *ShiftService {
	return &ShiftService{
		txScope:   txScope,
		shiftRepo: shiftRepo,
		pumpRepo:  pumpRepo,
		logger:    logger,
	}
}

// StartShift opens a shift for a staff member. The ruling fuel price is
// frozen into each opening reading so later price changes do not affect
// the shift's reconciliation.
func (s *ShiftService) StartShift(ctx context.Context, tenantID uuid.UUID, req StartShiftRequest) (*ShiftResponse, error) {
	startTime := time.Now()
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	for _, input := range req.Readings {
		pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, input.PumpID)
		if err != nil {
			return nil, shared.NewDomainError("PUMP_NOT_FOUND", "Pump not found")
		}
		if !pump.IsOperational() {
			return nil, shared.NewDomainError("PUMP_NOT_OPERATIONAL", "Pump "+pump.Name+" is not operational")
		}
		if !pump.DispensesFuel(station.FuelType(input.FuelType)) {
			return nil, shared.NewDomainError("FUEL_NOT_DISPENSED", "Pump "+pump.Name+" has no nozzle for "+input.FuelType)
		}
	}

	var newShift *shift.Shift
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		active, err := repos.ShiftRepo().HasActiveShift(ctx, tenantID, req.StaffID)
		if err != nil {
			return err
		}
		if active {
			return shared.ErrShiftAlreadyActive
		}

		newShift, err = shift.NewShift(tenantID, req.StaffID, shift.ShiftType(req.ShiftType), startTime)
		if err != nil {
			return err
		}

		for _, input := range req.Readings {
			setting, err := repos.FuelSettingRepo().FindByFuelType(ctx, tenantID, station.FuelType(input.FuelType))
			if err != nil {
				return shared.NewDomainError("FUEL_NOT_CONFIGURED", "No price configured for "+input.FuelType)
			}
			reading, err := shift.NewReading(input.PumpID, setting.FuelType, input.OpeningReading, setting.Price)
			if err != nil {
				return err
			}
			if err := newShift.AddReading(reading); err != nil {
				return err
			}
		}

		for _, input := range req.Consumables {
			alloc, err := shift.NewConsumableAllocation(input.Name, input.UnitPrice, input.Quantity)
			if err != nil {
				return err
			}
			if err := newShift.AllocateConsumable(alloc); err != nil {
				return err
			}
		}

		return repos.ShiftRepo().Save(ctx, newShift)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Shift started",
		zap.String("shift_id", newShift.ID.String()),
		zap.String("staff_id", req.StaffID.String()),
		zap.String("shift_type", req.ShiftType))

	resp := ToShiftResponse(newShift)
	return &resp, nil
}

// EndShift closes a shift and reconciles it. Credit sales recorded by
// the attendant during the shift are summed into the indent total and
// linked back to the shift, so the figure cannot be fudged at close
// time. When a handover is requested the successor shift is opened in
// the same transaction, seeded with the closing readings as its
// openings and the next slot in the station's rotation.
func (s *ShiftService) EndShift(ctx context.Context, tenantID, shiftID uuid.UUID, req EndShiftRequest) (*EndShiftResponse, error) {
	endTime := time.Now()
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	var closed *shift.Shift
	var successor *shift.Shift
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		current, err := repos.ShiftRepo().FindByIDForTenant(ctx, tenantID, shiftID)
		if err != nil {
			return err
		}

		indents, err := repos.IndentRepo().FindByStaffBetween(ctx, tenantID, current.StaffID, current.StartTime, endTime)
		if err != nil {
			return err
		}
		indentSales := decimal.Zero
		for i := range indents {
			indentSales = indentSales.Add(indents[i].Amount)
		}

		input := shift.CloseInput{
			CashSales:     req.CashSales,
			CardSales:     req.CardSales,
			UPISales:      req.UPISales,
			IndentSales:   indentSales,
			CashRemaining: req.CashRemaining,
			OtherExpenses: req.OtherExpenses,
			Notes:         req.Notes,
			EndTime:       endTime,
		}
		for _, c := range req.Closings {
			input.Closings = append(input.Closings, shift.ClosingEntry{
				ReadingID:      c.ReadingID,
				ClosingReading: c.ClosingReading,
				TestingFuel:    c.TestingFuel,
			})
		}
		for _, r := range req.Returns {
			input.Returns = append(input.Returns, shift.ReturnEntry{
				AllocationID: r.AllocationID,
				Returned:     r.Returned,
			})
		}

		if err := current.Close(input); err != nil {
			return err
		}
		if err := repos.ShiftRepo().Save(ctx, current); err != nil {
			return err
		}

		for i := range indents {
			if indents[i].ShiftID != nil {
				continue
			}
			indents[i].ShiftID = &current.ID
			if err := repos.IndentRepo().Save(ctx, &indents[i]); err != nil {
				return err
			}
		}

		if req.Handover != nil {
			successor, err = s.openSuccessorShift(ctx, repos, current, *req.Handover, endTime)
			if err != nil {
				return err
			}
		}

		closed = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Shift closed",
		zap.String("shift_id", closed.ID.String()),
		zap.String("total_sales", closed.TotalSales.String()),
		zap.String("cash_difference", closed.CashDifference.String()),
		zap.Bool("handover", successor != nil))

	resp := &EndShiftResponse{Shift: ToShiftResponse(closed)}
	if successor != nil {
		next := ToShiftResponse(successor)
		resp.NextShift = &next
	}
	return resp, nil
}

// openSuccessorShift starts the incoming staff member's shift as part
// of a handover. The closed shift's closing readings become the
// successor's opening readings and the fuel price is re-frozen at the
// ruling rate.
func (s *ShiftService) openSuccessorShift(ctx context.Context, repos TransactionalRepositories, closed *shift.Shift, handover HandoverInput, startTime time.Time) (*shift.Shift, error) {
	active, err := repos.ShiftRepo().HasActiveShift(ctx, closed.TenantID, handover.StaffID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, shared.ErrShiftAlreadyActive
	}

	pattern := shift.ShiftPattern(handover.ShiftPattern)
	if pattern != shift.ShiftPatternDouble {
		pattern = shift.ShiftPatternTriple
	}

	successor, err := shift.NewShift(closed.TenantID, handover.StaffID,
		shift.NextShiftType(closed.ShiftType, pattern), startTime)
	if err != nil {
		return nil, err
	}

	for i := range closed.Readings {
		r := &closed.Readings[i]
		setting, err := repos.FuelSettingRepo().FindByFuelType(ctx, closed.TenantID, r.FuelType)
		if err != nil {
			return nil, shared.NewDomainError("FUEL_NOT_CONFIGURED", "No price configured for "+string(r.FuelType))
		}
		opening, err := shift.NewReading(r.PumpID, r.FuelType, *r.ClosingReading, setting.Price)
		if err != nil {
			return nil, err
		}
		if err := successor.AddReading(opening); err != nil {
			return nil, err
		}
	}

	if err := repos.ShiftRepo().Save(ctx, successor); err != nil {
		return nil, err
	}
	return successor, nil
}

// GetShift retrieves a shift with its readings and consumables
func (s *ShiftService) GetShift(ctx context.Context, tenantID, id uuid.UUID) (*ShiftResponse, error) {
	current, err := s.shiftRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToShiftResponse(current)
	return &resp, nil
}

// GetActiveShift retrieves a staff member's open shift, if any
func (s *ShiftService) GetActiveShift(ctx context.Context, tenantID, staffID uuid.UUID) (*ShiftResponse, error) {
	current, err := s.shiftRepo.FindActiveByStaff(ctx, tenantID, staffID)
	if err != nil {
		return nil, err
	}
	resp := ToShiftResponse(current)
	return &resp, nil
}

// ListShifts lists station shifts matching the filter
func (s *ShiftService) ListShifts(ctx context.Context, tenantID uuid.UUID, filter ShiftListFilter) ([]ShiftResponse, int64, error) {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  map[string]interface{}{},
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.StaffID != nil {
		f.Filters["staff_id"] = *filter.StaffID
	}
	if filter.ShiftType != "" {
		f.Filters["shift_type"] = filter.ShiftType
	}
	if filter.StartFrom != nil {
		f.Filters["start_from"] = *filter.StartFrom
	}
	if filter.StartTo != nil {
		f.Filters["start_to"] = *filter.StartTo
	}

	shifts, err := s.shiftRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.shiftRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = ToShiftResponse(&shifts[i])
	}
	return responses, total, nil
}

// GetHandover returns a staff member's active shift together with the
// slot that follows it in the station's rotation
func (s *ShiftService) GetHandover(ctx context.Context, tenantID, staffID uuid.UUID, pattern string) (*HandoverResponse, error) {
	current, err := s.shiftRepo.FindActiveByStaff(ctx, tenantID, staffID)
	if err != nil {
		return nil, err
	}

	shiftPattern := shift.ShiftPattern(pattern)
	if shiftPattern != shift.ShiftPatternDouble {
		shiftPattern = shift.ShiftPatternTriple
	}

	return &HandoverResponse{
		CurrentShift:  ToShiftResponse(current),
		NextShiftType: string(shift.NextShiftType(current.ShiftType, shiftPattern)),
	}, nil
}

// DeleteShift removes an active shift opened in error, along with its
// readings and allocations. Completed shifts are part of the sales
// records and cannot be deleted.
func (s *ShiftService) DeleteShift(ctx context.Context, tenantID, id uuid.UUID) error {
	current, err := s.shiftRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !current.IsActive() {
		return shared.NewDomainError("SHIFT_COMPLETED", "A completed shift cannot be deleted")
	}
	return s.shiftRepo.Delete(ctx, current.ID)
}
