package station

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
)

// PumpService handles dispensing unit management
type PumpService struct {
	pumpRepo station.PumpRepository
}

// NewPumpService creates a new pump management service
func NewPumpService(pumpRepo station.PumpRepository) *PumpService {
	return &PumpService{pumpRepo: pumpRepo}
}

// CreatePump registers a dispensing unit with its nozzles
func (s *PumpService) CreatePump(ctx context.Context, tenantID uuid.UUID, req CreatePumpRequest) (*PumpResponse, error) {
	pump, err := station.NewPump(tenantID, req.Name)
	if err != nil {
		return nil, err
	}
	for _, n := range req.Nozzles {
		if err := pump.AddNozzle(n.Label, station.FuelType(n.FuelType)); err != nil {
			return nil, err
		}
	}

	if err := s.pumpRepo.Save(ctx, pump); err != nil {
		return nil, err
	}
	resp := ToPumpResponse(pump)
	return &resp, nil
}

// GetPump retrieves a pump with its nozzles
func (s *PumpService) GetPump(ctx context.Context, tenantID, id uuid.UUID) (*PumpResponse, error) {
	pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPumpResponse(pump)
	return &resp, nil
}

// ListPumps lists station pumps matching the filter
func (s *PumpService) ListPumps(ctx context.Context, tenantID uuid.UUID, filter PumpListFilter) ([]PumpResponse, int64, error) {
	f := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  map[string]interface{}{},
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	pumps, err := s.pumpRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.pumpRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PumpResponse, len(pumps))
	for i := range pumps {
		responses[i] = ToPumpResponse(&pumps[i])
	}
	return responses, total, nil
}

// ListOperationalPumps lists the pumps currently available for shifts
func (s *PumpService) ListOperationalPumps(ctx context.Context, tenantID uuid.UUID) ([]PumpResponse, error) {
	pumps, err := s.pumpRepo.FindOperational(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	responses := make([]PumpResponse, len(pumps))
	for i := range pumps {
		responses[i] = ToPumpResponse(&pumps[i])
	}
	return responses, nil
}

// AddNozzle adds a nozzle to a pump
func (s *PumpService) AddNozzle(ctx context.Context, tenantID, pumpID uuid.UUID, req NozzleInput) (*PumpResponse, error) {
	pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, pumpID)
	if err != nil {
		return nil, err
	}
	if err := pump.AddNozzle(req.Label, station.FuelType(req.FuelType)); err != nil {
		return nil, err
	}
	if err := s.pumpRepo.Save(ctx, pump); err != nil {
		return nil, err
	}
	resp := ToPumpResponse(pump)
	return &resp, nil
}

// RemoveNozzle removes a nozzle from a pump
func (s *PumpService) RemoveNozzle(ctx context.Context, tenantID, pumpID, nozzleID uuid.UUID) (*PumpResponse, error) {
	pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, pumpID)
	if err != nil {
		return nil, err
	}
	if err := pump.RemoveNozzle(nozzleID); err != nil {
		return nil, err
	}
	if err := s.pumpRepo.Save(ctx, pump); err != nil {
		return nil, err
	}
	resp := ToPumpResponse(pump)
	return &resp, nil
}

// UpdatePumpStatus changes a pump's operational state
func (s *PumpService) UpdatePumpStatus(ctx context.Context, tenantID, pumpID uuid.UUID, req UpdatePumpStatusRequest) (*PumpResponse, error) {
	pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, pumpID)
	if err != nil {
		return nil, err
	}
	if err := pump.SetStatus(station.PumpStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.pumpRepo.Save(ctx, pump); err != nil {
		return nil, err
	}
	resp := ToPumpResponse(pump)
	return &resp, nil
}

// DeletePump removes a pump and its nozzles
func (s *PumpService) DeletePump(ctx context.Context, tenantID, id uuid.UUID) error {
	pump, err := s.pumpRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.pumpRepo.Delete(ctx, pump.ID)
}
