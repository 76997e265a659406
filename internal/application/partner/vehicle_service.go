package partner

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleService manages the vehicles registered under credit customers
type VehicleService struct {
	vehicleRepo  partner.VehicleRepository
	customerRepo partner.CustomerRepository
}

// NewVehicleService creates a new vehicle management service
func NewVehicleService(vehicleRepo partner.VehicleRepository, customerRepo partner.CustomerRepository) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

// CreateVehicle registers a vehicle under a customer
func (s *VehicleService) CreateVehicle(ctx context.Context, tenantID uuid.UUID, req CreateVehicleRequest) (*VehicleResponse, error) {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	vehicle, err := partner.NewVehicle(tenantID, req.CustomerID, req.Number, partner.VehicleType(req.VehicleType))
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicleRepo.FindByNumber(ctx, tenantID, vehicle.Number)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A vehicle with this number is already registered")
	}

	if req.Notes != "" {
		vehicle.SetNotes(req.Notes)
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	resp := ToVehicleResponse(vehicle)
	return &resp, nil
}

// GetVehicle retrieves a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, tenantID, vehicleID uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return nil, err
	}
	resp := ToVehicleResponse(vehicle)
	return &resp, nil
}

// ListVehicles retrieves the vehicles registered under a customer
func (s *VehicleService) ListVehicles(ctx context.Context, tenantID, customerID uuid.UUID) ([]VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.FindByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses, nil
}

// DeleteVehicle removes a vehicle. Past indents keep their vehicle
// reference for the audit trail.
func (s *VehicleService) DeleteVehicle(ctx context.Context, tenantID, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return err
	}
	return s.vehicleRepo.Delete(ctx, vehicle.ID)
}
