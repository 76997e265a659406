package station

import (
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PumpStatus represents the operational state of a dispensing pump
type PumpStatus string

const (
	PumpStatusOperational PumpStatus = "operational"
	PumpStatusMaintenance PumpStatus = "maintenance"
	PumpStatusRetired     PumpStatus = "retired"
)

// Nozzle is one dispensing point on a pump, tied to a single fuel type
type Nozzle struct {
	shared.BaseEntity
	PumpID   uuid.UUID
	TenantID uuid.UUID
	Label    string
	FuelType FuelType
}

// Pump is the aggregate root for a dispensing unit and its nozzles
type Pump struct {
	shared.TenantAggregateRoot
	Name    string
	Status  PumpStatus
	Nozzles []Nozzle
}

// NewPump registers a dispensing pump for a station
func NewPump(tenantID uuid.UUID, name string) (*Pump, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PUMP_NAME", "Pump name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_PUMP_NAME", "Pump name cannot exceed 100 characters")
	}

	return &Pump{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Status:              PumpStatusOperational,
		Nozzles:             make([]Nozzle, 0),
	}, nil
}

// AddNozzle attaches a nozzle to the pump
func (p *Pump) AddNozzle(label string, fuelType FuelType) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError("INVALID_NOZZLE_LABEL", "Nozzle label cannot be empty")
	}
	if !fuelType.IsValid() {
		return shared.NewDomainError("INVALID_FUEL_TYPE", "Unknown fuel type")
	}
	for _, n := range p.Nozzles {
		if n.Label == label {
			return shared.NewDomainError("DUPLICATE_NOZZLE", "Pump already has a nozzle with this label")
		}
	}

	p.Nozzles = append(p.Nozzles, Nozzle{
		BaseEntity: shared.NewBaseEntity(),
		PumpID:     p.ID,
		TenantID:   p.TenantID,
		Label:      label,
		FuelType:   fuelType,
	})
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// RemoveNozzle detaches a nozzle from the pump
func (p *Pump) RemoveNozzle(nozzleID uuid.UUID) error {
	for i, n := range p.Nozzles {
		if n.ID == nozzleID {
			p.Nozzles = append(p.Nozzles[:i], p.Nozzles[i+1:]...)
			p.UpdatedAt = time.Now()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.ErrNotFound
}

// DispensesFuel reports whether any nozzle serves the fuel type
func (p *Pump) DispensesFuel(fuelType FuelType) bool {
	for _, n := range p.Nozzles {
		if n.FuelType == fuelType {
			return true
		}
	}
	return false
}

// SetStatus changes the operational state of the pump
func (p *Pump) SetStatus(status PumpStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_PUMP_STATUS", "Unknown pump status")
	}
	if p.Status == PumpStatusRetired && status != PumpStatusRetired {
		return shared.NewDomainError("PUMP_RETIRED", "A retired pump cannot return to service")
	}

	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// IsOperational reports whether the pump can be used in a shift
func (p *Pump) IsOperational() bool {
	return p.Status == PumpStatusOperational
}

// IsValid checks if the status value is a known status
func (s PumpStatus) IsValid() bool {
	switch s {
	case PumpStatusOperational, PumpStatusMaintenance, PumpStatusRetired:
		return true
	}
	return false
}
