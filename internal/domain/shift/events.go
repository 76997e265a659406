package shift

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeShift = "Shift"

// Event type constants
const (
	EventTypeShiftStarted = "ShiftStarted"
	EventTypeShiftEnded   = "ShiftEnded"
)

// ShiftStartedEvent is published when a shift opens
type ShiftStartedEvent struct {
	shared.BaseDomainEvent
	StaffID   uuid.UUID `json:"staff_id"`
	ShiftType ShiftType `json:"shift_type"`
	StartTime time.Time `json:"start_time"`
}

// NewShiftStartedEvent creates a new ShiftStartedEvent
func NewShiftStartedEvent(s *Shift) *ShiftStartedEvent {
	return &ShiftStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShiftStarted, AggregateTypeShift, s.ID, s.TenantID),
		StaffID:         s.StaffID,
		ShiftType:       s.ShiftType,
		StartTime:       s.StartTime,
	}
}

// ShiftEndedEvent is published when a shift closes
type ShiftEndedEvent struct {
	shared.BaseDomainEvent
	StaffID        uuid.UUID       `json:"staff_id"`
	ShiftType      ShiftType       `json:"shift_type"`
	TotalLiters    decimal.Decimal `json:"total_liters"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	CashDifference decimal.Decimal `json:"cash_difference"`
}

// NewShiftEndedEvent creates a new ShiftEndedEvent
func NewShiftEndedEvent(s *Shift) *ShiftEndedEvent {
	return &ShiftEndedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShiftEnded, AggregateTypeShift, s.ID, s.TenantID),
		StaffID:         s.StaffID,
		ShiftType:       s.ShiftType,
		TotalLiters:     s.TotalLiters,
		TotalSales:      s.TotalSales,
		CashDifference:  s.CashDifference,
	}
}
