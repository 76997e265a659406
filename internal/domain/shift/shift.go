package shift

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftType represents the slot of the day a shift covers.
// Stations run either a three-shift pattern (morning, evening, night)
// or a two-shift pattern (day, night).
type ShiftType string

const (
	ShiftTypeMorning ShiftType = "morning"
	ShiftTypeEvening ShiftType = "evening"
	ShiftTypeNight   ShiftType = "night"
	ShiftTypeDay     ShiftType = "day"
)

// ShiftStatus represents the lifecycle state of a shift
type ShiftStatus string

const (
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
)

// Shift is the aggregate root for an attendant's working shift.
// Pump readings and consumable allocations belong to the shift and
// are persisted together with it.
type Shift struct {
	shared.TenantAggregateRoot
	StaffID   uuid.UUID
	ShiftType ShiftType
	Status    ShiftStatus
	StartTime time.Time
	EndTime   *time.Time

	// Payment totals entered when the shift is closed
	CashSales   decimal.Decimal
	CardSales   decimal.Decimal
	UPISales    decimal.Decimal
	IndentSales decimal.Decimal

	// Derived figures computed at close time
	TotalSales     decimal.Decimal
	TotalLiters    decimal.Decimal
	CashRemaining  decimal.Decimal
	ExpenseAmount  decimal.Decimal
	CashDifference decimal.Decimal

	Notes string

	Readings    []Reading
	Consumables []ConsumableAllocation
}

// NewShift opens a new shift for a staff member
func NewShift(tenantID, staffID uuid.UUID, shiftType ShiftType, startTime time.Time) (*Shift, error) {
	if staffID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF_ID", "Staff ID cannot be empty")
	}
	if !shiftType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SHIFT_TYPE", "Unknown shift type")
	}
	if startTime.IsZero() {
		startTime = time.Now()
	}

	s := &Shift{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		StaffID:             staffID,
		ShiftType:           shiftType,
		Status:              ShiftStatusActive,
		StartTime:           startTime,
		Readings:            make([]Reading, 0),
		Consumables:         make([]ConsumableAllocation, 0),
	}

	s.AddDomainEvent(NewShiftStartedEvent(s))

	return s, nil
}

// AddReading attaches an opening pump reading to an active shift
func (s *Shift) AddReading(reading Reading) error {
	if s.Status != ShiftStatusActive {
		return shared.ErrInvalidState
	}
	for _, r := range s.Readings {
		if r.PumpID == reading.PumpID && r.FuelType == reading.FuelType {
			return shared.NewDomainError("DUPLICATE_READING", "Shift already has a reading for this pump and fuel")
		}
	}

	reading.ShiftID = s.ID
	reading.TenantID = s.TenantID
	s.Readings = append(s.Readings, reading)
	s.UpdatedAt = time.Now()

	return nil
}

// AllocateConsumable attaches a consumable allocation to an active shift
func (s *Shift) AllocateConsumable(alloc ConsumableAllocation) error {
	if s.Status != ShiftStatusActive {
		return shared.ErrInvalidState
	}
	if alloc.Quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Allocated quantity must be positive")
	}

	alloc.ShiftID = s.ID
	alloc.TenantID = s.TenantID
	s.Consumables = append(s.Consumables, alloc)
	s.UpdatedAt = time.Now()

	return nil
}

// ClosingEntry carries the closing figures for one pump reading
type ClosingEntry struct {
	ReadingID      uuid.UUID
	ClosingReading decimal.Decimal
	TestingFuel    decimal.Decimal
}

// ReturnEntry carries the returned count for one consumable allocation
type ReturnEntry struct {
	AllocationID uuid.UUID
	Returned     int
}

// CloseInput carries everything entered by the attendant when ending a shift
type CloseInput struct {
	Closings      []ClosingEntry
	Returns       []ReturnEntry
	CashSales     decimal.Decimal
	CardSales     decimal.Decimal
	UPISales      decimal.Decimal
	IndentSales   decimal.Decimal
	CashRemaining decimal.Decimal
	OtherExpenses decimal.Decimal
	Notes         string
	EndTime       time.Time
}

// Close ends an active shift. Every reading must receive a closing
// value no lower than its opening, every consumable return is capped
// at the allocated quantity, and the reconciliation figures are
// computed and stored on the shift.
func (s *Shift) Close(input CloseInput) error {
	if s.Status != ShiftStatusActive {
		return shared.NewDomainError("SHIFT_NOT_ACTIVE", "Only an active shift can be closed")
	}
	if input.CashSales.IsNegative() || input.CardSales.IsNegative() || input.UPISales.IsNegative() {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amounts cannot be negative")
	}
	if input.CashRemaining.IsNegative() {
		return shared.NewDomainError("INVALID_CASH_REMAINING", "Cash remaining cannot be negative")
	}

	closings := make(map[uuid.UUID]ClosingEntry, len(input.Closings))
	for _, c := range input.Closings {
		closings[c.ReadingID] = c
	}

	for i := range s.Readings {
		r := &s.Readings[i]
		entry, ok := closings[r.ID]
		if !ok {
			return shared.NewDomainError("MISSING_CLOSING", "Missing closing reading for "+string(r.FuelType))
		}
		if err := r.SetClosing(entry.ClosingReading); err != nil {
			return err
		}
		if err := r.SetTestingFuel(entry.TestingFuel); err != nil {
			return err
		}
	}

	returns := make(map[uuid.UUID]int, len(input.Returns))
	for _, r := range input.Returns {
		returns[r.AllocationID] = r.Returned
	}
	for i := range s.Consumables {
		a := &s.Consumables[i]
		if returned, ok := returns[a.ID]; ok {
			if err := a.SetReturned(returned); err != nil {
				return err
			}
		}
	}

	endTime := input.EndTime
	if endTime.IsZero() {
		endTime = time.Now()
	}
	if endTime.Before(s.StartTime) {
		return shared.NewDomainError("INVALID_END_TIME", "Shift cannot end before it started")
	}

	expenses := input.OtherExpenses
	for _, a := range s.Consumables {
		expenses = expenses.Add(a.Expense())
	}

	s.CashSales = input.CashSales
	s.CardSales = input.CardSales
	s.UPISales = input.UPISales
	s.IndentSales = input.IndentSales
	s.CashRemaining = input.CashRemaining
	s.ExpenseAmount = expenses
	s.TotalLiters = TotalLiters(s.Readings)
	s.TotalSales = PaymentTotal(input.CashSales, input.CardSales, input.UPISales)
	s.CashDifference = CashDifference(input.CashRemaining, input.CashSales, expenses)
	s.Notes = input.Notes
	s.EndTime = &endTime
	s.Status = ShiftStatusCompleted
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewShiftEndedEvent(s))

	return nil
}

// IsActive returns true while the shift is still open
func (s *Shift) IsActive() bool {
	return s.Status == ShiftStatusActive
}

// Duration returns how long the shift ran. Open shifts measure up to now.
func (s *Shift) Duration() time.Duration {
	if s.EndTime != nil {
		return s.EndTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}

// IsValid checks if the shift type is a known slot
func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftTypeMorning, ShiftTypeEvening, ShiftTypeNight, ShiftTypeDay:
		return true
	}
	return false
}

// ShiftPattern describes how a station divides its day
type ShiftPattern string

const (
	// ShiftPatternTriple cycles morning, evening, night
	ShiftPatternTriple ShiftPattern = "triple"
	// ShiftPatternDouble alternates day and night
	ShiftPatternDouble ShiftPattern = "double"
)

// NextShiftType returns the slot that follows the current one in
// the station's rotation
func NextShiftType(current ShiftType, pattern ShiftPattern) ShiftType {
	if pattern == ShiftPatternDouble {
		if current == ShiftTypeDay {
			return ShiftTypeNight
		}
		return ShiftTypeDay
	}
	switch current {
	case ShiftTypeMorning:
		return ShiftTypeEvening
	case ShiftTypeEvening:
		return ShiftTypeNight
	case ShiftTypeNight:
		return ShiftTypeMorning
	}
	return ShiftTypeMorning
}

// IsValid checks if the status value is a known status
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusActive, ShiftStatusCompleted:
		return true
	}
	return false
}
