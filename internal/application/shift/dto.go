package shift

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpeningReadingInput captures a pump nozzle's totalizer value when a
// shift starts
type OpeningReadingInput struct {
	PumpID         uuid.UUID       `json:"pump_id" binding:"required"`
	FuelType       string          `json:"fuel_type" binding:"required,fuel_type"`
	OpeningReading decimal.Decimal `json:"opening_reading" binding:"required"`
}

// ConsumableInput captures an item handed to the attendant at shift start
type ConsumableInput struct {
	Name      string          `json:"name" binding:"required,max=100"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

// StartShiftRequest represents a request to open a shift
type StartShiftRequest struct {
	StaffID     uuid.UUID             `json:"staff_id" binding:"required"`
	ShiftType   string                `json:"shift_type" binding:"required,oneof=morning evening night day"`
	StartTime   *time.Time            `json:"start_time"`
	Readings    []OpeningReadingInput `json:"readings" binding:"required,min=1,dive"`
	Consumables []ConsumableInput     `json:"consumables" binding:"omitempty,dive"`
}

// ClosingReadingInput carries the closing totalizer value for one
// reading, along with any fuel dispensed for meter testing
type ClosingReadingInput struct {
	ReadingID      uuid.UUID       `json:"reading_id" binding:"required"`
	ClosingReading decimal.Decimal `json:"closing_reading" binding:"required"`
	TestingFuel    decimal.Decimal `json:"testing_fuel"`
}

// ConsumableReturnInput carries the returned count for one allocation
type ConsumableReturnInput struct {
	AllocationID uuid.UUID `json:"allocation_id" binding:"required"`
	Returned     int       `json:"returned" binding:"min=0"`
}

// HandoverInput asks for a successor shift to be opened for the
// incoming staff member when the current one is closed
type HandoverInput struct {
	StaffID      uuid.UUID `json:"staff_id" binding:"required"`
	ShiftPattern string    `json:"shift_pattern" binding:"omitempty,oneof=triple double"`
}

// EndShiftRequest represents a request to close a shift and reconcile it
type EndShiftRequest struct {
	Closings      []ClosingReadingInput   `json:"closings" binding:"required,min=1,dive"`
	Returns       []ConsumableReturnInput `json:"returns" binding:"omitempty,dive"`
	CashSales     decimal.Decimal         `json:"cash_sales"`
	CardSales     decimal.Decimal         `json:"card_sales"`
	UPISales      decimal.Decimal         `json:"upi_sales"`
	CashRemaining decimal.Decimal         `json:"cash_remaining"`
	OtherExpenses decimal.Decimal         `json:"other_expenses"`
	Notes         string                  `json:"notes" binding:"max=1000"`
	EndTime       *time.Time              `json:"end_time"`
	Handover      *HandoverInput          `json:"handover" binding:"omitempty"`
}

// ReadingResponse represents a pump reading in API responses
type ReadingResponse struct {
	ID             uuid.UUID        `json:"id"`
	PumpID         uuid.UUID        `json:"pump_id"`
	FuelType       string           `json:"fuel_type"`
	FuelPrice      decimal.Decimal  `json:"fuel_price"`
	OpeningReading decimal.Decimal  `json:"opening_reading"`
	ClosingReading *decimal.Decimal `json:"closing_reading,omitempty"`
	TestingFuel    decimal.Decimal  `json:"testing_fuel"`
	Liters         decimal.Decimal  `json:"liters"`
	SaleAmount     decimal.Decimal  `json:"sale_amount"`
}

// ConsumableResponse represents a consumable allocation in API responses
type ConsumableResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Returned  int             `json:"returned"`
	Used      int             `json:"used"`
	Expense   decimal.Decimal `json:"expense"`
}

// ShiftResponse represents a shift in API responses
type ShiftResponse struct {
	ID             uuid.UUID            `json:"id"`
	TenantID       uuid.UUID            `json:"tenant_id"`
	StaffID        uuid.UUID            `json:"staff_id"`
	ShiftType      string               `json:"shift_type"`
	Status         string               `json:"status"`
	StartTime      time.Time            `json:"start_time"`
	EndTime        *time.Time           `json:"end_time,omitempty"`
	CashSales      decimal.Decimal      `json:"cash_sales"`
	CardSales      decimal.Decimal      `json:"card_sales"`
	UPISales       decimal.Decimal      `json:"upi_sales"`
	IndentSales    decimal.Decimal      `json:"indent_sales"`
	TotalSales     decimal.Decimal      `json:"total_sales"`
	TotalLiters    decimal.Decimal      `json:"total_liters"`
	CashRemaining  decimal.Decimal      `json:"cash_remaining"`
	ExpenseAmount  decimal.Decimal      `json:"expense_amount"`
	CashDifference decimal.Decimal      `json:"cash_difference"`
	Notes          string               `json:"notes,omitempty"`
	Readings       []ReadingResponse    `json:"readings"`
	Consumables    []ConsumableResponse `json:"consumables"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ShiftListFilter represents filter options for the shift list
type ShiftListFilter struct {
	Status    string     `form:"status" binding:"omitempty,oneof=active completed"`
	StaffID   *uuid.UUID `form:"staff_id"`
	ShiftType string     `form:"shift_type" binding:"omitempty,oneof=morning evening night day"`
	StartFrom *time.Time `form:"start_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTo   *time.Time `form:"start_to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// EndShiftResponse carries the closed shift and, when a handover was
// requested, the successor shift opened for the incoming staff member
type EndShiftResponse struct {
	Shift     ShiftResponse  `json:"shift"`
	NextShift *ShiftResponse `json:"next_shift,omitempty"`
}

// HandoverResponse tells the attendant which slot follows their shift
type HandoverResponse struct {
	CurrentShift  ShiftResponse `json:"current_shift"`
	NextShiftType string        `json:"next_shift_type"`
}

// ToShiftResponse converts a domain Shift to a response DTO
func ToShiftResponse(s *shift.Shift) ShiftResponse {
	readings := make([]ReadingResponse, len(s.Readings))
	for i := range s.Readings {
		r := &s.Readings[i]
		readings[i] = ReadingResponse{
			ID:             r.ID,
			PumpID:         r.PumpID,
			FuelType:       string(r.FuelType),
			FuelPrice:      r.FuelPrice,
			OpeningReading: r.OpeningReading,
			ClosingReading: r.ClosingReading,
			TestingFuel:    r.TestingFuel,
			Liters:         r.Liters(),
			SaleAmount:     r.SaleAmount(),
		}
	}

	consumables := make([]ConsumableResponse, len(s.Consumables))
	for i := range s.Consumables {
		c := &s.Consumables[i]
		consumables[i] = ConsumableResponse{
			ID:        c.ID,
			Name:      c.Name,
			UnitPrice: c.UnitPrice,
			Quantity:  c.Quantity,
			Returned:  c.Returned,
			Used:      c.Used(),
			Expense:   c.Expense(),
		}
	}

	return ShiftResponse{
		ID:             s.ID,
		TenantID:       s.TenantID,
		StaffID:        s.StaffID,
		ShiftType:      string(s.ShiftType),
		Status:         string(s.Status),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		CashSales:      s.CashSales,
		CardSales:      s.CardSales,
		UPISales:       s.UPISales,
		IndentSales:    s.IndentSales,
		TotalSales:     s.TotalSales,
		TotalLiters:    s.TotalLiters,
		CashRemaining:  s.CashRemaining,
		ExpenseAmount:  s.ExpenseAmount,
		CashDifference: s.CashDifference,
		Notes:          s.Notes,
		Readings:       readings,
		Consumables:    consumables,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
