package partner

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest registers a credit customer
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Phone       string          `json:"phone" binding:"max=50"`
	Email       string          `json:"email" binding:"omitempty,email"`
	GSTNumber   string          `json:"gst_number" binding:"max=30"`
	Address     string          `json:"address" binding:"max=500"`
	CreditLimit decimal.Decimal `json:"credit_limit" binding:"required"`
	Notes       string          `json:"notes" binding:"max=1000"`
}

// UpdateCustomerRequest updates a customer's contact details
type UpdateCustomerRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	GSTNumber *string `json:"gst_number" binding:"omitempty,max=30"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	Notes     *string `json:"notes" binding:"omitempty,max=1000"`
}

// SetCreditLimitRequest changes a customer's credit limit
type SetCreditLimitRequest struct {
	CreditLimit decimal.Decimal `json:"credit_limit" binding:"required"`
}

// RecordPaymentRequest settles part of a customer's outstanding balance
type RecordPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Notes      string          `json:"notes" binding:"max=1000"`
	RecordedBy uuid.UUID       `json:"-"`
}

// RecordAdjustmentRequest corrects a customer's balance outside the
// normal indent and payment flows
type RecordAdjustmentRequest struct {
	Type       string          `json:"type" binding:"required,oneof=debit credit"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Notes      string          `json:"notes" binding:"required,max=1000"`
	RecordedBy uuid.UUID       `json:"-"`
}

// CustomerResponse represents a credit customer in API responses
type CustomerResponse struct {
	ID              uuid.UUID       `json:"id"`
	TenantID        uuid.UUID       `json:"tenant_id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	GSTNumber       string          `json:"gst_number,omitempty"`
	Address         string          `json:"address,omitempty"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	Balance         decimal.Decimal `json:"balance"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain Customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID,
		TenantID:        c.TenantID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		GSTNumber:       c.GSTNumber,
		Address:         c.Address,
		CreditLimit:     c.CreditLimit,
		Balance:         c.Balance,
		AvailableCredit: c.AvailableCredit(),
		Status:          string(c.Status),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// =============================================================================
// Vehicle DTOs
// =============================================================================

// CreateVehicleRequest registers a vehicle under a customer
type CreateVehicleRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	Number      string    `json:"number" binding:"required,max=20"`
	VehicleType string    `json:"vehicle_type" binding:"required,oneof=truck bus car tractor other"`
	Notes       string    `json:"notes" binding:"max=1000"`
}

// VehicleResponse represents a customer vehicle in API responses
type VehicleResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Number      string    `json:"number"`
	VehicleType string    `json:"vehicle_type"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToVehicleResponse converts a domain Vehicle to a response DTO
func ToVehicleResponse(v *partner.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		TenantID:    v.TenantID,
		CustomerID:  v.CustomerID,
		Number:      v.Number,
		VehicleType: string(v.VehicleType),
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
	}
}

// =============================================================================
// Booklet DTOs
// =============================================================================

// IssueBookletRequest issues a numbered indent booklet to a customer
type IssueBookletRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	StartNumber int       `json:"start_number" binding:"required,min=1"`
	EndNumber   int       `json:"end_number" binding:"required,min=1"`
}

// BookletResponse represents an indent booklet in API responses
type BookletResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StartNumber int       `json:"start_number"`
	EndNumber   int       `json:"end_number"`
	NextNumber  int       `json:"next_number"`
	Remaining   int       `json:"remaining"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBookletResponse converts a domain IndentBooklet to a response DTO
func ToBookletResponse(b *partner.IndentBooklet) BookletResponse {
	return BookletResponse{
		ID:          b.ID,
		TenantID:    b.TenantID,
		CustomerID:  b.CustomerID,
		StartNumber: b.StartNumber,
		EndNumber:   b.EndNumber,
		NextNumber:  b.NextNumber,
		Remaining:   b.Remaining(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// =============================================================================
// Indent DTOs
// =============================================================================

// RecordIndentRequest records a credit fueling against an indent slip.
// When IndentNumber is omitted the next number is taken from the
// customer's active booklet; a manual number must belong to the
// booklet's range and must not have been used before.
type RecordIndentRequest struct {
	CustomerID   uuid.UUID       `json:"customer_id" binding:"required"`
	BookletID    *uuid.UUID      `json:"booklet_id"`
	IndentNumber *int            `json:"indent_number" binding:"omitempty,min=1"`
	VehicleID    *uuid.UUID      `json:"vehicle_id"`
	FuelType     string          `json:"fuel_type" binding:"required,fuel_type"`
	Liters       decimal.Decimal `json:"liters" binding:"required"`
	ShiftID      *uuid.UUID      `json:"shift_id"`
	Notes        string          `json:"notes" binding:"max=1000"`
	RecordedBy   uuid.UUID       `json:"-"`
}

// IndentResponse represents a credit fueling in API responses
type IndentResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	IndentNumber int             `json:"indent_number"`
	BookletID    uuid.UUID       `json:"booklet_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	VehicleID    *uuid.UUID      `json:"vehicle_id,omitempty"`
	FuelType     string          `json:"fuel_type"`
	Liters       decimal.Decimal `json:"liters"`
	FuelPrice    decimal.Decimal `json:"fuel_price"`
	Amount       decimal.Decimal `json:"amount"`
	ShiftID      *uuid.UUID      `json:"shift_id,omitempty"`
	RecordedBy   uuid.UUID       `json:"recorded_by"`
	RecordedAt   time.Time       `json:"recorded_at"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IndentListFilter represents filter options for the indent list
type IndentListFilter struct {
	CustomerID   *uuid.UUID `form:"customer_id"`
	BookletID    *uuid.UUID `form:"booklet_id"`
	FuelType     string     `form:"fuel_type" binding:"omitempty,fuel_type"`
	RecordedFrom *time.Time `form:"recorded_from" time_format:"2006-01-02T15:04:05Z07:00"`
	RecordedTo   *time.Time `form:"recorded_to" time_format:"2006-01-02T15:04:05Z07:00"`
	Search       string     `form:"search"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToIndentResponse converts a domain Indent to a response DTO
func ToIndentResponse(i *partner.Indent) IndentResponse {
	return IndentResponse{
		ID:           i.ID,
		TenantID:     i.TenantID,
		IndentNumber: i.IndentNumber,
		BookletID:    i.BookletID,
		CustomerID:   i.CustomerID,
		VehicleID:    i.VehicleID,
		FuelType:     string(i.FuelType),
		Liters:       i.Liters,
		FuelPrice:    i.FuelPrice,
		Amount:       i.Amount,
		ShiftID:      i.ShiftID,
		RecordedBy:   i.RecordedBy,
		RecordedAt:   i.RecordedAt,
		Notes:        i.Notes,
		CreatedAt:    i.CreatedAt,
	}
}

// =============================================================================
// Credit ledger DTOs
// =============================================================================

// LedgerEntryResponse represents a credit ledger entry in API responses
type LedgerEntryResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	Type         string          `json:"type"`
	Source       string          `json:"source"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	ReferenceID  *uuid.UUID      `json:"reference_id,omitempty"`
	RecordedBy   uuid.UUID       `json:"recorded_by"`
	RecordedAt   time.Time       `json:"recorded_at"`
	Notes        string          `json:"notes,omitempty"`
}

// LedgerListFilter represents filter options for a customer's ledger
type LedgerListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToLedgerEntryResponse converts a domain CreditTransaction to a response DTO
func ToLedgerEntryResponse(t *partner.CreditTransaction) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:           t.ID,
		TenantID:     t.TenantID,
		CustomerID:   t.CustomerID,
		Type:         string(t.Type),
		Source:       string(t.Source),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		ReferenceID:  t.ReferenceID,
		RecordedBy:   t.RecordedBy,
		RecordedAt:   t.RecordedAt,
		Notes:        t.Notes,
	}
}
