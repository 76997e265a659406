package station

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Fuel setting DTOs
// =============================================================================

// CreateFuelSettingRequest registers a fuel product for a station
type CreateFuelSettingRequest struct {
	FuelType     string          `json:"fuel_type" binding:"required,fuel_type"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	TankCapacity decimal.Decimal `json:"tank_capacity" binding:"required"`
	CurrentLevel decimal.Decimal `json:"current_level"`
}

// UpdateFuelPriceRequest changes the selling price of a fuel product
type UpdateFuelPriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdateTankRequest adjusts tank capacity or corrects the dip level
type UpdateTankRequest struct {
	TankCapacity *decimal.Decimal `json:"tank_capacity"`
	CurrentLevel *decimal.Decimal `json:"current_level"`
}

// FuelSettingResponse represents a fuel product in API responses
type FuelSettingResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	FuelType     string          `json:"fuel_type"`
	Price        decimal.Decimal `json:"price"`
	TankCapacity decimal.Decimal `json:"tank_capacity"`
	CurrentLevel decimal.Decimal `json:"current_level"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToFuelSettingResponse converts a domain FuelSetting to a response DTO
func ToFuelSettingResponse(f *station.FuelSetting, lowStockPercent int) FuelSettingResponse {
	return FuelSettingResponse{
		ID:           f.ID,
		TenantID:     f.TenantID,
		FuelType:     string(f.FuelType),
		Price:        f.Price,
		TankCapacity: f.TankCapacity,
		CurrentLevel: f.CurrentLevel,
		LowStock:     f.IsLowStock(lowStockPercent),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// =============================================================================
// Pump DTOs
// =============================================================================

// NozzleInput describes one nozzle on a pump
type NozzleInput struct {
	Label    string `json:"label" binding:"required,max=50"`
	FuelType string `json:"fuel_type" binding:"required,fuel_type"`
}

// CreatePumpRequest registers a dispensing unit
type CreatePumpRequest struct {
	Name    string        `json:"name" binding:"required,max=100"`
	Nozzles []NozzleInput `json:"nozzles" binding:"omitempty,dive"`
}

// UpdatePumpStatusRequest changes a pump's operational state
type UpdatePumpStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=operational maintenance retired"`
}

// NozzleResponse represents a nozzle in API responses
type NozzleResponse struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	FuelType string    `json:"fuel_type"`
}

// PumpResponse represents a pump in API responses
type PumpResponse struct {
	ID        uuid.UUID        `json:"id"`
	TenantID  uuid.UUID        `json:"tenant_id"`
	Name      string           `json:"name"`
	Status    string           `json:"status"`
	Nozzles   []NozzleResponse `json:"nozzles"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PumpListFilter represents filter options for the pump list
type PumpListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=operational maintenance retired"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPumpResponse converts a domain Pump to a response DTO
func ToPumpResponse(p *station.Pump) PumpResponse {
	nozzles := make([]NozzleResponse, len(p.Nozzles))
	for i := range p.Nozzles {
		nozzles[i] = NozzleResponse{
			ID:       p.Nozzles[i].ID,
			Label:    p.Nozzles[i].Label,
			FuelType: string(p.Nozzles[i].FuelType),
		}
	}
	return PumpResponse{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Name:      p.Name,
		Status:    string(p.Status),
		Nozzles:   nozzles,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// =============================================================================
// Tank unload DTOs
// =============================================================================

// RecordUnloadRequest records a tanker delivery into a fuel tank
type RecordUnloadRequest struct {
	FuelType      string          `json:"fuel_type" binding:"required,fuel_type"`
	Liters        decimal.Decimal `json:"liters" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	InvoiceNumber string          `json:"invoice_number" binding:"max=100"`
	TankerNumber  string          `json:"tanker_number" binding:"max=50"`
	UnloadedAt    *time.Time      `json:"unloaded_at"`
	Notes         string          `json:"notes" binding:"max=1000"`
	RecordedBy    uuid.UUID       `json:"-"`
}

// TankUnloadResponse represents a delivery in API responses
type TankUnloadResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	FuelType      string          `json:"fuel_type"`
	Liters        decimal.Decimal `json:"liters"`
	Amount        decimal.Decimal `json:"amount"`
	RatePerLiter  decimal.Decimal `json:"rate_per_liter"`
	InvoiceNumber string          `json:"invoice_number"`
	TankerNumber  string          `json:"tanker_number"`
	UnloadedAt    time.Time       `json:"unloaded_at"`
	RecordedBy    uuid.UUID       `json:"recorded_by"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TankUnloadListFilter represents filter options for the delivery list
type TankUnloadListFilter struct {
	FuelType     string     `form:"fuel_type" binding:"omitempty,fuel_type"`
	UnloadedFrom *time.Time `form:"unloaded_from" time_format:"2006-01-02T15:04:05Z07:00"`
	UnloadedTo   *time.Time `form:"unloaded_to" time_format:"2006-01-02T15:04:05Z07:00"`
	Search       string     `form:"search"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToTankUnloadResponse converts a domain TankUnload to a response DTO
func ToTankUnloadResponse(u *station.TankUnload) TankUnloadResponse {
	return TankUnloadResponse{
		ID:            u.ID,
		TenantID:      u.TenantID,
		FuelType:      string(u.FuelType),
		Liters:        u.Liters,
		Amount:        u.Amount,
		RatePerLiter:  u.RatePerLiter(),
		InvoiceNumber: u.InvoiceNumber,
		TankerNumber:  u.TankerNumber,
		UnloadedAt:    u.UnloadedAt,
		RecordedBy:    u.RecordedBy,
		Notes:         u.Notes,
		CreatedAt:     u.CreatedAt,
	}
}

// =============================================================================
// Daily reading DTOs
// =============================================================================

// RecordDailyReadingRequest records a day's dip stock figures for a fuel
type RecordDailyReadingRequest struct {
	FuelType     string          `json:"fuel_type" binding:"required,fuel_type"`
	ReadingDate  time.Time       `json:"reading_date" binding:"required" time_format:"2006-01-02"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	Receipts     decimal.Decimal `json:"receipts"`
	ClosingStock decimal.Decimal `json:"closing_stock"`
	MeterSales   decimal.Decimal `json:"meter_sales"`
	Notes        string          `json:"notes" binding:"max=1000"`
	RecordedBy   uuid.UUID       `json:"-"`
}

// DailyReadingResponse represents a daily stock record in API responses
type DailyReadingResponse struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	FuelType       string          `json:"fuel_type"`
	ReadingDate    time.Time       `json:"reading_date"`
	OpeningStock   decimal.Decimal `json:"opening_stock"`
	Receipts       decimal.Decimal `json:"receipts"`
	ClosingStock   decimal.Decimal `json:"closing_stock"`
	MeterSales     decimal.Decimal `json:"meter_sales"`
	BookStock      decimal.Decimal `json:"book_stock"`
	StockVariation decimal.Decimal `json:"stock_variation"`
	RecordedBy     uuid.UUID       `json:"recorded_by"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DailyReadingListFilter represents filter options for daily stock records
type DailyReadingListFilter struct {
	FuelType string     `form:"fuel_type" binding:"omitempty,fuel_type"`
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToDailyReadingResponse converts a domain DailyReading to a response DTO
func ToDailyReadingResponse(d *station.DailyReading) DailyReadingResponse {
	return DailyReadingResponse{
		ID:             d.ID,
		TenantID:       d.TenantID,
		FuelType:       string(d.FuelType),
		ReadingDate:    d.ReadingDate,
		OpeningStock:   d.OpeningStock,
		Receipts:       d.Receipts,
		ClosingStock:   d.ClosingStock,
		MeterSales:     d.MeterSales,
		BookStock:      d.BookStock(),
		StockVariation: d.StockVariation(),
		RecordedBy:     d.RecordedBy,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
	}
}
