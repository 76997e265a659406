package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodFilter bounds a report to a date range
type PeriodFilter struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// Bounds returns the half-open query range for the period. A
// date-only To is widened to include the whole of that day.
func (p PeriodFilter) Bounds() (time.Time, time.Time) {
	to := p.To
	if to.Hour() == 0 && to.Minute() == 0 && to.Second() == 0 {
		to = to.AddDate(0, 0, 1)
	}
	return p.From, to
}

// FuelSalesLine aggregates meter sales for one fuel type
type FuelSalesLine struct {
	FuelType string          `json:"fuel_type"`
	Liters   decimal.Decimal `json:"liters"`
	Amount   decimal.Decimal `json:"amount"`
}

// PaymentBreakdown splits collections by payment mode
type PaymentBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Card   decimal.Decimal `json:"card"`
	UPI    decimal.Decimal `json:"upi"`
	Indent decimal.Decimal `json:"indent"`
	Total  decimal.Decimal `json:"total"`
}

// StockMovementLine aggregates tank movement for one fuel type
type StockMovementLine struct {
	FuelType   string          `json:"fuel_type"`
	Receipts   decimal.Decimal `json:"receipts"`
	MeterSales decimal.Decimal `json:"meter_sales"`
	Variation  decimal.Decimal `json:"variation"`
}

// SalesReport is the consolidated sales picture for a period
type SalesReport struct {
	From           time.Time           `json:"from"`
	To             time.Time           `json:"to"`
	ShiftCount     int                 `json:"shift_count"`
	FuelSales      []FuelSalesLine     `json:"fuel_sales"`
	Payments       PaymentBreakdown    `json:"payments"`
	Expenses       decimal.Decimal     `json:"expenses"`
	CashDifference decimal.Decimal     `json:"cash_difference"`
	StockMovement  []StockMovementLine `json:"stock_movement"`
}

// ShiftSummaryRow is one closed shift in a summary report
type ShiftSummaryRow struct {
	ShiftID        uuid.UUID       `json:"shift_id"`
	StaffID        uuid.UUID       `json:"staff_id"`
	StaffName      string          `json:"staff_name"`
	ShiftType      string          `json:"shift_type"`
	StartTime      time.Time       `json:"start_time"`
	EndTime        *time.Time      `json:"end_time"`
	TotalLiters    decimal.Decimal `json:"total_liters"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	IndentSales    decimal.Decimal `json:"indent_sales"`
	Expenses       decimal.Decimal `json:"expenses"`
	CashDifference decimal.Decimal `json:"cash_difference"`
}

// ShiftSummaryReport lists closed shifts with period totals
type ShiftSummaryReport struct {
	From             time.Time         `json:"from"`
	To               time.Time         `json:"to"`
	Rows             []ShiftSummaryRow `json:"rows"`
	TotalLiters      decimal.Decimal   `json:"total_liters"`
	TotalSales       decimal.Decimal   `json:"total_sales"`
	TotalIndentSales decimal.Decimal   `json:"total_indent_sales"`
}

// StatementLine is one ledger entry on a customer statement
type StatementLine struct {
	RecordedAt   time.Time       `json:"recorded_at"`
	Description  string          `json:"description"`
	IsDebit      bool            `json:"is_debit"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// CustomerStatement is a customer's credit ledger over a period with
// opening and closing balances
type CustomerStatement struct {
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	CustomerGST    string          `json:"customer_gst,omitempty"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	TotalDebits    decimal.Decimal `json:"total_debits"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
	Entries        []StatementLine `json:"entries"`
}
