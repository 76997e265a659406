package report

import (
	"context"
	"sort"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService aggregates shift, stock and credit data into reports
type ReportService struct {
	shiftRepo        shift.Repository
	fuelSettingRepo  station.FuelSettingRepository
	tankUnloadRepo   station.TankUnloadRepository
	dailyReadingRepo station.DailyReadingRepository
	customerRepo     partner.CustomerRepository
	ledgerRepo       partner.CreditTransactionRepository
	userRepo         identity.UserRepository
	logger           *zap.Logger
}

// NewReportService creates a new reporting service
func NewReportService(
	shiftRepo shift.Repository,
	fuelSettingRepo station.FuelSettingRepository,
	tankUnloadRepo station.TankUnloadRepository,
	dailyReadingRepo station.DailyReadingRepository,
	customerRepo partner.CustomerRepository,
	ledgerRepo partner.CreditTransactionRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		shiftRepo:        shiftRepo,
		fuelSettingRepo:  fuelSettingRepo,
		tankUnloadRepo:   tankUnloadRepo,
		dailyReadingRepo: dailyReadingRepo,
		customerRepo:     customerRepo,
		ledgerRepo:       ledgerRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// SalesReport builds the consolidated sales picture for a period from
// the shifts that closed within it. Per-fuel figures come from the
// frozen prices in each shift's readings, so the report matches what
// was actually charged even across price changes.
func (s *ReportService) SalesReport(ctx context.Context, tenantID uuid.UUID, period PeriodFilter) (*SalesReport, error) {
	from, to := period.Bounds()
	shifts, err := s.shiftRepo.FindCompletedBetween(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		From:           period.From,
		To:             period.To,
		ShiftCount:     len(shifts),
		Expenses:       decimal.Zero,
		CashDifference: decimal.Zero,
		Payments: PaymentBreakdown{
			Cash:   decimal.Zero,
			Card:   decimal.Zero,
			UPI:    decimal.Zero,
			Indent: decimal.Zero,
			Total:  decimal.Zero,
		},
	}

	type fuelTotals struct {
		liters decimal.Decimal
		amount decimal.Decimal
	}
	perFuel := make(map[station.FuelType]*fuelTotals)

	for i := range shifts {
		sh := &shifts[i]
		report.Payments.Cash = report.Payments.Cash.Add(sh.CashSales)
		report.Payments.Card = report.Payments.Card.Add(sh.CardSales)
		report.Payments.UPI = report.Payments.UPI.Add(sh.UPISales)
		report.Payments.Indent = report.Payments.Indent.Add(sh.IndentSales)
		report.Expenses = report.Expenses.Add(sh.ExpenseAmount)
		report.CashDifference = report.CashDifference.Add(sh.CashDifference)

		for j := range sh.Readings {
			r := &sh.Readings[j]
			totals, ok := perFuel[r.FuelType]
			if !ok {
				totals = &fuelTotals{liters: decimal.Zero, amount: decimal.Zero}
				perFuel[r.FuelType] = totals
			}
			totals.liters = totals.liters.Add(r.Liters())
			totals.amount = totals.amount.Add(r.SaleAmount())
		}
	}
	report.Payments.Total = report.Payments.Cash.
		Add(report.Payments.Card).
		Add(report.Payments.UPI).
		Add(report.Payments.Indent)

	for fuelType, totals := range perFuel {
		report.FuelSales = append(report.FuelSales, FuelSalesLine{
			FuelType: string(fuelType),
			Liters:   totals.liters,
			Amount:   totals.amount,
		})
	}
	sort.Slice(report.FuelSales, func(i, j int) bool {
		return report.FuelSales[i].FuelType < report.FuelSales[j].FuelType
	})

	movement, err := s.stockMovement(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	report.StockMovement = movement

	return report, nil
}

// stockMovement aggregates deliveries and dip records per fuel type
func (s *ReportService) stockMovement(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]StockMovementLine, error) {
	settings, err := s.fuelSettingRepo.FindAllForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	lines := make([]StockMovementLine, 0, len(settings))
	for i := range settings {
		fuelType := settings[i].FuelType

		unloads, err := s.tankUnloadRepo.FindBetween(ctx, tenantID, fuelType, from, to)
		if err != nil {
			return nil, err
		}
		receipts := decimal.Zero
		for j := range unloads {
			receipts = receipts.Add(unloads[j].Liters)
		}

		readings, err := s.dailyReadingRepo.FindBetween(ctx, tenantID, fuelType, from, to)
		if err != nil {
			return nil, err
		}
		meterSales := decimal.Zero
		variation := decimal.Zero
		for j := range readings {
			meterSales = meterSales.Add(readings[j].MeterSales)
			variation = variation.Add(readings[j].StockVariation())
		}

		lines = append(lines, StockMovementLine{
			FuelType:   string(fuelType),
			Receipts:   receipts,
			MeterSales: meterSales,
			Variation:  variation,
		})
	}
	return lines, nil
}

// ShiftSummary lists the shifts that closed in a period, optionally
// for a single staff member
func (s *ReportService) ShiftSummary(ctx context.Context, tenantID uuid.UUID, staffID *uuid.UUID, period PeriodFilter) (*ShiftSummaryReport, error) {
	from, to := period.Bounds()
	shifts, err := s.shiftRepo.FindCompletedBetween(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	report := &ShiftSummaryReport{
		From:             period.From,
		To:               period.To,
		TotalLiters:      decimal.Zero,
		TotalSales:       decimal.Zero,
		TotalIndentSales: decimal.Zero,
	}

	names := make(map[uuid.UUID]string)
	for i := range shifts {
		sh := &shifts[i]
		if staffID != nil && sh.StaffID != *staffID {
			continue
		}

		name, ok := names[sh.StaffID]
		if !ok {
			if user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, sh.StaffID); err == nil {
				name = user.DisplayName
				if name == "" {
					name = user.Username
				}
			}
			names[sh.StaffID] = name
		}

		report.Rows = append(report.Rows, ShiftSummaryRow{
			ShiftID:        sh.ID,
			StaffID:        sh.StaffID,
			StaffName:      name,
			ShiftType:      string(sh.ShiftType),
			StartTime:      sh.StartTime,
			EndTime:        sh.EndTime,
			TotalLiters:    sh.TotalLiters,
			TotalSales:     sh.TotalSales,
			IndentSales:    sh.IndentSales,
			Expenses:       sh.ExpenseAmount,
			CashDifference: sh.CashDifference,
		})
		report.TotalLiters = report.TotalLiters.Add(sh.TotalLiters)
		report.TotalSales = report.TotalSales.Add(sh.TotalSales)
		report.TotalIndentSales = report.TotalIndentSales.Add(sh.IndentSales)
	}

	return report, nil
}

// Statement builds a customer's credit statement for a period. The
// opening balance is reconstructed from the first entry's running
// balance so the statement stands on its own.
func (s *ReportService) Statement(ctx context.Context, tenantID, customerID uuid.UUID, period PeriodFilter) (*CustomerStatement, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	from, to := period.Bounds()
	all, err := s.ledgerRepo.FindBetween(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	entries := make([]partner.CreditTransaction, 0, len(all))
	for i := range all {
		if all[i].CustomerID == customerID {
			entries = append(entries, all[i])
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})

	statement := &CustomerStatement{
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerGST:    customer.GSTNumber,
		From:           period.From,
		To:             period.To,
		OpeningBalance: customer.Balance,
		ClosingBalance: customer.Balance,
		TotalDebits:    decimal.Zero,
		TotalCredits:   decimal.Zero,
	}
	if len(entries) == 0 {
		return statement, nil
	}

	first := entries[0]
	if first.Type == partner.TransactionTypeDebit {
		statement.OpeningBalance = first.BalanceAfter.Sub(first.Amount)
	} else {
		statement.OpeningBalance = first.BalanceAfter.Add(first.Amount)
	}

	for i := range entries {
		e := &entries[i]
		isDebit := e.Type == partner.TransactionTypeDebit
		if isDebit {
			statement.TotalDebits = statement.TotalDebits.Add(e.Amount)
		} else {
			statement.TotalCredits = statement.TotalCredits.Add(e.Amount)
		}
		statement.Entries = append(statement.Entries, StatementLine{
			RecordedAt:   e.RecordedAt,
			Description:  describeEntry(e),
			IsDebit:      isDebit,
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
		})
	}
	statement.ClosingBalance = entries[len(entries)-1].BalanceAfter

	return statement, nil
}

func describeEntry(e *partner.CreditTransaction) string {
	var desc string
	switch e.Source {
	case partner.TransactionSourceIndent:
		desc = "Fuel on credit"
	case partner.TransactionSourcePayment:
		desc = "Payment received"
	case partner.TransactionSourceAdjustment:
		desc = "Balance adjustment"
	default:
		desc = string(e.Source)
	}
	if e.Notes != "" {
		desc += " - " + e.Notes
	}
	return desc
}
