package report

import (
	"context"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reportFixture struct {
	shiftRepo    *MockShiftRepository
	settingRepo  *MockFuelSettingRepository
	unloadRepo   *MockTankUnloadRepository
	readingRepo  *MockDailyReadingRepository
	customerRepo *MockCustomerRepository
	ledgerRepo   *MockLedgerRepository
	userRepo     *MockUserRepository
	service      *ReportService
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		shiftRepo:    new(MockShiftRepository),
		settingRepo:  new(MockFuelSettingRepository),
		unloadRepo:   new(MockTankUnloadRepository),
		readingRepo:  new(MockDailyReadingRepository),
		customerRepo: new(MockCustomerRepository),
		ledgerRepo:   new(MockLedgerRepository),
		userRepo:     new(MockUserRepository),
	}
	f.service = NewReportService(
		f.shiftRepo, f.settingRepo, f.unloadRepo, f.readingRepo,
		f.customerRepo, f.ledgerRepo, f.userRepo, zap.NewNop())
	return f
}

// closedTestShift builds a shift with one petrol reading of 150 liters
// at 100.00 per liter, closed with the given payment split.
func closedTestShift(t *testing.T, tenantID, staffID uuid.UUID, cash, card, upi, indents string) shift.Shift {
	t.Helper()
	start := time.Date(2025, 8, 10, 6, 0, 0, 0, time.UTC)
	sh, err := shift.NewShift(tenantID, staffID, shift.ShiftTypeMorning, start)
	require.NoError(t, err)

	reading, err := shift.NewReading(uuid.New(), station.FuelTypePetrol,
		decimal.RequireFromString("1000"), decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	require.NoError(t, sh.AddReading(reading))

	cashSales := decimal.RequireFromString(cash)
	require.NoError(t, sh.Close(shift.CloseInput{
		Closings: []shift.ClosingEntry{
			{ReadingID: sh.Readings[0].ID, ClosingReading: decimal.RequireFromString("1150")},
		},
		CashSales:     cashSales,
		CardSales:     decimal.RequireFromString(card),
		UPISales:      decimal.RequireFromString(upi),
		IndentSales:   decimal.RequireFromString(indents),
		CashRemaining: cashSales,
		EndTime:       start.Add(8 * time.Hour),
	}))
	return *sh
}

func TestReportService_SalesReport(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	period := PeriodFilter{
		From: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
	}
	from, to := period.Bounds()

	f := newReportFixture()
	shifts := []shift.Shift{
		closedTestShift(t, tenantID, uuid.New(), "9000", "3000", "3000", "2000"),
		closedTestShift(t, tenantID, uuid.New(), "6000", "4000", "5000", "0"),
	}
	f.shiftRepo.On("FindCompletedBetween", ctx, tenantID, from, to).Return(shifts, nil)

	setting, err := station.NewFuelSetting(tenantID, station.FuelTypePetrol,
		decimal.RequireFromString("100.00"), decimal.RequireFromString("20000"))
	require.NoError(t, err)
	f.settingRepo.On("FindAllForTenant", ctx, tenantID).Return([]station.FuelSetting{*setting}, nil)

	unload, err := station.NewTankUnload(tenantID, uuid.New(), station.FuelTypePetrol,
		decimal.RequireFromString("9000"), decimal.RequireFromString("810000"), time.Date(2025, 8, 10, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	f.unloadRepo.On("FindBetween", ctx, tenantID, station.FuelTypePetrol, from, to).
		Return([]station.TankUnload{*unload}, nil)

	dip, err := station.NewDailyReading(tenantID, uuid.New(), station.FuelTypePetrol,
		time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("10000"), decimal.RequireFromString("9000"),
		decimal.RequireFromString("18650"), decimal.RequireFromString("300"))
	require.NoError(t, err)
	f.readingRepo.On("FindBetween", ctx, tenantID, station.FuelTypePetrol, from, to).
		Return([]station.DailyReading{*dip}, nil)

	report, err := f.service.SalesReport(ctx, tenantID, period)

	require.NoError(t, err)
	assert.Equal(t, 2, report.ShiftCount)

	require.Len(t, report.FuelSales, 1)
	assert.Equal(t, "petrol", report.FuelSales[0].FuelType)
	assert.True(t, report.FuelSales[0].Liters.Equal(decimal.RequireFromString("300")))
	assert.True(t, report.FuelSales[0].Amount.Equal(decimal.RequireFromString("30000")))

	assert.True(t, report.Payments.Cash.Equal(decimal.RequireFromString("15000")))
	assert.True(t, report.Payments.Card.Equal(decimal.RequireFromString("7000")))
	assert.True(t, report.Payments.UPI.Equal(decimal.RequireFromString("8000")))
	assert.True(t, report.Payments.Indent.Equal(decimal.RequireFromString("2000")))
	assert.True(t, report.Payments.Total.Equal(decimal.RequireFromString("32000")))

	require.Len(t, report.StockMovement, 1)
	assert.True(t, report.StockMovement[0].Receipts.Equal(decimal.RequireFromString("9000")))
	assert.True(t, report.StockMovement[0].MeterSales.Equal(decimal.RequireFromString("300")))
	// opening 10000 + receipts 9000 - closing 18650 - meter 300 = 50 lost
	assert.True(t, report.StockMovement[0].Variation.Equal(decimal.RequireFromString("50")))
}

func TestReportService_ShiftSummary(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	staffA := uuid.New()
	staffB := uuid.New()
	period := PeriodFilter{
		From: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
	}
	from, to := period.Bounds()

	f := newReportFixture()
	shifts := []shift.Shift{
		closedTestShift(t, tenantID, staffA, "9000", "3000", "3000", "0"),
		closedTestShift(t, tenantID, staffB, "6000", "4000", "5000", "0"),
	}
	f.shiftRepo.On("FindCompletedBetween", ctx, tenantID, from, to).Return(shifts, nil)

	user, err := identity.NewUser(tenantID, "aravind", "Password123", identity.UserRoleAttendant)
	require.NoError(t, err)
	require.NoError(t, user.SetDisplayName("Aravind K"))
	f.userRepo.On("FindByIDForTenant", ctx, tenantID, staffA).Return(user, nil)

	report, err := f.service.ShiftSummary(ctx, tenantID, &staffA, period)

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Aravind K", report.Rows[0].StaffName)
	assert.True(t, report.TotalSales.Equal(decimal.RequireFromString("15000")))
	assert.True(t, report.TotalLiters.Equal(decimal.RequireFromString("150")))
}

func TestReportService_Statement(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	staffID := uuid.New()
	period := PeriodFilter{
		From: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	from, to := period.Bounds()

	f := newReportFixture()
	customer, err := partner.NewCustomer(tenantID, "Sharma Transports", decimal.RequireFromString("50000"))
	require.NoError(t, err)
	require.NoError(t, customer.Debit(decimal.RequireFromString("10000")))
	require.NoError(t, customer.Debit(decimal.RequireFromString("8000")))
	require.NoError(t, customer.Credit(decimal.RequireFromString("5000")))

	// Ledger history matching the balance movements above, with an
	// opening balance of 10000 at the start of the period.
	debit, err := partner.NewCreditTransaction(tenantID, customer.ID, staffID,
		partner.TransactionTypeDebit, partner.TransactionSourceIndent,
		decimal.RequireFromString("8000"), decimal.RequireFromString("18000"))
	require.NoError(t, err)
	credit, err := partner.NewCreditTransaction(tenantID, customer.ID, staffID,
		partner.TransactionTypeCredit, partner.TransactionSourcePayment,
		decimal.RequireFromString("5000"), decimal.RequireFromString("13000"))
	require.NoError(t, err)
	credit.RecordedAt = debit.RecordedAt.Add(time.Hour)

	otherCustomer, err := partner.NewCreditTransaction(tenantID, uuid.New(), staffID,
		partner.TransactionTypeDebit, partner.TransactionSourceIndent,
		decimal.RequireFromString("999"), decimal.RequireFromString("999"))
	require.NoError(t, err)

	f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
	f.ledgerRepo.On("FindBetween", ctx, tenantID, from, to).
		Return([]partner.CreditTransaction{*credit, *debit, *otherCustomer}, nil)

	statement, err := f.service.Statement(ctx, tenantID, customer.ID, period)

	require.NoError(t, err)
	assert.Equal(t, "Sharma Transports", statement.CustomerName)
	require.Len(t, statement.Entries, 2)
	assert.True(t, statement.OpeningBalance.Equal(decimal.RequireFromString("10000")))
	assert.True(t, statement.ClosingBalance.Equal(decimal.RequireFromString("13000")))
	assert.True(t, statement.TotalDebits.Equal(decimal.RequireFromString("8000")))
	assert.True(t, statement.TotalCredits.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, "Fuel on credit", statement.Entries[0].Description)
	assert.True(t, statement.Entries[0].IsDebit)
}
