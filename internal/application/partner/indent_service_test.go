package partner

import (
	"context"
	"testing"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func (f *partnerFixture) indentService() *IndentService {
	return NewIndentService(f.scope, f.indentRepo, zap.NewNop())
}

func newTestBooklet(t *testing.T, tenantID, customerID uuid.UUID, start, end int) *partner.IndentBooklet {
	t.Helper()
	booklet, err := partner.NewIndentBooklet(tenantID, customerID, start, end)
	require.NoError(t, err)
	return booklet
}

func newDieselSetting(t *testing.T, tenantID uuid.UUID, price string) *station.FuelSetting {
	t.Helper()
	setting, err := station.NewFuelSetting(tenantID, station.FuelTypeDiesel,
		decimal.RequireFromString(price), decimal.RequireFromString("20000"))
	require.NoError(t, err)
	return setting
}

func TestIndentService_RecordIndent(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	staffID := uuid.New()

	t.Run("consumes the next slip and debits the customer", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)
		f.bookletRepo.On("Save", ctx, booklet).Return(nil)
		f.customerRepo.On("Save", ctx, customer).Return(nil)
		f.indentRepo.On("Save", ctx, mock.AnythingOfType("*partner.Indent")).Return(nil)
		f.ledgerRepo.On("Save", ctx, mock.MatchedBy(func(e *partner.CreditTransaction) bool {
			return e.Type == partner.TransactionTypeDebit &&
				e.Source == partner.TransactionSourceIndent &&
				e.ReferenceID != nil
		})).Return(nil)

		resp, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("100"),
			RecordedBy: staffID,
		})

		require.NoError(t, err)
		assert.Equal(t, 101, resp.IndentNumber)
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("8990")))
		assert.True(t, resp.FuelPrice.Equal(decimal.RequireFromString("89.90")))
		assert.Equal(t, 102, booklet.NextNumber)
		assert.True(t, customer.Balance.Equal(decimal.RequireFromString("8990")))
	})

	t.Run("rejects a draw past the credit limit", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "5000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)

		_, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("100"),
			RecordedBy: staffID,
		})

		require.ErrorIs(t, err, shared.ErrInsufficientBalance)
		f.indentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.ledgerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("accepts a manual slip number and moves the counter past it", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)
		manual := 110

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindByIDForTenant", ctx, tenantID, booklet.ID).Return(booklet, nil)
		f.indentRepo.On("ExistsByNumber", ctx, tenantID, booklet.ID, manual).Return(false, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)
		f.bookletRepo.On("Save", ctx, booklet).Return(nil)
		f.customerRepo.On("Save", ctx, customer).Return(nil)
		f.indentRepo.On("Save", ctx, mock.AnythingOfType("*partner.Indent")).Return(nil)
		f.ledgerRepo.On("Save", ctx, mock.AnythingOfType("*partner.CreditTransaction")).Return(nil)

		resp, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID:   customer.ID,
			BookletID:    &booklet.ID,
			IndentNumber: &manual,
			FuelType:     "diesel",
			Liters:       decimal.RequireFromString("50"),
			RecordedBy:   staffID,
		})

		require.NoError(t, err)
		assert.Equal(t, 110, resp.IndentNumber)
		assert.Equal(t, 111, booklet.NextNumber)
	})

	t.Run("rejects a slip number recorded before", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)
		manual := 105

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.indentRepo.On("ExistsByNumber", ctx, tenantID, booklet.ID, manual).Return(true, nil)

		_, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID:   customer.ID,
			IndentNumber: &manual,
			FuelType:     "diesel",
			Liters:       decimal.RequireFromString("50"),
			RecordedBy:   staffID,
		})

		assertDomainCode(t, err, "NUMBER_USED")
	})

	t.Run("rejects a slip number outside the booklet range", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)
		manual := 200

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.indentRepo.On("ExistsByNumber", ctx, tenantID, booklet.ID, manual).Return(false, nil)

		_, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID:   customer.ID,
			IndentNumber: &manual,
			FuelType:     "diesel",
			Liters:       decimal.RequireFromString("50"),
			RecordedBy:   staffID,
		})

		assertDomainCode(t, err, "NUMBER_OUT_OF_RANGE")
	})

	t.Run("requires an active booklet", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(nil, shared.ErrNotFound)

		_, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("50"),
			RecordedBy: staffID,
		})

		assertDomainCode(t, err, "NO_ACTIVE_BOOKLET")
	})

	t.Run("marks the booklet exhausted on its last slip", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 7, 7)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)
		f.bookletRepo.On("Save", ctx, booklet).Return(nil)
		f.customerRepo.On("Save", ctx, customer).Return(nil)
		f.indentRepo.On("Save", ctx, mock.AnythingOfType("*partner.Indent")).Return(nil)
		f.ledgerRepo.On("Save", ctx, mock.AnythingOfType("*partner.CreditTransaction")).Return(nil)

		resp, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("10"),
			RecordedBy: staffID,
		})

		require.NoError(t, err)
		assert.Equal(t, 7, resp.IndentNumber)
		assert.Equal(t, partner.BookletStatusExhausted, booklet.Status)
	})

	t.Run("rejects a vehicle belonging to another customer", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)
		vehicle, err := partner.NewVehicle(tenantID, uuid.New(), "KA01AB1234", partner.VehicleTypeTruck)
		require.NoError(t, err)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)
		f.vehicleRepo.On("FindByIDForTenant", ctx, tenantID, vehicle.ID).Return(vehicle, nil)

		_, err = f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			VehicleID:  &vehicle.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("50"),
			RecordedBy: staffID,
		})

		assertDomainCode(t, err, "VEHICLE_MISMATCH")
	})

	t.Run("rejects an inactive customer", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		require.NoError(t, customer.Deactivate())
		booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(booklet, nil)
		f.settingRepo.On("FindByFuelType", ctx, tenantID, station.FuelTypeDiesel).
			Return(newDieselSetting(t, tenantID, "89.90"), nil)

		_, err := f.indentService().RecordIndent(ctx, tenantID, RecordIndentRequest{
			CustomerID: customer.ID,
			FuelType:   "diesel",
			Liters:     decimal.RequireFromString("50"),
			RecordedBy: staffID,
		})

		assertDomainCode(t, err, "CUSTOMER_INACTIVE")
	})
}
