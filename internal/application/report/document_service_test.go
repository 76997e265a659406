package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/fuelstation/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) *printing.TemplateEngine {
	t.Helper()
	engine, err := printing.NewTemplateEngine()
	require.NoError(t, err)
	return engine
}

func newTestTenant(t *testing.T) *identity.Tenant {
	t.Helper()
	tenant, err := identity.NewTenant("HPCL01", "Highway Fuel Point")
	require.NoError(t, err)
	require.NoError(t, tenant.Update("Highway Fuel Point", "NH 44, Salem", "33AAAAA0000A1Z5"))
	return tenant
}

func TestDocumentService_RenderStatement(t *testing.T) {
	ctx := context.Background()
	period := PeriodFilter{
		From: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("renders the statement through the PDF pipeline", func(t *testing.T) {
		f := newReportFixture()
		tenant := newTestTenant(t)
		tenantID := tenant.ID

		customer, err := partner.NewCustomer(tenantID, "Sharma Transports", decimal.RequireFromString("50000"))
		require.NoError(t, err)

		tenantRepo := new(MockTenantRepository)
		renderer := new(MockPDFRenderer)
		tenantRepo.On("FindByID", ctx, tenantID).Return(tenant, nil)
		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.ledgerRepo.On("FindBetween", ctx, tenantID, mock.Anything, mock.Anything).
			Return([]partner.CreditTransaction{}, nil)

		var renderedHTML string
		renderer.On("Render", ctx, mock.MatchedBy(func(req *printing.RenderRequest) bool {
			renderedHTML = req.HTML
			return strings.HasPrefix(req.Title, "INV-20250831-")
		})).Return(&printing.RenderResult{PDFData: []byte("%PDF-1.4")}, nil)

		docs := NewDocumentService(f.service, tenantRepo, newTestEngine(t), renderer, zap.NewNop())
		pdf, err := docs.RenderStatement(ctx, tenantID, customer.ID, period)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), pdf)
		assert.Contains(t, renderedHTML, "Highway Fuel Point")
		assert.Contains(t, renderedHTML, "Sharma Transports")
		assert.Contains(t, renderedHTML, "33AAAAA0000A1Z5")
	})

	t.Run("fails when rendering is disabled", func(t *testing.T) {
		f := newReportFixture()
		docs := NewDocumentService(f.service, new(MockTenantRepository), newTestEngine(t), nil, zap.NewNop())

		_, err := docs.RenderStatement(ctx, uuid.New(), uuid.New(), period)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "PRINTING_DISABLED", domainErr.Code)
	})

	t.Run("propagates renderer failures", func(t *testing.T) {
		f := newReportFixture()
		tenant := newTestTenant(t)
		customer, err := partner.NewCustomer(tenant.ID, "Sharma Transports", decimal.RequireFromString("50000"))
		require.NoError(t, err)

		tenantRepo := new(MockTenantRepository)
		renderer := new(MockPDFRenderer)
		tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
		f.customerRepo.On("FindByIDForTenant", ctx, tenant.ID, customer.ID).Return(customer, nil)
		f.ledgerRepo.On("FindBetween", ctx, tenant.ID, mock.Anything, mock.Anything).
			Return([]partner.CreditTransaction{}, nil)
		renderer.On("Render", ctx, mock.Anything).
			Return((*printing.RenderResult)(nil), errors.New("chrome crashed"))

		docs := NewDocumentService(f.service, tenantRepo, newTestEngine(t), renderer, zap.NewNop())
		_, err = docs.RenderStatement(ctx, tenant.ID, customer.ID, period)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chrome crashed")
	})
}

func TestDocumentService_RenderSalesReport(t *testing.T) {
	ctx := context.Background()
	period := PeriodFilter{
		From: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
	}

	f := newReportFixture()
	tenant := newTestTenant(t)
	tenantID := tenant.ID
	from, to := period.Bounds()

	tenantRepo := new(MockTenantRepository)
	renderer := new(MockPDFRenderer)
	tenantRepo.On("FindByID", ctx, tenantID).Return(tenant, nil)
	f.shiftRepo.On("FindCompletedBetween", ctx, tenantID, from, to).
		Return([]shift.Shift{closedTestShift(t, tenantID, uuid.New(), "9000", "3000", "3000", "0")}, nil)
	f.settingRepo.On("FindAllForTenant", ctx, tenantID).Return([]station.FuelSetting{}, nil)

	var renderedHTML string
	renderer.On("Render", ctx, mock.MatchedBy(func(req *printing.RenderRequest) bool {
		renderedHTML = req.HTML
		return req.Title == "Sales report 2025-08-11"
	})).Return(&printing.RenderResult{PDFData: []byte("%PDF-1.4")}, nil)

	docs := NewDocumentService(f.service, tenantRepo, newTestEngine(t), renderer, zap.NewNop())
	pdf, err := docs.RenderSalesReport(ctx, tenantID, period)

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, renderedHTML, "Highway Fuel Point")
	assert.Contains(t, renderedHTML, "petrol")
}

func TestInvoiceNumber(t *testing.T) {
	customerID := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	end := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "HFP-20250831-A1B2C3D4", invoiceNumber("HFP", customerID, end))
	assert.Equal(t, "INV-20250831-A1B2C3D4", invoiceNumber("", customerID, end))

	first := invoiceNumber("INV", customerID, end)
	second := invoiceNumber("INV", customerID, end)
	assert.Equal(t, first, second)
}
