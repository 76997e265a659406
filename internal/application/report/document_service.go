package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentService renders reports and statements as PDF documents
type DocumentService struct {
	reports    *ReportService
	tenantRepo identity.TenantRepository
	engine     *printing.TemplateEngine
	renderer   printing.PDFRenderer
	logger     *zap.Logger
}

// NewDocumentService creates a new document rendering service. The
// renderer may be nil when PDF output is disabled.
func NewDocumentService(
	reports *ReportService,
	tenantRepo identity.TenantRepository,
	engine *printing.TemplateEngine,
	renderer printing.PDFRenderer,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		reports:    reports,
		tenantRepo: tenantRepo,
		engine:     engine,
		renderer:   renderer,
		logger:     logger,
	}
}

// invoiceData is the payload for the customer invoice template
type invoiceData struct {
	*CustomerStatement
	StationName   string
	StationGST    string
	Currency      string
	InvoiceNumber string
	PeriodFrom    time.Time
	PeriodTo      time.Time
	FooterNote    string
}

// salesReportData is the payload for the daily sales template
type salesReportData struct {
	*SalesReport
	StationName string
	Currency    string
}

// RenderStatement renders a customer's credit statement for a period
// as a PDF invoice
func (s *DocumentService) RenderStatement(ctx context.Context, tenantID, customerID uuid.UUID, period PeriodFilter) ([]byte, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "PDF rendering is not configured")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	statement, err := s.reports.Statement(ctx, tenantID, customerID, period)
	if err != nil {
		return nil, err
	}

	data := invoiceData{
		CustomerStatement: statement,
		StationName:       tenant.Name,
		StationGST:        tenant.GSTNumber,
		Currency:          tenant.Config.Currency,
		InvoiceNumber:     invoiceNumber(tenant.Config.InvoicePrefix, customerID, period.To),
		PeriodFrom:        statement.From,
		PeriodTo:          statement.To,
		FooterNote:        tenant.Config.ReceiptFooterNote,
	}

	html, err := s.engine.Render(printing.TemplateCustomerInvoice, data)
	if err != nil {
		return nil, err
	}
	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: data.InvoiceNumber,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Statement rendered",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("invoice_number", data.InvoiceNumber),
		zap.Int("bytes", len(result.PDFData)))

	return result.PDFData, nil
}

// RenderSalesReport renders the consolidated sales report for a
// period as a PDF
func (s *DocumentService) RenderSalesReport(ctx context.Context, tenantID uuid.UUID, period PeriodFilter) ([]byte, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "PDF rendering is not configured")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	salesReport, err := s.reports.SalesReport(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}

	data := salesReportData{
		SalesReport: salesReport,
		StationName: tenant.Name,
		Currency:    tenant.Config.Currency,
	}

	html, err := s.engine.Render(printing.TemplateDailySales, data)
	if err != nil {
		return nil, err
	}
	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: fmt.Sprintf("Sales report %s", period.To.Format("2006-01-02")),
	})
	if err != nil {
		return nil, err
	}

	return result.PDFData, nil
}

// invoiceNumber derives a stable document number from the station's
// configured prefix, the customer and the statement period. The same
// statement always gets the same number.
func invoiceNumber(prefix string, customerID uuid.UUID, periodEnd time.Time) string {
	if prefix == "" {
		prefix = "INV"
	}
	short := strings.ToUpper(strings.ReplaceAll(customerID.String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, periodEnd.Format("20060102"), short)
}
