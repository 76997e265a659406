package handler

import (
	"fmt"
	"net/http"

	reportapp "github.com/fuelstation/backend/internal/application/report"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles reporting and document endpoints
type ReportHandler struct {
	BaseHandler
	reportService   *reportapp.ReportService
	documentService *reportapp.DocumentService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, documentService *reportapp.DocumentService) *ReportHandler {
	return &ReportHandler{reportService: reportService, documentService: documentService}
}

// SalesReport godoc
// @Summary      Sales report
// @Description  Aggregate fuel sales and stock movement for a period
// @Tags         reports
// @Produce      json
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=reportapp.SalesReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/sales [get]
func (h *ReportHandler) SalesReport(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var period reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BindingError(c, err)
		return
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// ShiftSummary godoc
// @Summary      Shift summary report
// @Description  Per-shift totals for a period, optionally restricted to one attendant
// @Tags         reports
// @Produce      json
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Param        staff_id query string false "Restrict to one attendant" format(uuid)
// @Success      200 {object} dto.Response{data=reportapp.ShiftSummaryReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/shifts [get]
func (h *ReportHandler) ShiftSummary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var period reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BindingError(c, err)
		return
	}

	var staffID *uuid.UUID
	if raw := c.Query("staff_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid staff ID")
			return
		}
		staffID = &id
	}

	report, err := h.reportService.ShiftSummary(c.Request.Context(), tenantID, staffID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// Statement godoc
// @Summary      Customer statement
// @Description  A customer's credit statement for a period
// @Tags         reports
// @Produce      json
// @Param        customer_id path string true "Customer ID" format(uuid)
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=reportapp.CustomerStatement}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/customers/{customer_id}/statement [get]
func (h *ReportHandler) Statement(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, err := parseIDParam(c, "customer_id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var period reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BindingError(c, err)
		return
	}

	statement, err := h.reportService.Statement(c.Request.Context(), tenantID, customerID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, statement)
}

// StatementPDF godoc
// @Summary      Customer statement PDF
// @Description  Render a customer statement invoice as a PDF download
// @Tags         reports
// @Produce      application/pdf
// @Param        customer_id path string true "Customer ID" format(uuid)
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/customers/{customer_id}/statement/pdf [get]
func (h *ReportHandler) StatementPDF(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, err := parseIDParam(c, "customer_id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var period reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BindingError(c, err)
		return
	}

	pdf, err := h.documentService.RenderStatement(c.Request.Context(), tenantID, customerID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("statement-%s.pdf", period.To.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SalesReportPDF godoc
// @Summary      Sales report PDF
// @Description  Render the sales report as a PDF download
// @Tags         reports
// @Produce      application/pdf
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/sales/pdf [get]
func (h *ReportHandler) SalesReportPDF(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var period reportapp.PeriodFilter
	if err := c.ShouldBindQuery(&period); err != nil {
		h.BindingError(c, err)
		return
	}

	pdf, err := h.documentService.RenderSalesReport(c.Request.Context(), tenantID, period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.pdf", period.To.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
