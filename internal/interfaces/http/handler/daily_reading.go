package handler

import (
	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/gin-gonic/gin"
)

// DailyReadingHandler handles daily dip stock record endpoints
type DailyReadingHandler struct {
	BaseHandler
	readingService *stationapp.DailyReadingService
}

// NewDailyReadingHandler creates a new DailyReadingHandler
func NewDailyReadingHandler(readingService *stationapp.DailyReadingService) *DailyReadingHandler {
	return &DailyReadingHandler{readingService: readingService}
}

// Record godoc
// @Summary      Record a daily reading
// @Description  Capture a day's dip stock figures for a fuel and sync the tank level
// @Tags         daily-readings
// @Accept       json
// @Produce      json
// @Param        request body stationapp.RecordDailyReadingRequest true "Stock figures"
// @Success      201 {object} dto.Response{data=stationapp.DailyReadingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /daily-readings [post]
func (h *DailyReadingHandler) Record(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req stationapp.RecordDailyReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.RecordedBy = userID

	reading, err := h.readingService.RecordReading(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, reading)
}

// Get godoc
// @Summary      Get a daily reading
// @Tags         daily-readings
// @Produce      json
// @Param        id path string true "Reading ID" format(uuid)
// @Success      200 {object} dto.Response{data=stationapp.DailyReadingResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /daily-readings/{id} [get]
func (h *DailyReadingHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid reading ID")
		return
	}

	reading, err := h.readingService.GetReading(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reading)
}

// List godoc
// @Summary      List daily readings
// @Tags         daily-readings
// @Produce      json
// @Param        fuel_type query string false "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Param        date_from query string false "Start date (YYYY-MM-DD)"
// @Param        date_to query string false "End date (YYYY-MM-DD)"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]stationapp.DailyReadingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /daily-readings [get]
func (h *DailyReadingHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter stationapp.DailyReadingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	readings, err := h.readingService.ListReadings(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, readings)
}

// Delete godoc
// @Summary      Delete a daily reading
// @Tags         daily-readings
// @Produce      json
// @Param        id path string true "Reading ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /daily-readings/{id} [delete]
func (h *DailyReadingHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid reading ID")
		return
	}

	if err := h.readingService.DeleteReading(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
