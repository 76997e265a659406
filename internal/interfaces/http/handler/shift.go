package handler

import (
	shiftapp "github.com/fuelstation/backend/internal/application/shift"
	"github.com/gin-gonic/gin"
)

// ShiftHandler handles shift endpoints
type ShiftHandler struct {
	BaseHandler
	shiftService *shiftapp.ShiftService
}

// NewShiftHandler creates a new ShiftHandler
func NewShiftHandler(shiftService *shiftapp.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Start godoc
// @Summary      Start a shift
// @Description  Open a shift with opening pump readings and consumable allocations
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        request body shiftapp.StartShiftRequest true "Opening readings and consumables"
// @Success      201 {object} dto.Response{data=shiftapp.ShiftResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts [post]
func (h *ShiftHandler) Start(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req shiftapp.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shift)
}

// End godoc
// @Summary      End a shift
// @Description  Close a shift, reconcile its readings, payments and consumables, and optionally open the incoming staff member's shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        id path string true "Shift ID" format(uuid)
// @Param        request body shiftapp.EndShiftRequest true "Closing readings, payments and optional handover"
// @Success      200 {object} dto.Response{data=shiftapp.EndShiftResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts/{id}/end [post]
func (h *ShiftHandler) End(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shift ID")
		return
	}

	var req shiftapp.EndShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	shift, err := h.shiftService.EndShift(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shift)
}

// Get godoc
// @Summary      Get a shift
// @Description  Return a single shift with its readings and consumables
// @Tags         shifts
// @Produce      json
// @Param        id path string true "Shift ID" format(uuid)
// @Success      200 {object} dto.Response{data=shiftapp.ShiftResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts/{id} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shift ID")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shift)
}

// Active godoc
// @Summary      Active shift
// @Description  Return the authenticated attendant's open shift
// @Tags         shifts
// @Produce      json
// @Success      200 {object} dto.Response{data=shiftapp.ShiftResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts/active [get]
func (h *ShiftHandler) Active(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	staffID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), tenantID, staffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shift)
}

// List godoc
// @Summary      List shifts
// @Description  List shifts matching the filter, newest first
// @Tags         shifts
// @Produce      json
// @Param        status query string false "Shift status" Enums(active, completed)
// @Param        staff_id query string false "Staff ID" format(uuid)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]shiftapp.ShiftResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter shiftapp.ShiftListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	shifts, total, err := h.shiftService.ListShifts(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, shifts, total, page, pageSize)
}

// Handover godoc
// @Summary      Handover preview
// @Description  Tell the attendant which shift slot follows their open shift
// @Tags         shifts
// @Produce      json
// @Param        pattern query string false "Shift pattern" Enums(triple, double)
// @Success      200 {object} dto.Response{data=shiftapp.HandoverResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts/handover [get]
func (h *ShiftHandler) Handover(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	staffID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	handover, err := h.shiftService.GetHandover(c.Request.Context(), tenantID, staffID, c.Query("pattern"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, handover)
}

// Delete godoc
// @Summary      Delete a shift
// @Description  Remove an active shift that was opened by mistake; completed shifts cannot be deleted
// @Tags         shifts
// @Produce      json
// @Param        id path string true "Shift ID" format(uuid)
// @Success      204 "No Content"
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid shift ID")
		return
	}

	if err := h.shiftService.DeleteShift(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
