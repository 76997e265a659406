package handler

import (
	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/gin-gonic/gin"
)

// PumpHandler handles dispensing unit endpoints
type PumpHandler struct {
	BaseHandler
	pumpService *stationapp.PumpService
}

// NewPumpHandler creates a new PumpHandler
func NewPumpHandler(pumpService *stationapp.PumpService) *PumpHandler {
	return &PumpHandler{pumpService: pumpService}
}

// Create godoc
// @Summary      Create a pump
// @Description  Register a dispensing unit with its nozzles
// @Tags         pumps
// @Accept       json
// @Produce      json
// @Param        request body stationapp.CreatePumpRequest true "Pump details"
// @Success      201 {object} dto.Response{data=stationapp.PumpResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps [post]
func (h *PumpHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req stationapp.CreatePumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	pump, err := h.pumpService.CreatePump(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, pump)
}

// Get godoc
// @Summary      Get a pump
// @Tags         pumps
// @Produce      json
// @Param        id path string true "Pump ID" format(uuid)
// @Success      200 {object} dto.Response{data=stationapp.PumpResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/{id} [get]
func (h *PumpHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pump ID")
		return
	}

	pump, err := h.pumpService.GetPump(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pump)
}

// List godoc
// @Summary      List pumps
// @Tags         pumps
// @Produce      json
// @Param        status query string false "Pump status" Enums(operational, maintenance, retired)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]stationapp.PumpResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps [get]
func (h *PumpHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter stationapp.PumpListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	pumps, total, err := h.pumpService.ListPumps(c.Request.Context(), tenantID, filter)
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
	h.SuccessWithMeta(c, pumps, total, page, pageSize)
}

// ListOperational godoc
// @Summary      List operational pumps
// @Description  Return the pumps available for shift assignment
// @Tags         pumps
// @Produce      json
// @Success      200 {object} dto.Response{data=[]stationapp.PumpResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/operational [get]
func (h *PumpHandler) ListOperational(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	pumps, err := h.pumpService.ListOperationalPumps(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pumps)
}

// AddNozzle godoc
// @Summary      Add a nozzle
// @Tags         pumps
// @Accept       json
// @Produce      json
// @Param        id path string true "Pump ID" format(uuid)
// @Param        request body stationapp.NozzleInput true "Nozzle details"
// @Success      200 {object} dto.Response{data=stationapp.PumpResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/{id}/nozzles [post]
func (h *PumpHandler) AddNozzle(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	pumpID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pump ID")
		return
	}

	var req stationapp.NozzleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	pump, err := h.pumpService.AddNozzle(c.Request.Context(), tenantID, pumpID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pump)
}

// RemoveNozzle godoc
// @Summary      Remove a nozzle
// @Tags         pumps
// @Produce      json
// @Param        id path string true "Pump ID" format(uuid)
// @Param        nozzle_id path string true "Nozzle ID" format(uuid)
// @Success      200 {object} dto.Response{data=stationapp.PumpResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/{id}/nozzles/{nozzle_id} [delete]
func (h *PumpHandler) RemoveNozzle(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	pumpID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pump ID")
		return
	}
	nozzleID, err := parseIDParam(c, "nozzle_id")
	if err != nil {
		h.BadRequest(c, "Invalid nozzle ID")
		return
	}

	pump, err := h.pumpService.RemoveNozzle(c.Request.Context(), tenantID, pumpID, nozzleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pump)
}

// UpdateStatus godoc
// @Summary      Update pump status
// @Description  Move a pump between operational, maintenance and retired
// @Tags         pumps
// @Accept       json
// @Produce      json
// @Param        id path string true "Pump ID" format(uuid)
// @Param        request body stationapp.UpdatePumpStatusRequest true "New status"
// @Success      200 {object} dto.Response{data=stationapp.PumpResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/{id}/status [put]
func (h *PumpHandler) UpdateStatus(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	pumpID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pump ID")
		return
	}

	var req stationapp.UpdatePumpStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	pump, err := h.pumpService.UpdatePumpStatus(c.Request.Context(), tenantID, pumpID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, pump)
}

// Delete godoc
// @Summary      Delete a pump
// @Tags         pumps
// @Produce      json
// @Param        id path string true "Pump ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /pumps/{id} [delete]
func (h *PumpHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid pump ID")
		return
	}

	if err := h.pumpService.DeletePump(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
