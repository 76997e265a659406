package handler

import (
	"strconv"

	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/gin-gonic/gin"
)

// FuelHandler handles fuel product and tank unload endpoints
type FuelHandler struct {
	BaseHandler
	fuelService *stationapp.FuelService
}

// NewFuelHandler creates a new FuelHandler
func NewFuelHandler(fuelService *stationapp.FuelService) *FuelHandler {
	return &FuelHandler{fuelService: fuelService}
}

func lowStockPercentQuery(c *gin.Context) int {
	percent, err := strconv.Atoi(c.Query("low_stock_percent"))
	if err != nil {
		return 0
	}
	return percent
}

// CreateSetting godoc
// @Summary      Create a fuel product
// @Description  Register a fuel product with its price and tank capacity
// @Tags         fuels
// @Accept       json
// @Produce      json
// @Param        request body stationapp.CreateFuelSettingRequest true "Fuel product details"
// @Success      201 {object} dto.Response{data=stationapp.FuelSettingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels [post]
func (h *FuelHandler) CreateSetting(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req stationapp.CreateFuelSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	setting, err := h.fuelService.CreateFuelSetting(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, setting)
}

// ListSettings godoc
// @Summary      List fuel products
// @Tags         fuels
// @Produce      json
// @Param        low_stock_percent query int false "Low stock threshold percent"
// @Success      200 {object} dto.Response{data=[]stationapp.FuelSettingResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels [get]
func (h *FuelHandler) ListSettings(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	settings, err := h.fuelService.ListFuelSettings(c.Request.Context(), tenantID, lowStockPercentQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, settings)
}

// GetSetting godoc
// @Summary      Get a fuel product
// @Tags         fuels
// @Produce      json
// @Param        fuel_type path string true "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Success      200 {object} dto.Response{data=stationapp.FuelSettingResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels/{fuel_type} [get]
func (h *FuelHandler) GetSetting(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	setting, err := h.fuelService.GetFuelSetting(c.Request.Context(), tenantID, c.Param("fuel_type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, setting)
}

// UpdatePrice godoc
// @Summary      Update a fuel price
// @Description  Change the selling price; running shifts keep their frozen price
// @Tags         fuels
// @Accept       json
// @Produce      json
// @Param        fuel_type path string true "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Param        request body stationapp.UpdateFuelPriceRequest true "New price"
// @Success      200 {object} dto.Response{data=stationapp.FuelSettingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels/{fuel_type}/price [put]
func (h *FuelHandler) UpdatePrice(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req stationapp.UpdateFuelPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	setting, err := h.fuelService.UpdatePrice(c.Request.Context(), tenantID, c.Param("fuel_type"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, setting)
}

// UpdateTank godoc
// @Summary      Update tank figures
// @Description  Adjust tank capacity or correct the measured level
// @Tags         fuels
// @Accept       json
// @Produce      json
// @Param        fuel_type path string true "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Param        request body stationapp.UpdateTankRequest true "Capacity or level"
// @Success      200 {object} dto.Response{data=stationapp.FuelSettingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels/{fuel_type}/tank [put]
func (h *FuelHandler) UpdateTank(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req stationapp.UpdateTankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	setting, err := h.fuelService.UpdateTank(c.Request.Context(), tenantID, c.Param("fuel_type"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, setting)
}

// LowStockAlerts godoc
// @Summary      Low stock alerts
// @Description  Return the fuels at or below the alert threshold
// @Tags         fuels
// @Produce      json
// @Param        low_stock_percent query int false "Low stock threshold percent"
// @Success      200 {object} dto.Response{data=[]stationapp.FuelSettingResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /fuels/low-stock [get]
func (h *FuelHandler) LowStockAlerts(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	alerts, err := h.fuelService.LowStockAlerts(c.Request.Context(), tenantID, lowStockPercentQuery(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, alerts)
}

// RecordUnload godoc
// @Summary      Record a tanker delivery
// @Description  Record a delivery and raise the tank level in the same transaction
// @Tags         unloads
// @Accept       json
// @Produce      json
// @Param        request body stationapp.RecordUnloadRequest true "Delivery details"
// @Success      201 {object} dto.Response{data=stationapp.TankUnloadResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unloads [post]
func (h *FuelHandler) RecordUnload(c *gin.Context) {
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

	var req stationapp.RecordUnloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.RecordedBy = userID

	unload, err := h.fuelService.RecordUnload(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, unload)
}

// GetUnload godoc
// @Summary      Get a tanker delivery
// @Tags         unloads
// @Produce      json
// @Param        id path string true "Unload ID" format(uuid)
// @Success      200 {object} dto.Response{data=stationapp.TankUnloadResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unloads/{id} [get]
func (h *FuelHandler) GetUnload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unload ID")
		return
	}

	unload, err := h.fuelService.GetUnload(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, unload)
}

// ListUnloads godoc
// @Summary      List tanker deliveries
// @Tags         unloads
// @Produce      json
// @Param        fuel_type query string false "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]stationapp.TankUnloadResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /unloads [get]
func (h *FuelHandler) ListUnloads(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter stationapp.TankUnloadListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	unloads, total, err := h.fuelService.ListUnloads(c.Request.Context(), tenantID, filter)
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
	h.SuccessWithMeta(c, unloads, total, page, pageSize)
}
