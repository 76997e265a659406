package handler

import (
	"context"

	identityapp "github.com/fuelstation/backend/internal/application/identity"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles station account endpoints
type TenantHandler struct {
	BaseHandler
	tenantService *identityapp.TenantService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(tenantService *identityapp.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

// PrepareLogoUploadRequest carries the content type of the logo to upload
type PrepareLogoUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// ConfirmLogoUploadRequest confirms a finished presigned logo upload
type ConfirmLogoUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required"`
	PublicURL  string `json:"public_url" binding:"required,url"`
}

// Register godoc
// @Summary      Register a station
// @Description  Create a new station with its owner account
// @Tags         station
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateTenantRequest true "Station and owner details"
// @Success      201 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /station/register [post]
func (h *TenantHandler) Register(c *gin.Context) {
	var req identityapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// GetCurrent godoc
// @Summary      Get own station
// @Description  Return the authenticated user's station
// @Tags         station
// @Produce      json
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /station [get]
func (h *TenantHandler) GetCurrent(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	tenant, err := h.tenantService.GetTenant(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// StationListRequest represents query parameters for the station list
type StationListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// List godoc
// @Summary      List stations
// @Description  List registered stations, owner role only
// @Tags         stations
// @Produce      json
// @Param        search query string false "Search term (name, code)"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]identityapp.TenantResponse,meta=dto.Meta}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /stations [get]
func (h *TenantHandler) List(c *gin.Context) {
	var req StationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	filter.Search = req.Search

	tenants, total, err := h.tenantService.ListTenants(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, tenants, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update station details
// @Tags         station
// @Accept       json
// @Produce      json
// @Param        request body identityapp.UpdateTenantRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /station [put]
func (h *TenantHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// UpdateConfig godoc
// @Summary      Update station settings
// @Description  Modify operational settings like currency and shift pattern
// @Tags         station
// @Accept       json
// @Produce      json
// @Param        request body identityapp.UpdateTenantConfigRequest true "Settings to update"
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /station/config [put]
func (h *TenantHandler) UpdateConfig(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.UpdateTenantConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tenant, err := h.tenantService.UpdateTenantConfig(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// PrepareLogoUpload godoc
// @Summary      Prepare logo upload
// @Description  Return a presigned URL for uploading a station logo
// @Tags         station
// @Accept       json
// @Produce      json
// @Param        request body PrepareLogoUploadRequest true "Logo content type"
// @Success      200 {object} dto.Response{data=identityapp.LogoUploadResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /station/logo/prepare [post]
func (h *TenantHandler) PrepareLogoUpload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req PrepareLogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.tenantService.PrepareLogoUpload(c.Request.Context(), tenantID, req.ContentType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ConfirmLogoUpload godoc
// @Summary      Confirm logo upload
// @Tags         station
// @Accept       json
// @Produce      json
// @Param        request body ConfirmLogoUploadRequest true "Uploaded object details"
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /station/logo/confirm [post]
func (h *TenantHandler) ConfirmLogoUpload(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ConfirmLogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	tenant, err := h.tenantService.ConfirmLogoUpload(c.Request.Context(), tenantID, req.StorageKey, req.PublicURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Activate godoc
// @Summary      Activate a station
// @Tags         stations
// @Produce      json
// @Param        id path string true "Station ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /stations/{id}/activate [post]
func (h *TenantHandler) Activate(c *gin.Context) {
	h.tenantAction(c, h.tenantService.ActivateTenant)
}

// Suspend godoc
// @Summary      Suspend a station
// @Description  Block a station's access without losing its data
// @Tags         stations
// @Produce      json
// @Param        id path string true "Station ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /stations/{id}/suspend [post]
func (h *TenantHandler) Suspend(c *gin.Context) {
	h.tenantAction(c, h.tenantService.SuspendTenant)
}

// Deactivate godoc
// @Summary      Deactivate a station
// @Tags         stations
// @Produce      json
// @Param        id path string true "Station ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /stations/{id}/deactivate [post]
func (h *TenantHandler) Deactivate(c *gin.Context) {
	h.tenantAction(c, h.tenantService.DeactivateTenant)
}

func (h *TenantHandler) tenantAction(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid station ID")
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
