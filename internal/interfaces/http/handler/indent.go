package handler

import (
	partnerapp "github.com/fuelstation/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// IndentHandler handles credit fueling endpoints
type IndentHandler struct {
	BaseHandler
	indentService *partnerapp.IndentService
}

// NewIndentHandler creates a new IndentHandler
func NewIndentHandler(indentService *partnerapp.IndentService) *IndentHandler {
	return &IndentHandler{indentService: indentService}
}

// Record godoc
// @Summary      Record an indent
// @Description  Book a credit fueling against a customer's account
// @Tags         indents
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.RecordIndentRequest true "Fueling details"
// @Success      201 {object} dto.Response{data=partnerapp.IndentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /indents [post]
func (h *IndentHandler) Record(c *gin.Context) {
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

	var req partnerapp.RecordIndentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}
	req.RecordedBy = userID

	indent, err := h.indentService.RecordIndent(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, indent)
}

// Get godoc
// @Summary      Get an indent
// @Tags         indents
// @Produce      json
// @Param        id path string true "Indent ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.IndentResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /indents/{id} [get]
func (h *IndentHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid indent ID")
		return
	}

	indent, err := h.indentService.GetIndent(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, indent)
}

// List godoc
// @Summary      List indents
// @Tags         indents
// @Produce      json
// @Param        customer_id query string false "Customer ID" format(uuid)
// @Param        booklet_id query string false "Booklet ID" format(uuid)
// @Param        fuel_type query string false "Fuel type" Enums(petrol, diesel, premium_petrol, cng)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]partnerapp.IndentResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /indents [get]
func (h *IndentHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter partnerapp.IndentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	indents, total, err := h.indentService.ListIndents(c.Request.Context(), tenantID, filter)
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
	h.SuccessWithMeta(c, indents, total, page, pageSize)
}
