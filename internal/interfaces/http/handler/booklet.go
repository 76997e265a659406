package handler

import (
	partnerapp "github.com/fuelstation/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// BookletHandler handles indent booklet endpoints
type BookletHandler struct {
	BaseHandler
	bookletService *partnerapp.BookletService
}

// NewBookletHandler creates a new BookletHandler
func NewBookletHandler(bookletService *partnerapp.BookletService) *BookletHandler {
	return &BookletHandler{bookletService: bookletService}
}

// Issue godoc
// @Summary      Issue a booklet
// @Description  Issue a numbered indent booklet to a credit customer
// @Tags         booklets
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.IssueBookletRequest true "Booklet details"
// @Success      201 {object} dto.Response{data=partnerapp.BookletResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /booklets [post]
func (h *BookletHandler) Issue(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req partnerapp.IssueBookletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	booklet, err := h.bookletService.IssueBooklet(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, booklet)
}

// Get godoc
// @Summary      Get a booklet
// @Tags         booklets
// @Produce      json
// @Param        id path string true "Booklet ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.BookletResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /booklets/{id} [get]
func (h *BookletHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booklet ID")
		return
	}

	booklet, err := h.bookletService.GetBooklet(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, booklet)
}

// List godoc
// @Summary      List a customer's booklets
// @Tags         booklets
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]partnerapp.BookletResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id}/booklets [get]
func (h *BookletHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	booklets, err := h.bookletService.ListBooklets(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, booklets)
}

// Cancel godoc
// @Summary      Cancel a booklet
// @Description  Void a booklet so its remaining indent numbers cannot be used
// @Tags         booklets
// @Produce      json
// @Param        id path string true "Booklet ID" format(uuid)
// @Success      200 {object} dto.Response{data=partnerapp.BookletResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /booklets/{id}/cancel [post]
func (h *BookletHandler) Cancel(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid booklet ID")
		return
	}

	booklet, err := h.bookletService.CancelBooklet(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, booklet)
}
