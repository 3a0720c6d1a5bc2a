package handler

import (
	appplanning "github.com/estate/backend/internal/application/planning"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentPlanHandler handles payment plan requests. Plans belong to a
// project, so creation and listing are nested under /projects/:id.
type PaymentPlanHandler struct {
	BaseHandler
	service *appplanning.PaymentPlanService
}

// NewPaymentPlanHandler creates a new PaymentPlanHandler
func NewPaymentPlanHandler(service *appplanning.PaymentPlanService) *PaymentPlanHandler {
	return &PaymentPlanHandler{service: service}
}

// Create handles POST /projects/:id/payment-plans
func (h *PaymentPlanHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req appplanning.CreatePaymentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.CreatePlan(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByProject handles GET /projects/:id/payment-plans
func (h *PaymentPlanHandler) ListByProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListByProject(c.Request.Context(), projectID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Get handles GET /payment-plans/:id
func (h *PaymentPlanHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment plan ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /payment-plans/:id
func (h *PaymentPlanHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment plan ID")
		return
	}

	var req appplanning.UpdatePaymentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /payment-plans/:id
func (h *PaymentPlanHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment plan ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers payment plan routes
func (h *PaymentPlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("/:id/payment-plans", h.Create)
		projects.GET("/:id/payment-plans", h.ListByProject)
	}

	plans := rg.Group("/payment-plans")
	{
		plans.GET("/:id", h.Get)
		plans.PUT("/:id", h.Update)
		plans.DELETE("/:id", h.Delete)
	}
}
