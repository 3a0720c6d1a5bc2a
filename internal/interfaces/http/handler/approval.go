package handler

import (
	appapproval "github.com/estate/backend/internal/application/approval"
	"github.com/estate/backend/internal/domain/approval"
	"github.com/gin-gonic/gin"
)

// ApprovalHandler handles approval workflow requests
type ApprovalHandler struct {
	BaseHandler
	service *appapproval.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler
func NewApprovalHandler(service *appapproval.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

// Create handles POST /approvals. The requester is always the
// authenticated user.
func (h *ApprovalHandler) Create(c *gin.Context) {
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	var req appapproval.CreateApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), requesterID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Decide handles POST /approvals/:id/decide. Deciding an already
// decided approval returns a conflict.
func (h *ApprovalHandler) Decide(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid approval ID")
		return
	}

	var req appapproval.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get handles GET /approvals/:id
func (h *ApprovalHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid approval ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /approvals with an optional status query parameter
func (h *ApprovalHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	var status *approval.ApprovalStatus
	if raw := c.Query("status"); raw != "" {
		parsed := approval.ApprovalStatus(raw)
		if !parsed.IsValid() {
			h.BadRequest(c, "Invalid status filter")
			return
		}
		status = &parsed
	}

	resp, err := h.service.List(c.Request.Context(), status, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// ListMine handles GET /approvals/mine, scoped to the authenticated
// requester
func (h *ApprovalHandler) ListMine(c *gin.Context) {
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Not authenticated")
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	resp, err := h.service.ListByRequester(c.Request.Context(), requesterID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Delete handles DELETE /approvals/:id
func (h *ApprovalHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid approval ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers approval workflow routes
func (h *ApprovalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	approvals := rg.Group("/approvals")
	{
		approvals.POST("", h.Create)
		approvals.GET("", h.List)
		approvals.GET("/mine", h.ListMine)
		approvals.GET("/:id", h.Get)
		approvals.POST("/:id/decide", h.Decide)
		approvals.DELETE("/:id", h.Delete)
	}
}
