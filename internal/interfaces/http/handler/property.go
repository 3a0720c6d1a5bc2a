package handler

import (
	apprealty "github.com/estate/backend/internal/application/realty"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PropertyHandler handles property requests. Creation and per-project
// listing are nested under /projects/:id.
type PropertyHandler struct {
	BaseHandler
	service *apprealty.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(service *apprealty.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create handles POST /projects/:id/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req apprealty.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByProject handles GET /projects/:id/properties
func (h *PropertyHandler) ListByProject(c *gin.Context) {
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

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /properties across all projects
func (h *PropertyHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if propertyType := c.Query("type"); propertyType != "" {
		filter.Filters["type"] = propertyType
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Update handles PUT /properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	var req apprealty.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid property ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers property routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("/:id/properties", h.Create)
		projects.GET("/:id/properties", h.ListByProject)
	}

	properties := rg.Group("/properties")
	{
		properties.GET("", h.List)
		properties.GET("/:id", h.Get)
		properties.PUT("/:id", h.Update)
		properties.DELETE("/:id", h.Delete)
	}
}
