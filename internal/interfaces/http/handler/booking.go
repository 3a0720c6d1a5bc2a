package handler

import (
	appbooking "github.com/estate/backend/internal/application/booking"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking requests
type BookingHandler struct {
	BaseHandler
	service *appbooking.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *appbooking.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /bookings. The client is resolved or synthesized
// inside the same transaction that stores the booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var req appbooking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}
	for _, key := range []string{"status", "client_id", "project_id", "property_id", "sales_employee_id", "broker_id"} {
		if value := c.Query(key); value != "" {
			filter.Filters[key] = value
		}
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Update handles PUT /bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	var req appbooking.UpdateBookingRequest
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

// Delete handles DELETE /bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid booking ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
	}
}
