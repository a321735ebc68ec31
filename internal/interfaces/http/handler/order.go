package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/greenhub/backend/internal/interfaces/http/dto"

	orderapp "github.com/greenhub/backend/internal/application/order"
	vendorapp "github.com/greenhub/backend/internal/application/vendor"
)

// OrderHandler handles order placement and fulfilment API endpoints
type OrderHandler struct {
	vendorResolver
	orderService *orderapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.Service, lifecycle *vendorapp.LifecycleService) *OrderHandler {
	return &OrderHandler{
		vendorResolver: vendorResolver{lifecycle: lifecycle},
		orderService:   orderService,
	}
}

// Place handles the public checkout endpoint. Lines referencing missing,
// inactive or unapproved products are dropped silently; an order whose
// every line was dropped is rejected with NO_VALID_ITEMS.
func (h *OrderHandler) Place(c *gin.Context) {
	var req orderapp.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.Place(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetByID returns one order
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListAll returns every order for the admin dashboard
func (h *OrderHandler) ListAll(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderService.ListAll(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListMine returns the orders containing the calling vendor's products
func (h *OrderHandler) ListMine(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, err := h.orderService.ListByVendor(c.Request.Context(), v.ID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// UpdateStatus advances an order's fulfilment state
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
