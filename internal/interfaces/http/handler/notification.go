package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/greenhub/backend/internal/interfaces/http/dto"

	notificationapp "github.com/greenhub/backend/internal/application/notification"
	vendorapp "github.com/greenhub/backend/internal/application/vendor"
)

// NotificationHandler handles vendor inbox and admin alert API endpoints
type NotificationHandler struct {
	vendorResolver
	notificationService *notificationapp.Service
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *notificationapp.Service, lifecycle *vendorapp.LifecycleService) *NotificationHandler {
	return &NotificationHandler{
		vendorResolver:      vendorResolver{lifecycle: lifecycle},
		notificationService: notificationService,
	}
}

// ListMine returns the calling vendor's inbox, newest first
func (h *NotificationHandler) ListMine(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.notificationService.ListForVendor(c.Request.Context(), v.ID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// UnreadCount returns the calling vendor's unread total
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	resp, err := h.notificationService.UnreadCount(c.Request.Context(), v.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkRead marks one of the calling vendor's notifications as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	resp, err := h.notificationService.MarkRead(c.Request.Context(), v.ID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkAllRead marks the calling vendor's entire inbox as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	resp, err := h.notificationService.MarkAllRead(c.Request.Context(), v.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Send delivers a notification to a single vendor
func (h *NotificationHandler) Send(c *gin.Context) {
	var req notificationapp.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.notificationService.Send(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Broadcast delivers a notification to every approved vendor
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req notificationapp.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.notificationService.Broadcast(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// InviteBestSeller sends the best-seller program invitation to an
// approved vendor
func (h *NotificationHandler) InviteBestSeller(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.notificationService.InviteBestSeller(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// History returns the most recently sent vendor notifications
func (h *NotificationHandler) History(c *gin.Context) {
	resp, err := h.notificationService.History(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListAdmin returns the admin alert feed
func (h *NotificationHandler) ListAdmin(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	alerts, err := h.notificationService.ListAdmin(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, alerts)
}

// AdminUnreadCount returns the unread admin alert total
func (h *NotificationHandler) AdminUnreadCount(c *gin.Context) {
	resp, err := h.notificationService.AdminUnreadCount(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MarkAllAdminRead marks the entire admin alert feed as read
func (h *NotificationHandler) MarkAllAdminRead(c *gin.Context) {
	resp, err := h.notificationService.MarkAllAdminRead(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
