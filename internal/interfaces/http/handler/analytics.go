package handler

import (
	"github.com/gin-gonic/gin"

	analyticsapp "github.com/greenhub/backend/internal/application/analytics"
)

// AnalyticsHandler handles the admin dashboard API endpoint
type AnalyticsHandler struct {
	BaseHandler
	analyticsService *analyticsapp.Service
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *analyticsapp.Service) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard aggregates the marketplace headline numbers
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	resp, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
