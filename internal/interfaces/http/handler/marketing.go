package handler

import (
	"github.com/gin-gonic/gin"

	marketingapp "github.com/greenhub/backend/internal/application/marketing"
)

// MarketingHandler handles banner and offer API endpoints
type MarketingHandler struct {
	BaseHandler
	marketingService *marketingapp.Service
}

// NewMarketingHandler creates a new MarketingHandler
func NewMarketingHandler(marketingService *marketingapp.Service) *MarketingHandler {
	return &MarketingHandler{marketingService: marketingService}
}

// CreateBanner persists a banner and reports how many vendors were told
func (h *MarketingHandler) CreateBanner(c *gin.Context) {
	var req marketingapp.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.marketingService.CreateBanner(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// DeactivateBanner hides a banner from the storefront
func (h *MarketingHandler) DeactivateBanner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	resp, err := h.marketingService.DeactivateBanner(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteBanner removes a banner
func (h *MarketingHandler) DeleteBanner(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.marketingService.DeleteBanner(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListActiveBanners is the public storefront banner feed
func (h *MarketingHandler) ListActiveBanners(c *gin.Context) {
	banners, err := h.marketingService.ListActiveBanners(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banners)
}

// ListAllBanners returns every banner for the admin dashboard
func (h *MarketingHandler) ListAllBanners(c *gin.Context) {
	banners, err := h.marketingService.ListAllBanners(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, banners)
}

// CreateOffer creates a discount campaign
func (h *MarketingHandler) CreateOffer(c *gin.Context) {
	var req marketingapp.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.marketingService.CreateOffer(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// RedeemOffer checks a coupon code and returns the matching live offer
func (h *MarketingHandler) RedeemOffer(c *gin.Context) {
	resp, err := h.marketingService.RedeemableOffer(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeactivateOffer ends a discount campaign
func (h *MarketingHandler) DeactivateOffer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	resp, err := h.marketingService.DeactivateOffer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteOffer removes a discount campaign
func (h *MarketingHandler) DeleteOffer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid offer ID")
		return
	}

	if err := h.marketingService.DeleteOffer(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListActiveOffers is the public storefront offer feed
func (h *MarketingHandler) ListActiveOffers(c *gin.Context) {
	offers, err := h.marketingService.ListActiveOffers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, offers)
}

// ListAllOffers returns every offer for the admin dashboard
func (h *MarketingHandler) ListAllOffers(c *gin.Context) {
	offers, err := h.marketingService.ListAllOffers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, offers)
}
