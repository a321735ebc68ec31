package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/greenhub/backend/internal/interfaces/http/dto"

	catalogapp "github.com/greenhub/backend/internal/application/catalog"
	vendorapp "github.com/greenhub/backend/internal/application/vendor"
)

// ProductHandler handles product listing API endpoints
type ProductHandler struct {
	vendorResolver
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, lifecycle *vendorapp.LifecycleService) *ProductHandler {
	return &ProductHandler{
		vendorResolver: vendorResolver{lifecycle: lifecycle},
		productService: productService,
	}
}

// Create adds a draft listing for the calling vendor
func (h *ProductHandler) Create(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.Create(c.Request.Context(), v.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Update changes the mutable fields of the calling vendor's listing
func (h *ProductHandler) Update(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.Update(c.Request.Context(), v.ID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UploadImage attaches an image to the calling vendor's listing
func (h *ProductHandler) UploadImage(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "image file is required")
		return
	}
	data, err := readAll(fileHeader)
	if err != nil {
		h.BadRequest(c, "image file is unreadable")
		return
	}

	resp, err := h.productService.UploadImage(c.Request.Context(), v.ID, id, catalogapp.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SubmitForReview moves a draft listing into the review queue
func (h *ProductHandler) SubmitForReview(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.productService.SubmitForReview(c.Request.Context(), v.ID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetActiveRequest toggles a listing's storefront visibility
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetActive toggles the calling vendor's listing on or off the storefront
func (h *ProductHandler) SetActive(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.SetActive(c.Request.Context(), v.ID, id, *req.IsActive)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes the calling vendor's listing
func (h *ProductHandler) Delete(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), v.ID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMine returns the calling vendor's listings
func (h *ProductHandler) ListMine(c *gin.Context) {
	v, ok := h.resolveApproved(c)
	if !ok {
		return
	}

	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.ListByVendor(c.Request.Context(), v.ID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListPublic returns active, published listings of approved vendors
func (h *ProductHandler) ListPublic(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	products, err := h.productService.ListPublic(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetByID returns one product
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetBySlug returns one product by its URL slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	resp, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListAll returns every listing for the admin review queue
func (h *ProductHandler) ListAll(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.ListAll(c.Request.Context(), listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Publish approves a listing under review
func (h *ProductHandler) Publish(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.productService.Publish(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RejectListing sends a listing under review back to its vendor
func (h *ProductHandler) RejectListing(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.productService.RejectListing(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
