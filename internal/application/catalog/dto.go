package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/catalog"
)

// CreateProductRequest creates a draft listing for the calling vendor
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
	ProductType   string          `json:"product_type" binding:"required,oneof=ORGANIC NATURAL ECO_FRIENDLY"`
	CategoryID    *uuid.UUID      `json:"category_id"`
}

// UpdateProductRequest changes the mutable fields of a listing
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
	CategoryID    *uuid.UUID      `json:"category_id"`
}

// ImageUpload is one image file attached to a product
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID             uuid.UUID         `json:"id"`
	VendorID       uuid.UUID         `json:"vendor_id"`
	CategoryID     *uuid.UUID        `json:"category_id,omitempty"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Description    string            `json:"description,omitempty"`
	Price          decimal.Decimal   `json:"price"`
	StockQuantity  int               `json:"stock_quantity"`
	ImageURL       string            `json:"image_url,omitempty"`
	GalleryImages  string            `json:"gallery_images,omitempty"`
	ProductType    string            `json:"product_type"`
	ApprovalStatus string            `json:"approval_status"`
	IsActive       bool              `json:"is_active"`
	Category       *CategoryResponse `json:"category,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateCategoryRequest creates a category
type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	Slug     string     `json:"slug" binding:"max=120"`
	ImageURL string     `json:"image_url" binding:"max=500"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest renames or reparents a category
type UpdateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	ImageURL string     `json:"image_url" binding:"max=500"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	ImageURL string     `json:"image_url,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// ToProductResponse maps a domain product to its API representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		VendorID:       p.VendorID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		StockQuantity:  p.StockQuantity,
		ImageURL:       p.ImageURL,
		GalleryImages:  p.GalleryImages,
		ProductType:    string(p.ProductType),
		ApprovalStatus: string(p.ApprovalStatus),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Category != nil {
		c := ToCategoryResponse(p.Category)
		resp.Category = &c
	}
	return resp
}

// ToProductResponses maps a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// ToCategoryResponse maps a domain category to its API representation
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
		ParentID: c.ParentID,
	}
}

// ToCategoryResponses maps a slice of domain categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
