package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/shared"
)

// ProductType classifies what kind of product a vendor lists
type ProductType string

const (
	ProductTypeOrganic     ProductType = "ORGANIC"
	ProductTypeNatural     ProductType = "NATURAL"
	ProductTypeEcoFriendly ProductType = "ECO_FRIENDLY"
)

// ApprovalStatus represents the review state of a product listing
type ApprovalStatus string

const (
	ApprovalStatusDraft         ApprovalStatus = "DRAFT"
	ApprovalStatusPendingReview ApprovalStatus = "PENDING_REVIEW"
	ApprovalStatusPublished     ApprovalStatus = "PUBLISHED"
	ApprovalStatusRejected      ApprovalStatus = "REJECTED"
)

// Product is a listing owned by exactly one vendor. Soft deletion happens
// through IsActive, independent of the review workflow.
type Product struct {
	shared.BaseAggregateRoot
	VendorID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Slug           string          `gorm:"type:varchar(220);not null;uniqueIndex"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StockQuantity  int             `gorm:"not null;default:0"`
	ImageURL       string          `gorm:"type:varchar(500)"`
	GalleryImages  string          `gorm:"type:text"`
	ProductType    ProductType     `gorm:"type:varchar(20);not null;default:'ORGANIC'"`
	ApprovalStatus ApprovalStatus  `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	IsActive       bool            `gorm:"not null;default:true"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a draft product listing for a vendor
func NewProduct(vendorID uuid.UUID, name string, price decimal.Decimal, productType ProductType) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if price.IsNegative() || price.IsZero() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price must be positive")
	}
	if err := validateProductType(productType); err != nil {
		return nil, err
	}

	p := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		Name:              name,
		Price:             price,
		ProductType:       productType,
		ApprovalStatus:    ApprovalStatusDraft,
		IsActive:          true,
	}
	p.Slug = Slugify(name) + "-" + p.ID.String()[:8]

	p.AddDomainEvent(NewProductCreatedEvent(p))

	return p, nil
}

// Update changes the mutable listing fields
func (p *Product) Update(name, description string, price decimal.Decimal, stockQuantity int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() || price.IsZero() {
		return shared.NewDomainError("INVALID_PRICE", "Product price must be positive")
	}
	if stockQuantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.StockQuantity = stockQuantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory assigns the product to a category
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetImages sets the primary image and the gallery
func (p *Product) SetImages(imageURL, galleryImages string) {
	p.ImageURL = imageURL
	p.GalleryImages = galleryImages
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SubmitForReview moves a draft or rejected listing into the review queue
func (p *Product) SubmitForReview() error {
	if p.ApprovalStatus != ApprovalStatusDraft && p.ApprovalStatus != ApprovalStatusRejected {
		return shared.NewDomainError("INVALID_STATE", "Only draft or rejected products can be submitted for review")
	}
	p.ApprovalStatus = ApprovalStatusPendingReview
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Publish approves a listing under review
func (p *Product) Publish() error {
	if p.ApprovalStatus != ApprovalStatusPendingReview {
		return shared.NewDomainError("INVALID_STATE", "Only products under review can be published")
	}
	p.ApprovalStatus = ApprovalStatusPublished
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// RejectListing declines a listing under review
func (p *Product) RejectListing() error {
	if p.ApprovalStatus != ApprovalStatusPendingReview {
		return shared.NewDomainError("INVALID_STATE", "Only products under review can be rejected")
	}
	p.ApprovalStatus = ApprovalStatusRejected
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate soft-deletes the listing
func (p *Product) Deactivate() {
	if !p.IsActive {
		return
	}
	p.IsActive = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Activate restores a soft-deleted listing
func (p *Product) Activate() {
	if p.IsActive {
		return
	}
	p.IsActive = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Orderable reports whether the product can appear on a new order
func (p *Product) Orderable() bool {
	return p.IsActive
}

func validateProductType(t ProductType) error {
	switch t {
	case ProductTypeOrganic, ProductTypeNatural, ProductTypeEcoFriendly:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Invalid product type")
	}
}

// Slugify lowercases a name and replaces runs of non-alphanumerics with
// single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
