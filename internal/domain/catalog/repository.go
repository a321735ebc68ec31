package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenhub/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// WithTx returns a repository bound to the given transaction handle
	WithTx(tx any) ProductRepository

	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDWithCategory finds a product with its category eager-loaded
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySlug finds a product by its unique slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindByVendor lists a vendor's products
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindAll lists all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindPublic lists active products whose owning vendor is currently
	// approved, with categories eager-loaded. This is the storefront view.
	FindPublic(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error

	// Delete hard-deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByVendor counts a vendor's products
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// WithTx returns a repository bound to the given transaction handle
	WithTx(tx any) CategoryRepository

	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindBySlug finds a category by its unique slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll lists all categories
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// FindChildren lists the direct children of a category
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]Category, error)

	// ExistsBySlug checks whether a category with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, c *Category) error

	// Delete removes a category
	Delete(ctx context.Context, id uuid.UUID) error
}
