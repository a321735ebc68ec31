package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Repository defines the interface for order persistence. Save persists the
// order together with its items in one write.
type Repository interface {
	// WithTx returns a repository bound to the given transaction handle
	WithTx(tx any) Repository

	// FindByID finds an order with its items eager-loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll lists orders matching the filter, items eager-loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByVendor lists orders containing at least one item from the vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order and its items
	Save(ctx context.Context, o *Order) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// RevenueByStatus sums order totals for the given fulfilment state
	RevenueByStatus(ctx context.Context, status Status) (decimal.Decimal, error)

	// MonthlyRevenue returns per-month revenue for the trailing number of
	// months, oldest first
	MonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error)
}

// MonthlyRevenue is one point of the admin dashboard sales trend
type MonthlyRevenue struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}
