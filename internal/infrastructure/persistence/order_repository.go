package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/greenhub/backend/internal/domain/order"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *GormOrderRepository) WithTx(tx any) order.Repository {
	return &GormOrderRepository{db: toGorm(tx, r.db)}
}

// FindByID finds an order with its items eager-loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll lists orders matching the filter, items eager-loaded
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).Preload("Items"),
		filter,
	)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByVendor lists orders containing at least one item from the vendor
func (r *GormOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Preload("Items").
		Where("id IN (?)", r.db.Model(&order.OrderItem{}).
			Select("order_id").
			Where("vendor_id = ?", vendorID))
	query = applyFilter(query, filter)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order and its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(o).Error
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RevenueByStatus sums order totals for the given fulfilment state
func (r *GormOrderRepository) RevenueByStatus(ctx context.Context, status order.Status) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("SUM(total_amount)").
		Where("status = ?", status).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// MonthlyRevenue returns per-month revenue for the trailing number of months,
// oldest first. Months with no orders are absent from the result.
func (r *GormOrderRepository) MonthlyRevenue(ctx context.Context, months int) ([]order.MonthlyRevenue, error) {
	if months <= 0 {
		months = 6
	}

	type row struct {
		Month  string
		Amount decimal.Decimal
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("to_char(created_at, 'YYYY-MM') AS month, SUM(total_amount) AS amount").
		Where("created_at >= date_trunc('month', now()) - make_interval(months => ?)", months-1).
		Where("status <> ?", order.StatusCancelled).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]order.MonthlyRevenue, len(rows))
	for i, r := range rows {
		result[i] = order.MonthlyRevenue{Month: r.Month, Amount: r.Amount}
	}
	return result, nil
}

var _ order.Repository = (*GormOrderRepository)(nil)
