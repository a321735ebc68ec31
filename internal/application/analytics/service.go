package analytics

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/order"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
)

// trendMonths is how far back the dashboard sales trend reaches
const trendMonths = 6

// recentAlerts is how many notifications the dashboard feed shows
const recentAlerts = 10

// Dashboard is the admin overview, computed from live aggregation queries
type Dashboard struct {
	TotalRevenue   decimal.Decimal        `json:"total_revenue"`
	TotalOrders    int64                  `json:"total_orders"`
	TotalProducts  int64                  `json:"total_products"`
	ActiveVendors  int64                  `json:"active_vendors"`
	PendingVendors int64                  `json:"pending_vendors"`
	MonthlyRevenue []order.MonthlyRevenue `json:"monthly_revenue"`
	RecentActivity []RecentNotification   `json:"recent_activity"`
}

// RecentNotification is one row of the dashboard activity feed
type RecentNotification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Service computes the admin dashboard
type Service struct {
	vendorRepo  vendor.Repository
	productRepo catalog.ProductRepository
	orderRepo   order.Repository
	notifRepo   notification.Repository
	logger      *zap.Logger
}

// NewService creates a new analytics Service
func NewService(
	vendorRepo vendor.Repository,
	productRepo catalog.ProductRepository,
	orderRepo order.Repository,
	notifRepo notification.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		vendorRepo:  vendorRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		notifRepo:   notifRepo,
		logger:      logger,
	}
}

// Dashboard assembles the admin overview. Revenue counts DELIVERED orders
// only; cancelled and in-flight orders do not contribute.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	revenue, err := s.orderRepo.RevenueByStatus(ctx, order.StatusDelivered)
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.orderRepo.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	totalProducts, err := s.productRepo.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	activeVendors, err := s.vendorRepo.CountByStatus(ctx, vendor.StatusApproved)
	if err != nil {
		return nil, err
	}

	pendingVendors, err := s.vendorRepo.CountByStatus(ctx, vendor.StatusPending)
	if err != nil {
		return nil, err
	}

	trend, err := s.orderRepo.MonthlyRevenue(ctx, trendMonths)
	if err != nil {
		return nil, err
	}

	recent, err := s.notifRepo.FindRecent(ctx, recentAlerts)
	if err != nil {
		return nil, err
	}
	activity := make([]RecentNotification, len(recent))
	for i := range recent {
		activity[i] = RecentNotification{
			Type:    string(recent[i].Type),
			Title:   recent[i].Title,
			Message: recent[i].Message,
		}
	}

	return &Dashboard{
		TotalRevenue:   revenue,
		TotalOrders:    totalOrders,
		TotalProducts:  totalProducts,
		ActiveVendors:  activeVendors,
		PendingVendors: pendingVendors,
		MonthlyRevenue: trend,
		RecentActivity: activity,
	}, nil
}
