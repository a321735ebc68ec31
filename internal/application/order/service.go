package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/notification"
	"github.com/greenhub/backend/internal/domain/order"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
)

// ErrNoValidItems means every requested line failed validation, so there is
// nothing to order. Distinct from a validation error on the request itself.
var ErrNoValidItems = shared.NewDomainError("NO_VALID_ITEMS", "None of the requested items are currently available")

// Service handles order placement and fulfilment
type Service struct {
	orderRepo      order.Repository
	productRepo    catalog.ProductRepository
	vendorRepo     vendor.Repository
	notifRepo      notification.Repository
	adminNotifRepo notification.AdminRepository
	txManager      shared.TransactionManager
	eventBus       shared.EventPublisher
	logger         *zap.Logger
}

// NewService creates a new order Service
func NewService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	vendorRepo vendor.Repository,
	notifRepo notification.Repository,
	adminNotifRepo notification.AdminRepository,
	txManager shared.TransactionManager,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		vendorRepo:     vendorRepo,
		notifRepo:      notifRepo,
		adminNotifRepo: adminNotifRepo,
		txManager:      txManager,
		eventBus:       eventBus,
		logger:         logger,
	}
}

// Place validates the requested lines against the live catalog and creates
// the order. A line survives only if its product exists, is active, and its
// vendor is currently approved; failing lines are dropped without failing
// the order. The total is computed from server-side prices. If no line
// survives, ErrNoValidItems is returned and nothing is written.
func (s *Service) Place(ctx context.Context, req PlaceOrderRequest) (*PlaceOrderResult, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		// Guest checkout: the storefront sends whatever it has.
		userID = uuid.New()
	}

	o, err := order.NewOrder(userID, req.CustomerName, req.CustomerEmail, req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	dropped := 0
	approvedVendors := make(map[uuid.UUID]bool)
	for _, line := range req.Items {
		p, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			s.logger.Debug("dropping order line: product not found",
				zap.String("product_id", line.ProductID.String()))
			dropped++
			continue
		}
		if !p.Orderable() {
			s.logger.Debug("dropping order line: product inactive",
				zap.String("product_id", p.ID.String()))
			dropped++
			continue
		}

		approved, ok := approvedVendors[p.VendorID]
		if !ok {
			v, err := s.vendorRepo.FindByID(ctx, p.VendorID)
			approved = err == nil && v.IsApproved()
			approvedVendors[p.VendorID] = approved
		}
		if !approved {
			s.logger.Debug("dropping order line: vendor not approved",
				zap.String("vendor_id", p.VendorID.String()))
			dropped++
			continue
		}

		if err := o.AddItem(p.ID, p.VendorID, line.Quantity, p.Price); err != nil {
			return nil, err
		}
	}

	if len(o.Items) == 0 {
		return nil, ErrNoValidItems
	}

	alert, err := notification.NewAdmin(
		notification.AdminTypeNewOrder,
		"New order placed",
		fmt.Sprintf("Order #%s for %s was placed by %s", o.ShortID(), o.TotalAmount.StringFixed(2), o.CustomerName),
		map[string]any{
			"order_id":     o.ID.String(),
			"total_amount": o.TotalAmount.String(),
			"item_count":   len(o.Items),
		},
	)
	if err != nil {
		return nil, err
	}

	vendorNotifs := make([]*notification.Notification, 0, len(o.VendorIDs()))
	for _, vendorID := range o.VendorIDs() {
		n, err := notification.New(vendorID, notification.TypeSystem,
			"New order received",
			fmt.Sprintf("You have items in order #%s. Check your dashboard for details.", o.ShortID()),
			map[string]any{"order_id": o.ID.String()})
		if err != nil {
			return nil, err
		}
		vendorNotifs = append(vendorNotifs, n)
	}

	err = s.txManager.Do(ctx, func(tx any) error {
		if err := s.orderRepo.WithTx(tx).Save(ctx, o); err != nil {
			return err
		}
		if err := s.notifRepo.WithTx(tx).CreateBatch(ctx, vendorNotifs); err != nil {
			return err
		}
		return s.adminNotifRepo.WithTx(tx).Create(ctx, alert)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	s.logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("total", o.TotalAmount.String()),
		zap.Int("items", len(o.Items)),
		zap.Int("dropped", dropped))

	return &PlaceOrderResult{
		Order:        ToOrderResponse(o),
		DroppedLines: dropped,
	}, nil
}

// UpdateStatus advances an order's fulfilment state
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.Advance(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Get returns one order with its items
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// ListAll lists orders for the admin dashboard
func (s *Service) ListAll(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := shared.NewPaginated(ToOrderResponses(orders), total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByVendor lists orders containing at least one of the vendor's items
func (s *Service) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

func (s *Service) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("publishing order events failed", zap.Error(err))
	}
	o.ClearDomainEvents()
}
