package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/greenhub/backend/internal/domain/catalog"
	"github.com/greenhub/backend/internal/domain/shared"
	"github.com/greenhub/backend/internal/domain/vendor"
)

// suspensionSweepPageSize bounds how many listings one suspension sweep
// loads at a time.
const suspensionSweepPageSize = 200

// VendorSuspendedHandler takes a suspended vendor's listings off the
// storefront. Line validation at order time already drops their items; this
// keeps the public catalog consistent with the vendor's state.
type VendorSuspendedHandler struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewVendorSuspendedHandler creates a new handler for vendor suspension events
func NewVendorSuspendedHandler(productRepo catalog.ProductRepository, logger *zap.Logger) *VendorSuspendedHandler {
	return &VendorSuspendedHandler{
		productRepo: productRepo,
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *VendorSuspendedHandler) EventTypes() []string {
	return []string{vendor.EventTypeVendorSuspended}
}

// Handle deactivates every active listing of the suspended vendor
func (h *VendorSuspendedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	suspended, ok := event.(*vendor.VendorSuspendedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			vendor.EventTypeVendorSuspended, event.EventType())
	}

	deactivated := 0
	filter := shared.DefaultFilter()
	filter.PageSize = suspensionSweepPageSize
	for {
		products, err := h.productRepo.FindByVendor(ctx, suspended.VendorID, filter)
		if err != nil {
			return fmt.Errorf("listing products of suspended vendor: %w", err)
		}
		for i := range products {
			p := &products[i]
			if !p.IsActive {
				continue
			}
			p.Deactivate()
			if err := h.productRepo.Save(ctx, p); err != nil {
				return fmt.Errorf("deactivating product %s: %w", p.ID, err)
			}
			deactivated++
		}
		if len(products) < filter.PageSize {
			break
		}
		filter.Page++
	}

	h.logger.Info("suspended vendor's listings deactivated",
		zap.String("vendor_id", suspended.VendorID.String()),
		zap.Int("deactivated", deactivated))
	return nil
}

var _ shared.EventHandler = (*VendorSuspendedHandler)(nil)
