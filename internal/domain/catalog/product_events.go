package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Aggregate type constant for Product
const AggregateTypeProduct = "Product"

// Event type constants for Product
const (
	EventTypeProductCreated = "ProductCreated"
)

// ProductCreatedEvent is published when a vendor lists a new product
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID       `json:"product_id"`
	VendorID  uuid.UUID       `json:"vendor_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, p.ID),
		ProductID:       p.ID,
		VendorID:        p.VendorID,
		Name:            p.Name,
		Price:           p.Price,
	}
}
