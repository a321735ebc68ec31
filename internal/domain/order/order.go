package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Status represents the fulfilment state of an order
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// Order is a customer purchase. Items carry the price at purchase time,
// copied from the server-side product price and never recomputed, so later
// price changes cannot rewrite historical totals.
type Order struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	CustomerName    string            `gorm:"type:varchar(200);not null"`
	CustomerEmail   string            `gorm:"type:varchar(200);not null"`
	ShippingAddress datatypes.JSONMap `gorm:"type:jsonb;not null"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(18,2);not null"`
	Status          Status            `gorm:"type:varchar(20);not null;default:'PENDING';index"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. VendorID is denormalized from the
// product so per-vendor order views do not need a join through products.
type OrderItem struct {
	shared.BaseEntity
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns price-at-purchase times quantity
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrder creates a pending order with no items
func NewOrder(userID uuid.UUID, customerName, customerEmail string, shippingAddress map[string]any) (*Order, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if customerEmail == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email cannot be empty")
	}
	if len(shippingAddress) == 0 {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot be empty")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		CustomerName:      customerName,
		CustomerEmail:     customerEmail,
		ShippingAddress:   datatypes.JSONMap(shippingAddress),
		TotalAmount:       decimal.Zero,
		Status:            StatusPending,
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// AddItem appends a line and folds it into the running total. The price must
// be the server-fetched product price, never a client-submitted one.
func (o *Order) AddItem(productID, vendorID uuid.UUID, quantity int, priceAtPurchase decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if priceAtPurchase.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	item := OrderItem{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         o.ID,
		ProductID:       productID,
		VendorID:        vendorID,
		Quantity:        quantity,
		PriceAtPurchase: priceAtPurchase,
	}
	o.Items = append(o.Items, item)
	o.TotalAmount = o.TotalAmount.Add(item.LineTotal())
	o.UpdatedAt = time.Now()

	return nil
}

// VendorIDs returns the distinct vendors represented among the items, in
// first-appearance order
func (o *Order) VendorIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Items))
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.VendorID]; ok {
			continue
		}
		seen[item.VendorID] = struct{}{}
		ids = append(ids, item.VendorID)
	}
	return ids
}

var legalTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// Advance moves the order to the next fulfilment state
func (o *Order) Advance(next Status) error {
	for _, allowed := range legalTransitions[o.Status] {
		if next == allowed {
			o.Status = next
			o.UpdatedAt = time.Now()
			o.IncrementVersion()
			return nil
		}
	}
	return shared.NewDomainError("INVALID_TRANSITION", "Order cannot move from "+string(o.Status)+" to "+string(next))
}

// ShortID returns the first eight characters of the order id, used in
// customer-facing references
func (o *Order) ShortID() string {
	return o.ID.String()[:8]
}
