package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenhub/backend/internal/domain/order"
)

// OrderLineRequest is one requested line of a new order. Prices are never
// accepted from the client; they are read from the product at placement time.
type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// PlaceOrderRequest creates an order. UserID is accepted as free text:
// anything that does not parse as a uuid is treated as a guest checkout
// and replaced with a generated id.
type PlaceOrderRequest struct {
	UserID          string             `json:"user_id"`
	CustomerName    string             `json:"customer_name" binding:"required,max=200"`
	CustomerEmail   string             `json:"customer_email" binding:"required,email,max=200"`
	ShippingAddress map[string]any     `json:"shipping_address" binding:"required"`
	Items           []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateStatusRequest advances an order's fulfilment state
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// OrderItemResponse is one line of an order
type OrderItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	VendorID        uuid.UUID       `json:"vendor_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	ShippingAddress map[string]any      `json:"shipping_address"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// PlaceOrderResult reports the created order plus how many requested lines
// did not survive validation
type PlaceOrderResult struct {
	Order        OrderResponse `json:"order"`
	DroppedLines int           `json:"dropped_lines"`
}

// ToOrderResponse maps a domain order to its API representation
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items[i] = OrderItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			VendorID:        item.VendorID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			LineTotal:       item.LineTotal(),
		}
	}

	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses maps a slice of domain orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
