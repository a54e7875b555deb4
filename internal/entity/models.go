package entity

import (
	"time"
)

// Product represents a product in the catalog. Products are loaded once at
// startup and treated as read-only afterwards.
type Product struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	OriginalPrice   int64  `json:"originalPrice"`
	DiscountedPrice int64  `json:"discountedPrice"`
	Image           string `json:"image"`
	InStock         bool   `json:"inStock"`
	Featured        bool   `json:"featured,omitempty"`
	SafetyRating    string `json:"safetyRating,omitempty"`
}

// CartItem is a line in the shopping cart. It carries a snapshot of the
// product taken at the time it was added, so later catalog changes never
// reprice an existing cart.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// ShippingDetails holds the validated checkout form fields.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// FullAddress joins the street address, city and ZIP code into the single
// shipping address string stored on the order.
func (s ShippingDetails) FullAddress() string {
	return s.Address + ", " + s.City + ", " + s.ZipCode
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID              string     `json:"id"`
	Items           []CartItem `json:"items"`
	Subtotal        int64      `json:"subtotal"`
	Discount        int64      `json:"discount"`
	CouponCode      string     `json:"couponCode,omitempty"`
	CouponDiscount  int64      `json:"couponDiscount"`
	Total           int64      `json:"total"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	ShippingAddress string     `json:"shippingAddress"`
	Status          string     `json:"status"` // "placed", "confirmed"
	OrderDate       time.Time  `json:"orderDate"`
}

// Event represents a domain event.
type Event interface {
	EventType() string
}

// OrderPlaced is emitted when an order is successfully persisted.
type OrderPlaced struct {
	OrderID    string     `json:"order_id"`
	Items      []CartItem `json:"items"`
	Total      int64      `json:"total"`
	CouponCode string     `json:"coupon_code,omitempty"`
	PlacedAt   time.Time  `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// OrderConfirmed is emitted when a placed order has been confirmed by the
// downstream projection.
type OrderConfirmed struct {
	OrderID     string    `json:"order_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

func (e OrderConfirmed) EventType() string { return "OrderConfirmed" }
