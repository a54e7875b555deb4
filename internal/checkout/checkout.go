// Package checkout materializes orders from the cart and pricing
// breakdown and hands them to the persistence collaborators.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sparkbazaar/storefront-backend/internal/cart"
	"github.com/sparkbazaar/storefront-backend/internal/entity"
	"github.com/sparkbazaar/storefront-backend/internal/messaging"
	"github.com/sparkbazaar/storefront-backend/internal/pricing"
	"github.com/sparkbazaar/storefront-backend/internal/repository"
)

// TopicOrderPlaced carries OrderPlaced events to downstream consumers.
const TopicOrderPlaced = "orders.placed"

// ErrEmptyCart is returned when checkout is attempted with nothing in
// the cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Service orchestrates order placement.
type Service struct {
	cart      *cart.Store
	orders    repository.OrderRepository
	lastOrder repository.LastOrderStore
	publisher messaging.Publisher

	now   func() time.Time
	newID func() string
}

// NewService wires a checkout service. publisher may be nil, in which
// case no events are emitted.
func NewService(cartStore *cart.Store, orders repository.OrderRepository, lastOrder repository.LastOrderStore, publisher messaging.Publisher) *Service {
	return &Service{
		cart:      cartStore,
		orders:    orders,
		lastOrder: lastOrder,
		publisher: publisher,
		now:       time.Now,
		newID:     func() string { return "ORD-" + uuid.NewString() },
	}
}

// PlaceOrder snapshots the cart, prices it, and persists the resulting
// order. The cart is cleared only after persistence succeeds: a storage
// failure means the order was not placed and the cart is left intact.
// An invalid coupon code is not an error; it simply contributes no
// discount and is not recorded on the order.
func (s *Service) PlaceOrder(ctx context.Context, shipping entity.ShippingDetails, couponCode string) (*entity.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	appliedCoupon := ""
	if pricing.ValidCoupon(couponCode) {
		appliedCoupon = couponCode
	}
	totals := pricing.CalculateTotals(items, appliedCoupon)

	order := &entity.Order{
		ID:              s.newID(),
		Items:           items,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		CouponCode:      appliedCoupon,
		CouponDiscount:  totals.CouponDiscount,
		Total:           totals.Total,
		CustomerName:    shipping.Name,
		CustomerEmail:   shipping.Email,
		ShippingAddress: shipping.FullAddress(),
		Status:          "placed",
		OrderDate:       s.now().UTC(),
	}

	slog.Info("Placing order", "order_id", order.ID, "items", len(order.Items), "total", order.Total)

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	if err := s.lastOrder.Put(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to write last order: %w", err)
	}

	// Persistence succeeded; the order is placed.
	s.cart.Clear()

	if s.publisher != nil {
		event := entity.OrderPlaced{
			OrderID:    order.ID,
			Items:      order.Items,
			Total:      order.Total,
			CouponCode: order.CouponCode,
			PlacedAt:   order.OrderDate,
		}
		if err := s.publisher.PublishEvent(ctx, TopicOrderPlaced, order.ID, event); err != nil {
			// The order is already placed; a lost event must not
			// undo it.
			slog.Error("Failed to publish OrderPlaced", "order_id", order.ID, "err", err)
		}
	}

	slog.Info("Order placed", "order_id", order.ID)
	return order, nil
}

// HandleOrderPlaced is triggered by the message broker when an order is
// placed, and marks the projection confirmed.
func (s *Service) HandleOrderPlaced(ctx context.Context, event *entity.OrderPlaced) error {
	slog.Info("Confirming order", "order_id", event.OrderID)

	if err := s.orders.Confirm(ctx, event.OrderID); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	return nil
}

// LastOrder returns the most recently placed order, or
// repository.ErrNoOrder when the slot is empty.
func (s *Service) LastOrder(ctx context.Context) (*entity.Order, error) {
	return s.lastOrder.Get(ctx)
}

// RecentOrders returns the latest orders from the projection.
func (s *Service) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.orders.FindRecent(ctx, limit)
}
