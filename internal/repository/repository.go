package repository

import (
	"context"
	"errors"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

// ErrNoOrder is returned by LastOrderStore.Get when no order has been
// placed yet, or the stored payload cannot be decoded. Callers render an
// empty state rather than failing.
var ErrNoOrder = errors.New("repository: no last order")

// ProductRepository handles persistence for Products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	// Seed inserts initial products if none exist.
	Seed(ctx context.Context, products []entity.Product) error
}

// OrderRepository is the durable order projection.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) error
	Confirm(ctx context.Context, orderID string) error
	FindRecent(ctx context.Context, limit int) ([]entity.Order, error)
}

// LastOrderStore is the single overwritable slot holding the most recent
// order. Each checkout overwrites it; last write wins.
type LastOrderStore interface {
	Put(ctx context.Context, order *entity.Order) error
	Get(ctx context.Context) (*entity.Order, error)
}
