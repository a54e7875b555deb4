// Package cart implements the shopping cart: an explicitly owned,
// injectable store with all mutation funnelled through its API.
package cart

import (
	"errors"
	"sync"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

var (
	// ErrNotFound is returned when the cart holds no item for the
	// given product id.
	ErrNotFound = errors.New("cart: item not found")

	// ErrInvalidQuantity is returned when a quantity below 1 is
	// supplied. Quantity never falls below 1 while an item exists;
	// removal deletes the item instead.
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
)

// Store holds the cart items. The storefront has a single logical
// writer, but HTTP requests arrive concurrently, so access is guarded by
// a mutex.
type Store struct {
	mu    sync.Mutex
	items []entity.CartItem
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts quantity units of product into the cart. If the product is
// already present its quantity is incremented rather than a duplicate
// entry being created.
func (s *Store) Add(product entity.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			return nil
		}
	}

	s.items = append(s.items, entity.CartItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   product,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing item.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes an item from the cart.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot copy of the cart in insertion order.
func (s *Store) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]entity.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// TotalItemCount returns the sum of all quantities.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Len returns the number of distinct products in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
