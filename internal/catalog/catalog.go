// Package catalog holds the read-only product catalog and the filter,
// search and pagination logic that browses it.
package catalog

import (
	"errors"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
)

// ErrNotFound is returned when a product id is not in the catalog.
var ErrNotFound = errors.New("catalog: product not found")

// Store is the in-memory catalog, loaded wholesale at startup and
// read-only afterwards.
type Store struct {
	products []entity.Product
	byID     map[string]entity.Product
}

// NewStore builds a catalog from a product list, preserving its order.
func NewStore(products []entity.Product) *Store {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Store{products: products, byID: byID}
}

// Products returns all products in catalog order. Callers must not
// mutate the returned slice.
func (s *Store) Products() []entity.Product {
	return s.products
}

// Get looks a product up by id.
func (s *Store) Get(id string) (entity.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return entity.Product{}, ErrNotFound
	}
	return p, nil
}

// Featured returns the products flagged as featured, in catalog order.
func (s *Store) Featured() []entity.Product {
	var featured []entity.Product
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
