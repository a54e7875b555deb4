// Package redis implements the single-slot last-order store on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
	"github.com/sparkbazaar/storefront-backend/internal/repository"
)

// lastOrderKey is the one slot the confirmation page reads. Every
// checkout overwrites it; there is no history and no rotation.
const lastOrderKey = "lastOrder"

type lastOrderStore struct {
	client *goredis.Client
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewLastOrderStore creates a LastOrderStore backed by Redis.
func NewLastOrderStore(client *goredis.Client) repository.LastOrderStore {
	return &lastOrderStore{client: client}
}

func (s *lastOrderStore) Put(ctx context.Context, order *entity.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := s.client.Set(ctx, lastOrderKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write last order slot: %w", err)
	}
	return nil
}

func (s *lastOrderStore) Get(ctx context.Context) (*entity.Order, error) {
	payload, err := s.client.Get(ctx, lastOrderKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrNoOrder
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last order slot: %w", err)
	}

	var order entity.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		// A malformed slot is "no order", not a failure.
		slog.Warn("Discarding malformed last order payload", "err", err)
		return nil, repository.ErrNoOrder
	}
	return &order, nil
}
