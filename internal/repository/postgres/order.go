package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sparkbazaar/storefront-backend/internal/entity"
	"github.com/sparkbazaar/storefront-backend/internal/repository"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository backed by Postgres.
func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Save writes the order and its line items in one transaction. Checkout
// relies on this being all-or-nothing: a failed save must leave no
// partial order behind.
func (r *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, subtotal, discount, coupon_code, coupon_discount, total, customer_name, customer_email, shipping_address, status, order_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		order.ID, order.Subtotal, order.Discount, order.CouponCode, order.CouponDiscount, order.Total,
		order.CustomerName, order.CustomerEmail, order.ShippingAddress, order.Status, order.OrderDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, name, original_price, discounted_price, quantity) VALUES ($1, $2, $3, $4, $5, $6)",
			order.ID, item.ProductID, item.Product.Name, item.Product.OriginalPrice, item.Product.DiscountedPrice, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *orderRepository) Confirm(ctx context.Context, orderID string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE orders SET status = 'confirmed' WHERE id = $1",
		orderID,
	)
	if err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	return nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subtotal, discount, coupon_code, coupon_discount, total, customer_name, customer_email, shipping_address, status, order_date
		 FROM orders ORDER BY order_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Subtotal, &o.Discount, &o.CouponCode, &o.CouponDiscount, &o.Total,
			&o.CustomerName, &o.CustomerEmail, &o.ShippingAddress, &o.Status, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	// Fetch items for each order.
	for i := range orders {
		itemRows, err := r.db.QueryContext(ctx,
			"SELECT product_id, name, original_price, discounted_price, quantity FROM order_items WHERE order_id = $1 ORDER BY id",
			orders[i].ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query order items: %w", err)
		}

		for itemRows.Next() {
			var item entity.CartItem
			if err := itemRows.Scan(&item.ProductID, &item.Product.Name, &item.Product.OriginalPrice, &item.Product.DiscountedPrice, &item.Quantity); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("failed to scan order item: %w", err)
			}
			item.Product.ID = item.ProductID
			orders[i].Items = append(orders[i].Items, item)
		}
		itemRows.Close()
	}

	return orders, nil
}
