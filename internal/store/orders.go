package store

import (
	"context"
	"fmt"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/entity"
)

type orderStore struct {
	*PostgresStore
}

// Orders returns an object implementing the orders interface.
func (ps *PostgresStore) Orders() dependency.Orders {
	return &orderStore{
		PostgresStore: ps,
	}
}

const selectRecentOrders = `
	SELECT o.id, o.total_price, o.financial_status, o.fulfillment_status,
		o.number_of_items, o.created_at, o.customer_id,
		c.first_name AS customer_first_name,
		c.last_name AS customer_last_name
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id
	ORDER BY o.created_at DESC
	LIMIT :limit`

// selectRecentOrdersNoCustomers is used while the customers table hasn't been
// provisioned yet; every order then falls back to the placeholder customer.
const selectRecentOrdersNoCustomers = `
	SELECT o.id, o.total_price, o.financial_status, o.fulfillment_status,
		o.number_of_items, o.created_at, o.customer_id,
		NULL::text AS customer_first_name,
		NULL::text AS customer_last_name
	FROM orders o
	ORDER BY o.created_at DESC
	LIMIT :limit`

func (s *orderStore) GetRecentOrders(ctx context.Context, tables entity.TableSet, limit int) ([]entity.Order, error) {
	query := selectRecentOrders
	if !tables.Has(entity.TableCustomers) {
		query = selectRecentOrdersNoCustomers
	}
	orders, err := QueryListNamed[entity.Order](ctx, s.db, query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders: %w", err)
	}
	return orders, nil
}
