package store

import (
	"context"
	"fmt"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/entity"
)

type customerStore struct {
	*PostgresStore
}

// Customers returns an object implementing the customers interface.
func (ps *PostgresStore) Customers() dependency.Customers {
	return &customerStore{
		PostgresStore: ps,
	}
}

const selectRecentCustomers = `
	SELECT id, email, first_name, last_name, orders_count, total_spent, created_at
	FROM customers
	ORDER BY created_at DESC
	LIMIT :limit`

func (s *customerStore) GetRecentCustomers(ctx context.Context, limit int) ([]entity.Customer, error) {
	customers, err := QueryListNamed[entity.Customer](ctx, s.db, selectRecentCustomers, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get customers: %w", err)
	}
	return customers, nil
}
