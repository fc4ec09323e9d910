package store

import (
	"context"
	"fmt"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/entity"
)

type productStore struct {
	*PostgresStore
}

// Products returns an object implementing the products interface.
func (ps *PostgresStore) Products() dependency.Products {
	return &productStore{
		PostgresStore: ps,
	}
}

const selectAllProducts = `
	SELECT id, title, vendor, product_type, handle, status, tags, variants, created_at
	FROM products
	ORDER BY created_at DESC`

func (s *productStore) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := QueryListNamed[entity.Product](ctx, s.db, selectAllProducts, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}
