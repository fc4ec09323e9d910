package dto

import (
	"database/sql"
	"testing"

	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestNewProductResponseFirstVariant(t *testing.T) {
	resp := NewProductResponse(entity.Product{
		ID:          10,
		Title:       sql.NullString{String: "Tee", Valid: true},
		Vendor:      sql.NullString{String: "Acme", Valid: true},
		Status:      sql.NullString{String: "active", Valid: true},
		VariantsRaw: []byte(`[{"price":"12.30","inventory_quantity":7},{"price":"9.99","inventory_quantity":1}]`),
	})

	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Tee", resp.Title)
	assert.Equal(t, 12.3, resp.Price)
	assert.Equal(t, 7, resp.InventoryQuantity)
	assert.Len(t, resp.Variants, 2)
}

func TestNewProductResponseNoVariants(t *testing.T) {
	resp := NewProductResponse(entity.Product{ID: 11})
	assert.Equal(t, float64(0), resp.Price)
	assert.Equal(t, 0, resp.InventoryQuantity)
	assert.Empty(t, resp.Variants)
}

func TestNewProductListResponseEmpty(t *testing.T) {
	list := NewProductListResponse(nil)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}
