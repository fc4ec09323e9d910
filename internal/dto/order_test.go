package dto

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderResponseDefaults(t *testing.T) {
	resp := NewOrderResponse(entity.Order{ID: 1001})

	assert.Equal(t, "#1001", resp.OrderNumber)
	assert.Equal(t, float64(0), resp.TotalPrice)
	assert.Equal(t, "pending", resp.FinancialStatus)
	assert.Equal(t, "unfulfilled", resp.FulfillmentStatus)
	assert.Equal(t, int64(0), resp.NumberOfItems)
	assert.Equal(t, "Unknown", resp.Customer.FirstName)
	assert.Equal(t, "Customer", resp.Customer.LastName)
	assert.Nil(t, resp.CreatedAt)
}

func TestNewOrderResponsePopulated(t *testing.T) {
	placed := time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC)
	resp := NewOrderResponse(entity.Order{
		ID:                2002,
		TotalPrice:        sql.NullString{String: "10.50", Valid: true},
		FinancialStatus:   sql.NullString{String: "paid", Valid: true},
		FulfillmentStatus: sql.NullString{String: "fulfilled", Valid: true},
		NumberOfItems:     sql.NullInt64{Int64: 2, Valid: true},
		CreatedAt:         sql.NullTime{Time: placed, Valid: true},
		CustomerFirstName: sql.NullString{String: "Jane", Valid: true},
		CustomerLastName:  sql.NullString{String: "Doe", Valid: true},
	})

	assert.Equal(t, "#2002", resp.OrderNumber)
	assert.Equal(t, 10.5, resp.TotalPrice)
	assert.Equal(t, "paid", resp.FinancialStatus)
	assert.Equal(t, "fulfilled", resp.FulfillmentStatus)
	assert.Equal(t, int64(2), resp.NumberOfItems)
	assert.Equal(t, "Jane", resp.Customer.FirstName)
	assert.Equal(t, placed, *resp.CreatedAt)
}

func TestNewOrderResponseUnparsablePrice(t *testing.T) {
	for _, raw := range []string{"abc", "", "NaN", "+Inf"} {
		resp := NewOrderResponse(entity.Order{
			ID:         1,
			TotalPrice: sql.NullString{String: raw, Valid: true},
		})
		assert.Equal(t, float64(0), resp.TotalPrice, "price %q", raw)
	}
}

func TestNewOrderListResponseEmpty(t *testing.T) {
	list := NewOrderListResponse(nil)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}
