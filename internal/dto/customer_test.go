package dto

import (
	"database/sql"
	"testing"

	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCustomerResponseNullNumericsZeroed(t *testing.T) {
	resp := NewCustomerResponse(entity.Customer{
		ID:    42,
		Email: sql.NullString{String: "jane@example.com", Valid: true},
	})

	assert.Equal(t, float64(0), resp.TotalSpent)
	assert.Equal(t, int64(0), resp.OrdersCount)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestNewCustomerResponsePopulated(t *testing.T) {
	resp := NewCustomerResponse(entity.Customer{
		ID:          43,
		FirstName:   sql.NullString{String: "Jane", Valid: true},
		LastName:    sql.NullString{String: "Doe", Valid: true},
		OrdersCount: sql.NullInt64{Int64: 5, Valid: true},
		TotalSpent:  decimal.NullDecimal{Decimal: decimal.NewFromFloat(199.90), Valid: true},
	})

	assert.Equal(t, 199.9, resp.TotalSpent)
	assert.Equal(t, int64(5), resp.OrdersCount)
	assert.Equal(t, "Jane", resp.FirstName)
}
