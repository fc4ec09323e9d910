package dto

import (
	"time"

	"github.com/ecomdash/analytics-api/internal/entity"
)

// CustomerResponse is the wire shape of one customer row. total_spent and
// orders_count are never null on the wire; missing source values become 0.
type CustomerResponse struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	TotalSpent  float64    `json:"total_spent"`
	OrdersCount int64      `json:"orders_count"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func NewCustomerResponse(c entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:          c.ID,
		FirstName:   stringOrEmpty(c.FirstName),
		LastName:    stringOrEmpty(c.LastName),
		Email:       stringOrEmpty(c.Email),
		TotalSpent:  floatOrZero(c.TotalSpent),
		OrdersCount: int64OrZero(c.OrdersCount),
	}
	if c.CreatedAt.Valid {
		t := c.CreatedAt.Time
		resp.CreatedAt = &t
	}
	return resp
}

func NewCustomerListResponse(customers []entity.Customer) []CustomerResponse {
	list := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		list = append(list, NewCustomerResponse(c))
	}
	return list
}
