package dto

import (
	"fmt"
	"time"

	"github.com/ecomdash/analytics-api/internal/entity"
)

// Storage has no real order-number column; the display number is synthesized
// from the id. Orders without a matching customer get a placeholder name so
// the dashboard never renders an empty cell.
const (
	unknownFirstName = "Unknown"
	unknownLastName  = "Customer"

	defaultFinancialStatus   = "pending"
	defaultFulfillmentStatus = "unfulfilled"
)

type OrderCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// OrderResponse is the reshaped display record for one order.
type OrderResponse struct {
	ID                int64         `json:"id"`
	OrderNumber       string        `json:"order_number"`
	TotalPrice        float64       `json:"total_price"`
	CreatedAt         *time.Time    `json:"created_at,omitempty"`
	FinancialStatus   string        `json:"financial_status"`
	FulfillmentStatus string        `json:"fulfillment_status"`
	NumberOfItems     int64         `json:"number_of_items"`
	Customer          OrderCustomer `json:"customer"`
}

func NewOrderResponse(o entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID,
		OrderNumber:       fmt.Sprintf("#%d", o.ID),
		TotalPrice:        nullPriceOrZero(o.TotalPrice),
		FinancialStatus:   stringOr(o.FinancialStatus, defaultFinancialStatus),
		FulfillmentStatus: stringOr(o.FulfillmentStatus, defaultFulfillmentStatus),
		NumberOfItems:     int64OrZero(o.NumberOfItems),
		Customer: OrderCustomer{
			FirstName: stringOr(o.CustomerFirstName, unknownFirstName),
			LastName:  stringOr(o.CustomerLastName, unknownLastName),
		},
	}
	if o.CreatedAt.Valid {
		t := o.CreatedAt.Time
		resp.CreatedAt = &t
	}
	return resp
}

func NewOrderListResponse(orders []entity.Order) []OrderResponse {
	list := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		list = append(list, NewOrderResponse(o))
	}
	return list
}
