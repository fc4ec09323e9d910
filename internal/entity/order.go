package entity

import (
	"database/sql"
)

// Order represents a row of the orders table left-joined to its owning
// customer. total_price is stored as text by the sync and parsed downstream.
type Order struct {
	ID                int64          `db:"id"`
	TotalPrice        sql.NullString `db:"total_price"`
	FinancialStatus   sql.NullString `db:"financial_status"`
	FulfillmentStatus sql.NullString `db:"fulfillment_status"`
	NumberOfItems     sql.NullInt64  `db:"number_of_items"`
	CreatedAt         sql.NullTime   `db:"created_at"`
	CustomerID        sql.NullInt64  `db:"customer_id"`
	CustomerFirstName sql.NullString `db:"customer_first_name"`
	CustomerLastName  sql.NullString `db:"customer_last_name"`
}
