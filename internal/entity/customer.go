package entity

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Customer represents a row of the customers table. The sync leaves numeric
// columns null for customers it has no history for.
type Customer struct {
	ID          int64               `db:"id"`
	Email       sql.NullString      `db:"email"`
	FirstName   sql.NullString      `db:"first_name"`
	LastName    sql.NullString      `db:"last_name"`
	OrdersCount sql.NullInt64       `db:"orders_count"`
	TotalSpent  decimal.NullDecimal `db:"total_spent"`
	CreatedAt   sql.NullTime        `db:"created_at"`
}
