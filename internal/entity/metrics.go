package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesKPI is the dashboard rollup. Fields stay zero for tables that were
// absent when the rollup ran.
type SalesKPI struct {
	TotalSales            decimal.Decimal
	TotalOrders           int
	NewCustomersPast30Day int
}

// DailySales is one point of the trailing 30-day sales series. Dates without
// orders produce no point.
type DailySales struct {
	Date       time.Time       `db:"date"`
	DailySales decimal.Decimal `db:"daily_sales"`
}
