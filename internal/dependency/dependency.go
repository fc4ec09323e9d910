package dependency

import (
	"context"
	"database/sql"

	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/jmoiron/sqlx"
)

// DB is the subset of sqlx the stores execute queries through.
type DB interface {
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
}

type (
	// Schema probes which of the candidate tables exist in the active
	// schema. Partial presence is the expected steady state while the ETL
	// provisions incrementally, never an error.
	Schema interface {
		ExistingTables(ctx context.Context, candidates []string) (entity.TableSet, error)
	}

	Products interface {
		// GetAllProducts returns every product row, most recent first.
		GetAllProducts(ctx context.Context) ([]entity.Product, error)
	}

	Customers interface {
		// GetRecentCustomers returns up to limit customers, most recent first.
		GetRecentCustomers(ctx context.Context, limit int) ([]entity.Customer, error)
	}

	Orders interface {
		// GetRecentOrders returns up to limit orders joined to their owning
		// customer, most recent first. The join is skipped when tables marks
		// customers absent.
		GetRecentOrders(ctx context.Context, tables entity.TableSet, limit int) ([]entity.Order, error)
	}

	Metrics interface {
		// GetSalesKPIs computes the rollup for whichever of orders/customers
		// are present in tables; absent tables leave their fields zeroed.
		GetSalesKPIs(ctx context.Context, tables entity.TableSet) (entity.SalesKPI, error)
		// GetDailySales returns the trailing 30-day series, ascending by date.
		GetDailySales(ctx context.Context) ([]entity.DailySales, error)
	}

	// Repository is the read-only data access layer handlers depend on.
	Repository interface {
		Schema() Schema
		Products() Products
		Customers() Customers
		Orders() Orders
		Metrics() Metrics
		DB() DB
		Close()
	}
)
