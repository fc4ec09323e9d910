package store

import (
	"context"
	"fmt"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type metricsStore struct {
	*PostgresStore
}

// Metrics returns an object implementing the metrics interface.
func (ps *PostgresStore) Metrics() dependency.Metrics {
	return &metricsStore{
		PostgresStore: ps,
	}
}

// The 30-day windows are measured against the database server's clock;
// deployments run the database in UTC.
const (
	totalSalesQuery = `
		SELECT SUM(total_price::numeric) AS total_sales
		FROM orders`

	totalOrdersQuery = `
		SELECT COUNT(*) FROM orders`

	newCustomersQuery = `
		SELECT COUNT(*) FROM customers
		WHERE created_at >= NOW() - INTERVAL '30 days'`

	dailySalesQuery = `
		SELECT DATE(created_at) AS date,
			SUM(total_price::numeric) AS daily_sales
		FROM orders
		WHERE created_at >= NOW() - INTERVAL '30 days'
		GROUP BY DATE(created_at)
		ORDER BY date ASC`
)

type totalSalesRow struct {
	TotalSales decimal.NullDecimal `db:"total_sales"`
}

// GetSalesKPIs computes the rollup for whichever tables are present. The
// sub-queries fan out over the connection pool and are joined before
// returning; any of them failing fails the whole rollup.
func (ms *metricsStore) GetSalesKPIs(ctx context.Context, tables entity.TableSet) (entity.SalesKPI, error) {
	var kpi entity.SalesKPI

	g, ctx := errgroup.WithContext(ctx)

	if tables.Has(entity.TableOrders) {
		g.Go(func() error {
			row, err := QueryNamedOne[totalSalesRow](ctx, ms.db, totalSalesQuery, map[string]any{})
			if err != nil {
				return fmt.Errorf("total sales: %w", err)
			}
			// SUM over zero rows is NULL, which resolves to 0.
			if row.TotalSales.Valid {
				kpi.TotalSales = row.TotalSales.Decimal
			}
			return nil
		})
		g.Go(func() error {
			count, err := QueryCountNamed(ctx, ms.db, totalOrdersQuery, map[string]any{})
			if err != nil {
				return fmt.Errorf("total orders: %w", err)
			}
			kpi.TotalOrders = count
			return nil
		})
	}

	if tables.Has(entity.TableCustomers) {
		g.Go(func() error {
			count, err := QueryCountNamed(ctx, ms.db, newCustomersQuery, map[string]any{})
			if err != nil {
				return fmt.Errorf("new customers: %w", err)
			}
			kpi.NewCustomersPast30Day = count
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return entity.SalesKPI{}, err
	}
	return kpi, nil
}

func (ms *metricsStore) GetDailySales(ctx context.Context) ([]entity.DailySales, error) {
	points, err := QueryListNamed[entity.DailySales](ctx, ms.db, dailySalesQuery, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get daily sales: %w", err)
	}
	return points, nil
}
