package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ecomdash/analytics-api/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database POSTGRES_TEST_DSN points at and resets
// the dashboard tables. Tests are skipped when no test database is available.
func newTestDB(t *testing.T) *PostgresStore {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, table := range []string{"orders", "customers", "products"} {
		require.NoError(t, ExecNamed(ctx, db.db, "DELETE FROM "+table, map[string]any{}))
	}
	return db
}

func seedCustomer(t *testing.T, db *PostgresStore, id int64, createdAt time.Time) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO customers (id, email, first_name, last_name, orders_count, total_spent, created_at)
		VALUES (:id, :email, :first_name, :last_name, :orders_count, :total_spent, :created_at)`,
		map[string]any{
			"id":           id,
			"email":        "jane@example.com",
			"first_name":   "Jane",
			"last_name":    "Doe",
			"orders_count": nil,
			"total_spent":  nil,
			"created_at":   createdAt,
		})
	require.NoError(t, err)
}

func seedOrder(t *testing.T, db *PostgresStore, id int64, customerID any, totalPrice string, createdAt time.Time) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO orders (id, customer_id, total_price, financial_status, fulfillment_status, number_of_items, created_at)
		VALUES (:id, :customer_id, :total_price, :financial_status, :fulfillment_status, :number_of_items, :created_at)`,
		map[string]any{
			"id":                 id,
			"customer_id":        customerID,
			"total_price":        totalPrice,
			"financial_status":   nil,
			"fulfillment_status": nil,
			"number_of_items":    nil,
			"created_at":         createdAt,
		})
	require.NoError(t, err)
}

func TestSchemaProbe(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tables, err := db.Schema().ExistingTables(ctx, []string{
		entity.TableProducts, entity.TableOrders, entity.TableCustomers, "shipments",
	})
	require.NoError(t, err)

	assert.True(t, tables.Has(entity.TableProducts))
	assert.True(t, tables.Has(entity.TableOrders))
	assert.True(t, tables.Has(entity.TableCustomers))
	assert.False(t, tables.Has("shipments"))
}

func TestGetSalesKPIs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedCustomer(t, db, 1001, now.Add(-time.Hour))
	seedCustomer(t, db, 1002, now.AddDate(0, 0, -40))
	seedOrder(t, db, 2001, int64(1001), "10.50", now.Add(-time.Hour))
	seedOrder(t, db, 2002, nil, "5.00", now.Add(-time.Hour))

	tables := entity.TableSet{
		entity.TableOrders:    entity.TablePresent,
		entity.TableCustomers: entity.TablePresent,
	}
	kpi, err := db.Metrics().GetSalesKPIs(ctx, tables)
	require.NoError(t, err)

	assert.True(t, kpi.TotalSales.Equal(decimal.NewFromFloat(15.5)), "got %s", kpi.TotalSales)
	assert.Equal(t, 2, kpi.TotalOrders)
	assert.Equal(t, 1, kpi.NewCustomersPast30Day)
}

func TestGetSalesKPIsAbsentTablesStayZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedOrder(t, db, 2001, nil, "10.50", now)

	kpi, err := db.Metrics().GetSalesKPIs(ctx, entity.TableSet{
		entity.TableCustomers: entity.TablePresent,
	})
	require.NoError(t, err)

	assert.True(t, kpi.TotalSales.IsZero())
	assert.Equal(t, 0, kpi.TotalOrders)
	assert.Equal(t, 0, kpi.NewCustomersPast30Day)
}

func TestGetSalesKPIsNoOrders(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	kpi, err := db.Metrics().GetSalesKPIs(ctx, entity.TableSet{
		entity.TableOrders: entity.TablePresent,
	})
	require.NoError(t, err)

	// SUM over an empty table is NULL and resolves to 0.
	assert.True(t, kpi.TotalSales.IsZero())
	assert.Equal(t, 0, kpi.TotalOrders)
}

func TestGetDailySalesGroupsByDate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	placed := time.Now().UTC().Add(-time.Hour)
	seedOrder(t, db, 2001, nil, "10.50", placed)
	seedOrder(t, db, 2002, nil, "5.00", placed)
	// Outside the trailing 30-day window.
	seedOrder(t, db, 2003, nil, "99.99", placed.AddDate(0, 0, -40))

	points, err := db.Metrics().GetDailySales(ctx)
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.True(t, points[0].DailySales.Equal(decimal.NewFromFloat(15.5)), "got %s", points[0].DailySales)
}

func TestGetRecentOrdersJoinAndNulls(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedCustomer(t, db, 1001, now)
	seedOrder(t, db, 2001, int64(1001), "10.50", now)
	seedOrder(t, db, 2002, nil, "abc", now.Add(-time.Minute))

	tables := entity.TableSet{
		entity.TableOrders:    entity.TablePresent,
		entity.TableCustomers: entity.TablePresent,
	}
	orders, err := db.Orders().GetRecentOrders(ctx, tables, 100)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first.
	assert.Equal(t, int64(2001), orders[0].ID)
	assert.Equal(t, "Jane", orders[0].CustomerFirstName.String)

	assert.False(t, orders[1].CustomerFirstName.Valid)
	assert.False(t, orders[1].FinancialStatus.Valid)
	assert.Equal(t, "abc", orders[1].TotalPrice.String)
}

func TestGetRecentOrdersWithoutCustomersTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedOrder(t, db, 2001, nil, "10.50", time.Now().UTC())

	orders, err := db.Orders().GetRecentOrders(ctx, entity.TableSet{
		entity.TableOrders: entity.TablePresent,
	}, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.False(t, orders[0].CustomerFirstName.Valid)
}

func TestGetRecentCustomersCap(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 101; i++ {
		seedCustomer(t, db, int64(1000+i), base.Add(-time.Duration(i)*time.Minute))
	}

	customers, err := db.Customers().GetRecentCustomers(ctx, 100)
	require.NoError(t, err)
	require.Len(t, customers, 100)

	// Newest first; the 101st-oldest row is excluded.
	assert.Equal(t, int64(1000), customers[0].ID)
	assert.Equal(t, int64(1099), customers[99].ID)
}

func TestGetAllProducts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	now := time.Now().UTC()
	err := ExecNamed(ctx, db.db, `
		INSERT INTO products (id, title, vendor, product_type, handle, status, tags, variants, created_at)
		VALUES (:id, :title, :vendor, :product_type, :handle, :status, :tags, :variants, :created_at)`,
		map[string]any{
			"id":           10,
			"title":        "Tee",
			"vendor":       "Acme",
			"product_type": "Apparel",
			"handle":       "tee",
			"status":       "active",
			"tags":         "summer",
			"variants":     `[{"price":"12.30","inventory_quantity":7}]`,
			"created_at":   now,
		})
	require.NoError(t, err)

	products, err := db.Products().GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Tee", products[0].Title.String)
	vs := products[0].Variants()
	require.Len(t, vs, 1)
	assert.Equal(t, "12.30", vs[0].Price)
}
