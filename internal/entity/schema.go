package entity

// Business tables the dashboard reads. The ETL owns their lifecycle, so any
// of them can be missing on a partially provisioned database.
const (
	TableProducts  = "products"
	TableOrders    = "orders"
	TableCustomers = "customers"
)

// TableStatus is the per-table existence gate evaluated fresh on every call.
type TableStatus int

const (
	TableAbsent TableStatus = iota
	TablePresent
)

// TableSet maps table names to their probed status.
type TableSet map[string]TableStatus

func (ts TableSet) Has(table string) bool {
	return ts[table] == TablePresent
}
