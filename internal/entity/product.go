package entity

import (
	"database/sql"
	"encoding/json"
)

// Variant is a single entry of the products.variants JSON column as the
// Shopify sync writes it. Price arrives as a string ("12.30").
type Variant struct {
	ID                int64  `json:"id,omitempty"`
	Title             string `json:"title,omitempty"`
	SKU               string `json:"sku,omitempty"`
	Price             string `json:"price"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// Product represents a row of the products table.
type Product struct {
	ID          int64          `db:"id"`
	Title       sql.NullString `db:"title"`
	Vendor      sql.NullString `db:"vendor"`
	ProductType sql.NullString `db:"product_type"`
	Handle      sql.NullString `db:"handle"`
	Status      sql.NullString `db:"status"`
	Tags        sql.NullString `db:"tags"`
	VariantsRaw []byte         `db:"variants"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

// Variants decodes the raw JSON column. A missing or malformed column yields
// no variants rather than an error; price defaulting happens at the
// presentation layer.
func (p *Product) Variants() []Variant {
	if len(p.VariantsRaw) == 0 {
		return nil
	}
	var vs []Variant
	if err := json.Unmarshal(p.VariantsRaw, &vs); err != nil {
		return nil
	}
	return vs
}
