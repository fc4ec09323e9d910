package dto

import (
	"time"

	"github.com/ecomdash/analytics-api/internal/entity"
)

// ProductResponse is the wire shape of one product row. price and
// inventory_quantity are display values taken from the first variant, zeroed
// when the variant list is empty.
type ProductResponse struct {
	ID                int64            `json:"id"`
	Title             string           `json:"title"`
	Vendor            string           `json:"vendor"`
	ProductType       string           `json:"product_type"`
	Status            string           `json:"status"`
	Handle            string           `json:"handle,omitempty"`
	Tags              string           `json:"tags,omitempty"`
	Price             float64          `json:"price"`
	InventoryQuantity int              `json:"inventory_quantity"`
	Variants          []entity.Variant `json:"variants,omitempty"`
	CreatedAt         *time.Time       `json:"created_at,omitempty"`
}

func NewProductResponse(p entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Title:       stringOrEmpty(p.Title),
		Vendor:      stringOrEmpty(p.Vendor),
		ProductType: stringOrEmpty(p.ProductType),
		Status:      stringOrEmpty(p.Status),
		Handle:      stringOrEmpty(p.Handle),
		Tags:        stringOrEmpty(p.Tags),
		Variants:    p.Variants(),
	}
	if len(resp.Variants) > 0 {
		resp.Price = parsePrice(resp.Variants[0].Price)
		resp.InventoryQuantity = resp.Variants[0].InventoryQuantity
	}
	if p.CreatedAt.Valid {
		t := p.CreatedAt.Time
		resp.CreatedAt = &t
	}
	return resp
}

func NewProductListResponse(products []entity.Product) []ProductResponse {
	list := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, NewProductResponse(p))
	}
	return list
}
