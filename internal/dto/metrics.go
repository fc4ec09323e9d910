package dto

import (
	"github.com/ecomdash/analytics-api/internal/entity"
)

// KPIResponse is the /api/kpis payload. Every field is a well-defined number
// even when the backing tables are absent.
type KPIResponse struct {
	TotalSales             float64 `json:"total_sales"`
	TotalOrders            int     `json:"total_orders"`
	NewCustomersPast30Days int     `json:"new_customers_past_30_days"`
}

func NewKPIResponse(kpi entity.SalesKPI) KPIResponse {
	return KPIResponse{
		TotalSales:             kpi.TotalSales.InexactFloat64(),
		TotalOrders:            kpi.TotalOrders,
		NewCustomersPast30Days: kpi.NewCustomersPast30Day,
	}
}

// DailySalesResponse is one point of the /api/recent-sales series. The date
// is a calendar date with no time component.
type DailySalesResponse struct {
	Date       string  `json:"date"`
	DailySales float64 `json:"daily_sales"`
}

func NewDailySalesResponse(p entity.DailySales) DailySalesResponse {
	return DailySalesResponse{
		Date:       p.Date.Format("2006-01-02"),
		DailySales: p.DailySales.InexactFloat64(),
	}
}

func NewDailySalesListResponse(points []entity.DailySales) []DailySalesResponse {
	list := make([]DailySalesResponse, 0, len(points))
	for _, p := range points {
		list = append(list, NewDailySalesResponse(p))
	}
	return list
}
