package httpapi

import (
	"net/http"

	"github.com/ecomdash/analytics-api/internal/dto"
	"github.com/ecomdash/analytics-api/internal/entity"
)

func (h *handlers) getKPIs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.rep.Schema().ExistingTables(ctx, []string{entity.TableOrders, entity.TableCustomers})
	if err != nil {
		respondInternalError(ctx, w, "can't probe tables for kpis", err)
		return
	}

	kpi, err := h.rep.Metrics().GetSalesKPIs(ctx, tables)
	if err != nil {
		respondInternalError(ctx, w, "can't get kpis", err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewKPIResponse(kpi))
}

func (h *handlers) recentSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.rep.Schema().ExistingTables(ctx, []string{entity.TableOrders})
	if err != nil {
		respondInternalError(ctx, w, "can't probe tables for recent sales", err)
		return
	}
	if !tables.Has(entity.TableOrders) {
		respondJSON(w, http.StatusOK, []dto.DailySalesResponse{})
		return
	}

	points, err := h.rep.Metrics().GetDailySales(ctx)
	if err != nil {
		respondInternalError(ctx, w, "can't get recent sales", err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewDailySalesListResponse(points))
}
