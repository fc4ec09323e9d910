package httpapi

import (
	"net/http"

	"github.com/ecomdash/analytics-api/internal/dto"
	"github.com/ecomdash/analytics-api/internal/entity"
)

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.rep.Schema().ExistingTables(ctx, []string{entity.TableOrders, entity.TableCustomers})
	if err != nil {
		respondInternalError(ctx, w, "can't probe tables for orders", err)
		return
	}
	if !tables.Has(entity.TableOrders) {
		respondJSON(w, http.StatusOK, []dto.OrderResponse{})
		return
	}

	orders, err := h.rep.Orders().GetRecentOrders(ctx, tables, recentRowsCap)
	if err != nil {
		respondInternalError(ctx, w, "can't get orders", err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewOrderListResponse(orders))
}
