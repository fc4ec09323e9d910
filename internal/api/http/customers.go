package httpapi

import (
	"net/http"

	"github.com/ecomdash/analytics-api/internal/dto"
	"github.com/ecomdash/analytics-api/internal/entity"
)

// recentRowsCap bounds the customers and orders listings.
const recentRowsCap = 100

func (h *handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tables, err := h.rep.Schema().ExistingTables(ctx, []string{entity.TableCustomers})
	if err != nil {
		respondInternalError(ctx, w, "can't probe tables for customers", err)
		return
	}
	if !tables.Has(entity.TableCustomers) {
		respondJSON(w, http.StatusOK, []dto.CustomerResponse{})
		return
	}

	customers, err := h.rep.Customers().GetRecentCustomers(ctx, recentRowsCap)
	if err != nil {
		respondInternalError(ctx, w, "can't get customers", err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}
