package httpapi

import (
	"net/http"

	"github.com/ecomdash/analytics-api/internal/dto"
)

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.rep.Products().GetAllProducts(r.Context())
	if err != nil {
		respondInternalError(r.Context(), w, "can't get products", err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewProductListResponse(products))
}
