package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"
)

type errResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", "err", err)
	}
}

// respondInternalError logs the cause and emits the uniform opaque 500 body.
// No internal detail crosses the endpoint boundary.
func respondInternalError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	slog.Default().ErrorContext(ctx, msg, "err", err)
	respondJSON(w, http.StatusInternalServerError, errResponse{Error: "Internal Server Error"})
}
