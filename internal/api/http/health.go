package httpapi

import (
	"net/http"
	"time"
)

type rootResponse struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

type healthResponse struct {
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	DatabaseHost string `json:"database_host"`
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, rootResponse{
		Message:     "E-commerce Analytics API is running!",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.info.Environment,
	})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	dbHost := h.info.DatabaseHost
	if dbHost == "" {
		dbHost = "not configured"
	}
	respondJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		DatabaseHost: dbHost,
	})
}
