package httpapi

import (
	"net/http"
	"time"

	"github.com/ecomdash/analytics-api/internal/dependency"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) router(rep dependency.Repository, info HealthInfo) http.Handler {
	r := chi.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodOptions,
		},
	})

	r.Use(c.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	h := &handlers{
		rep:  rep,
		info: info,
	}

	r.Get("/", h.root)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/products", h.listProducts)
		r.Get("/kpis", h.getKPIs)
		r.Get("/recent-sales", h.recentSales)
		r.Get("/customers", h.listCustomers)
		r.Get("/orders", h.listOrders)
	})

	return r
}

// handlers holds the dependencies every route shares. No per-request state
// survives a request.
type handlers struct {
	rep  dependency.Repository
	info HealthInfo
}
