package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unit-converter-service/internal/handler"
	"unit-converter-service/internal/metrics"
)

func SetupRoutes(r chi.Router, h *handler.ConverterHandler) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false, // must be false when using "*"
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware)

	// ---- Health and docs ----
	r.Get("/", h.HealthCheck)
	r.Get("/api-usage", h.APIUsage)
	r.Handle("/metrics", promhttp.Handler())

	// ---- Unit conversion ----
	r.Get("/categories", h.GetCategories)
	r.Get("/units", h.GetUnits)
	r.Post("/convert", h.ConvertUnits)

	// ---- Currency conversion ----
	r.Route("/currency", func(cr chi.Router) {
		cr.Post("/convert", h.ConvertCurrency)
		cr.Get("/symbols", h.GetCurrencySymbols)
	})

	return r
}
