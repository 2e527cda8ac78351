package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/usama6513/convert-api/internal/api"
	apiMiddleware "github.com/usama6513/convert-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	convertHandler := api.NewConvertHandler(app.converter)
	categoryHandler := api.NewCategoryHandler(app.converter)
	historyHandler := api.NewHistoryHandler(app.converter)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", convertHandler.Convert)
		r.Post("/convert/text", convertHandler.ConvertText)
		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{category}/units", categoryHandler.ListUnits)
		r.Get("/history", historyHandler.ListHistory)
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
