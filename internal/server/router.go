package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/diewo77/invoicing-api/internal/handlers"
	"github.com/diewo77/invoicing-api/internal/httpx"
	"github.com/diewo77/invoicing-api/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggerMiddleware(logger))
	r.Use(recoverMiddleware(logger))

	// Health endpoints. /healthz runs a lightweight DB probe.
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ih := handlers.NewInvoiceHandler(services.NewInvoiceService(db))
	r.Route("/invoices", func(r chi.Router) {
		r.Post("/", ih.Create)
		r.Get("/", ih.List)
		r.Get("/{id}", ih.Get)
		r.Delete("/{id}", ih.Delete)
	})

	r.Get("/products", handlers.NewProductHandler(db).List)
	r.Get("/clients", handlers.NewClientHandler(db).List)

	return r
}
