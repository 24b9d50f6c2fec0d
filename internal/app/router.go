package app

import (
	"net/http"

	"github.com/avc-dev/url-alias/internal/handler"
	"github.com/avc-dev/url-alias/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.GzipMiddleware(logger))

	// Routes
	r.Get("/ping", h.Ping)
	// Маршруты /url/... плоские: GET /url должен доходить до Redirect
	r.Post("/url/create", h.CreateURL)
	r.Get("/url/all", h.GetAllURLs)
	r.Delete("/url/delete/{id:[0-9]+}", h.DeleteURL)
	r.Get("/{shortUrl}", h.Redirect)

	return r
}
