package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"minimalpost/internal/api/middleware"
	"minimalpost/internal/core/posts"
)

// NewAPIRouter builds the backend router: shared middleware, health check and post routes
// rateLimiter may be nil to disable rate limiting
func NewAPIRouter(service posts.Service, rateLimiter *middleware.RateLimiter, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	if len(allowedOrigins) > 0 {
		r.Use(corsMiddleware(allowedOrigins))
	}

	if rateLimiter != nil {
		r.Use(rateLimiter.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	RegisterPostRoutes(r, service)

	return r
}

// corsMiddleware lets browser pages on other origins call the JSON API
func corsMiddleware(allowedOrigins []string) func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // 5 minutes
	})
}
