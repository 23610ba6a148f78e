package routes

import (
	"minimalpost/internal/api/handlers/post"
	"minimalpost/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the journal CRUD endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	// Initialize handlers
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", listHandler.HandleList)
		r.Post("/", createHandler.HandleCreate)
		r.Get("/{id}", getHandler.HandleGet)
		r.Put("/{id}", updateHandler.HandleUpdate)
	})
}
