package routes

import (
	"github.com/go-chi/chi/v5"

	"minimalpost/internal/journal"
	"minimalpost/internal/web"
)

// RegisterWebRoutes registers the journal page and its form actions.
func RegisterWebRoutes(r chi.Router, controller *journal.Controller, feed *journal.Feed) {
	// Initialize templates
	templates, err := web.NewTemplates()
	if err != nil {
		panic("failed to load web templates: " + err.Error())
	}

	handlers := web.NewHandlers(templates, controller, feed)

	r.Get("/", handlers.IndexHandler)

	r.Post("/posts", handlers.SubmitHandler)
	r.Post("/posts/{id}/edit", handlers.BeginEditHandler)
	r.Post("/posts/{id}/save", handlers.SaveHandler)
	r.Post("/edit/cancel", handlers.CancelEditHandler)
}
