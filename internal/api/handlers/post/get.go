package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"minimalpost/internal/api/handlers"
	"minimalpost/internal/core/posts"
)

// GetHandler handles single post lookups
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// HandleGet handles GET /api/posts/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
