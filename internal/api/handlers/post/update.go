package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"minimalpost/internal/api/handlers"
	"minimalpost/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// HandleUpdate handles PUT /api/posts/{id}
//
// Request body: { "title": "...", "content": "..." }
// Response: the updated post
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req posts.UpdatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.service.UpdatePost(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
