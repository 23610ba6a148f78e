package post

import (
	"net/http"

	"minimalpost/internal/api/handlers"
	"minimalpost/internal/core/posts"
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/posts
// Response: JSON array of posts, newest first (empty array when there are none)
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
