package post

import (
	"net/http"

	"minimalpost/internal/api/handlers"
	"minimalpost/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts
//
// Request body: { "title": "...", "content": "..." }
// Response: 201 with the created post, including the server-assigned id and createdAt
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, post)
}
