package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minimalpost/internal/api/handlers"
	"minimalpost/internal/core/posts"
)

// maxBodyBytes caps request bodies; title and content limits fit well inside it
const maxBodyBytes = 1 * 1024 * 1024

// decodeBody reads a size-limited JSON body into dst and writes the error response on failure
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return false
		}
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case posts.IsConflict(err):
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Post already exists")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
