package posts

import (
	"time"
)

// createdAtLayout is the display format for CreatedAt.
// Clients treat the value as an opaque string and never parse it.
const createdAtLayout = "2006-01-02"

// Post represents a journal entry
// IDs are assigned by the service on create and never by clients
type Post struct {
	ID        string `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required,max=10000"`
}

// UpdatePostRequest represents input for replacing a post's title and content
// ID and CreatedAt are kept from the stored post
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required,max=10000"`
}

// FormatCreatedAt renders a timestamp the way it is stored and served
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
