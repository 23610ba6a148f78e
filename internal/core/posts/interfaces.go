package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// ListPosts returns every post, newest first
	ListPosts(ctx context.Context) ([]*Post, error)

	// GetPost retrieves a single post by ID
	GetPost(ctx context.Context, id string) (*Post, error)

	// CreatePost validates the request, assigns an ID and creation date, and stores the post
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// UpdatePost replaces title and content of an existing post
	// Returns ErrNotFound if no post has the given ID
	UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// List returns all posts ordered by creation date, newest first
	List(ctx context.Context) ([]*Post, error)

	// Create inserts a new post
	// The post ID must already be set
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by its ID
	// Returns ErrNotFound if the post does not exist
	GetByID(ctx context.Context, id string) (*Post, error)

	// Update overwrites title and content of the post with the same ID
	// Returns ErrNotFound if the post does not exist
	Update(ctx context.Context, post *Post) error
}
