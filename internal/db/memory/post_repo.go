// Package memory keeps posts in process memory for development and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"minimalpost/internal/core/posts"
)

var _ posts.Repository = (*PostRepository)(nil)

// PostRepository is a mutex-guarded in-memory posts.Repository
// Posts are kept in insertion order; List sorts a copy
type PostRepository struct {
	posts []posts.Post
	mu    sync.RWMutex
}

// NewPostRepository creates an empty repository, optionally pre-filled
func NewPostRepository(seed ...posts.Post) *PostRepository {
	return &PostRepository{posts: slices.Clone(seed)}
}

// List returns copies of all posts, newest first
func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*posts.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0; i-- {
		p := r.posts[i]
		result = append(result, &p)
	}

	// Reverse insertion order plus a stable sort keeps same-day posts newest first
	slices.SortStableFunc(result, func(a, b *posts.Post) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return result, nil
}

// Create appends a post unless the ID is taken
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(post.ID) >= 0 {
		return fmt.Errorf("%w: %s", posts.ErrAlreadyExists, post.ID)
	}
	r.posts = append(r.posts, *post)
	return nil
}

// GetByID returns a copy of the post with the given ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, posts.ErrNotFound
	}
	p := r.posts[i]
	return &p, nil
}

// Update overwrites title and content of the stored post
func (r *PostRepository) Update(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(post.ID)
	if i < 0 {
		return posts.ErrNotFound
	}
	r.posts[i].Title = post.Title
	r.posts[i].Content = post.Content
	return nil
}

func (r *PostRepository) indexOf(id string) int {
	return slices.IndexFunc(r.posts, func(p posts.Post) bool { return p.ID == id })
}
