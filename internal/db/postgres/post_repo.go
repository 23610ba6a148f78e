package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"minimalpost/internal/core/posts"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint failures
const uniqueViolation = "23505"

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// List returns all posts, newest first
// indexed_at breaks ties between posts created on the same day
func (r *postgresPostRepo) List(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, title, content, created_at
		FROM posts
		ORDER BY created_at DESC, indexed_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return result, nil
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, title, content, created_at, indexed_at)
		VALUES ($1, $2, $3, $4::date, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", posts.ErrAlreadyExists, post.ID)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its ID
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, title, content, created_at
		FROM posts
		WHERE id = $1
	`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return post, nil
}

// Update overwrites title and content; created_at is never touched
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var createdAt time.Time

	if err := row.Scan(&post.ID, &post.Title, &post.Content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	post.CreatedAt = posts.FormatCreatedAt(createdAt)
	return &post, nil
}
