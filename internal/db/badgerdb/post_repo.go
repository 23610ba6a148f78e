// Package badgerdb stores posts in an embedded BadgerDB, for running the API as a single binary.
package badgerdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	"minimalpost/internal/core/posts"
)

const postPrefix = "post:"

// storedPost is the on-disk value; IndexedAt orders posts created on the same day
type storedPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"createdAt"`
	IndexedAt time.Time `json:"indexedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var _ posts.Repository = (*PostRepository)(nil)

// PostRepository implements posts.Repository on BadgerDB
type PostRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

// NewPostRepository creates a post repository on an open BadgerDB
// A nil logger uses slog.Default()
func NewPostRepository(db *badger.DB, log *slog.Logger) *PostRepository {
	if log == nil {
		log = slog.Default()
	}
	return &PostRepository{db: db, log: log, now: time.Now}
}

// Open opens (or creates) a BadgerDB directory with quiet logging
func Open(path string) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %s: %w", path, err)
	}
	return db, nil
}

func postKey(id string) []byte {
	return []byte(postPrefix + id)
}

// List scans the post prefix and returns posts newest first
func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	var stored []storedPost
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(postPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var sp storedPost
				if err := json.Unmarshal(val, &sp); err != nil {
					r.log.Warn("skipping unreadable post", "key", string(item.Key()), "error", err)
					return nil
				}
				stored = append(stored, sp)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	slices.SortStableFunc(stored, func(a, b storedPost) int {
		if c := strings.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return b.IndexedAt.Compare(a.IndexedAt)
	})

	return lo.Map(stored, func(sp storedPost, _ int) *posts.Post {
		return toPost(sp)
	}), nil
}

// Create stores a new post, refusing to overwrite an existing ID
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	sp := storedPost{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
		IndexedAt: r.now().UTC(),
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(postKey(post.ID))
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", posts.ErrAlreadyExists, post.ID)
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return setPost(txn, sp)
	})
	if err != nil {
		if errors.Is(err, posts.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by its ID
func (r *PostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	var sp storedPost
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		sp, err = getPost(txn, id)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}
	return toPost(sp), nil
}

// Update overwrites title and content, keeping creation metadata
func (r *PostRepository) Update(ctx context.Context, post *posts.Post) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		sp, err := getPost(txn, post.ID)
		if err != nil {
			return err
		}
		sp.Title = post.Title
		sp.Content = post.Content
		sp.UpdatedAt = r.now().UTC()
		return setPost(txn, sp)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return posts.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func getPost(txn *badger.Txn, id string) (storedPost, error) {
	var sp storedPost
	item, err := txn.Get(postKey(id))
	if err != nil {
		return sp, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &sp)
	})
	return sp, err
}

func setPost(txn *badger.Txn, sp storedPost) error {
	b, err := json.Marshal(sp)
	if err != nil {
		return err
	}
	return txn.Set(postKey(sp.ID), b)
}

func toPost(sp storedPost) *posts.Post {
	return &posts.Post{
		ID:        sp.ID,
		Title:     sp.Title,
		Content:   sp.Content,
		CreatedAt: sp.CreatedAt,
	}
}
