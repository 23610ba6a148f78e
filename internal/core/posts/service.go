package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

// newValidator reports fields by their JSON name so messages match the wire format
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type postService struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ListPosts returns every stored post, newest first
func (s *postService) ListPosts(ctx context.Context) ([]*Post, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if result == nil {
		result = []*Post{}
	}
	return result, nil
}

// GetPost retrieves a post by ID
func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "id is required")
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError("post", id)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// CreatePost creates a new post
// Flow: Trim + validate -> assign ID and creation date -> store
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	post := &Post{
		ID:        s.newID(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: FormatCreatedAt(s.now()),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Printf("[POST-CREATE] Created post %s", post.ID)
	return post, nil
}

// UpdatePost replaces the title and content of an existing post
// Flow: Trim + validate -> load current post -> overwrite fields -> store
func (s *postService) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("id", "id is required")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError("post", id)
		}
		return nil, fmt.Errorf("failed to load post for update: %w", err)
	}

	updated := &Post{
		ID:        existing.ID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError("post", id)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	log.Printf("[POST-UPDATE] Updated post %s", updated.ID)
	return updated, nil
}

// validateRequest converts validator failures into a ValidationError for the first bad field
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return NewValidationError(fe.Field(), fe.Field()+" is required")
	case "max":
		return NewValidationError(fe.Field(),
			fmt.Sprintf("%s too long (max %s characters)", fe.Field(), fe.Param()))
	default:
		return NewValidationError(fe.Field(), fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag()))
	}
}
