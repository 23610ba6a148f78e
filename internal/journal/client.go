package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"minimalpost/internal/core/posts"
)

// DefaultBaseURL is where the posts API listens in local development
const DefaultBaseURL = "http://localhost:5000"

// Backend is the CRUD API the Controller talks to
type Backend interface {
	// ListPosts fetches every post in backend order
	ListPosts(ctx context.Context) ([]posts.Post, error)

	// CreatePost submits a new post; the backend assigns ID and CreatedAt
	CreatePost(ctx context.Context, req posts.CreatePostRequest) (posts.Post, error)

	// UpdatePost replaces title and content of the post with the given ID
	UpdatePost(ctx context.Context, id string, req posts.UpdatePostRequest) (posts.Post, error)
}

// Client implements Backend over the JSON HTTP API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ Backend = (*Client)(nil)

// NewClient creates a client for the API at baseURL
// A nil httpClient uses a default client with no timeout beyond the transport's
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root the client was built with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPosts issues GET /api/posts
func (c *Client) ListPosts(ctx context.Context) ([]posts.Post, error) {
	var result []posts.Post
	if err := c.do(ctx, "list posts", http.MethodGet, "/api/posts", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreatePost issues POST /api/posts
func (c *Client) CreatePost(ctx context.Context, req posts.CreatePostRequest) (posts.Post, error) {
	var created posts.Post
	if err := c.do(ctx, "create post", http.MethodPost, "/api/posts", req, &created); err != nil {
		return posts.Post{}, err
	}
	return created, nil
}

// UpdatePost issues PUT /api/posts/{id}
func (c *Client) UpdatePost(ctx context.Context, id string, req posts.UpdatePostRequest) (posts.Post, error) {
	var updated posts.Post
	path := "/api/posts/" + url.PathEscape(id)
	if err := c.do(ctx, "update post", http.MethodPut, path, req, &updated); err != nil {
		return posts.Post{}, err
	}
	return updated, nil
}

// do sends one JSON request and decodes a 2xx JSON response into out
// Every failure comes back as a *RequestFailure
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestFailure{Operation: operation, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &RequestFailure{Operation: operation, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestFailure{Operation: operation, Err: err}
	}
	defer func() {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailure{Operation: operation, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailure{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}

	return nil
}
