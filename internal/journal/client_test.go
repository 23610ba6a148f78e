package journal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimalpost/internal/core/posts"
)

func TestClient_ListPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","title":"A","content":"a","createdAt":"2024-01-01"},{"id":"0","title":"Z","content":"z"}]`))
	}))
	defer server.Close()

	result, err := NewClient(server.URL, server.Client()).ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []posts.Post{
		{ID: "1", Title: "A", Content: "a", CreatedAt: "2024-01-01"},
		{ID: "0", Title: "Z", Content: "z"},
	}, result)
}

func TestClient_CreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"B","content":"b"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"2","title":"B","content":"b","createdAt":"2024-01-01"}`))
	}))
	defer server.Close()

	created, err := NewClient(server.URL+"/", nil).CreatePost(context.Background(), posts.CreatePostRequest{Title: "B", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, posts.Post{ID: "2", Title: "B", Content: "b", CreatedAt: "2024-01-01"}, created)
}

func TestClient_UpdatePostEscapesID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.EscapedPath()

		var req posts.UpdatePostRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(posts.Post{ID: "a/b", Title: req.Title, Content: req.Content})
	}))
	defer server.Close()

	updated, err := NewClient(server.URL, nil).UpdatePost(context.Background(), "a/b", posts.UpdatePostRequest{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "/api/posts/a%2Fb", gotPath)
	assert.Equal(t, posts.Post{ID: "a/b", Title: "T", Content: "C"}, updated)
}

func TestClient_NonSuccessStatusIsRequestFailure(t *testing.T) {
	statuses := []int{
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
	}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"error":"X","message":"y"}`))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, nil).ListPosts(context.Background())
			require.Error(t, err)

			var reqErr *RequestFailure
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, status, reqErr.StatusCode)
			assert.Equal(t, "list posts", reqErr.Operation)
		})
	}
}

func TestClient_MalformedBodyIsRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, nil).ListPosts(context.Background())
	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_TransportErrorIsRequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url, nil).CreatePost(context.Background(), posts.CreatePostRequest{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
}

func TestClient_TimeoutIsRequestFailure(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, &http.Client{Timeout: 50 * time.Millisecond})
	_, err := client.ListPosts(context.Background())
	require.Error(t, err)
	assert.True(t, IsRequestFailure(err))
}

func TestClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000", NewClient("", nil).BaseURL())
}
