package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimalpost/internal/core/posts"
	"minimalpost/internal/db/memory"
)

func newTestAPI(t *testing.T) http.Handler {
	repo := memory.NewPostRepository(posts.Post{ID: "1", Title: "A", Content: "a", CreatedAt: "2023-05-15"})
	return NewAPIRouter(posts.NewPostService(repo), nil, []string{"http://localhost:8080"})
}

func TestAPIRouter_CreateListUpdate(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"B","content":"b"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created posts.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "B", created.Title)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []posts.Post
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 2)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "1", listed[1].ID)

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/posts/1", strings.NewReader(`{"title":"A2","content":"a2"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"1","title":"A2","content":"a2","createdAt":"2023-05-15"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/posts/nope", strings.NewReader(`{"title":"x","content":"y"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestAPI(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAPIRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/posts/1", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()

	newTestAPI(t).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:8080", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
