package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"minimalpost/internal/core/posts"
	"minimalpost/internal/journal"
)

// Handlers serves the journal page on top of a journal.Controller.
// Notifications published by the controller are queued in feed and shown once.
type Handlers struct {
	templates  *Templates
	controller *journal.Controller
	feed       *journal.Feed
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(templates *Templates, controller *journal.Controller, feed *journal.Feed) *Handlers {
	return &Handlers{
		templates:  templates,
		controller: controller,
		feed:       feed,
	}
}

// JournalPageData holds data for the journal page template.
type JournalPageData struct {
	// Title is the page title
	Title string
	// State is a snapshot of the controller state
	State journal.State
	// Notifications are the flash messages published since the last render
	Notifications []journal.Notification
}

// IndexHandler handles GET / and renders the journal page.
func (h *Handlers) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := JournalPageData{
		Title:         "minimalpost",
		State:         h.controller.State(),
		Notifications: h.feed.Drain(),
	}

	if err := h.templates.Render(w, "journal.html", data); err != nil {
		slog.Error("failed to render journal page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// SubmitHandler creates a post from the new-entry form
// POST /posts
func (h *Handlers) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.Warn("submit post: failed to parse form", "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// The controller has already notified; the error only goes to the log
	if err := h.controller.SubmitNewPost(r.Context(), r.PostFormValue("title"), r.PostFormValue("content")); err != nil {
		slog.Debug("submit post failed", "error", err)
	}

	redirectHome(w, r)
}

// BeginEditHandler makes a listed post the edit target
// POST /posts/{id}/edit
func (h *Handlers) BeginEditHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, ok := lo.Find(h.controller.State().Posts, func(p posts.Post) bool {
		return p.ID == id
	})
	if !ok {
		slog.Warn("begin edit: post not in list", "id", id)
		redirectHome(w, r)
		return
	}

	h.controller.BeginEdit(post)
	redirectHome(w, r)
}

// SaveHandler saves the edit form for a post
// POST /posts/{id}/save
func (h *Handlers) SaveHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		slog.Warn("save post: failed to parse form", "id", id, "error", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	// A stale form for another post must not overwrite the edit in progress
	if !h.controller.State().Editing(id) {
		slog.Warn("save post: not the current edit target", "id", id)
		redirectHome(w, r)
		return
	}

	h.controller.SetEditFields(r.PostFormValue("title"), r.PostFormValue("content"))
	if err := h.controller.SaveEdit(r.Context(), id); err != nil {
		slog.Debug("save post failed", "id", id, "error", err)
	}

	redirectHome(w, r)
}

// CancelEditHandler leaves edit mode
// POST /edit/cancel
func (h *Handlers) CancelEditHandler(w http.ResponseWriter, r *http.Request) {
	h.controller.CancelEdit()
	redirectHome(w, r)
}

// redirectHome sends the browser back to the page after a form post
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
