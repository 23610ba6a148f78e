package web

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"minimalpost/internal/core/posts"
	"minimalpost/internal/journal"
)

func TestNewTemplates(t *testing.T) {
	templates, err := NewTemplates()
	if err != nil {
		t.Fatalf("NewTemplates() error = %v", err)
	}
	if templates == nil {
		t.Fatal("NewTemplates() returned nil")
	}
}

func renderJournal(t *testing.T, data JournalPageData) string {
	t.Helper()
	templates, err := NewTemplates()
	if err != nil {
		t.Fatalf("NewTemplates() error = %v", err)
	}

	w := httptest.NewRecorder()
	if err := templates.Render(w, "journal.html", data); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	return w.Body.String()
}

func TestTemplatesRender_EmptyJournal(t *testing.T) {
	body := renderJournal(t, JournalPageData{Title: "minimalpost", State: journal.State{Posts: []posts.Post{}}})

	for _, want := range []string{
		"minimalpost",
		"Thoughts &amp; Ideas",
		"A simple space for your thoughts, ideas, and stories.",
		"New Entry",
		"Journal",
		"Publish",
		"No entries yet. Share your first thought above.",
	} {
		if !bytes.Contains([]byte(body), []byte(want)) {
			t.Errorf("Rendered output does not contain %q", want)
		}
	}
}

func TestTemplatesRender_Loading(t *testing.T) {
	body := renderJournal(t, JournalPageData{State: journal.State{IsLoadingInitialList: true, IsSubmitting: true}})

	if !bytes.Contains([]byte(body), []byte("Loading posts...")) {
		t.Error("Loading state does not show loading text")
	}
	if bytes.Contains([]byte(body), []byte("No entries yet")) {
		t.Error("Loading state should not show empty text")
	}
	if !bytes.Contains([]byte(body), []byte("Saving...")) {
		t.Error("Submitting state does not show busy button")
	}
}

func TestTemplatesRender_PostsAndEditForm(t *testing.T) {
	state := journal.State{
		Posts: []posts.Post{
			{ID: "2", Title: "Simplicity", Content: "less", CreatedAt: "2023-06-22"},
			{ID: "1", Title: "<b>Essence</b>", Content: "design", CreatedAt: "2023-05-15"},
		},
		DraftTitle:  "half written",
		EditingID:   "2",
		EditTitle:   "Simplicity, revised",
		EditContent: "even less",
	}
	body := renderJournal(t, JournalPageData{
		State:         state,
		Notifications: []journal.Notification{{Kind: journal.KindSuccess, Message: journal.MsgCreated}},
	})

	for _, want := range []string{
		`value="half written"`,
		`action="/posts/2/save"`,
		`value="Simplicity, revised"`,
		"even less",
		`action="/posts/1/edit"`,
		"2023-05-15",
		"&lt;b&gt;Essence&lt;/b&gt;",
		"flash-success",
		"Post created successfully",
	} {
		if !bytes.Contains([]byte(body), []byte(want)) {
			t.Errorf("Rendered output does not contain %q", want)
		}
	}
	if bytes.Contains([]byte(body), []byte(`action="/posts/2/edit"`)) {
		t.Error("Post under edit should not show its edit button")
	}
}

func TestTemplatesRender_NotFound(t *testing.T) {
	templates, err := NewTemplates()
	if err != nil {
		t.Fatalf("NewTemplates() error = %v", err)
	}

	w := httptest.NewRecorder()
	err = templates.Render(w, "nonexistent.html", nil)
	if err == nil {
		t.Fatal("Render() should return error for nonexistent template")
	}
}
