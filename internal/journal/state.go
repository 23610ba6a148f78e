package journal

import (
	"slices"

	"minimalpost/internal/core/posts"
)

// State is the view state of the journal page
// It is plain data: the Controller hands out copies and applies every change itself
type State struct {
	Posts []posts.Post

	DraftTitle   string
	DraftContent string

	// EditingID is empty when no post is being edited
	EditingID   string
	EditTitle   string
	EditContent string

	IsSubmitting         bool
	IsSaving             bool
	IsLoadingInitialList bool
}

// Editing reports whether the post with id is the current edit target
func (s State) Editing(id string) bool {
	return s.EditingID != "" && s.EditingID == id
}

func (s State) clone() State {
	s.Posts = slices.Clone(s.Posts)
	return s
}

// FallbackPosts is shown when the initial load fails so the page is never empty
func FallbackPosts() []posts.Post {
	return []posts.Post{
		{
			ID:        "1",
			Title:     "The Essence of Design",
			Content:   "Good design is as little design as possible. Less, but better – because it concentrates on the essential aspects, and the products are not burdened with non-essentials.",
			CreatedAt: "2023-05-15",
		},
		{
			ID:        "2",
			Title:     "Simplicity",
			Content:   "Simplicity is the ultimate sophistication. It takes a lot of hard work to make something simple, to truly understand the underlying challenges and come up with elegant solutions.",
			CreatedAt: "2023-06-22",
		},
	}
}
