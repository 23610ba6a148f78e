// Package journal holds the client side of the journal: the view state, the
// operations that change it, and the HTTP client for the posts API.
//
// Operations may run concurrently. Nothing serializes requests; each
// completion applies its change under the controller lock, so the request
// that finishes last wins.
package journal

import (
	"context"
	"log"
	"sync"

	"github.com/samber/lo"

	"minimalpost/internal/core/posts"
)

// Options tune controller behaviour
type Options struct {
	// ClearEditOnFailure clears the edit form when a save fails.
	// By default the user's edits are kept so the save can be retried,
	// matching how a failed create keeps the draft.
	ClearEditOnFailure bool
}

// Controller owns the journal State and performs user actions against a Backend
type Controller struct {
	backend  Backend
	notifier Notifier
	opts     Options

	mu    sync.Mutex
	state State

	// in-flight counters behind the busy flags
	loading    int
	submitting int
	saving     int
}

// NewController creates a controller with empty state
// A nil notifier discards notifications
func NewController(backend Backend, notifier Notifier, opts Options) *Controller {
	if notifier == nil {
		notifier = Discard
	}
	return &Controller{
		backend:  backend,
		notifier: notifier,
		opts:     opts,
		state:    State{Posts: []posts.Post{}},
	}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// LoadInitialPosts replaces the list with the backend's posts
// On failure it shows the fallback list and publishes one error notification.
// The failure is returned for logging only; the state is already usable.
func (c *Controller) LoadInitialPosts(ctx context.Context) error {
	c.mu.Lock()
	c.loading++
	c.syncBusy()
	c.mu.Unlock()

	result, err := c.backend.ListPosts(ctx)

	c.mu.Lock()
	c.loading--
	c.syncBusy()
	if err != nil {
		c.state.Posts = FallbackPosts()
	} else {
		if result == nil {
			result = []posts.Post{}
		}
		c.state.Posts = result
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("[JOURNAL] Error fetching posts: %v", err)
		c.notify(KindError, MsgLoadFailed)
		return err
	}
	return nil
}

// SetDraft records the new-post form fields without submitting
func (c *Controller) SetDraft(title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.DraftTitle = title
	c.state.DraftContent = content
}

// SubmitNewPost creates a post from title and content
// Blank fields publish a validation notification and send nothing.
// On success the created post is prepended and the draft cleared; on failure
// the list and the draft are left as they were.
func (c *Controller) SubmitNewPost(ctx context.Context, title, content string) error {
	c.mu.Lock()
	c.state.DraftTitle = title
	c.state.DraftContent = content
	if err := requireFields(title, content); err != nil {
		c.mu.Unlock()
		c.notify(KindValidation, MsgFillAllFields)
		return err
	}
	c.submitting++
	c.syncBusy()
	c.mu.Unlock()

	created, err := c.backend.CreatePost(ctx, posts.CreatePostRequest{Title: title, Content: content})

	c.mu.Lock()
	c.submitting--
	c.syncBusy()
	if err == nil {
		c.state.Posts = append([]posts.Post{created}, c.state.Posts...)
		c.state.DraftTitle = ""
		c.state.DraftContent = ""
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("[JOURNAL] Error creating post: %v", err)
		c.notify(KindError, MsgCreateFailed)
		return err
	}
	c.notify(KindSuccess, MsgCreated)
	return nil
}

// BeginEdit makes post the edit target, copying its fields into the edit form
// Any other edit in progress is discarded without warning.
func (c *Controller) BeginEdit(post posts.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.EditingID = post.ID
	c.state.EditTitle = post.Title
	c.state.EditContent = post.Content
}

// SetEditFields records the edit form fields
func (c *Controller) SetEditFields(title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.EditTitle = title
	c.state.EditContent = content
}

// CancelEdit leaves edit mode; the list is untouched
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearEdit()
}

// SaveEdit sends the edit form fields as the new content of post id
// On success every post with that id is replaced by the backend's copy and
// edit mode ends, unless the user has already moved on to another post.
func (c *Controller) SaveEdit(ctx context.Context, id string) error {
	c.mu.Lock()
	title, content := c.state.EditTitle, c.state.EditContent
	if err := requireFields(title, content); err != nil {
		c.mu.Unlock()
		c.notify(KindValidation, MsgFillAllFields)
		return err
	}
	c.saving++
	c.syncBusy()
	c.mu.Unlock()

	updated, err := c.backend.UpdatePost(ctx, id, posts.UpdatePostRequest{Title: title, Content: content})

	c.mu.Lock()
	c.saving--
	c.syncBusy()
	switch {
	case err == nil:
		c.state.Posts = lo.Map(c.state.Posts, func(p posts.Post, _ int) posts.Post {
			if p.ID == id {
				return updated
			}
			return p
		})
		if c.state.EditingID == id {
			c.clearEdit()
		}
	case c.opts.ClearEditOnFailure:
		c.clearEdit()
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("[JOURNAL] Error updating post %s: %v", id, err)
		c.notify(KindError, MsgUpdateFailed)
		return err
	}
	c.notify(KindSuccess, MsgUpdated)
	return nil
}

// clearEdit must be called with mu held
func (c *Controller) clearEdit() {
	c.state.EditingID = ""
	c.state.EditTitle = ""
	c.state.EditContent = ""
}

// syncBusy must be called with mu held
func (c *Controller) syncBusy() {
	c.state.IsLoadingInitialList = c.loading > 0
	c.state.IsSubmitting = c.submitting > 0
	c.state.IsSaving = c.saving > 0
}

// notify publishes outside the lock so notifiers may read State
func (c *Controller) notify(kind Kind, message string) {
	c.notifier.Notify(Notification{Kind: kind, Message: message})
}
