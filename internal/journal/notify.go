package journal

import (
	"sync"
)

// Kind classifies a notification for display
type Kind string

const (
	KindSuccess    Kind = "success"
	KindError      Kind = "error"
	KindValidation Kind = "validation"
)

// User-facing notification messages
const (
	MsgFillAllFields = "Please fill in all fields"
	MsgLoadFailed    = "Failed to load posts"
	MsgCreated       = "Post created successfully"
	MsgCreateFailed  = "Failed to create post"
	MsgUpdated       = "Post updated successfully"
	MsgUpdateFailed  = "Failed to update post"
)

// Notification is a transient, fire-and-forget message for the user
// It is never part of State
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives notifications published by the Controller
// Notify must not block for long; it is called on the goroutine that ran the operation
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Discard drops every notification
var Discard Notifier = NotifierFunc(func(Notification) {})

// Multi fans a notification out to several notifiers in order
func Multi(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, nt := range notifiers {
			nt.Notify(n)
		}
	})
}

// Feed buffers notifications until a view drains them
// When full, the oldest notification is dropped
type Feed struct {
	pending  []Notification
	capacity int
	mu       sync.Mutex
}

// NewFeed creates a Feed holding at most capacity notifications
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 1
	}
	return &Feed{capacity: capacity}
}

// Notify queues n
func (f *Feed) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pending) == f.capacity {
		f.pending = f.pending[1:]
	}
	f.pending = append(f.pending, n)
}

// Drain returns queued notifications in publish order and empties the feed
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.pending
	f.pending = nil
	return out
}
