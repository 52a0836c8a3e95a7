package history

import "time"

// maxEntries bounds the in-memory log; older entries are discarded.
const maxEntries = 300

// Kind classifies a log entry.
type Kind string

const (
	// KindStatus marks a homework status-change notification.
	KindStatus Kind = "status"

	// KindError marks an error report sent to the chat.
	KindError Kind = "error"
)

// Entry is one notification delivered to the chat.
type Entry struct {
	// ID is a unique identifier assigned when the entry is appended.
	ID string `json:"id"`

	// Kind classifies the entry as a status change or an error report.
	Kind Kind `json:"kind"`

	// Text is the exact message text that was delivered.
	Text string `json:"text"`

	// SentAt is the delivery timestamp.
	SentAt time.Time `json:"sent_at"`
}

// Log defines the interface for recording and subscribing to deliveries.
//
// Log implementations must be safe for concurrent access.
type Log interface {
	// Append records a delivered notification and notifies all subscribers.
	// Missing ID and SentAt fields are filled in; the stored entry is returned.
	Append(e Entry) Entry

	// Recent returns the retained entries, oldest first.
	// The returned slice is a snapshot; modifications do not affect the log.
	Recent() []Entry

	// Subscribe returns a channel that receives appended entries.
	// The returned channel has a buffer; slow consumers may miss entries.
	// Caller must call Unsubscribe when done to prevent resource leaks.
	Subscribe() <-chan Entry

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan Entry)
}
