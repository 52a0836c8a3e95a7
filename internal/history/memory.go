package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryLog is an in-memory implementation of [Log].
//
// MemoryLog provides thread-safe, bounded storage with a publish-subscribe
// mechanism. Retention is capped at 300 entries; when the cap is exceeded
// the oldest entries are discarded.
//
// Subscribers receive entries via buffered channels (buffer size 100).
// Appends are sent non-blocking; if a subscriber's buffer is full, the
// entry is dropped for that subscriber to prevent blocking the loop.
type MemoryLog struct {
	mu      sync.RWMutex
	entries []Entry

	subMu       sync.RWMutex
	subscribers map[chan Entry]struct{}
}

// NewMemoryLog creates a new in-memory [Log] implementation.
//
// The log is immediately ready for use. No cleanup is required when done.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		subscribers: make(map[chan Entry]struct{}),
	}
}

// Append records an [Entry] and notifies all subscribers.
//
// A fresh ID is assigned when the entry has none, and SentAt defaults to
// the current time. The stored entry is returned.
func (m *MemoryLog) Append(e Entry) Entry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.SentAt.IsZero() {
		e.SentAt = time.Now()
	}

	m.mu.Lock()
	m.entries = append(m.entries, e)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
	m.mu.Unlock()

	m.notifySubscribers(e)
	return e
}

// Recent returns a snapshot of the retained entries, oldest first.
//
// The returned slice is a copy; modifications do not affect the log.
func (m *MemoryLog) Recent() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Entry(nil), m.entries...)
}

// Subscribe creates a new subscription and returns a channel for
// receiving appended entries.
//
// The returned channel has a buffer of 100 entries. If the buffer fills
// (slow consumer), new entries are dropped for this subscriber.
//
// Caller must call [MemoryLog.Unsubscribe] when done to prevent resource leaks.
func (m *MemoryLog) Subscribe() <-chan Entry {
	ch := make(chan Entry, 100)

	m.subMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
//
// After calling Unsubscribe, the channel will be closed and no further
// entries will be sent. Safe to call multiple times or with an unknown channel.
func (m *MemoryLog) Unsubscribe(ch <-chan Entry) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends the entry to all active subscribers.
//
// This is non-blocking: if a subscriber's channel buffer is full, the entry
// is dropped for that subscriber rather than blocking the append path.
func (m *MemoryLog) notifySubscribers(e Entry) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- e:
		default:
			// subscriber is slow, drop the entry
		}
	}
}
