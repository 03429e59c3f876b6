package events

import (
	"sync"
	"time"
)

// Topics published by the lifecycle coordinator. Siblings that used to poke
// each other through a process-wide slot subscribe here instead.
const (
	TopicCameraRelease    = "camera.release"
	TopicSessionCompleted = "session.completed"
	TopicMocksChanged     = "mocks.changed"
)

// Event is a broadcast notification scoped to one user.
type Event struct {
	Topic     string    `json:"topic"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id,omitempty"`
	At        time.Time `json:"at"`
}

type subscriber struct {
	userID string
	ch     chan Event
}

// Bus is a small in-process publish/subscribe channel. Publishing never
// blocks: slow subscribers drop events rather than stall the coordinator.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
	closed bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]*subscriber)}
}

// Subscribe registers a listener for events addressed to userID.
// The returned cancel func must be called to release the subscription.
func (b *Bus) Subscribe(userID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	sub := &subscriber{userID: userID, ch: make(chan Event, 16)}
	if !b.closed {
		b.subs[id] = sub
	} else {
		close(sub.ch)
	}

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if s, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(s.ch)
		}
	}
	return sub.ch, cancel
}

// Publish fans the event out to the owner's subscribers.
func (b *Bus) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, sub := range b.subs {
		if sub.userID != evt.UserID {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// Subscriber is not draining; drop instead of blocking.
		}
	}
}

// Close tears down all subscriptions; further publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
