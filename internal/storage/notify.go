package storage

import "sync"

// Collection identifies one of the three persisted collections in change
// notifications.
type Collection string

const (
	CollectionWorkouts   Collection = "workouts"
	CollectionLogs       Collection = "logs"
	CollectionBodyweight Collection = "bodyweight"
)

// Broker fans out collection-change notifications to subscribers. Backends
// publish after a write has committed, so a subscriber re-running its query
// always observes the new state. Subscription lifetime is scoped to the
// consuming view: cancel stops delivery.
type Broker struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Collection)
}

// Subscribe registers fn and returns a cancel function.
func (b *Broker) Subscribe(fn func(Collection)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Collection))
	}
	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish notifies all current subscribers that a collection changed.
func (b *Broker) Publish(c Collection) {
	b.mu.Lock()
	fns := make([]func(Collection), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
