// Package live implements the reactive query layer: an observer registry
// keyed by collection name. Writes publish a "collection changed" event and
// subscribed queries re-run against the latest committed state.
//
// This is plain message passing. A query declares nothing up front; its
// dependency set is whatever collections its most recent evaluation read,
// recorded through a Tracker carried in the context.
package live

import "sync"

// Bus fans collection-change notifications out to subscribers.
// Safe for concurrent use.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(collection string)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(string))}
}

// Publish notifies all subscribers that the given collections changed.
// Callers publish after commit only, never mid-transaction.
func (b *Bus) Publish(collections ...string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		for _, c := range collections {
			fn(c)
		}
	}
}

func (b *Bus) subscribe(fn func(string)) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	b.subs[b.next] = fn
	return b.next
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}
