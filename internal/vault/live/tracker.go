package live

import (
	"context"
	"sync"
)

// Tracker records the collections a query evaluation reads.
type Tracker struct {
	mu      sync.Mutex
	touched map[string]struct{}
}

// Touch marks a collection as read.
func (t *Tracker) Touch(collection string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.touched == nil {
		t.touched = make(map[string]struct{})
	}
	t.touched[collection] = struct{}{}
}

// Touched returns a copy of the recorded collection set.
func (t *Tracker) Touched() map[string]struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]struct{}, len(t.touched))
	for k := range t.touched {
		out[k] = struct{}{}
	}
	return out
}

type trackerKey struct{}

// WithTracker returns a child context carrying a fresh Tracker.
func WithTracker(ctx context.Context) (context.Context, *Tracker) {
	t := &Tracker{}
	return context.WithValue(ctx, trackerKey{}, t), t
}

// Touch records a collection read on the context's Tracker, if any.
// Reads outside a live query carry no tracker and this is a no-op.
func Touch(ctx context.Context, collection string) {
	if t, ok := ctx.Value(trackerKey{}).(*Tracker); ok {
		t.Touch(collection)
	}
}
