package live

import (
	"context"
	"sync"

	"github.com/pumpkin2800/zarqon/internal/logging"
)

// QueryFunc is a side-effect-free read over one or more collections.
// It may filter, sort or aggregate in memory after reading.
type QueryFunc[T any] func(ctx context.Context) (T, error)

// Subscription is a live query handle. Results arrive on Updates: once
// shortly after Subscribe, then again after every committed write that
// touches a collection the previous evaluation read.
//
// Rapid writes coalesce: the subscriber sees the latest committed state,
// not every intermediate one. A delivered result is never older than the
// most recent committed write the query depends on.
type Subscription[T any] struct {
	bus     *Bus
	busID   int
	fn      QueryFunc[T]
	log     logging.Logger
	updates chan T
	trigger chan struct{}
	cancel  context.CancelFunc

	mu         sync.Mutex
	deps       map[string]struct{}
	evaluating bool
}

// Subscribe registers a live query on the bus. The first evaluation runs
// asynchronously; the caller holds the Updates channel before any delivery
// can happen, so no update is ever missed.
func Subscribe[T any](ctx context.Context, bus *Bus, log logging.Logger, fn QueryFunc[T]) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription[T]{
		bus:     bus,
		fn:      fn,
		log:     log,
		updates: make(chan T, 1),
		trigger: make(chan struct{}, 1),
		cancel:  cancel,
	}
	s.busID = bus.subscribe(s.onChange)
	s.trigger <- struct{}{} // initial evaluation
	go s.loop(ctx)
	return s
}

// Updates delivers query results. The channel is closed on Unsubscribe or
// when the subscription context is cancelled.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Unsubscribe stops re-evaluation and closes Updates.
func (s *Subscription[T]) Unsubscribe() {
	s.cancel()
}

func (s *Subscription[T]) onChange(collection string) {
	s.mu.Lock()
	_, hit := s.deps[collection]
	// A commit landing while an evaluation is in flight may not be
	// visible to its reads: the dependency set is not settled yet, so
	// re-evaluate rather than risk staying on the older snapshot.
	if s.evaluating {
		hit = true
	}
	s.mu.Unlock()
	if !hit {
		return
	}
	select {
	case s.trigger <- struct{}{}:
	default: // re-evaluation already pending, coalesce
	}
}

func (s *Subscription[T]) loop(ctx context.Context) {
	defer func() {
		s.bus.unsubscribe(s.busID)
		close(s.updates)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.trigger:
		}

		s.mu.Lock()
		s.evaluating = true
		s.mu.Unlock()

		tctx, tracker := WithTracker(ctx)
		result, err := s.fn(tctx)

		s.mu.Lock()
		s.deps = tracker.Touched()
		s.evaluating = false
		s.mu.Unlock()

		if err != nil {
			if ctx.Err() == nil {
				s.log.Error(ctx, "live query evaluation failed", "error", err)
			}
			continue
		}

		// drop a stale undelivered result so only the latest state lands
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- result:
		case <-ctx.Done():
			return
		}
	}
}
