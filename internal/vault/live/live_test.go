package live

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
	panic("unreachable")
}

func TestSubscribe_InitialDelivery(t *testing.T) {
	bus := NewBus()
	var value atomic.Int64
	value.Store(10)

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "finance_entries")
		return value.Load(), nil
	})
	defer sub.Unsubscribe()

	assert.Equal(t, int64(10), recv(t, sub.Updates()))
}

func TestSubscribe_ReevaluatesOnDependentWrite(t *testing.T) {
	bus := NewBus()
	var value atomic.Int64
	value.Store(1)

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "books")
		return value.Load(), nil
	})
	defer sub.Unsubscribe()

	require.Equal(t, int64(1), recv(t, sub.Updates()))

	value.Store(2)
	bus.Publish("books")
	assert.Equal(t, int64(2), recv(t, sub.Updates()))
}

func TestSubscribe_WriteDuringFirstEvaluationIsNotLost(t *testing.T) {
	bus := NewBus()
	var value atomic.Int64
	value.Store(1)

	entered := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool
	first.Store(true)

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "finance_entries")
		v := value.Load()
		if first.CompareAndSwap(true, false) {
			close(entered)
			<-release
		}
		return v, nil
	})
	defer sub.Unsubscribe()

	// commit a write while the first evaluation is still in flight,
	// after it has already read the old state
	<-entered
	value.Store(2)
	bus.Publish("finance_entries")
	close(release)

	require.Eventually(t, func() bool {
		select {
		case v := <-sub.Updates():
			return v == 2
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "the state committed mid-evaluation must be delivered")
}

func TestSubscribe_IgnoresUnrelatedCollections(t *testing.T) {
	bus := NewBus()
	var evals atomic.Int64

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "books")
		return evals.Add(1), nil
	})
	defer sub.Unsubscribe()

	require.Equal(t, int64(1), recv(t, sub.Updates()))

	bus.Publish("websites")
	bus.Publish("accounts")

	select {
	case v := <-sub.Updates():
		t.Fatalf("unexpected delivery %v for unrelated collections", v)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, int64(1), evals.Load())
}

func TestSubscribe_CoalescesRapidWrites(t *testing.T) {
	bus := NewBus()
	var value atomic.Int64

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "courses")
		return value.Load(), nil
	})
	defer sub.Unsubscribe()

	recv(t, sub.Updates())

	// burst of writes before the consumer reads again: only the latest
	// committed state must land eventually
	for i := 1; i <= 50; i++ {
		value.Store(int64(i))
		bus.Publish("courses")
	}

	require.Eventually(t, func() bool {
		select {
		case v := <-sub.Updates():
			return v == 50
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond, "latest state must be delivered")
}

func TestSubscribe_ErrorKeepsSubscriptionAlive(t *testing.T) {
	bus := NewBus()
	var fail atomic.Bool
	fail.Store(false)
	var value atomic.Int64
	value.Store(7)

	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int64, error) {
		Touch(ctx, "social_stats")
		if fail.Load() {
			return 0, assert.AnError
		}
		return value.Load(), nil
	})
	defer sub.Unsubscribe()

	require.Equal(t, int64(7), recv(t, sub.Updates()))

	fail.Store(true)
	bus.Publish("social_stats")
	time.Sleep(50 * time.Millisecond)

	fail.Store(false)
	value.Store(8)
	bus.Publish("social_stats")
	assert.Equal(t, int64(8), recv(t, sub.Updates()))
}

func TestUnsubscribe_ClosesUpdates(t *testing.T) {
	bus := NewBus()
	sub := Subscribe(context.Background(), bus, testLogger(), func(ctx context.Context) (int, error) {
		Touch(ctx, "websites")
		return 1, nil
	})

	recv(t, sub.Updates())
	sub.Unsubscribe()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Updates():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	// publishing after unsubscribe must not panic or deliver
	bus.Publish("websites")
}

func TestTracker_TouchOutsideQueryIsNoop(t *testing.T) {
	// no tracker on the context: must not panic
	Touch(context.Background(), "books")

	ctx, tracker := WithTracker(context.Background())
	Touch(ctx, "books")
	Touch(ctx, "books")
	Touch(ctx, "accounts")

	got := tracker.Touched()
	assert.Len(t, got, 2)
	assert.Contains(t, got, "books")
	assert.Contains(t, got, "accounts")
}
