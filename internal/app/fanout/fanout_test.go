package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-domain-kernel/internal/app/fanout"
)

func TestRun_NoItems(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	outcomes := fanout.Run(context.Background(), 5, []int{}, func(context.Context, int) (string, error) {
		calls.Add(1)
		return "", nil
	})

	require.NotNil(t, outcomes)
	assert.Empty(t, outcomes)
	assert.Zero(t, calls.Load(), "fn must not run for an empty input")
}

func TestRun_TransformsEveryItem(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	outcomes := fanout.Run(context.Background(), 3, items, func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("#%02d", n), nil
	})

	require.Len(t, outcomes, len(items))
	for i, oc := range outcomes {
		require.NoError(t, oc.Err, "item %d", i)
		assert.Equal(t, fmt.Sprintf("#%02d", items[i]), oc.Value, "item %d", i)
	}
}

func TestRun_PartialFailureIsIsolated(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	outcomes := fanout.Run(context.Background(), 2, []int{3, 5, 8}, func(_ context.Context, n int) (int, error) {
		if n == 5 {
			return 0, errBoom
		}
		return n + 100, nil
	})

	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Equal(t, 103, outcomes[0].Value)
	assert.ErrorIs(t, outcomes[1].Err, errBoom)
	assert.Zero(t, outcomes[1].Value)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, 108, outcomes[2].Value)
}

func TestRun_OutcomesAlignWithInput(t *testing.T) {
	t.Parallel()

	// Decreasing delays make later items finish first; outcomes must still
	// line up with the inputs.
	items := []time.Duration{
		25 * time.Millisecond,
		5 * time.Millisecond,
		15 * time.Millisecond,
	}

	outcomes := fanout.Run(context.Background(), 3, items, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	require.Len(t, outcomes, len(items))
	for i, oc := range outcomes {
		require.NoError(t, oc.Err, "item %d", i)
		assert.Equal(t, items[i], oc.Value, "item %d", i)
	}
}

func TestRun_CapsConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2
	const totalItems = 10

	var (
		mu           sync.Mutex
		active, peak int
	)

	outcomes := fanout.Run(context.Background(), maxWorkers, make([]int, totalItems), func(context.Context, int) (int, error) {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		mu.Unlock()

		time.Sleep(8 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return 0, nil
	})

	require.Len(t, outcomes, totalItems)
	assert.LessOrEqual(t, peak, maxWorkers, "observed concurrency above the cap")
}

func TestRun_CancelSkipsUnstartedItems(t *testing.T) {
	t.Parallel()

	// One worker, cancellation during the first call: the remaining items
	// must be recorded with ctx.Err() without fn running for them.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	outcomes := fanout.Run(ctx, 1, []string{"a", "b", "c"}, func(_ context.Context, s string) (string, error) {
		calls.Add(1)
		cancel()
		return s + "!", nil
	})

	require.Len(t, outcomes, 3)
	assert.EqualValues(t, 1, calls.Load(), "only the first item may start")

	require.NoError(t, outcomes[0].Err, "an in-flight call runs to completion")
	assert.Equal(t, "a!", outcomes[0].Value)
	assert.ErrorIs(t, outcomes[1].Err, context.Canceled)
	assert.ErrorIs(t, outcomes[2].Err, context.Canceled)
}

func TestRun_WorkerSurplusIsHarmless(t *testing.T) {
	t.Parallel()

	outcomes := fanout.Run(context.Background(), 100, []int{7, 9}, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})

	require.Len(t, outcomes, 2)
	assert.Equal(t, 14, outcomes[0].Value)
	assert.Equal(t, 18, outcomes[1].Value)
}
