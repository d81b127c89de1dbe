package players

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// sharedWorkTimeout bounds a build or fetch that outlives the caller that
// started it.
const sharedWorkTimeout = 2 * time.Minute

// shared runs fn once per key across concurrent callers. fn receives a context
// detached from the starting caller's cancellation, so one caller going away
// does not fail the others or abort the cache write. Each caller still stops
// waiting as soon as its own ctx is done.
func shared[T any](ctx context.Context, group *singleflight.Group, key string, fn func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	ch := group.DoChan(key, func() (any, error) {
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedWorkTimeout)
		defer cancel()
		return fn(workCtx)
	})

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Shared, res.Err
		}
		return res.Val.(T), res.Shared, nil
	}
}
