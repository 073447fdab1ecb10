package insight

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// facets runs facet tasks for one store concurrently.
// Tasks never report errors to the group, so no task cancels another.
type facets struct {
	ctx      context.Context
	storeURL string
	logger   *slog.Logger

	g      errgroup.Group
	mu     sync.Mutex
	failed []string
}

// gather runs fn in its own goroutine and stores its value in dst.
// When fn fails or panics dst keeps the value it already holds, which is
// the facet's empty default.
func gather[T any](f *facets, name string, dst *T, fn func(ctx context.Context, storeURL string) (T, error)) {
	f.g.Go(func() error {
		v, err := capture(f.ctx, f.storeURL, fn)
		if err != nil {
			f.logger.Warn("facet failed", "store", f.storeURL, "facet", name, "err", err)
			f.mu.Lock()
			f.failed = append(f.failed, name)
			f.mu.Unlock()
			return nil
		}
		*dst = v
		return nil
	})
}

// capture calls fn, converting a panic into an error.
func capture[T any](ctx context.Context, storeURL string, fn func(ctx context.Context, storeURL string) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, storeURL)
}

// wait blocks until every task has finished.
func (f *facets) wait() {
	_ = f.g.Wait()
}
