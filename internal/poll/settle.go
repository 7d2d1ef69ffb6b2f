// ABOUTME: All-settle fan-out for the fetches of one poll cycle
// ABOUTME: Runs tasks concurrently and waits for every one, isolating panics

package poll

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Task is one independent fetch of a cycle. It stores its own result.
type Task func(ctx context.Context)

// Settle runs every task concurrently and returns once all of them have
// finished. There is no ordering between tasks and no early exit: a slow or
// failing task never cancels its siblings, and a panic is logged and contained.
func Settle(ctx context.Context, tasks ...Task) {
	var g errgroup.Group
	for _, task := range tasks {
		if task == nil {
			continue
		}
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Fetch task panicked", "panic", r)
				}
			}()
			task(ctx)
			return nil
		})
	}
	_ = g.Wait()
}
