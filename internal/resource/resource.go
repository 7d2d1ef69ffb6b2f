// ABOUTME: Partial-failure tolerant fetch results and per-panel resource state
// ABOUTME: Fetch never returns an error; Resource keeps the last good data on failure

package resource

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// Result is the outcome of one fetch: either OK with data, or Unavailable
// with the reason. The zero value is Unavailable with no reason.
type Result[T any] struct {
	Data T
	Err  error
	ok   bool
}

// OK wraps successfully fetched data.
func OK[T any](data T) Result[T] {
	return Result[T]{Data: data, ok: true}
}

// Unavailable wraps a fetch failure.
func Unavailable[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("unavailable")
	}
	return Result[T]{Err: err}
}

// Available reports whether the fetch succeeded.
func (r Result[T]) Available() bool {
	return r.ok
}

// Reason returns the failure text, or "" for an OK result.
func (r Result[T]) Reason() string {
	if r.ok || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Fetch runs fn and folds every failure, including a panic, into Unavailable.
func Fetch[T any](ctx context.Context, name string, fn func(context.Context) (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Fetch panicked", "resource", name, "panic", r, "stack", string(debug.Stack()))
			res = Unavailable[T](fmt.Errorf("internal error fetching %s", name))
		}
	}()

	data, err := fn(ctx)
	if err != nil {
		slog.Debug("Resource unavailable", "resource", name, "error", err)
		return Unavailable[T](err)
	}
	return OK(data)
}

// Map converts the data of an OK result and passes failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Unavailable[U](r.Err)
	}
	return OK(fn(r.Data))
}

// Resource is the display state of one panel: loading until the first
// result, then the most recent data plus the most recent error, if any.
// It is not safe for concurrent use; the owning event loop applies results.
type Resource[T any] struct {
	seq     uint64
	applied bool
	hasData bool
	data    T
	err     error
}

// Apply records the result of the fetch cycle seq. A result from a cycle
// older than one already applied is dropped and Apply returns false.
// A failure keeps the previous data and records the error; a success
// replaces the data and clears the error.
func (r *Resource[T]) Apply(seq uint64, res Result[T]) bool {
	if r.applied && seq < r.seq {
		return false
	}
	r.seq = seq
	r.applied = true
	if res.ok {
		r.data = res.Data
		r.hasData = true
		r.err = nil
		return true
	}
	r.err = res.Err
	return true
}

// Reset forgets everything, e.g. when the selected device changes.
func (r *Resource[T]) Reset() {
	*r = Resource[T]{}
}

// Loading reports whether no result has been applied yet.
func (r *Resource[T]) Loading() bool {
	return !r.applied
}

// Data returns the most recent successful data.
func (r *Resource[T]) Data() (T, bool) {
	return r.data, r.hasData
}

// Err returns the error of the most recent cycle, or nil if it succeeded.
func (r *Resource[T]) Err() error {
	return r.err
}

// Seq returns the cycle of the most recently applied result.
func (r *Resource[T]) Seq() uint64 {
	return r.seq
}
