package loader

import (
	"context"
	"sync"
)

// Future is the pending result of an asynchronous load. It settles exactly once.
type Future struct {
	once  sync.Once
	done  chan struct{}
	model *Model
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Rejected returns a future that has already failed with err.
//
// Parameters:
//   - err: the rejection error
//
// Returns:
//   - *Future: the settled future
func Rejected(err error) *Future {
	f := newFuture()
	f.settle(nil, err)
	return f
}

// Resolved returns a future that has already succeeded with m.
func Resolved(m *Model) *Future {
	f := newFuture()
	f.settle(m, nil)
	return f
}

func (f *Future) settle(m *Model, err error) {
	f.once.Do(func() {
		f.model = m
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx is done. Cancelling ctx abandons the
// wait only; the load itself keeps running.
//
// Parameters:
//   - ctx: bounds the wait
//
// Returns:
//   - *Model: the loaded model, nil on failure
//   - error: the rejection error, or ctx.Err() if the wait was abandoned
func (f *Future) Wait(ctx context.Context) (*Model, error) {
	select {
	case <-f.done:
		return f.model, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Err returns the rejection error once settled, or nil while pending or on success.
func (f *Future) Err() error {
	select {
	case <-f.done:
		return f.err
	default:
		return nil
	}
}
