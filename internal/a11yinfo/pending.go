package a11yinfo

import (
	"context"
	"fmt"
	"sync"
)

// Pending is an asynchronous result that settles at most once, either
// resolving with a value or rejecting with one. Settlement is driven
// entirely by the native layer's reply callback; a pending whose callback
// never fires never settles, so callers that cannot wait forever should
// pass a context with a deadline to Await.
type Pending[T any] struct {
	done     chan struct{}
	once     sync.Once
	value    T
	rejected bool
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// resolved returns a pending that has already resolved with v.
func resolved[T any](v T) *Pending[T] {
	p := newPending[T]()
	p.resolve(v)
	return p
}

func (p *Pending[T]) resolve(v T) {
	p.once.Do(func() {
		p.value = v
		close(p.done)
	})
}

func (p *Pending[T]) reject(v T) {
	p.once.Do(func() {
		p.value = v
		p.rejected = true
		close(p.done)
	})
}

// Await blocks until the result settles or ctx is done. A rejected result
// returns its value inside a *RejectionError.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		if p.rejected {
			return p.value, &RejectionError[T]{Value: p.value}
		}
		return p.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// RejectionError carries the value a pending result was rejected with.
// State queries reject with the literal value false when the native bridge
// is missing; callers treat that as "unknown/unsupported", not as a failure.
type RejectionError[T any] struct {
	Value T
}

func (e *RejectionError[T]) Error() string {
	return fmt.Sprintf("accessibility query rejected with %v", e.Value)
}
