package async

import (
	"context"
)

// DefaultPoolSize bounds concurrent blocking operations when no explicit
// size is configured.
const DefaultPoolSize = 64

// Pool bounds the number of concurrently executing blocking operations.
// Slots act as natural backpressure: when the pool is saturated, callers
// wait for a slot or give up when their context is canceled.
//
// The zero value is not usable; create pools with NewPool.
type Pool struct {
	sem chan struct{}
}

// NewPool creates a pool allowing up to size concurrent operations.
// Non-positive sizes fall back to DefaultPoolSize.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &Pool{sem: make(chan struct{}, size)}
}

// Size returns the pool's concurrency bound.
func (p *Pool) Size() int {
	return cap(p.sem)
}

// acquire blocks until a slot is available or ctx is canceled.
func (p *Pool) acquire(ctx context.Context) error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) release() {
	<-p.sem
}

// Exec runs fn on the pool, blocking the caller until fn completes.
// If ctx is canceled while waiting for a slot, fn never starts and the
// context error is returned.
func (p *Pool) Exec(ctx context.Context, fn func(context.Context) error) error {
	if err := p.acquire(ctx); err != nil {
		return err
	}
	defer p.release()

	// Queue time may have consumed the whole budget.
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

// Go runs fn on the pool without blocking the caller and returns a Future
// for the result. An abandoned Future does not leak: the goroutine releases
// its slot when fn returns.
func (p *Pool) Go(ctx context.Context, fn func(context.Context) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.err = p.Exec(ctx, fn)
	}()

	return f
}

// Call runs fn on pool p and returns its result. It is the typed companion
// of Pool.Exec for operations that produce a value.
func Call[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := p.Exec(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}
