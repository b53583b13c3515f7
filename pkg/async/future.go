package async

import (
	"errors"
	"time"
)

// ErrTimeout is returned by AwaitWithTimeout when the operation does not
// complete in time. The operation itself keeps running until it finishes.
var ErrTimeout = errors.New("async: await timed out")

// Future represents the result of an operation submitted with Pool.Go.
type Future struct {
	err  error
	done chan struct{}
}

// Await waits for the operation to complete and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for the operation to complete with a timeout.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete checks whether the operation has completed without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
