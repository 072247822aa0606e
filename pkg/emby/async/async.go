// Package async carries the client's dual calling convention: every
// remote operation exists in a blocking form and in an Async form that
// returns a Future the caller awaits. Both share one implementation;
// simple scripts call the blocking form, larger concurrent programs hold
// the future and collect results when they need them.
package async

import "context"

// Future holds the eventual result of an operation started with Go.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on its own goroutine and returns its future result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Await blocks until the result is ready or ctx is done. The underlying
// operation is not cancelled by an abandoned Await; cancellation belongs
// to the context the operation itself was started with.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports completion without blocking, for use in select loops.
func (f *Future[T]) Done() <-chan struct{} { return f.done }
