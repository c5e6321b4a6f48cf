package dogewifi

import "context"

// Future is the deferred result of an operation started with Async.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn on its own goroutine. The operation sees ctx, so
// cancelling it cancels the underlying process.
func Async[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// AsyncErr is Async for operations that only report an error.
func AsyncErr(ctx context.Context, fn func(context.Context) error) *Future[struct{}] {
	return Async(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

// Done is closed once the operation has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the operation finishes or ctx is done. Giving up on
// the wait does not stop the operation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
