package dogewifi

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAsync(t *testing.T) {
	f := Async(context.Background(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	got, err := f.Await(context.Background())
	if err != nil || got != 42 {
		t.Errorf("Await() = %d, %v; want 42, nil", got, err)
	}

	select {
	case <-f.Done():
	default:
		t.Error("Done() not closed after Await returned")
	}
}

func TestAsyncErr(t *testing.T) {
	boom := errors.New("boom")
	f := AsyncErr(context.Background(), func(ctx context.Context) error {
		return boom
	})
	if _, err := f.Await(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Await() error = %v, want %v", err, boom)
	}
}

func TestAwaitGivesUp(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	f := Async(context.Background(), func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	got, err := f.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) || got != "" {
		t.Errorf("Await() = %q, %v; want deadline exceeded", got, err)
	}
}

func TestAsyncPassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := Async(ctx, func(ctx context.Context) (struct{}, error) {
		<-ctx.Done()
		return struct{}{}, ctx.Err()
	})
	cancel()

	if _, err := f.Await(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("Await() error = %v, want context.Canceled", err)
	}
}
