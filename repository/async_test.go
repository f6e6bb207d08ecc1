package repository

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPromise_ResolvesValue(t *testing.T) {
	p := newPromise(func() (int, error) { return 42, nil })

	v, err := p.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("Await = %d, want 42", v)
	}
}

func TestPromise_ResolvesError(t *testing.T) {
	boom := errors.New("boom")
	p := newPromise(func() (int, error) { return 0, boom })

	if _, err := p.Await(context.Background()); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestPromise_AwaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	p := newPromise(func() (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Await(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	// The operation keeps running; a second Await collects the outcome.
	close(release)
	v, err := p.Await(context.Background())
	if err != nil || v != 1 {
		t.Errorf("second Await = %d, %v; want 1, nil", v, err)
	}
}

func TestAsync_SameSemanticsAsBlocking(t *testing.T) {
	p := newTestProvider(t, DefaultConfig())
	r := New[*stringDoc, string](p)
	async := r.Async()

	// Empty-batch short circuit, through the non-blocking surface.
	deleted, err := async.DeleteMany(context.Background(), nil).Await(context.Background())
	if err != nil || deleted != 0 {
		t.Errorf("async DeleteMany(empty) = %d, %v; want 0, nil", deleted, err)
	}

	// Argument misuse surfaces through the promise, not a panic.
	if err := awaitErr(t, async.AddOne(context.Background(), nil)); !errors.Is(err, ErrNilDocument) {
		t.Errorf("async AddOne(nil) = %v, want ErrNilDocument", err)
	}

	match, err := async.FindAndUpdateFields(context.Background(), "", map[string]any{"a": 1}).Await(context.Background())
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("async FindAndUpdateFields(\"\") = %v, want ErrEmptyID", err)
	}
	if match.Found {
		t.Error("failed operation must not report a match")
	}
}

func awaitErr[V any](t *testing.T, p *Promise[V]) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := p.Await(ctx)
	return err
}
