package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandler_HookOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	h.OnShutdown(func(ctx context.Context) error {
		order = append(order, 1)
		return nil
	})
	h.OnShutdown(func(ctx context.Context) error {
		order = append(order, 2)
		return nil
	})
	h.OnShutdown(func(ctx context.Context) error {
		order = append(order, 3)
		return nil
	})

	if err := h.Trigger(); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}

	// Hooks run in reverse registration order
	want := []int{3, 2, 1}
	if len(order) != len(want) {
		t.Fatalf("executed %d hooks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("hook order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestHandler_HookError(t *testing.T) {
	h := NewHandler(time.Second)

	errHook := errors.New("hook failed")
	h.OnShutdown(func(ctx context.Context) error {
		return errHook
	})
	h.OnShutdown(func(ctx context.Context) error {
		return nil
	})

	if err := h.Trigger(); !errors.Is(err, errHook) {
		t.Errorf("Trigger() error = %v, want %v", err, errHook)
	}
}

func TestHandler_Done(t *testing.T) {
	h := NewHandler(time.Second)

	select {
	case <-h.Done():
		t.Fatal("Done() closed before shutdown")
	default:
	}

	if err := h.Trigger(); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Error("Done() not closed after shutdown")
	}
}

func TestHandler_HookContextTimeout(t *testing.T) {
	h := NewHandler(10 * time.Millisecond)

	h.OnShutdown(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	if err := h.Trigger(); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Trigger() error = %v, want deadline exceeded", err)
	}
}
