package deleter

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud-gallery/internal/pathing"
	"cloud-gallery/internal/store"
)

func seedPair(t *testing.T, mem *store.Memory) pathing.Pair {
	t.Helper()
	pair := pathing.NamePaths("u1", "", "photo.jpg", time.Now())
	ctx := context.Background()
	if err := mem.Put(ctx, pair.Preview, []byte("preview"), "image/jpeg", nil); err != nil {
		t.Fatalf("Put preview failed: %v", err)
	}
	if err := mem.Put(ctx, pair.Original, []byte("original"), "image/jpeg", nil); err != nil {
		t.Fatalf("Put original failed: %v", err)
	}
	return pair
}

func TestDeleteFullPair(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	c := New(mem)

	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if got := c.State(); got != StateConfirming {
		t.Fatalf("State = %q, want %q", got, StateConfirming)
	}

	if err := c.Confirm(context.Background(), pair.Preview); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if got := c.State(); got != StateDone {
		t.Errorf("State = %q, want %q", got, StateDone)
	}
	if mem.Has(pair.Preview) || mem.Has(pair.Original) {
		t.Error("Objects survived a confirmed deletion")
	}
}

func TestDeleteCancel(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	c := New(mem)

	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if err := c.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if got := c.State(); got != StateIdle {
		t.Errorf("State = %q, want %q", got, StateIdle)
	}
	if !mem.Has(pair.Preview) || !mem.Has(pair.Original) {
		t.Error("Cancelled deletion removed objects")
	}
}

func TestDeleteRequiresConfirmingState(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())

	if err := c.Confirm(context.Background(), "any"); !errors.Is(err, ErrNotConfirming) {
		t.Errorf("Confirm while idle = %v, want ErrNotConfirming", err)
	}
	if err := c.Cancel(); !errors.Is(err, ErrNotConfirming) {
		t.Errorf("Cancel while idle = %v, want ErrNotConfirming", err)
	}

	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if err := c.Request(); err == nil {
		t.Error("Second Request while confirming should fail")
	}
}

func TestDeletePartialOriginalSurvives(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	boom := errors.New("backend refused")
	mem.FailWith("remove", pair.Original, boom)

	c := New(mem)
	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	err := c.Confirm(context.Background(), pair.Preview)
	var pe *PartialDeleteError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected PartialDeleteError, got %v", err)
	}
	if !pe.PreviewRemoved || pe.OriginalRemoved {
		t.Errorf("Partial outcome wrong: %+v", pe)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Underlying cause not wrapped: %v", err)
	}

	if got := c.State(); got != StatePartialError {
		t.Errorf("State = %q, want %q", got, StatePartialError)
	}
	if mem.Has(pair.Preview) {
		t.Error("Preview should have been removed")
	}
	if !mem.Has(pair.Original) {
		t.Error("Original should have survived")
	}
}

func TestDeletePartialPreviewSurvives(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	mem.FailWith("remove", pair.Preview, errors.New("backend refused"))

	c := New(mem)
	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	err := c.Confirm(context.Background(), pair.Preview)
	var pe *PartialDeleteError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected PartialDeleteError, got %v", err)
	}
	if pe.PreviewRemoved || !pe.OriginalRemoved {
		t.Errorf("Partial outcome wrong: %+v", pe)
	}

	// The preview removal failure must not have stopped the original's
	// removal from being attempted.
	if mem.Has(pair.Original) {
		t.Error("Original removal was not attempted after preview failure")
	}
}

func TestDeleteBothFail(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	previewErr := errors.New("preview gone wrong")
	originalErr := errors.New("original gone wrong")
	mem.FailWith("remove", pair.Preview, previewErr)
	mem.FailWith("remove", pair.Original, originalErr)

	c := New(mem)
	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	err := c.Confirm(context.Background(), pair.Preview)
	if err == nil {
		t.Fatal("Expected error when both removals fail")
	}
	var pe *PartialDeleteError
	if errors.As(err, &pe) {
		t.Fatalf("Full failure misreported as partial: %v", err)
	}
	if !errors.Is(err, previewErr) || !errors.Is(err, originalErr) {
		t.Errorf("Joined error missing a cause: %v", err)
	}
	if got := c.State(); got != StatePartialError {
		t.Errorf("State = %q, want %q", got, StatePartialError)
	}
}

func TestDeleteReset(t *testing.T) {
	t.Parallel()

	mem := store.NewMemory()
	pair := seedPair(t, mem)
	c := New(mem)

	// Reset from a non-terminal state is a no-op.
	if err := c.Request(); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	c.Reset()
	if got := c.State(); got != StateConfirming {
		t.Errorf("Reset from confirming changed state to %q", got)
	}

	if err := c.Confirm(context.Background(), pair.Preview); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	c.Reset()
	if got := c.State(); got != StateIdle {
		t.Errorf("State after Reset = %q, want %q", got, StateIdle)
	}

	// A fresh cycle can start.
	if err := c.Request(); err != nil {
		t.Errorf("Request after Reset failed: %v", err)
	}
}
