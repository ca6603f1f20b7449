package store

import (
	"context"
	"testing"
)

func TestWithMetricsDelegates(t *testing.T) {
	t.Parallel()

	mem := NewMemory()
	s := WithMetrics(mem)
	ctx := context.Background()

	if err := s.Put(ctx, "p", []byte("data"), "text/plain", nil); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !mem.Has("p") {
		t.Error("Instrumented Put did not reach the inner store")
	}

	url, err := s.ResolveURL(ctx, "p")
	if err != nil || url == "" {
		t.Errorf("ResolveURL = (%q, %v)", url, err)
	}

	page, err := s.List(ctx, "p", 10, "")
	if err != nil || len(page.Paths) != 1 {
		t.Errorf("List = (%v, %v)", page, err)
	}

	if err := s.Remove(ctx, "p"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if mem.Has("p") {
		t.Error("Instrumented Remove did not reach the inner store")
	}

	// Errors pass through untouched.
	if err := s.Remove(ctx, "p"); err == nil {
		t.Error("Expected error removing a missing object")
	}
}
