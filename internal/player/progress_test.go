package player

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestTrackerMarkCompleteIsIdempotent(t *testing.T) {
	backend := &fakeBackend{}
	tr := NewTracker(backend, zerolog.Nop())

	if err := tr.MarkComplete(context.Background(), 10); err != nil {
		t.Fatalf("first MarkComplete failed: %v", err)
	}
	if err := tr.MarkComplete(context.Background(), 10); err != nil {
		t.Fatalf("second MarkComplete must succeed as a no-op, got %v", err)
	}
	if len(backend.markCalls) != 1 {
		t.Fatalf("expected exactly one backend call, got %d", len(backend.markCalls))
	}
	if tr.CompletedCount() != 1 {
		t.Fatalf("expected one entry in the completed set, got %d", tr.CompletedCount())
	}
}

func TestTrackerMarkCompleteFailure(t *testing.T) {
	backend := &fakeBackend{markErr: errors.New("boom")}
	tr := NewTracker(backend, zerolog.Nop())

	if err := tr.MarkComplete(context.Background(), 10); err == nil {
		t.Fatal("expected error from backend")
	}
	if tr.IsComplete(10) {
		t.Fatal("failed call must not extend the completed set")
	}
}

func TestTrackerRefreshServerWins(t *testing.T) {
	backend := &fakeBackend{completed: []int64{10, 11}}
	tr := NewTracker(backend, zerolog.Nop())
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if !tr.IsComplete(10) || !tr.IsComplete(11) {
		t.Fatal("expected backend completion set after refresh")
	}

	// The server is authoritative: a refresh replaces the cache wholesale.
	backend.completed = []int64{11}
	if err := tr.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if tr.IsComplete(10) {
		t.Fatal("refresh must drop entries the server no longer reports")
	}
	if !tr.IsComplete(11) {
		t.Fatal("refresh lost a server-reported entry")
	}
}
