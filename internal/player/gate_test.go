package player

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestGateStaysLockedOnEnrollFailure(t *testing.T) {
	backend := &fakeBackend{course: twoItemCourse(false), enrollErr: errors.New("boom")}
	g := NewGate(1, backend, backend, zerolog.Nop())
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	err := g.Enroll(context.Background())
	if !errors.Is(err, ErrEnrollmentFailed) {
		t.Fatalf("expected ErrEnrollmentFailed, got %v", err)
	}
	if g.Unlocked() {
		t.Fatal("gate must stay locked after a failed enroll")
	}
}

// A capture can succeed remotely while the confirmation fetch fails; the
// gate must not unlock on the optimistic result.
func TestGateCaptureWithoutConfirmationStaysLocked(t *testing.T) {
	backend := &fakeBackend{course: twoItemCourse(false)}
	backend.onCapture = func(f *fakeBackend) {
		f.course.IsEnrolled = true
		f.getErr = errors.New("connection reset")
	}
	g := NewGate(1, backend, backend, zerolog.Nop())
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	if err := g.CompletePurchase(context.Background(), "ORDER-1"); err == nil {
		t.Fatal("expected an error when the confirmation fetch fails")
	}
	if g.Unlocked() {
		t.Fatal("gate unlocked without an authoritative re-fetch")
	}

	// Retrying just the refresh completes the transition.
	backend.getErr = nil
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() retry failed: %v", err)
	}
	if !g.Unlocked() {
		t.Fatal("expected gate to unlock once the re-fetch confirms enrollment")
	}
}

func TestGateCaptureConfirmedUnlocks(t *testing.T) {
	backend := &fakeBackend{course: twoItemCourse(false)}
	backend.onCapture = func(f *fakeBackend) { f.course.IsEnrolled = true }
	g := NewGate(1, backend, backend, zerolog.Nop())
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	order, err := g.BeginPurchase(context.Background())
	if err != nil {
		t.Fatalf("BeginPurchase() failed: %v", err)
	}
	if order.OrderID == "" || order.ApprovalURL == "" {
		t.Fatalf("incomplete order: %+v", order)
	}
	if err := g.CompletePurchase(context.Background(), order.OrderID); err != nil {
		t.Fatalf("CompletePurchase() failed: %v", err)
	}
	if !g.Unlocked() {
		t.Fatal("expected gate unlocked after confirmed capture")
	}
}

func TestGateCaptureFailureStaysLocked(t *testing.T) {
	backend := &fakeBackend{course: twoItemCourse(false), captureErr: errors.New("declined")}
	g := NewGate(1, backend, backend, zerolog.Nop())
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	err := g.CompletePurchase(context.Background(), "ORDER-1")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("expected ErrPaymentFailed, got %v", err)
	}
	if g.Unlocked() {
		t.Fatal("gate must stay locked after a failed capture")
	}
}

func TestGateEnrollConfirmedByRefetchOnly(t *testing.T) {
	// Enroll succeeds but the backend does not (yet) report enrollment.
	backend := &fakeBackend{course: twoItemCourse(false)}
	g := NewGate(1, backend, backend, zerolog.Nop())
	if err := g.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	err := g.Enroll(context.Background())
	if !errors.Is(err, ErrEnrollmentFailed) {
		t.Fatalf("expected ErrEnrollmentFailed without confirmation, got %v", err)
	}
	if g.Unlocked() {
		t.Fatal("gate unlocked on an unconfirmed enroll")
	}
}
