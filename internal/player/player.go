package player

import (
	"context"
	"fmt"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

// Player drives one learner's session on one course: it wires the access
// gate, the navigator and the progress tracker around a shared course
// snapshot that is always replaced wholesale on fetch. Not safe for
// concurrent use; all calls belong to the UI's event goroutine.
type Player struct {
	gate    *Gate
	nav     *Navigator
	tracker *Tracker
	logger  zerolog.Logger
}

// Backend is the slice of the gateway the player needs.
type Backend interface {
	api.CourseAPI
	api.ProgressAPI
	api.PaymentAPI
}

// New creates a player for a course.
func New(courseID int64, backend Backend, logger zerolog.Logger) *Player {
	return &Player{
		gate:    NewGate(courseID, backend, backend, logger),
		nav:     NewNavigator(),
		tracker: NewTracker(backend, logger),
		logger:  logger.With().Str("service", "Player").Int64("course_id", courseID).Logger(),
	}
}

// Load fetches the course and the learner's completion set, then selects
// the initial leaf if the gate is open.
func (p *Player) Load(ctx context.Context) error {
	if err := p.gate.Refresh(ctx); err != nil {
		return fmt.Errorf("loading course: %w", err)
	}
	if err := p.tracker.Refresh(ctx); err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	p.resetNavigation()
	return nil
}

func (p *Player) resetNavigation() {
	if !p.gate.Unlocked() {
		p.nav.Reset(model.Leaf{}, false)
		return
	}
	leaf, ok := FirstLeaf(p.gate.Course())
	p.nav.Reset(leaf, ok)
}

// Gate exposes the access gate for enrollment and purchase flows.
func (p *Player) Gate() *Gate { return p.gate }

// Navigator exposes leaf selection. Selections made while the gate is
// locked are rejected by ActiveLeaf.
func (p *Player) Navigator() *Navigator { return p.nav }

// Tracker exposes completion queries.
func (p *Player) Tracker() *Tracker { return p.tracker }

// Course returns the current course snapshot.
func (p *Player) Course() *model.Course { return p.gate.Course() }

// Percent returns the backend-computed progress percentage from the
// current snapshot. The client never derives this value itself.
func (p *Player) Percent() float64 {
	if c := p.gate.Course(); c != nil {
		return c.Progress
	}
	return 0
}

// ActiveLeaf returns the active leaf's body, enforcing the gate: while
// locked no leaf is exposed regardless of what the navigator holds.
func (p *Player) ActiveLeaf() (model.Leaf, error) {
	if err := p.gate.Authorize(); err != nil {
		return model.Leaf{}, err
	}
	leaf, ok := p.nav.Active()
	if !ok {
		return model.Leaf{}, fmt.Errorf("%w: no active leaf", api.ErrNotFound)
	}
	return leaf, nil
}

// Enroll runs the free-course unlock transition and initializes navigation
// on success.
func (p *Player) Enroll(ctx context.Context) error {
	if err := p.gate.Enroll(ctx); err != nil {
		return err
	}
	p.resetNavigation()
	return nil
}

// CompletePurchase runs the paid-course unlock transition and initializes
// navigation on success.
func (p *Player) CompletePurchase(ctx context.Context, orderID string) error {
	if err := p.gate.CompletePurchase(ctx, orderID); err != nil {
		return err
	}
	p.resetNavigation()
	return nil
}

// MarkComplete marks a content item done, then re-fetches the course so
// the progress percentage reflects the backend's computation. A re-fetch
// failure leaves the optimistic completion in place; the percentage simply
// lags until the next successful refresh.
func (p *Player) MarkComplete(ctx context.Context, contentID int64) error {
	if err := p.gate.Authorize(); err != nil {
		return err
	}
	if err := p.tracker.MarkComplete(ctx, contentID); err != nil {
		return err
	}
	if err := p.gate.Refresh(ctx); err != nil {
		p.logger.Warn().Err(err).Int64("content_id", contentID).Msg("Progress refresh failed after completion")
	}
	return nil
}
