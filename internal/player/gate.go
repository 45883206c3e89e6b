package player

import (
	"context"
	"errors"
	"fmt"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

var (
	// ErrAccessDenied is returned when a leaf body is requested while the
	// gate is locked.
	ErrAccessDenied = errors.New("course content is locked until enrollment")
	// ErrEnrollmentFailed wraps a failed enroll call; the gate stays locked.
	ErrEnrollmentFailed = errors.New("enrollment failed")
	// ErrPaymentFailed wraps a failed order creation or capture; the gate
	// stays locked.
	ErrPaymentFailed = errors.New("payment failed")
)

// Gate controls visibility of a course's leaves based on the backend's
// enrollment state. It only unlocks after an authoritative re-fetch
// reports is_enrolled=true; a successful enroll or capture call alone is
// never trusted.
type Gate struct {
	courses  api.CourseAPI
	payments api.PaymentAPI
	logger   zerolog.Logger

	courseID int64
	course   *model.Course
}

// NewGate creates a gate for one course.
func NewGate(courseID int64, courses api.CourseAPI, payments api.PaymentAPI, logger zerolog.Logger) *Gate {
	return &Gate{
		courses:  courses,
		payments: payments,
		logger:   logger.With().Str("service", "Gate").Int64("course_id", courseID).Logger(),
		courseID: courseID,
	}
}

// Refresh replaces the cached course wholesale with a fresh fetch. The
// server is authoritative for both enrollment and progress.
func (g *Gate) Refresh(ctx context.Context) error {
	course, err := g.courses.GetCourse(ctx, g.courseID)
	if err != nil {
		return err
	}
	g.course = course
	return nil
}

// Course returns the cached course snapshot. Title, description and price
// are readable even while locked, for the purchase prompt.
func (g *Gate) Course() *model.Course { return g.course }

// Unlocked reports whether leaves may be rendered.
func (g *Gate) Unlocked() bool { return g.course != nil && g.course.IsEnrolled }

// Authorize returns ErrAccessDenied while the gate is locked.
func (g *Gate) Authorize() error {
	if !g.Unlocked() {
		return ErrAccessDenied
	}
	return nil
}

// Enroll joins the learner to a free course, then re-fetches the course to
// confirm. The gate unlocks only if the re-fetch reports enrollment.
func (g *Gate) Enroll(ctx context.Context) error {
	if g.Unlocked() {
		return nil
	}
	if err := g.courses.Enroll(ctx, g.courseID); err != nil {
		g.logger.Error().Err(err).Msg("Failed to enroll")
		return fmt.Errorf("%w: %v", ErrEnrollmentFailed, err)
	}
	if err := g.Refresh(ctx); err != nil {
		g.logger.Error().Err(err).Msg("Enrolled but confirmation fetch failed")
		return err
	}
	if !g.Unlocked() {
		return fmt.Errorf("%w: backend does not report enrollment", ErrEnrollmentFailed)
	}
	g.logger.Info().Msg("Enrolled")
	return nil
}

// BeginPurchase opens a checkout order for a paid course. The caller
// drives the external approval flow with the returned order.
func (g *Gate) BeginPurchase(ctx context.Context) (*model.PaymentOrder, error) {
	order, err := g.payments.CreateOrder(ctx, g.courseID)
	if err != nil {
		g.logger.Error().Err(err).Msg("Failed to create payment order")
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	return order, nil
}

// CompletePurchase captures an approved order, then re-fetches the course
// to confirm enrollment. A capture that succeeds remotely while the
// re-fetch fails leaves the gate locked; retrying the re-fetch is safe.
func (g *Gate) CompletePurchase(ctx context.Context, orderID string) error {
	if err := g.payments.CaptureOrder(ctx, orderID); err != nil {
		g.logger.Error().Err(err).Str("order_id", orderID).Msg("Failed to capture payment order")
		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if err := g.Refresh(ctx); err != nil {
		g.logger.Error().Err(err).Str("order_id", orderID).Msg("Captured but confirmation fetch failed")
		return err
	}
	if !g.Unlocked() {
		return fmt.Errorf("%w: capture accepted but backend does not report enrollment", ErrPaymentFailed)
	}
	g.logger.Info().Str("order_id", orderID).Msg("Purchase complete")
	return nil
}
