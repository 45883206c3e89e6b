package notification

import (
	"context"
	"sync"
	"time"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

// Poller keeps the notification feed fresh while a session is active. It
// fetches on Start and then on a fixed interval; Stop (or cancelling the
// start context) ends the loop. The feed is presentational, so a failed
// poll is logged and retried on the next tick rather than surfaced.
type Poller struct {
	notifications api.NotificationAPI
	interval      time.Duration
	logger        zerolog.Logger

	mu     sync.Mutex
	items  []model.Notification
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller creates a poller with the given interval.
func NewPoller(notifications api.NotificationAPI, interval time.Duration, logger zerolog.Logger) *Poller {
	return &Poller{
		notifications: notifications,
		interval:      interval,
		logger:        logger.With().Str("service", "NotificationPoller").Logger(),
	}
}

// Start launches the polling loop. Calling Start on a running poller is a
// no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.run(ctx, done)
}

// Stop ends the polling loop and waits for it to exit. Safe to call on a
// stopped poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Notification poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	items, err := p.notifications.ListNotifications(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error().Err(err).Msg("Failed to fetch notifications")
		}
		return
	}
	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
}

// Notifications returns the latest fetched feed.
func (p *Poller) Notifications() []model.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Notification, len(p.items))
	copy(out, p.items)
	return out
}

// Unread counts the notifications not yet marked read.
func (p *Poller) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range p.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead flags a notification as read and updates the local copy
// optimistically.
func (p *Poller) MarkRead(ctx context.Context, notificationID int64) error {
	if err := p.notifications.MarkNotificationRead(ctx, notificationID); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.items {
		if p.items[i].NotificationID == notificationID {
			p.items[i].IsRead = true
		}
	}
	return nil
}
