package player

import (
	"context"

	"learner/internal/api"

	"github.com/rs/zerolog"
)

// Tracker owns the local cache of completed content ids for the current
// learner. The cache is refreshed from the backend and optimistically
// extended on a successful mark-complete call; the server always wins on
// refresh.
type Tracker struct {
	progress api.ProgressAPI
	logger   zerolog.Logger

	completed map[int64]struct{}
}

// NewTracker creates an empty tracker; call Refresh to load the backend's
// completion set.
func NewTracker(progress api.ProgressAPI, logger zerolog.Logger) *Tracker {
	return &Tracker{
		progress:  progress,
		logger:    logger.With().Str("service", "Tracker").Logger(),
		completed: make(map[int64]struct{}),
	}
}

// Refresh replaces the local cache with the backend's completion set.
func (t *Tracker) Refresh(ctx context.Context) error {
	ids, err := t.progress.ListCompleted(ctx)
	if err != nil {
		return err
	}
	completed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		completed[id] = struct{}{}
	}
	t.completed = completed
	return nil
}

// MarkComplete records a content item as done. Marking an already-complete
// item is a successful no-op. On success the id is added to the local set
// immediately; the course progress percentage comes from a separate course
// re-fetch, never from client-side arithmetic.
func (t *Tracker) MarkComplete(ctx context.Context, contentID int64) error {
	if t.IsComplete(contentID) {
		return nil
	}
	if err := t.progress.MarkComplete(ctx, contentID); err != nil {
		t.logger.Error().Err(err).Int64("content_id", contentID).Msg("Failed to mark content complete")
		return err
	}
	t.completed[contentID] = struct{}{}
	t.logger.Info().Int64("content_id", contentID).Msg("Content marked complete")
	return nil
}

// IsComplete reports whether a content item is known complete. Drives the
// completion button's disabled state and sidebar rendering.
func (t *Tracker) IsComplete(contentID int64) bool {
	_, ok := t.completed[contentID]
	return ok
}

// CompletedCount returns the size of the local completion set.
func (t *Tracker) CompletedCount() int { return len(t.completed) }
