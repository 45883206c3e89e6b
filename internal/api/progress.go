package api

import (
	"context"
	"fmt"
)

type progressRecord struct {
	ContentID int64 `json:"content_id"`
}

type markCompleteRequest struct {
	ContentID int64 `json:"content_id" validate:"required"`
}

// ListCompleted returns the content ids completed by the current learner.
func (c *Client) ListCompleted(ctx context.Context) ([]int64, error) {
	var records []progressRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&records).
		Get("/progress/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching progress: %w", err)
	}
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ContentID)
	}
	return ids, nil
}

// MarkComplete records a content item as completed.
func (c *Client) MarkComplete(ctx context.Context, contentID int64) error {
	req := markCompleteRequest{ContentID: contentID}
	if err := c.validate.Struct(&req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/progress/mark_complete/")
	if err := check(resp, err); err != nil {
		return fmt.Errorf("marking content %d complete: %w", contentID, err)
	}
	return nil
}
