package api

import (
	"context"
	"fmt"
	"strconv"

	"learner/internal/model"
)

type postDiscussionRequest struct {
	Course  int64  `json:"course" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ListNotifications returns the learner's notification feed, newest first.
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&notifications).
		Get("/communication/notifications/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/communication/notifications/%d/mark_read/", notificationID))
	if err := check(resp, err); err != nil {
		return fmt.Errorf("marking notification %d read: %w", notificationID, err)
	}
	return nil
}

// ListDiscussions returns the discussion board of a course.
func (c *Client) ListDiscussions(ctx context.Context, courseID int64) ([]model.Discussion, error) {
	var discussions []model.Discussion
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("course", strconv.FormatInt(courseID, 10)).
		SetResult(&discussions).
		Get("/communication/discussions/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("listing discussions for course %d: %w", courseID, err)
	}
	return discussions, nil
}

// PostDiscussion adds a message to a course discussion board.
func (c *Client) PostDiscussion(ctx context.Context, courseID int64, message string) (*model.Discussion, error) {
	req := postDiscussionRequest{Course: courseID, Message: message}
	if err := c.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var created model.Discussion
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/communication/discussions/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("posting discussion to course %d: %w", courseID, err)
	}
	return &created, nil
}
