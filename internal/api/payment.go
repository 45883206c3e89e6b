package api

import (
	"context"
	"fmt"

	"learner/internal/model"
)

type createOrderRequest struct {
	CourseID int64 `json:"course_id" validate:"required"`
}

type captureOrderRequest struct {
	OrderID string `json:"orderID" validate:"required"`
}

// CreateOrder opens a checkout order for a paid course. The learner
// approves the returned order out-of-band before it can be captured.
func (c *Client) CreateOrder(ctx context.Context, courseID int64) (*model.PaymentOrder, error) {
	req := createOrderRequest{CourseID: courseID}
	if err := c.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var order model.PaymentOrder
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		Post("/payments/create-order/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("creating order for course %d: %w", courseID, err)
	}
	return &order, nil
}

// CaptureOrder captures an approved checkout order. The backend enrolls
// the learner on success.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) error {
	req := captureOrderRequest{OrderID: orderID}
	if err := c.validate.Struct(&req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/payments/capture-order/")
	if err := check(resp, err); err != nil {
		return fmt.Errorf("capturing order %s: %w", orderID, err)
	}
	return nil
}
