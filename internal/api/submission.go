package api

import (
	"context"
	"fmt"
	"strconv"

	"learner/internal/model"
)

// GetAssignment retrieves a single assignment.
func (c *Client) GetAssignment(ctx context.Context, assignmentID int64) (*model.Assignment, error) {
	var assignment model.Assignment
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&assignment).
		Get(fmt.Sprintf("/assignments/%d/", assignmentID))
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching assignment %d: %w", assignmentID, err)
	}
	return &assignment, nil
}

// ListSubmissions returns the learner's submissions for an assignment.
func (c *Client) ListSubmissions(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	var submissions []model.Submission
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("assignment", strconv.FormatInt(assignmentID, 10)).
		SetResult(&submissions).
		Get("/submissions/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("listing submissions for assignment %d: %w", assignmentID, err)
	}
	return submissions, nil
}

// CreateSubmission uploads a multipart submission with an optional file
// and/or text answer.
func (c *Client) CreateSubmission(ctx context.Context, sub model.NewSubmission) (*model.Submission, error) {
	if sub.AssignmentID == 0 {
		return nil, fmt.Errorf("%w: assignment id is required", ErrValidation)
	}
	var created model.Submission
	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"assignment": strconv.FormatInt(sub.AssignmentID, 10),
		}).
		SetResult(&created)
	if sub.HasFile() {
		req.SetMultipartField("file", sub.FileName, "application/octet-stream", sub.File)
	}
	if sub.TextAnswer != "" {
		req.SetMultipartFormData(map[string]string{"text_answer": sub.TextAnswer})
	}
	resp, err := req.Post("/submissions/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("submitting assignment %d: %w", sub.AssignmentID, err)
	}
	return &created, nil
}
