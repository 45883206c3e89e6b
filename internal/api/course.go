package api

import (
	"context"
	"fmt"

	"learner/internal/model"
)

// GetCourse retrieves a course with its full module tree.
func (c *Client) GetCourse(ctx context.Context, courseID int64) (*model.Course, error) {
	var course model.Course
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&course).
		Get(fmt.Sprintf("/courses/%d/", courseID))
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching course %d: %w", courseID, err)
	}
	return &course, nil
}

// ListEnrolledCourses returns the courses the learner is enrolled in.
func (c *Client) ListEnrolledCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("enrolled", "true").
		SetResult(&courses).
		Get("/courses/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("listing enrolled courses: %w", err)
	}
	return courses, nil
}

// Enroll joins the learner to a free course. Enrolling twice is accepted
// by the backend.
func (c *Client) Enroll(ctx context.Context, courseID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post(fmt.Sprintf("/courses/%d/enroll/", courseID))
	if err := check(resp, err); err != nil {
		return fmt.Errorf("enrolling in course %d: %w", courseID, err)
	}
	return nil
}
