package api

import (
	"context"
	"fmt"

	"learner/internal/model"
)

type createAttemptRequest struct {
	Quiz    int64           `json:"quiz" validate:"required"`
	Answers model.AnswerMap `json:"answers" validate:"required,min=1"`
}

// GetQuiz retrieves a quiz with its ordered question list.
func (c *Client) GetQuiz(ctx context.Context, quizID int64) (*model.Quiz, error) {
	var quiz model.Quiz
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&quiz).
		Get(fmt.Sprintf("/quizzes/%d/", quizID))
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}
	return &quiz, nil
}

// CreateAttempt submits the answer mapping and returns the scored attempt.
func (c *Client) CreateAttempt(ctx context.Context, quizID int64, answers model.AnswerMap) (*model.QuizAttempt, error) {
	req := createAttemptRequest{Quiz: quizID, Answers: answers}
	if err := c.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var attempt model.QuizAttempt
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&attempt).
		Post("/quiz-attempts/")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("submitting attempt for quiz %d: %w", quizID, err)
	}
	return &attempt, nil
}

// GetAttempt retrieves a previously scored attempt.
func (c *Client) GetAttempt(ctx context.Context, attemptID int64) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&attempt).
		Get(fmt.Sprintf("/quiz-attempts/%d/", attemptID))
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("fetching attempt %d: %w", attemptID, err)
	}
	return &attempt, nil
}
