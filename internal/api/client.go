package api

import (
	"context"
	"time"

	"learner/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// CourseAPI covers the course tree and enrollment endpoints.
type CourseAPI interface {
	// GetCourse retrieves a course with its nested modules, contents,
	// quizzes and assignments.
	GetCourse(ctx context.Context, courseID int64) (*model.Course, error)
	ListEnrolledCourses(ctx context.Context) ([]model.Course, error)
	// Enroll joins the learner to a free course.
	Enroll(ctx context.Context, courseID int64) error
}

// ProgressAPI covers the completion-tracking endpoints.
type ProgressAPI interface {
	// ListCompleted returns the content ids the backend recognizes as
	// complete for the current learner.
	ListCompleted(ctx context.Context) ([]int64, error)
	MarkComplete(ctx context.Context, contentID int64) error
}

// QuizAPI covers quiz retrieval and attempt creation/review.
type QuizAPI interface {
	GetQuiz(ctx context.Context, quizID int64) (*model.Quiz, error)
	// CreateAttempt submits the full answer mapping and returns the scored
	// attempt.
	CreateAttempt(ctx context.Context, quizID int64, answers model.AnswerMap) (*model.QuizAttempt, error)
	GetAttempt(ctx context.Context, attemptID int64) (*model.QuizAttempt, error)
}

// PaymentAPI covers the checkout order endpoints for paid courses.
type PaymentAPI interface {
	CreateOrder(ctx context.Context, courseID int64) (*model.PaymentOrder, error)
	CaptureOrder(ctx context.Context, orderID string) error
}

// SubmissionAPI covers assignments and their submission history.
type SubmissionAPI interface {
	GetAssignment(ctx context.Context, assignmentID int64) (*model.Assignment, error)
	ListSubmissions(ctx context.Context, assignmentID int64) ([]model.Submission, error)
	// CreateSubmission uploads a multipart submission with an optional file
	// and/or text answer.
	CreateSubmission(ctx context.Context, sub model.NewSubmission) (*model.Submission, error)
}

// NotificationAPI covers the learner's notification feed.
type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
}

// DiscussionAPI covers course discussion boards.
type DiscussionAPI interface {
	ListDiscussions(ctx context.Context, courseID int64) ([]model.Discussion, error)
	PostDiscussion(ctx context.Context, courseID int64, message string) (*model.Discussion, error)
}

// Client is the resty implementation of the backend gateway. It satisfies
// every per-concern interface above.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	logger   zerolog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Token is sent as a bearer token on every request.
	Token   string
	Timeout time.Duration
}

// NewClient creates a backend gateway client with a scoped logger.
func NewClient(opts Options, logger zerolog.Logger) *Client {
	hc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.Token).
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		hc.SetTimeout(opts.Timeout)
	}
	return &Client{
		http:     hc,
		validate: validator.New(),
		logger:   logger.With().Str("service", "APIClient").Logger(),
	}
}
