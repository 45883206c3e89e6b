package assignment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

// Service handles the learner side of assignments: the submission history
// and handing in new work. Grading is server-side and opaque here.
type Service struct {
	submissions api.SubmissionAPI
	logger      zerolog.Logger
}

// NewService creates an assignment service with a scoped logger.
func NewService(submissions api.SubmissionAPI, logger zerolog.Logger) *Service {
	return &Service{
		submissions: submissions,
		logger:      logger.With().Str("service", "AssignmentService").Logger(),
	}
}

// Get retrieves a single assignment.
func (s *Service) Get(ctx context.Context, assignmentID int64) (*model.Assignment, error) {
	return s.submissions.GetAssignment(ctx, assignmentID)
}

// History returns the learner's submissions for an assignment, newest
// first.
func (s *Service) History(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	subs, err := s.submissions.ListSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
	return subs, nil
}

// Submit hands in a new submission. At least a file or a text answer is
// required. Submissions are append-only; resubmitting adds to the history.
func (s *Service) Submit(ctx context.Context, sub model.NewSubmission) (*model.Submission, error) {
	sub.TextAnswer = strings.TrimSpace(sub.TextAnswer)
	if !sub.HasFile() && sub.TextAnswer == "" {
		return nil, fmt.Errorf("%w: provide a file or a text answer", api.ErrValidation)
	}
	created, err := s.submissions.CreateSubmission(ctx, sub)
	if err != nil {
		s.logger.Error().Err(err).Int64("assignment_id", sub.AssignmentID).Msg("Failed to submit assignment")
		return nil, err
	}
	s.logger.Info().Int64("assignment_id", sub.AssignmentID).Int64("submission_id", created.SubmissionID).Msg("Assignment submitted")
	return created, nil
}
