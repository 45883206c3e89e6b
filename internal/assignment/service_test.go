package assignment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

type fakeSubmissionAPI struct {
	assignment  *model.Assignment
	submissions []model.Submission
	createErr   error
	created     []model.NewSubmission
}

func (f *fakeSubmissionAPI) GetAssignment(ctx context.Context, assignmentID int64) (*model.Assignment, error) {
	if f.assignment == nil {
		return nil, api.ErrNotFound
	}
	return f.assignment, nil
}

func (f *fakeSubmissionAPI) ListSubmissions(ctx context.Context, assignmentID int64) ([]model.Submission, error) {
	return append([]model.Submission(nil), f.submissions...), nil
}

func (f *fakeSubmissionAPI) CreateSubmission(ctx context.Context, sub model.NewSubmission) (*model.Submission, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, sub)
	return &model.Submission{
		SubmissionID: int64(len(f.created)),
		AssignmentID: sub.AssignmentID,
		TextAnswer:   sub.TextAnswer,
		SubmittedAt:  time.Now(),
	}, nil
}

func TestSubmitRequiresFileOrText(t *testing.T) {
	backend := &fakeSubmissionAPI{}
	svc := NewService(backend, zerolog.Nop())

	_, err := svc.Submit(context.Background(), model.NewSubmission{AssignmentID: 40, TextAnswer: "   "})
	if !errors.Is(err, api.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(backend.created) != 0 {
		t.Fatal("no submission may be created without content")
	}
}

func TestSubmitTextAnswer(t *testing.T) {
	backend := &fakeSubmissionAPI{}
	svc := NewService(backend, zerolog.Nop())

	sub, err := svc.Submit(context.Background(), model.NewSubmission{AssignmentID: 40, TextAnswer: " my essay "})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if sub.Score != nil {
		t.Fatal("score must stay nil until graded")
	}
	if got := backend.created[0].TextAnswer; got != "my essay" {
		t.Fatalf("expected trimmed text answer, got %q", got)
	}
}

func TestSubmitFile(t *testing.T) {
	backend := &fakeSubmissionAPI{}
	svc := NewService(backend, zerolog.Nop())

	_, err := svc.Submit(context.Background(), model.NewSubmission{
		AssignmentID: 40,
		FileName:     "essay.pdf",
		File:         strings.NewReader("%PDF-1.4"),
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !backend.created[0].HasFile() {
		t.Fatal("expected the file to be passed through")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	now := time.Now()
	backend := &fakeSubmissionAPI{
		submissions: []model.Submission{
			{SubmissionID: 1, SubmittedAt: now.Add(-2 * time.Hour)},
			{SubmissionID: 3, SubmittedAt: now},
			{SubmissionID: 2, SubmittedAt: now.Add(-time.Hour)},
		},
	}
	svc := NewService(backend, zerolog.Nop())

	history, err := svc.History(context.Background(), 40)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	wantOrder := []int64{3, 2, 1}
	for i, want := range wantOrder {
		if history[i].SubmissionID != want {
			t.Fatalf("position %d: expected submission %d, got %d", i, want, history[i].SubmissionID)
		}
	}
}

func TestAssignmentOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if (model.Assignment{}).Overdue(now) {
		t.Fatal("assignments without a due date are never overdue")
	}
	if !(model.Assignment{DueDate: &past}).Overdue(now) {
		t.Fatal("expected overdue for a past due date")
	}
	if (model.Assignment{DueDate: &future}).Overdue(now) {
		t.Fatal("expected not overdue for a future due date")
	}
}
