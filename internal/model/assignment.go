package model

import (
	"io"
	"time"
)

// Assignment is a gradable task attached to a module, optionally with a
// due date.
type Assignment struct {
	AssignmentID int64      `json:"id"`
	ModuleID     int64      `json:"module"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DueDate      *time.Time `json:"due_date"`
}

// Overdue reports whether the assignment's due date has passed at the
// given instant. Assignments without a due date are never overdue.
func (a Assignment) Overdue(now time.Time) bool {
	return a.DueDate != nil && a.DueDate.Before(now)
}

// Submission is one handed-in answer for an assignment. Score stays nil
// until the instructor grades it.
type Submission struct {
	SubmissionID int64     `json:"id"`
	AssignmentID int64     `json:"assignment"`
	FileURL      string    `json:"file"`
	TextAnswer   string    `json:"text_answer"`
	Score        *float64  `json:"score"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// NewSubmission carries what the learner hands in: a file, a text answer,
// or both.
type NewSubmission struct {
	AssignmentID int64
	FileName     string
	File         io.Reader
	TextAnswer   string
}

// HasFile reports whether a file is attached.
func (s NewSubmission) HasFile() bool { return s.File != nil && s.FileName != "" }
