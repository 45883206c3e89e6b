package quiz

import (
	"context"
	"errors"
	"fmt"

	"learner/internal/api"
	"learner/internal/model"

	"github.com/rs/zerolog"
)

// State of an attempt in progress.
type State string

const (
	StateInProgress   State = "IN_PROGRESS"
	StateSubmitting   State = "SUBMITTING"
	StateSubmitted    State = "SUBMITTED"
	StateSubmitFailed State = "SUBMIT_FAILED"
)

var (
	// ErrUnanswered is returned by Submit while any question has no
	// selected option.
	ErrUnanswered = errors.New("all questions must be answered before submitting")
	// ErrNotInProgress is returned when an in-progress operation is called
	// after submission.
	ErrNotInProgress = errors.New("attempt is no longer in progress")
	// ErrUnknownQuestion and ErrBadOption reject answers outside the quiz's
	// answer domain.
	ErrUnknownQuestion = errors.New("question does not belong to this quiz")
	ErrBadOption       = errors.New("option index out of range")
)

// Engine drives one attempt at a quiz: answer selection across an ordered
// question list, cursor movement, submission and the scored result.
// Re-attempting a quiz means creating a fresh Engine; prior attempts are
// never mutated. Not safe for concurrent use.
type Engine struct {
	quizzes api.QuizAPI
	logger  zerolog.Logger

	quiz    *model.Quiz
	cursor  int
	answers model.AnswerMap
	state   State
	attempt *model.QuizAttempt
}

// NewEngine starts a fresh attempt on an already-fetched quiz.
func NewEngine(quiz *model.Quiz, quizzes api.QuizAPI, logger zerolog.Logger) *Engine {
	return &Engine{
		quizzes: quizzes,
		logger:  logger.With().Str("service", "QuizEngine").Int64("quiz_id", quiz.QuizID).Logger(),
		quiz:    quiz,
		answers: make(model.AnswerMap),
		state:   StateInProgress,
	}
}

// Start fetches the quiz and begins a fresh attempt on it.
func Start(ctx context.Context, quizID int64, quizzes api.QuizAPI, logger zerolog.Logger) (*Engine, error) {
	quiz, err := quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return NewEngine(quiz, quizzes, logger), nil
}

// Quiz returns the quiz under attempt.
func (e *Engine) Quiz() *model.Quiz { return e.quiz }

// State returns the engine's current state.
func (e *Engine) State() State { return e.state }

// Cursor returns the index of the current question.
func (e *Engine) Cursor() int { return e.cursor }

// Question returns the question under the cursor, or false for an empty
// quiz.
func (e *Engine) Question() (model.Question, bool) {
	if len(e.quiz.Questions) == 0 {
		return model.Question{}, false
	}
	return e.quiz.Questions[e.cursor], true
}

// Answers returns a copy of the selected answers so far.
func (e *Engine) Answers() model.AnswerMap { return e.answers.Clone() }

// Answered reports whether a question has a selected option.
func (e *Engine) Answered(questionID int64) bool {
	_, ok := e.answers[questionID]
	return ok
}

// SelectAnswer records (or overwrites) the selected option for a question.
// The cursor does not move.
func (e *Engine) SelectAnswer(questionID int64, optionIndex int) error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	question, ok := e.findQuestion(questionID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return fmt.Errorf("%w: question %d has %d options, got index %d",
			ErrBadOption, questionID, len(question.Options), optionIndex)
	}
	e.answers[questionID] = optionIndex
	return nil
}

// Next moves the cursor forward, clamped to the last question. Answering
// the current question is not required.
func (e *Engine) Next() {
	if e.state != StateInProgress {
		return
	}
	if e.cursor < len(e.quiz.Questions)-1 {
		e.cursor++
	}
}

// Previous moves the cursor back, clamped to the first question.
func (e *Engine) Previous() {
	if e.state != StateInProgress {
		return
	}
	if e.cursor > 0 {
		e.cursor--
	}
}

// Submit sends the full answer mapping. It requires an answer for every
// question; otherwise it fails with ErrUnanswered and leaves the attempt
// untouched. A failed submission returns the engine to IN_PROGRESS with
// every answer retained.
func (e *Engine) Submit(ctx context.Context) (*model.QuizAttempt, error) {
	if e.state != StateInProgress {
		return nil, ErrNotInProgress
	}
	if missing := e.unansweredCount(); missing > 0 {
		return nil, fmt.Errorf("%w: %d remaining", ErrUnanswered, missing)
	}

	e.state = StateSubmitting
	attempt, err := e.quizzes.CreateAttempt(ctx, e.quiz.QuizID, e.answers.Clone())
	if err != nil {
		e.state = StateInProgress
		e.logger.Error().Err(err).Msg("Attempt submission failed; answers retained")
		return nil, err
	}
	e.state = StateSubmitted
	e.attempt = attempt
	e.logger.Info().Int64("attempt_id", attempt.AttemptID).Float64("score", attempt.Score).Msg("Attempt submitted")
	return attempt, nil
}

// Attempt returns the scored attempt after a successful Submit.
func (e *Engine) Attempt() (*model.QuizAttempt, bool) {
	return e.attempt, e.state == StateSubmitted
}

func (e *Engine) findQuestion(questionID int64) (model.Question, bool) {
	for _, q := range e.quiz.Questions {
		if q.QuestionID == questionID {
			return q, true
		}
	}
	return model.Question{}, false
}

func (e *Engine) unansweredCount() int {
	missing := 0
	for _, q := range e.quiz.Questions {
		if _, ok := e.answers[q.QuestionID]; !ok {
			missing++
		}
	}
	return missing
}
