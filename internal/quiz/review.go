package quiz

import "learner/internal/model"

// PassThreshold is the inclusive score cutoff for passing a quiz.
const PassThreshold = 60.0

// QuestionReview is one question of a scored attempt with the learner's
// selection laid against the correct option.
type QuestionReview struct {
	Question model.Question
	Selected int
	Answered bool
	Correct  bool
}

// Review is the display mapping of a scored attempt.
type Review struct {
	Score     float64
	Passed    bool
	Questions []QuestionReview
}

// NewReview folds a quiz and one of its scored attempts into a review.
// The score is the backend's; only per-question correctness is derived
// here, from the attempt's answers against each question's correct index.
func NewReview(quiz *model.Quiz, attempt *model.QuizAttempt) Review {
	questions := make([]QuestionReview, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		selected, answered := attempt.Answers[q.QuestionID]
		questions = append(questions, QuestionReview{
			Question: q,
			Selected: selected,
			Answered: answered,
			Correct:  answered && selected == q.CorrectAnswer,
		})
	}
	return Review{
		Score:     attempt.Score,
		Passed:    attempt.Score >= PassThreshold,
		Questions: questions,
	}
}
