package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Quiz is an ordered list of multiple-choice questions attached to a module.
type Quiz struct {
	QuizID      int64      `json:"id"`
	ModuleID    int64      `json:"module"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Question holds the prompt, its options and the index of the correct
// option. The backend exposes correct_answer only on scored reads.
type Question struct {
	QuestionID    int64    `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// AnswerMap maps a question id to the selected option index. On the wire
// the backend keys the object by the question id's decimal string.
type AnswerMap map[int64]int

func (m AnswerMap) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(m))
	for qid, opt := range m {
		out[strconv.FormatInt(qid, 10)] = opt
	}
	return json.Marshal(out)
}

func (m *AnswerMap) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(AnswerMap, len(raw))
	for key, opt := range raw {
		qid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return fmt.Errorf("answer key %q is not a question id: %w", key, err)
		}
		out[qid] = opt
	}
	*m = out
	return nil
}

// Clone returns a copy of the map so callers can hand out answer state
// without sharing the underlying storage.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for qid, opt := range m {
		out[qid] = opt
	}
	return out
}

// QuizAttempt is one scored submission of answers for a quiz. Immutable
// once created; retakes create new attempts.
type QuizAttempt struct {
	AttemptID   int64     `json:"id"`
	QuizID      int64     `json:"quiz"`
	QuizTitle   string    `json:"quiz_title"`
	Answers     AnswerMap `json:"answers"`
	Score       float64   `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
