package bank

import (
	"fmt"
	"slices"
)

// Question is a single multiple-choice item. The answer must appear verbatim
// in Options.
type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// CorrectIndex returns the position of the correct answer within Options,
// or -1 if it is missing.
func (q Question) CorrectIndex() int {
	return slices.Index(q.Options, q.Answer)
}

// Bank is an immutable, ordered collection of questions. It serves read-only
// lookups by position and is fixed at construction.
type Bank struct {
	questions []Question
}

// New validates the questions and builds a Bank. Validation enforces what the
// JSON Schema cannot express: the answer must be one of the listed options.
func New(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("bank is empty")
	}
	for i, q := range questions {
		if q.Text == "" {
			return nil, fmt.Errorf("question %d: empty text", i+1)
		}
		if len(q.Options) < 2 {
			return nil, fmt.Errorf("question %d: needs at least 2 options, got %d", i+1, len(q.Options))
		}
		if q.CorrectIndex() < 0 {
			return nil, fmt.Errorf("question %d: answer %q is not one of the options", i+1, q.Answer)
		}
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Bank{questions: qs}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question returns the question at position i in bank order.
func (b *Bank) Question(i int) Question {
	return b.questions[i]
}

// Questions returns a copy of all questions in bank order.
func (b *Bank) Questions() []Question {
	qs := make([]Question, len(b.questions))
	copy(qs, b.questions)
	return qs
}
