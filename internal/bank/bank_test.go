package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions() []Question {
	return []Question{
		{
			Text:        "What is the most common cause of hypercalcemia in hospitalized patients?",
			Options:     []string{"Primary hyperparathyroidism", "Malignancy", "Vitamin D intoxication", "Sarcoidosis"},
			Answer:      "Malignancy",
			Explanation: "Malignancy, typically via PTHrP production.",
		},
		{
			Text:        "Which of the following is the first-line treatment for stable angina?",
			Options:     []string{"Beta-blockers", "Calcium channel blockers", "Nitrates", "ACE inhibitors"},
			Answer:      "Beta-blockers",
			Explanation: "Beta-blockers reduce myocardial oxygen demand.",
		},
	}
}

func TestNew_Valid(t *testing.T) {
	b, err := New(validQuestions())
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "Malignancy", b.Question(0).Answer)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Question) []Question
	}{
		{"empty bank", func(qs []Question) []Question {
			return nil
		}},
		{"empty text", func(qs []Question) []Question {
			qs[0].Text = ""
			return qs
		}},
		{"one option", func(qs []Question) []Question {
			qs[0].Options = qs[0].Options[:1]
			return qs
		}},
		{"answer not in options", func(qs []Question) []Question {
			qs[1].Answer = "Aspirin"
			return qs
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(validQuestions()))
			assert.Error(t, err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	qs := validQuestions()
	b, err := New(qs)
	require.NoError(t, err)

	qs[0].Answer = "Sarcoidosis"
	assert.Equal(t, "Malignancy", b.Question(0).Answer)
}

func TestCorrectIndex(t *testing.T) {
	q := validQuestions()[0]
	assert.Equal(t, 1, q.CorrectIndex())

	q.Answer = "not present"
	assert.Equal(t, -1, q.CorrectIndex())
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{`},
		{"not an array", `{"question": "x"}`},
		{"empty array", `[]`},
		{"missing answer", `[{"question": "Q?", "options": ["a", "b"], "explanation": "e"}]`},
		{"empty option", `[{"question": "Q?", "options": ["a", ""], "answer": "a", "explanation": "e"}]`},
		{"unknown field", `[{"question": "Q?", "options": ["a", "b"], "answer": "a", "explanation": "e", "hint": "h"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_Valid(t *testing.T) {
	raw := `[{"question": "Q?", "options": ["a", "b"], "answer": "b", "explanation": "because"}]`
	b, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, b.Question(0).CorrectIndex())
}

func TestBuiltin(t *testing.T) {
	b, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, 12, b.Len())

	for i, q := range b.Questions() {
		assert.GreaterOrEqualf(t, q.CorrectIndex(), 0, "question %d: answer not in options", i+1)
		assert.Lenf(t, q.Options, 4, "question %d: expected 4 options", i+1)
		assert.NotEmptyf(t, q.Explanation, "question %d: empty explanation", i+1)
	}
}
