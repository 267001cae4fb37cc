package quiz

import "fmt"

// Status classifies a position for the question navigator.
type Status int

const (
	// StatusEmpty — unattempted and not the current position.
	StatusEmpty Status = iota
	// StatusPointer — unattempted and currently displayed.
	StatusPointer
	// StatusCorrect — submitted and answered correctly.
	StatusCorrect
	// StatusIncorrect — submitted and answered incorrectly.
	StatusIncorrect
)

// Status returns the navigator status of the position.
func (s *Session) Status(pos int) Status {
	if pos < 0 || pos >= len(s.order) {
		return StatusEmpty
	}
	if s.submitted[pos] {
		if s.correct[pos] {
			return StatusCorrect
		}
		return StatusIncorrect
	}
	if pos == s.current {
		return StatusPointer
	}
	return StatusEmpty
}

// Metrics holds the derived progress values shown in the sidebar. Accuracy
// is meaningful only when Attempted > 0; callers render "N/A" otherwise.
type Metrics struct {
	Total     int
	Attempted int
	Score     int
	Accuracy  float64 // percentage, 0 when Attempted == 0
	Progress  float64 // Attempted / Total, in [0, 1]
}

// Metrics computes the current derived values. Pure read; no side effects.
func (s *Session) Metrics() Metrics {
	m := Metrics{
		Total: len(s.order),
		Score: s.score,
	}
	for _, sub := range s.submitted {
		if sub {
			m.Attempted++
		}
	}
	if m.Attempted > 0 {
		m.Accuracy = float64(m.Score) / float64(m.Attempted) * 100
	}
	if m.Total > 0 {
		m.Progress = float64(m.Attempted) / float64(m.Total)
	}
	return m
}

// AccuracyString formats the accuracy for display, "N/A" before any
// submission.
func (m Metrics) AccuracyString() string {
	if m.Attempted == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", m.Accuracy)
}

// FormatElapsed renders a duration as HH:MM:SS for the session timer.
func FormatElapsed(elapsed int64) string {
	if elapsed < 0 {
		elapsed = 0
	}
	hours := elapsed / 3600
	minutes := (elapsed % 3600) / 60
	seconds := elapsed % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ElapsedString returns the session's elapsed time as HH:MM:SS.
func (s *Session) ElapsedString() string {
	return FormatElapsed(int64(s.Elapsed().Seconds()))
}
