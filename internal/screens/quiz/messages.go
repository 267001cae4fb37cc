package quiz

import "time"

// tickMsg drives the elapsed-time display, once per second.
type tickMsg time.Time

// persistAnswerMsg confirms an answer event write completed.
type persistAnswerMsg struct {
	Err error
}
