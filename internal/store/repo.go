package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// SessionEventData captures a session lifecycle event for appending.
// Attempted, CorrectAnswers, and DurationSecs are meaningful only for the
// "end" and "restart" actions.
type SessionEventData struct {
	SessionID      string
	Action         string // start, end, or restart
	TotalQuestions int
	Attempted      int
	CorrectAnswers int
	DurationSecs   int
}

// AnswerEventData captures a single locked-in answer for appending.
type AnswerEventData struct {
	SessionID     string
	Position      int
	QuestionText  string
	CorrectAnswer string
	ChosenAnswer  string
	Correct       bool
	TimeMs        int
}

// SessionRecord is a completed (or restarted) session as read back for the
// history screen.
type SessionRecord struct {
	SessionID      string
	FinishedAt     time.Time
	Action         string
	TotalQuestions int
	Attempted      int
	CorrectAnswers int
	DurationSecs   int
}

// OverallStats aggregates the full answer history for the stats command.
type OverallStats struct {
	Sessions int // completed or restarted sessions
	Answers  int
	Correct  int
}

// Accuracy returns the all-time accuracy percentage, or 0 with ok == false
// when nothing has been answered yet.
func (s OverallStats) Accuracy() (float64, bool) {
	if s.Answers == 0 {
		return 0, false
	}
	return float64(s.Correct) / float64(s.Answers) * 100, true
}

// EventRepo provides append and query access to quiz history events.
type EventRepo interface {
	// AppendSessionEvent records a session start/end/restart.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one locked-in answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuerySessionResults returns end/restart session events, newest first.
	QuerySessionResults(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// Overall aggregates the full history.
	Overall(ctx context.Context) (OverallStats, error)
}
