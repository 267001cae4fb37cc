package store

import (
	"context"
	"fmt"

	"medquiz/ent"
	"medquiz/ent/answerevent"
	"medquiz/ent/sessionevent"
)

// eventRepo implements EventRepo over the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTotalQuestions(data.TotalQuestions).
		SetAttempted(data.Attempted).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetPosition(data.Position).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetChosenAnswer(data.ChosenAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionResults(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn("end", "restart")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session results: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:      e.SessionID,
			FinishedAt:     e.Timestamp,
			Action:         e.Action,
			TotalQuestions: e.TotalQuestions,
			Attempted:      e.Attempted,
			CorrectAnswers: e.CorrectAnswers,
			DurationSecs:   e.DurationSecs,
		})
	}
	return records, nil
}

func (r *eventRepo) Overall(ctx context.Context) (OverallStats, error) {
	var stats OverallStats

	sessions, err := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn("end", "restart")).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count sessions: %w", err)
	}
	stats.Sessions = sessions

	answers, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count answers: %w", err)
	}
	stats.Answers = answers

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return stats, fmt.Errorf("count correct answers: %w", err)
	}
	stats.Correct = correct

	return stats, nil
}
