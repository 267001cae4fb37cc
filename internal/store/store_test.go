package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQuerySessionResults(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	records, err := repo.QuerySessionResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		Action:         "start",
		TotalQuestions: 12,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "sess-1",
		Action:         "end",
		TotalQuestions: 12,
		Attempted:      12,
		CorrectAnswers: 9,
		DurationSecs:   480,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	// Only end/restart events come back; start markers are filtered.
	records, err = repo.QuerySessionResults(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.SessionID != "sess-1" || r.Action != "end" {
		t.Errorf("record = %+v", r)
	}
	if r.CorrectAnswers != 9 || r.Attempted != 12 || r.DurationSecs != 480 {
		t.Errorf("record counters = %+v", r)
	}
}

func TestQuerySessionResults_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"sess-a", "sess-b", "sess-c"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:      id,
			Action:         "end",
			TotalQuestions: 12,
			Attempted:      i + 1,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.QuerySessionResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].SessionID != "sess-c" || records[2].SessionID != "sess-a" {
		t.Errorf("records not newest-first: %v, %v, %v",
			records[0].SessionID, records[1].SessionID, records[2].SessionID)
	}
}

func TestOverall(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	stats, err := repo.Overall(ctx)
	if err != nil {
		t.Fatalf("overall (empty): %v", err)
	}
	if _, ok := stats.Accuracy(); ok {
		t.Error("accuracy should be unavailable with no answers")
	}

	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "sess-1", Action: "end"})
	answers := []AnswerEventData{
		{SessionID: "sess-1", Position: 0, QuestionText: "Q1", CorrectAnswer: "a", ChosenAnswer: "a", Correct: true, TimeMs: 4000},
		{SessionID: "sess-1", Position: 1, QuestionText: "Q2", CorrectAnswer: "b", ChosenAnswer: "c", Correct: false, TimeMs: 9000},
		{SessionID: "sess-1", Position: 2, QuestionText: "Q3", CorrectAnswer: "d", ChosenAnswer: "d", Correct: true, TimeMs: 2500},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err = repo.Overall(ctx)
	if err != nil {
		t.Fatalf("overall: %v", err)
	}
	if stats.Sessions != 1 || stats.Answers != 3 || stats.Correct != 2 {
		t.Errorf("stats = %+v", stats)
	}
	acc, ok := stats.Accuracy()
	if !ok {
		t.Fatal("accuracy should be available")
	}
	if want := float64(2) / 3 * 100; acc != want {
		t.Errorf("accuracy = %v, want %v", acc, want)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_ = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "sess-1", Action: "end"})
	_ = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "sess-1", QuestionText: "Q1", CorrectAnswer: "a", ChosenAnswer: "a", Correct: true,
	})

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stats, err := repo.Overall(ctx)
	if err != nil {
		t.Fatalf("overall after reset: %v", err)
	}
	if stats.Sessions != 0 || stats.Answers != 0 {
		t.Errorf("stats after reset = %+v, want zeroes", stats)
	}

	// Sequence restarts from 1 after reset.
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
