package quiz

import (
	"math/rand/v2"
	"testing"
)

func TestMetrics_NoAttempts(t *testing.T) {
	s := testSession(t)
	m := s.Metrics()

	if m.Total != 12 || m.Attempted != 0 || m.Score != 0 {
		t.Errorf("metrics = %+v, want zeroed counters over 12", m)
	}
	if m.AccuracyString() != "N/A" {
		t.Errorf("AccuracyString = %q, want N/A before any submission", m.AccuracyString())
	}
	if m.Progress != 0 {
		t.Errorf("progress = %v, want 0", m.Progress)
	}
}

func TestMetrics_PartialRun(t *testing.T) {
	s := testSession(t)

	// Three submissions: two correct, one wrong.
	for pos := 0; pos < 3; pos++ {
		q, _ := s.Question(pos)
		choice := q.Answer
		if pos == 1 {
			choice = q.Options[0]
			if choice == q.Answer {
				choice = q.Options[2]
			}
		}
		s.Select(pos, choice)
		s.Submit(pos)
		s.Advance()
	}

	m := s.Metrics()
	if m.Attempted != 3 {
		t.Errorf("attempted = %d, want 3", m.Attempted)
	}
	if m.Score != 2 {
		t.Errorf("score = %d, want 2", m.Score)
	}
	if want := float64(2) / 3 * 100; m.Accuracy != want {
		t.Errorf("accuracy = %v, want %v", m.Accuracy, want)
	}
	if m.AccuracyString() != "66.7%" {
		t.Errorf("AccuracyString = %q, want 66.7%%", m.AccuracyString())
	}
	if want := float64(3) / 12; m.Progress != want {
		t.Errorf("progress = %v, want %v", m.Progress, want)
	}
}

func TestStatus(t *testing.T) {
	s := testSession(t)

	if got := s.Status(0); got != StatusPointer {
		t.Errorf("Status(0) = %v, want pointer at current position", got)
	}
	if got := s.Status(4); got != StatusEmpty {
		t.Errorf("Status(4) = %v, want empty", got)
	}

	// Correct at 0, wrong at 1.
	q, _ := s.Question(0)
	s.Select(0, q.Answer)
	s.Submit(0)
	s.Advance()

	q, _ = s.Question(1)
	wrong := q.Options[0]
	if wrong == q.Answer {
		wrong = q.Options[1]
	}
	s.Select(1, wrong)
	s.Submit(1)

	if got := s.Status(0); got != StatusCorrect {
		t.Errorf("Status(0) = %v, want correct", got)
	}
	if got := s.Status(1); got != StatusIncorrect {
		t.Errorf("Status(1) = %v, want incorrect", got)
	}
	// Submitted status wins over the pointer.
	if s.Current() != 1 {
		t.Fatalf("current = %d, want 1", s.Current())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3723, "01:02:03"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.secs); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestShuffle_VariesAcrossSeeds(t *testing.T) {
	b := testBank(t)
	a := New(b, WithRand(rand.New(rand.NewPCG(1, 1)))).Order()
	c := New(b, WithRand(rand.New(rand.NewPCG(9, 9)))).Order()

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical orders")
	}
}
