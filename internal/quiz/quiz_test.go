package quiz

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"medquiz/internal/bank"
)

// testBank builds a 12-question bank where question i's correct answer is
// "Option B of Q<i+1>".
func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	questions := make([]bank.Question, 12)
	for i := range questions {
		n := i + 1
		questions[i] = bank.Question{
			Text: fmt.Sprintf("Question %d?", n),
			Options: []string{
				fmt.Sprintf("Option A of Q%d", n),
				fmt.Sprintf("Option B of Q%d", n),
				fmt.Sprintf("Option C of Q%d", n),
				fmt.Sprintf("Option D of Q%d", n),
			},
			Answer:      fmt.Sprintf("Option B of Q%d", n),
			Explanation: fmt.Sprintf("Because of reason %d.", n),
		}
	}
	b, err := bank.New(questions)
	if err != nil {
		t.Fatalf("build test bank: %v", err)
	}
	return b
}

func testSession(t *testing.T) *Session {
	t.Helper()
	return New(testBank(t), WithRand(rand.New(rand.NewPCG(7, 13))))
}

// checkScoreInvariant verifies score equals the count of correct positions.
func checkScoreInvariant(t *testing.T, s *Session) {
	t.Helper()
	count := 0
	for pos := 0; pos < s.Len(); pos++ {
		if correct, answered := s.Result(pos); answered && correct {
			count++
		}
	}
	if s.Score() != count {
		t.Errorf("score = %d, want %d (count of correct positions)", s.Score(), count)
	}
}

// checkPermutation verifies order is a bijection over {0..n-1}.
func checkPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if len(order) != n {
		t.Fatalf("order length = %d, want %d", len(order), n)
	}
	seen := make(map[int]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			t.Errorf("order entry %d out of range [0,%d)", idx, n)
		}
		if seen[idx] {
			t.Errorf("order entry %d duplicated", idx)
		}
		seen[idx] = true
	}
}

func TestNew_InitialState(t *testing.T) {
	s := testSession(t)

	checkPermutation(t, s.Order(), 12)
	if s.Current() != 0 {
		t.Errorf("current = %d, want 0", s.Current())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	for pos := 0; pos < s.Len(); pos++ {
		if s.Submitted(pos) {
			t.Errorf("position %d submitted before any action", pos)
		}
		if s.Selected(pos) != "" {
			t.Errorf("position %d has selection before any action", pos)
		}
	}
}

func TestSubmit_CorrectAnswer(t *testing.T) {
	s := testSession(t)
	q, err := s.Question(0)
	if err != nil {
		t.Fatalf("question 0: %v", err)
	}

	if err := s.Select(0, q.Answer); err != nil {
		t.Fatalf("select: %v", err)
	}
	correct, err := s.Submit(0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !correct {
		t.Error("expected correct submission")
	}
	if got, answered := s.Result(0); !answered || !got {
		t.Errorf("Result(0) = (%v, %v), want (true, true)", got, answered)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if !s.Submitted(0) {
		t.Error("position 0 not marked submitted")
	}
	checkScoreInvariant(t, s)
}

func TestSubmit_WrongAnswer(t *testing.T) {
	s := testSession(t)
	q, _ := s.Question(0)

	wrong := q.Options[0]
	if wrong == q.Answer {
		wrong = q.Options[1]
	}
	if err := s.Select(0, wrong); err != nil {
		t.Fatalf("select: %v", err)
	}
	correct, err := s.Submit(0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if correct {
		t.Error("expected incorrect submission")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
	checkScoreInvariant(t, s)
}

func TestSubmit_WithoutSelection(t *testing.T) {
	s := testSession(t)

	_, err := s.Submit(0)
	if err != ErrNothingSelected {
		t.Fatalf("err = %v, want ErrNothingSelected", err)
	}
	if s.Submitted(0) {
		t.Error("failed submit must not mark the position submitted")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0 after failed submit", s.Score())
	}
}

func TestSubmit_NeverScoresTwice(t *testing.T) {
	s := testSession(t)
	q, _ := s.Question(0)
	s.Select(0, q.Answer)
	s.Submit(0)

	// Resubmitting, with or without a changed selection attempt, must not
	// change the score or the recorded result.
	for i := 0; i < 3; i++ {
		correct, err := s.Submit(0)
		if err != nil {
			t.Fatalf("resubmit %d: %v", i, err)
		}
		if !correct {
			t.Errorf("resubmit %d reported incorrect for a correct position", i)
		}
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1 after resubmission", s.Score())
	}
	checkScoreInvariant(t, s)
}

func TestSelect_LockedAfterSubmit(t *testing.T) {
	s := testSession(t)
	q, _ := s.Question(0)
	s.Select(0, q.Answer)
	s.Submit(0)

	if err := s.Select(0, q.Options[0]); err != nil {
		t.Fatalf("select on submitted position: %v", err)
	}
	if s.Selected(0) != q.Answer {
		t.Errorf("selection changed after submit: got %q, want %q", s.Selected(0), q.Answer)
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	s := testSession(t)
	if err := s.Select(-1, "x"); err != ErrOutOfRange {
		t.Errorf("Select(-1) err = %v, want ErrOutOfRange", err)
	}
	if err := s.Select(s.Len(), "x"); err != ErrOutOfRange {
		t.Errorf("Select(len) err = %v, want ErrOutOfRange", err)
	}
}

func TestAdvance_GatedOnSubmission(t *testing.T) {
	s := testSession(t)

	if s.Advance() {
		t.Error("Advance moved while current position was unsubmitted")
	}
	if s.Current() != 0 {
		t.Errorf("current = %d, want 0", s.Current())
	}

	q, _ := s.Question(0)
	s.Select(0, q.Answer)
	s.Submit(0)

	if !s.Advance() {
		t.Error("Advance refused after submission")
	}
	if s.Current() != 1 {
		t.Errorf("current = %d, want 1", s.Current())
	}
}

func TestAdvance_ClampsAtEnd(t *testing.T) {
	s := testSession(t)
	last := s.Len() - 1
	if err := s.JumpTo(last); err != nil {
		t.Fatalf("jump: %v", err)
	}
	q, _ := s.Question(last)
	s.Select(last, q.Answer)
	s.Submit(last)

	if s.Advance() {
		t.Error("Advance moved past the last position")
	}
	if s.Current() != last {
		t.Errorf("current = %d, want %d", s.Current(), last)
	}
}

func TestRetreat_AlwaysAllowed(t *testing.T) {
	s := testSession(t)

	if s.Retreat() {
		t.Error("Retreat moved below 0")
	}

	s.JumpTo(3)
	if !s.Retreat() {
		t.Error("Retreat refused mid-session")
	}
	if s.Current() != 2 {
		t.Errorf("current = %d, want 2", s.Current())
	}
}

func TestJumpTo(t *testing.T) {
	s := testSession(t)

	if err := s.JumpTo(5); err != nil {
		t.Fatalf("JumpTo(5): %v", err)
	}
	if s.Current() != 5 {
		t.Errorf("current = %d, want 5", s.Current())
	}

	if err := s.JumpTo(-1); err != ErrOutOfRange {
		t.Errorf("JumpTo(-1) err = %v, want ErrOutOfRange", err)
	}
	if err := s.JumpTo(s.Len()); err != ErrOutOfRange {
		t.Errorf("JumpTo(len) err = %v, want ErrOutOfRange", err)
	}
	if s.Current() != 5 {
		t.Errorf("rejected jump moved current to %d", s.Current())
	}
}

func TestRestart(t *testing.T) {
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := New(testBank(t),
		WithRand(rand.New(rand.NewPCG(7, 13))),
		WithClock(func() time.Time { return clock }),
	)

	// Answer a few positions, then restart.
	for pos := 0; pos < 3; pos++ {
		q, _ := s.Question(pos)
		s.Select(pos, q.Answer)
		s.Submit(pos)
		s.Advance()
	}
	if s.Score() != 3 {
		t.Fatalf("score = %d, want 3 before restart", s.Score())
	}

	clock = clock.Add(5 * time.Minute)
	s.Restart()

	if s.Score() != 0 {
		t.Errorf("score = %d, want 0 after restart", s.Score())
	}
	if s.Current() != 0 {
		t.Errorf("current = %d, want 0 after restart", s.Current())
	}
	for pos := 0; pos < s.Len(); pos++ {
		if s.Submitted(pos) {
			t.Errorf("position %d still submitted after restart", pos)
		}
		if s.Selected(pos) != "" {
			t.Errorf("position %d still has selection after restart", pos)
		}
		if _, answered := s.Result(pos); answered {
			t.Errorf("position %d still has a result after restart", pos)
		}
	}
	checkPermutation(t, s.Order(), 12)
	if !s.StartedAt().Equal(clock) {
		t.Errorf("startedAt = %v, want %v (timer reset)", s.StartedAt(), clock)
	}
}

func TestScoreInvariant_MixedRun(t *testing.T) {
	s := testSession(t)

	for pos := 0; pos < s.Len(); pos++ {
		q, _ := s.Question(pos)
		choice := q.Answer
		if pos%3 == 0 {
			choice = q.Options[0]
			if choice == q.Answer {
				choice = q.Options[2]
			}
		}
		s.Select(pos, choice)
		s.Submit(pos)
		checkScoreInvariant(t, s)
		s.Advance()
	}

	if !s.Done() {
		t.Error("Done() = false after submitting every position")
	}
}

func TestElapsed(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	now := start
	s := New(testBank(t), WithClock(func() time.Time { return now }))

	now = start.Add(1*time.Hour + 2*time.Minute + 3*time.Second)
	if got := s.Elapsed(); got != 1*time.Hour+2*time.Minute+3*time.Second {
		t.Errorf("Elapsed = %v", got)
	}
	if got := s.ElapsedString(); got != "01:02:03" {
		t.Errorf("ElapsedString = %q, want 01:02:03", got)
	}
}
