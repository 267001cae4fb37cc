package quiz

import (
	"errors"
	"math/rand/v2"
	"time"

	"medquiz/internal/bank"
)

// ErrNothingSelected is reported when Submit is called for a position with no
// tentative selection. It is the only user-facing warning in the app.
var ErrNothingSelected = errors.New("no option selected")

// ErrOutOfRange is reported for position arguments outside [0, Len).
var ErrOutOfRange = errors.New("position out of range")

// Session tracks one user's progress through a shuffled pass over the bank.
// Positions index the shuffled order, not the bank. State lives only in
// memory and dies with the session; Restart replaces it wholesale.
type Session struct {
	bank      *bank.Bank
	order     []int
	current   int
	selected  []string // "" = no tentative selection yet
	submitted []bool
	correct   []bool // meaningful only where submitted is true
	score     int
	startedAt time.Time

	rng *rand.Rand
	now func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock sets the time source used for the session timer.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a session over the bank: shuffled order, position 0, zero
// score, timer started.
func New(b *bank.Bank, opts ...Option) *Session {
	s := &Session{
		bank: b,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset installs a fresh shuffle and clears all per-position state.
func (s *Session) reset() {
	n := s.bank.Len()
	s.order = make([]int, n)
	for i := range s.order {
		s.order[i] = i
	}
	shuffle := rand.Shuffle
	if s.rng != nil {
		shuffle = s.rng.Shuffle
	}
	shuffle(n, func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})

	s.current = 0
	s.selected = make([]string, n)
	s.submitted = make([]bool, n)
	s.correct = make([]bool, n)
	s.score = 0
	s.startedAt = s.now()
}

// Restart discards all progress: new shuffle, cleared selections and
// submissions, zero score, timer restarted. Always allowed.
func (s *Session) Restart() {
	s.reset()
}

// Len returns the number of positions in the session.
func (s *Session) Len() int {
	return len(s.order)
}

// Current returns the position currently displayed.
func (s *Session) Current() int {
	return s.current
}

// Question returns the bank question shown at the given position.
func (s *Session) Question(pos int) (bank.Question, error) {
	if pos < 0 || pos >= len(s.order) {
		return bank.Question{}, ErrOutOfRange
	}
	return s.bank.Question(s.order[pos]), nil
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() bank.Question {
	return s.bank.Question(s.order[s.current])
}

// Select records a tentative choice for the position. Once the position is
// submitted the locked answer is kept and the call is a no-op, so the
// displayed answer can never drift from what was scored.
func (s *Session) Select(pos int, option string) error {
	if pos < 0 || pos >= len(s.order) {
		return ErrOutOfRange
	}
	if s.submitted[pos] {
		return nil
	}
	s.selected[pos] = option
	return nil
}

// Selected returns the tentative (or locked) choice at the position, or ""
// if none has been made.
func (s *Session) Selected(pos int) string {
	if pos < 0 || pos >= len(s.order) {
		return ""
	}
	return s.selected[pos]
}

// Submit locks in the selection at the position and scores it. Submitting an
// already-submitted position is a no-op, so a position can never be scored
// twice. Returns whether the locked answer was correct.
func (s *Session) Submit(pos int) (bool, error) {
	if pos < 0 || pos >= len(s.order) {
		return false, ErrOutOfRange
	}
	if s.submitted[pos] {
		return s.correct[pos], nil
	}
	if s.selected[pos] == "" {
		return false, ErrNothingSelected
	}

	isCorrect := s.selected[pos] == s.bank.Question(s.order[pos]).Answer
	s.correct[pos] = isCorrect
	s.submitted[pos] = true
	if isCorrect {
		s.score++
	}
	return isCorrect, nil
}

// Submitted reports whether the position has been locked in.
func (s *Session) Submitted(pos int) bool {
	if pos < 0 || pos >= len(s.order) {
		return false
	}
	return s.submitted[pos]
}

// Result reports the correctness of a position. answered is false until the
// position has been submitted.
func (s *Session) Result(pos int) (correct, answered bool) {
	if pos < 0 || pos >= len(s.order) || !s.submitted[pos] {
		return false, false
	}
	return s.correct[pos], true
}

// Advance moves to the next position. It refuses to move while the current
// position is unsubmitted, and clamps at the last position. Reports whether
// the position changed.
func (s *Session) Advance() bool {
	if !s.submitted[s.current] {
		return false
	}
	if s.current >= len(s.order)-1 {
		return false
	}
	s.current++
	return true
}

// Retreat moves to the previous position, clamped at 0. Always allowed.
func (s *Session) Retreat() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// JumpTo moves directly to the position, regardless of submission state
// anywhere.
func (s *Session) JumpTo(pos int) error {
	if pos < 0 || pos >= len(s.order) {
		return ErrOutOfRange
	}
	s.current = pos
	return nil
}

// Score returns the count of correctly answered positions.
func (s *Session) Score() int {
	return s.score
}

// Done reports whether every position has been submitted.
func (s *Session) Done() bool {
	for _, sub := range s.submitted {
		if !sub {
			return false
		}
	}
	return true
}

// StartedAt returns when the session (or the latest restart) began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns wall-clock time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.startedAt)
}

// Order returns a copy of the shuffled bank-index permutation.
func (s *Session) Order() []int {
	order := make([]int, len(s.order))
	copy(order, s.order)
	return order
}
