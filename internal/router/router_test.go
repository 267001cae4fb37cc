package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"medquiz/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	title  string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }
func (s *stubScreen) Title() string                 { return s.title }

func TestPushPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})

	if r.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", r.Depth())
	}
	if !quiz.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestPop_NeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (root screen must survive pop)", r.Depth())
	}
	if r.Active() == nil {
		t.Error("active is nil after popping the root")
	}
}

func TestReplace(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "quiz"}})

	summary := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Fatalf("depth after replace = %d, want 2", r.Depth())
	}
	if !summary.inited {
		t.Error("replacement screen was not initialized")
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}

	// Popping the replacement lands back on the original screen below it.
	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}
