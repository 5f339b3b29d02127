package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizladder/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

// forwardScreen counts the messages it receives.
type forwardScreen struct {
	stubScreen
	got int
}

func (s *forwardScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.got++
	return s, nil
}

func TestUpdateForwardsToActive(t *testing.T) {
	bottom := &forwardScreen{stubScreen: stubScreen{title: "bottom"}}
	top := &forwardScreen{stubScreen: stubScreen{title: "top"}}
	r := New(bottom)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})

	if top.got != 1 || bottom.got != 0 {
		t.Errorf("top got %d, bottom got %d; want 1 and 0", top.got, bottom.got)
	}
}

func TestNavigationCommands(t *testing.T) {
	s := &stubScreen{title: "pushed"}
	msg := Push(s)()
	push, ok := msg.(PushScreenMsg)
	if !ok || push.Screen != s {
		t.Fatalf("Push() produced %#v", msg)
	}
	if _, ok := Pop().(PopScreenMsg); !ok {
		t.Error("Pop() should produce PopScreenMsg")
	}
	if rep, ok := Replace(s)().(ReplaceScreenMsg); !ok || rep.Screen != s {
		t.Error("Replace() should produce ReplaceScreenMsg")
	}
}
