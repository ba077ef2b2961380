package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
)

type stubScreen struct {
	title   string
	inits   int
	resumed int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { s.inits++; return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "view:" + s.title }
func (s *stubScreen) Title() string        { return s.title }

type resumingScreen struct{ stubScreen }

func (s *resumingScreen) Resume() tea.Cmd { s.resumed++; return nil }

func TestRouter_Navigation(t *testing.T) {
	home := &resumingScreen{stubScreen{title: "home"}}
	quiz := &stubScreen{title: "quiz"}
	summary := &stubScreen{title: "summary"}
	r := New(home)

	steps := []struct {
		cmd       tea.Cmd
		wantTop   string
		wantDepth int
	}{
		{Go(quiz), "quiz", 2},
		{Swap(summary), "summary", 2},
		{Back(), "home", 1},
		{Back(), "home", 1},
	}
	for i, st := range steps {
		r.Update(st.cmd())
		if r.Active().Title() != st.wantTop || r.Depth() != st.wantDepth {
			t.Fatalf("step %d: top %q depth %d, want %q depth %d",
				i, r.Active().Title(), r.Depth(), st.wantTop, st.wantDepth)
		}
	}

	if quiz.inits != 1 || summary.inits != 1 {
		t.Errorf("Init counts: quiz %d summary %d, want 1 each", quiz.inits, summary.inits)
	}
	if home.resumed != 1 {
		t.Errorf("home resumed %d times, want 1 (pop at the root is a no-op)", home.resumed)
	}
}

func TestRouter_ForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	quiz := &stubScreen{title: "quiz"}
	r := New(home)
	r.Push(quiz)

	r.Update(tea.KeyPressMsg{Code: 'a'})
	if len(quiz.got) != 1 || len(home.got) != 0 {
		t.Errorf("messages: quiz %d home %d", len(quiz.got), len(home.got))
	}
	if got := r.View(80, 24); got != "view:quiz" {
		t.Errorf("View() = %q", got)
	}
}

func TestRouter_ReplaceRoot(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})
	home := &stubScreen{title: "home"}
	r.Replace(home)
	if r.Depth() != 1 || r.Active() != screen.Screen(home) {
		t.Fatal("replace at the root should keep a single screen")
	}
	r.Pop()
	if r.Active().Title() != "home" {
		t.Error("root must survive Pop")
	}
}
