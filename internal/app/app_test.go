package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
)

type oneQuestion struct{}

func (oneQuestion) GenerateUnique(_ context.Context, topic quiz.Topic, difficulty quiz.Difficulty, state problemgen.SessionState) (quiz.QuestionRecord, error) {
	rec := quiz.QuestionRecord{Question: "Q?", Hint: "H", Answer: "A"}
	state.StartQuestion(rec, topic, difficulty, false)
	return rec, nil
}

func testModel(skipWelcome bool) AppModel {
	m := session.NewMachine(session.Options{Generator: oneQuestion{}})
	return newAppModel(context.Background(), Options{Machine: m, SkipWelcome: skipWelcome})
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(true)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestAppModel_StartsOnWelcome(t *testing.T) {
	m := testModel(false)
	if m.router.Active().Title() != "" {
		t.Errorf("first screen title = %q, want the welcome screen", m.router.Active().Title())
	}
	if testModel(true).router.Active().Title() != "Home" {
		t.Error("SkipWelcome should start on the home screen")
	}
}

func TestAppModel_View(t *testing.T) {
	m := testModel(true)
	if got := m.render(); got != "" {
		t.Error("view should be empty before the first window size")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.render()
	if !strings.Contains(view, "Naevis Asks") || !strings.Contains(view, "0 pts") {
		t.Error("header should show the brand and score")
	}
	if !strings.Contains(view, "START QUIZ") {
		t.Error("home screen should be rendered")
	}
}

func TestRun_RequiresMachine(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected error without a machine")
	}
}
