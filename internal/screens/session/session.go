package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	sess "github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/components"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/layout"
)

const answerPlaceholder = "Type your answer..."

// SessionScreen implements screen.Screen for the quiz itself. Machine
// commands that may call the LLM run inside a tea.Cmd; while one is
// outstanding every other key is ignored, so the machine only ever sees
// one command at a time.
type SessionScreen struct {
	ctx     context.Context
	machine *sess.Machine

	snap  sess.Snapshot
	input components.TextInput

	busy               bool
	showHint           bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.ScoreProvider = (*SessionScreen)(nil)

// New creates a SessionScreen driving machine.
func New(ctx context.Context, machine *sess.Machine) *SessionScreen {
	return &SessionScreen{
		ctx:     ctx,
		machine: machine,
		snap:    machine.Snapshot(),
		input:   components.NewTextInput(answerPlaceholder, 200),
	}
}

// Init asks for a question unless one is already on screen.
func (s *SessionScreen) Init() tea.Cmd {
	if s.snap.Phase == sess.PhaseQuestion {
		return s.input.Init()
	}
	return s.dispatch(sess.Command{Kind: sess.CmdGenerate})
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) Score() (int, int) {
	return s.snap.Score, s.snap.Asked
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.busy {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}

	var hints []layout.KeyHint
	switch s.snap.Phase {
	case sess.PhaseQuestion:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check answer"})
	case sess.PhaseAnswered:
		if s.snap.CanOverride {
			hints = append(hints, layout.KeyHint{Key: "O", Description: "I am correct"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "N", Description: "Next question"},
			layout.KeyHint{Key: "T", Description: "Change topic"})
	case sess.PhaseIdle:
		hints = append(hints,
			layout.KeyHint{Key: "N", Description: "Try again"},
			layout.KeyHint{Key: "T", Description: "Change topic"})
	}
	if s.snap.HasQuestion {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+H", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case answerCheckedMsg:
		return s.handleAnswerChecked(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.snap.Phase == sess.PhaseQuestion && !s.busy {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// dispatch runs cmd on the machine asynchronously and marks the screen
// busy until the result message arrives.
func (s *SessionScreen) dispatch(cmd sess.Command) tea.Cmd {
	s.busy = true
	s.errMsg = ""
	machine, ctx := s.machine, s.ctx
	return func() tea.Msg {
		snap, err := machine.Dispatch(ctx, cmd)
		if cmd.Kind == sess.CmdSubmit {
			return answerCheckedMsg{Snap: snap, Err: err}
		}
		return questionReadyMsg{Snap: snap, Err: err}
	}
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	s.snap = msg.Snap
	if msg.Err != nil {
		s.errMsg = describeError(msg.Err)
		return s, nil
	}
	s.showHint = false
	s.input = components.NewTextInput(answerPlaceholder, 200)
	return s, s.input.Init()
}

func (s *SessionScreen) handleAnswerChecked(msg answerCheckedMsg) (screen.Screen, tea.Cmd) {
	s.busy = false
	s.snap = msg.Snap
	if msg.Err != nil {
		s.errMsg = describeError(msg.Err)
		return s, nil
	}
	if s.snap.Correct != nil {
		s.input.Submit(*s.snap.Correct)
	}
	return s, nil
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	summary := s.machine.End(s.ctx)
	return s, router.Go(newSummaryScreenAdapter(summary, s.machine))
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "ctrl+h":
		return s.toggleHint()
	}

	switch s.snap.Phase {
	case sess.PhaseQuestion:
		if key == "enter" {
			return s.submitAnswer()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case sess.PhaseAnswered:
		switch key {
		case "o", "O":
			return s.override()
		case "n", "N", "enter":
			return s, s.dispatch(sess.Command{Kind: sess.CmdNext})
		case "t", "T":
			return s, router.Back()
		}

	case sess.PhaseIdle:
		switch key {
		case "n", "N", "enter":
			return s, s.dispatch(sess.Command{Kind: sess.CmdGenerate})
		case "t", "T":
			return s, router.Back()
		}
	}
	return s, nil
}

func (s *SessionScreen) toggleHint() (screen.Screen, tea.Cmd) {
	if s.showHint {
		s.showHint = false
		return s, nil
	}
	if _, err := s.machine.Hint(); err != nil {
		s.errMsg = describeError(err)
		return s, nil
	}
	s.showHint = true
	return s, nil
}

// submitAnswer sends the typed answer. Blank answers are ignored.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := s.input.Value()
	if strings.TrimSpace(answer) == "" {
		return s, nil
	}
	return s, s.dispatch(sess.Command{Kind: sess.CmdSubmit, Answer: answer})
}

// override runs synchronously: it never calls the LLM.
func (s *SessionScreen) override() (screen.Screen, tea.Cmd) {
	snap, err := s.machine.Dispatch(s.ctx, sess.Command{Kind: sess.CmdOverride})
	s.snap = snap
	if err != nil {
		s.errMsg = describeError(err)
	}
	return s, nil
}

// describeError turns a command error into a line for the player.
func describeError(err error) string {
	var exhausted *problemgen.ErrGenerationExhausted
	var genErr *problemgen.ErrGeneration
	var transition *sess.ErrInvalidTransition
	switch {
	case errors.As(err, &exhausted):
		return fmt.Sprintf("Naevis ran out of fresh questions after %d tries. Press N to try again or T to change topic.",
			exhausted.Attempts)
	case errors.As(err, &genErr):
		return fmt.Sprintf("Could not get a question: %v. Press N to try again.", genErr.Err)
	case errors.As(err, &transition):
		return fmt.Sprintf("Can't %s right now.", transition.Command)
	}
	return err.Error()
}
