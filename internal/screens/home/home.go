package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	"github.com/phoebegrace/NoFilterNaevis/internal/router"
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	sess "github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/components"
	"github.com/phoebegrace/NoFilterNaevis/internal/ui/layout"
)

type stage int

const (
	stageMain stage = iota
	stageTopic
	stageDifficulty
)

type startMsg struct{}

type topicChosenMsg struct {
	Topic quiz.Topic
}

type difficultyChosenMsg struct {
	Difficulty quiz.Difficulty
}

type stats struct {
	score      int
	correct    int
	answered   int
	topic      string
	difficulty string
}

// HomeScreen is the setup screen: a main menu, then a topic menu, then a
// difficulty menu, after which the quiz screen is pushed.
type HomeScreen struct {
	machine     *sess.Machine
	quizFactory func() screen.Screen
	offline     bool

	stage        stage
	menu         components.Menu
	pendingTopic quiz.Topic

	stats  stats
	mascot MascotVariant
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a HomeScreen. quizFactory builds the quiz screen once a
// topic and difficulty are chosen. offline shows the built-in bank notice.
func New(machine *sess.Machine, quizFactory func() screen.Screen, offline bool) *HomeScreen {
	h := &HomeScreen{
		machine:     machine,
		quizFactory: quizFactory,
		offline:     offline,
	}
	h.refresh()
	h.showMain()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume runs when the quiz screen is popped to change the selection, so
// it goes straight to the topic menu.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	h.showTopics()
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Score() (int, int) {
	snap := h.machine.Snapshot()
	return snap.Score, snap.Asked
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if h.stage != stageMain {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		h.showTopics()
		return h, nil

	case topicChosenMsg:
		h.pendingTopic = msg.Topic
		h.showDifficulties()
		return h, nil

	case difficultyChosenMsg:
		return h, h.start(msg.Difficulty)

	case tea.KeyPressMsg:
		if msg.String() == "esc" {
			switch h.stage {
			case stageTopic:
				h.showMain()
			case stageDifficulty:
				h.showTopics()
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) start(d quiz.Difficulty) tea.Cmd {
	if err := h.machine.Select(h.pendingTopic.String(), d.String()); err != nil {
		h.errMsg = err.Error()
		h.showTopics()
		return nil
	}
	h.errMsg = ""
	h.refresh()
	h.showMain()
	return router.Go(h.quizFactory())
}

func (h *HomeScreen) refresh() {
	snap := h.machine.Snapshot()
	h.stats = stats{
		score:      snap.Score,
		correct:    snap.NumRight,
		answered:   snap.Answered,
		topic:      snap.SelectedTopic.String(),
		difficulty: snap.SelectedDifficulty.String(),
	}
	h.mascot = mascotFor(snap.Correct)
}

func (h *HomeScreen) showMain() {
	h.stage = stageMain
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg { return startMsg{} }
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
}

func (h *HomeScreen) showTopics() {
	h.stage = stageTopic
	topics := h.machine.Topics()
	current := h.machine.Snapshot().SelectedTopic

	items := make([]components.MenuItem, len(topics))
	for i, t := range topics {
		items[i] = components.MenuItem{Label: t.String(), Action: func() tea.Cmd {
			return func() tea.Msg { return topicChosenMsg{Topic: t} }
		}}
	}
	h.menu = components.NewMenu(items)
	h.menu.Highlight(current.String())
}

func (h *HomeScreen) showDifficulties() {
	h.stage = stageDifficulty
	levels := quiz.Difficulties()
	current := h.machine.Snapshot().SelectedDifficulty

	items := make([]components.MenuItem, len(levels))
	for i, d := range levels {
		items[i] = components.MenuItem{Label: difficultyLabel(d), Action: func() tea.Cmd {
			return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
		}}
	}
	h.menu = components.NewMenu(items)
	h.menu.Highlight(difficultyLabel(current))
}

func difficultyLabel(d quiz.Difficulty) string {
	label := strings.ToUpper(d.String())
	if p := quiz.PointsFor(d); p != 1 {
		return fmt.Sprintf("%s  (%d pts)", label, p)
	}
	return label + "  (1 pt)"
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	if h.stage == stageMain {
		sections = append(sections, renderTitle(cw, compact))
		if !compact {
			sections = append(sections, renderMascotBox(h.mascot, cw))
		}
	}

	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	switch h.stage {
	case stageMain:
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	case stageTopic:
		sections = append(sections, renderArcadeMenuCompact("Select a topic:", h.menu.Labels(), h.menu.Selected, cw))
	case stageDifficulty:
		sections = append(sections, renderArcadeMenuCompact(
			"Select the difficulty level for "+h.pendingTopic.String()+":", h.menu.Labels(), h.menu.Selected, cw))
	}

	if h.offline {
		sections = append(sections, renderOfflineBanner(cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}
