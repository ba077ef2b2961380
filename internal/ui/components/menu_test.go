package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg struct{ label string }

func testMenu(disabled ...int) Menu {
	items := []MenuItem{{Label: "History"}, {Label: "Math"}, {Label: "K-POP"}, {Label: "Riddles"}}
	for i := range items {
		label := items[i].Label
		items[i].Action = func() tea.Cmd {
			return func() tea.Msg { return pickedMsg{label} }
		}
	}
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return NewMenu(items)
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_Wraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 3 {
		t.Errorf("up from the top should wrap to the bottom, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 0 {
		t.Errorf("down from the bottom should wrap to the top, got %d", m.Selected)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := testMenu(0, 2)
	if m.Selected != 1 {
		t.Fatalf("first enabled item should be highlighted, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down should skip K-POP, got %d", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 1 {
		t.Errorf("down should wrap past History, got %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key(tea.KeyDown))
	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd().(pickedMsg); got.label != "Math" {
		t.Errorf("picked %q, want Math", got.label)
	}
}

func TestMenu_DigitShortcut(t *testing.T) {
	m := testMenu(1)
	m, cmd := m.Update(key('3'))
	if cmd == nil || cmd().(pickedMsg).label != "K-POP" {
		t.Fatal("3 should pick the third item")
	}
	if m.Selected != 2 {
		t.Errorf("shortcut should move the cursor, got %d", m.Selected)
	}

	if _, cmd := m.Update(key('2')); cmd != nil {
		t.Error("disabled item must not be picked by shortcut")
	}
	if _, cmd := m.Update(key('9')); cmd != nil {
		t.Error("out of range shortcut should do nothing")
	}
}

func TestMenu_Highlight(t *testing.T) {
	m := testMenu()
	if !m.Highlight("Riddles") || m.Current().Label != "Riddles" {
		t.Errorf("Highlight(Riddles) left cursor on %q", m.Current().Label)
	}
	if m.Highlight("Astrology") {
		t.Error("unknown label should not be found")
	}
	if m.Current().Label != "Riddles" {
		t.Error("failed Highlight must not move the cursor")
	}
}

func TestMenu_Empty(t *testing.T) {
	m := NewMenu(nil)
	m, cmd := m.Update(key(tea.KeyEnter))
	if cmd != nil || m.Current().Label != "" {
		t.Error("empty menu should ignore input")
	}
	if len(m.Labels()) != 0 {
		t.Error("empty menu has no labels")
	}
}
