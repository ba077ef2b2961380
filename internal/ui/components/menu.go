package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one choice in a Menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu tracks the highlighted item of a vertical list. Rendering is left
// to the screen. Navigation wraps and skips disabled items; digits 1-9
// activate the matching item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu highlights the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.step(-1, 1)
	return m
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, it := range m.Items {
		labels[i] = it.Label
	}
	return labels
}

// Current returns the highlighted item, or the zero item for an empty menu.
func (m Menu) Current() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}
	}
	return m.Items[m.Selected]
}

// Highlight moves the cursor to the first enabled item labelled label.
// It reports whether one was found.
func (m *Menu) Highlight(label string) bool {
	for i, it := range m.Items {
		if it.Label == label && !it.Disabled {
			m.Selected = i
			return true
		}
	}
	return false
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k", "shift+tab":
		m.Selected = m.step(m.Selected, -1)
	case "down", "j", "tab":
		m.Selected = m.step(m.Selected, 1)
	case "home", "g":
		m.Selected = m.step(-1, 1)
	case "end", "G":
		m.Selected = m.step(len(m.Items), -1)
	case "enter", "space":
		cmd := m.activate(m.Selected)
		return m, cmd
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			cmd := m.activate(int(key[0] - '1'))
			return m, cmd
		}
	}
	return m, nil
}

func (m *Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Disabled {
		return nil
	}
	m.Selected = i
	if m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// step walks from i in direction dir to the next enabled item, wrapping
// around. It returns i unchanged when nothing else is enabled.
func (m Menu) step(i, dir int) int {
	n := len(m.Items)
	if n == 0 {
		return 0
	}
	for k := 1; k <= n; k++ {
		j := ((i+dir*k)%n + n) % n
		if !m.Items[j].Disabled {
			return j
		}
	}
	return max(i, 0)
}
