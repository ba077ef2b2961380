// Package router keeps the stack of screens the app draws from. Screens
// navigate by returning the commands built by Go, Back and Swap.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
)

type (
	PushScreenMsg    struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Go opens s on top of the current screen.
func Go(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns to the screen below.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Swap replaces the current screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Router is a screen stack that is never empty.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen unless it is the root. The uncovered screen is
// resumed if it implements screen.Resumer.
func (r *Router) Pop() tea.Cmd {
	n := len(r.stack)
	if n < 2 {
		return nil
	}
	r.stack[n-1] = nil
	r.stack = r.stack[:n-1]
	if rs, ok := r.Active().(screen.Resumer); ok {
		return rs.Resume()
	}
	return nil
}

func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	next, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
