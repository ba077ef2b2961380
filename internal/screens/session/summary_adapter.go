package session

import (
	"github.com/phoebegrace/NoFilterNaevis/internal/screen"
	"github.com/phoebegrace/NoFilterNaevis/internal/screens/history"
	"github.com/phoebegrace/NoFilterNaevis/internal/screens/summary"
	sess "github.com/phoebegrace/NoFilterNaevis/internal/session"
)

// newSummaryScreenAdapter creates a summary screen from session data,
// with the answer review backed by the machine's audit log.
func newSummaryScreenAdapter(s sess.Summary, machine *sess.Machine) screen.Screen {
	review := func() screen.Screen {
		return history.New(machine.Answers)
	}
	return summary.New(s, review)
}
