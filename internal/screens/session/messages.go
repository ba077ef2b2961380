package session

import (
	sess "github.com/phoebegrace/NoFilterNaevis/internal/session"
)

// questionReadyMsg is sent when a generate or next command finishes.
type questionReadyMsg struct {
	Snap sess.Snapshot
	Err  error
}

// answerCheckedMsg is sent when a submitted answer has been verified
// and commented on.
type answerCheckedMsg struct {
	Snap sess.Snapshot
	Err  error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
