package session

import "fmt"

// ErrInvalidTransition is returned when a command is not allowed in the
// current phase. The session is left untouched.
type ErrInvalidTransition struct {
	Command CommandKind
	Phase   Phase

	// Reason narrows down why, when the phase alone does not explain it.
	Reason string
}

func (e *ErrInvalidTransition) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s while %s: %s", e.Command, e.Phase, e.Reason)
	}
	return fmt.Sprintf("cannot %s while %s", e.Command, e.Phase)
}

// ErrInvalidSelection is returned by Select for an unknown topic or
// difficulty.
type ErrInvalidSelection struct {
	Err error
}

func (e *ErrInvalidSelection) Error() string {
	return fmt.Sprintf("invalid selection: %v", e.Err)
}

func (e *ErrInvalidSelection) Unwrap() error { return e.Err }
