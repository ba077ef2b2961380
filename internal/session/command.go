package session

import (
	"context"
	"fmt"
)

// CommandKind names one of the session commands.
type CommandKind int

const (
	CmdGenerate CommandKind = iota
	CmdSubmit
	CmdShowHint
	CmdOverride
	CmdNext
)

func (k CommandKind) String() string {
	switch k {
	case CmdGenerate:
		return "generate a question"
	case CmdSubmit:
		return "submit an answer"
	case CmdShowHint:
		return "show the hint"
	case CmdOverride:
		return "override the verdict"
	case CmdNext:
		return "go to the next question"
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is a player action. Answer is only used by CmdSubmit.
type Command struct {
	Kind   CommandKind
	Answer string
}

// Dispatch routes cmd to the matching Machine method.
func (m *Machine) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	switch cmd.Kind {
	case CmdGenerate:
		return m.Generate(ctx)
	case CmdSubmit:
		return m.Submit(ctx, cmd.Answer)
	case CmdShowHint:
		if _, err := m.Hint(); err != nil {
			return m.Snapshot(), err
		}
		return m.Snapshot(), nil
	case CmdOverride:
		return m.Override(ctx)
	case CmdNext:
		return m.Next(ctx)
	}
	return m.Snapshot(), fmt.Errorf("unknown command %d", int(cmd.Kind))
}
