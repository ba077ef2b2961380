package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Play in plain line mode without the full-screen UI",
	Long: `Play in plain line mode. Type an answer and press enter, or use:
  /hint               show the hint
  /override           count a wrong verdict as correct
  /next               next question
  /topic <name>       change topic for the next question
  /difficulty <level> change difficulty for the next question
  /score              show the score
  /quit               end the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		g, err := newGame(ctx, cmd, false)
		if err != nil {
			return err
		}
		defer g.Close()

		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		if topic == "" {
			topic = g.machine.Snapshot().SelectedTopic.String()
		}
		if err := g.machine.Select(topic, difficulty); err != nil {
			return err
		}

		runErr := newAsker(g.machine, os.Stdin, os.Stdout).run(ctx)
		printSummary(g.machine.End(ctx))
		return runErr
	},
}

func init() {
	askCmd.Flags().StringP("topic", "t", "", "Topic (default: first configured topic)")
	askCmd.Flags().StringP("difficulty", "d", string(quiz.DifficultyEasy), "Difficulty: easy, medium or hard")
}

// asker drives a session from text lines.
type asker struct {
	machine *session.Machine
	in      *bufio.Scanner
	out     io.Writer
}

func newAsker(machine *session.Machine, in io.Reader, out io.Writer) *asker {
	return &asker{machine: machine, in: bufio.NewScanner(in), out: out}
}

// run asks the first question and handles lines until /quit or EOF.
func (a *asker) run(ctx context.Context) error {
	a.generate(ctx, a.machine.Generate)

	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			fmt.Fprintln(a.out)
			return a.in.Err()
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			a.answer(ctx, line)
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch strings.ToLower(name) {
		case "/quit", "/exit":
			return nil
		case "/hint":
			a.hint()
		case "/override":
			a.override(ctx)
		case "/next":
			a.next(ctx)
		case "/topic":
			a.selectFor(arg, "")
		case "/difficulty":
			a.selectFor("", arg)
		case "/score":
			a.score()
		default:
			fmt.Fprintf(a.out, "Unknown command %s. Try /hint, /override, /next, /topic, /difficulty, /score or /quit.\n", name)
		}
	}
}

func (a *asker) generate(ctx context.Context, fn func(context.Context) (session.Snapshot, error)) {
	fmt.Fprintln(a.out, "Naevis is thinking of a question...")
	snap, err := fn(ctx)
	if err != nil {
		fmt.Fprintln(a.out, askError(err))
		return
	}
	fmt.Fprintf(a.out, "\n[%s | %s | +%d]\nQuestion: %s\n",
		snap.Topic, snap.Difficulty, quiz.PointsFor(snap.Difficulty), snap.Question)
	if snap.Degraded {
		fmt.Fprintln(a.out, "(Naevis mumbled this one. There is no hint and the answer can't be checked reliably.)")
	}
}

func (a *asker) answer(ctx context.Context, text string) {
	switch a.machine.Phase() {
	case session.PhaseAnswered:
		fmt.Fprintln(a.out, "Already answered. Type /next for another question or /override if you were right.")
		return
	case session.PhaseIdle:
		fmt.Fprintln(a.out, "No question yet. Type /next to get one.")
		return
	}

	snap, err := a.machine.Submit(ctx, text)
	if err != nil {
		fmt.Fprintln(a.out, askError(err))
		return
	}
	if snap.Correct != nil && *snap.Correct {
		fmt.Fprintf(a.out, "Correct! +%d\n", quiz.PointsFor(snap.Difficulty))
	} else {
		fmt.Fprintf(a.out, "Incorrect! The correct answer was: %s\n", snap.Answer)
	}
	if snap.Commentary != "" {
		fmt.Fprintf(a.out, "Naevis: %s\n", snap.Commentary)
	}
}

func (a *asker) hint() {
	h, err := a.machine.Hint()
	if err != nil {
		fmt.Fprintln(a.out, askError(err))
		return
	}
	fmt.Fprintf(a.out, "Hint: %s\n", h)
}

func (a *asker) override(ctx context.Context) {
	snap, err := a.machine.Override(ctx)
	if err != nil {
		fmt.Fprintln(a.out, askError(err))
		return
	}
	fmt.Fprintf(a.out, "You confirmed your answer as correct! +%d (score %d)\n",
		quiz.PointsFor(snap.Difficulty), snap.Score)
}

func (a *asker) next(ctx context.Context) {
	switch a.machine.Phase() {
	case session.PhaseQuestion:
		fmt.Fprintln(a.out, "Answer the current question first.")
	case session.PhaseIdle:
		a.generate(ctx, a.machine.Generate)
	default:
		a.generate(ctx, a.machine.Next)
	}
}

// selectFor changes one half of the selection, keeping the other.
func (a *asker) selectFor(topic, difficulty string) {
	snap := a.machine.Snapshot()
	if topic == "" && difficulty == "" {
		fmt.Fprintf(a.out, "Topics: %s\nDifficulties: easy, medium, hard\n", topicList(a.machine.Topics()))
		return
	}
	if topic == "" {
		topic = snap.SelectedTopic.String()
	}
	if difficulty == "" {
		difficulty = snap.SelectedDifficulty.String()
	}
	if err := a.machine.Select(topic, difficulty); err != nil {
		fmt.Fprintln(a.out, askError(err))
		return
	}
	snap = a.machine.Snapshot()
	fmt.Fprintf(a.out, "Next question: %s, %s.\n", snap.SelectedTopic, snap.SelectedDifficulty)
}

func (a *asker) score() {
	snap := a.machine.Snapshot()
	fmt.Fprintf(a.out, "Score: %d pts | asked %d | correct %d | overrides %d\n",
		snap.Score, snap.Asked, snap.NumRight, snap.Overrides)
}

func topicList(topics []quiz.Topic) string {
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func askError(err error) string {
	var exhausted *problemgen.ErrGenerationExhausted
	var transition *session.ErrInvalidTransition
	switch {
	case errors.As(err, &exhausted):
		return fmt.Sprintf("Naevis ran out of fresh questions after %d tries. Type /next to try again or /topic to switch.", exhausted.Attempts)
	case errors.As(err, &transition):
		return "Can't do that now: " + transition.Error() + "."
	}
	return "Error: " + err.Error()
}
