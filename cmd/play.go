package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz in the full-screen UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("skip-welcome", false, "Go straight to topic selection")
}

// runPlay builds the game and launches the TUI. Logs go to a file since
// the TUI owns the terminal.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := newGame(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer g.Close()

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	runErr := app.Run(ctx, app.Options{
		Machine:     g.machine,
		Offline:     g.offline,
		SkipWelcome: skip,
	})
	printSummary(g.machine.End(ctx))
	return runErr
}
