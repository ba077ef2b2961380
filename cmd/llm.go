package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/llm"
	"github.com/phoebegrace/NoFilterNaevis/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls recorded in the audit log",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: withAuditLog(func(ctx context.Context, cmd *cobra.Command, repo store.EventRepo, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		return printLLMEvents(ctx, cmd.OutOrStdout(), repo, store.QueryOpts{Limit: limit, Purpose: purpose})
	}),
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: withAuditLog(func(ctx context.Context, cmd *cobra.Command, repo store.EventRepo, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		return printLLMEvent(ctx, cmd.OutOrStdout(), repo, id)
	}),
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	RunE: withAuditLog(func(ctx context.Context, cmd *cobra.Command, repo store.EventRepo, _ []string) error {
		return printLLMStats(ctx, cmd.OutOrStdout(), repo)
	}),
}

type auditLogFunc func(ctx context.Context, cmd *cobra.Command, repo store.EventRepo, args []string) error

// withAuditLog opens the audit log around fn.
func withAuditLog(fn auditLogFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openAuditLog(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return fn(ctx, cmd, s.EventRepo(), args)
	}
}

// openAuditLog opens the audit log file. Unlike play and ask, these
// commands fall back to the default data path rather than in-memory.
func openAuditLog(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, true)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	if dbPath == store.MemoryDSN {
		return nil, fmt.Errorf("the in-memory audit log cannot be inspected; pass --db")
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func printLLMEvents(ctx context.Context, w io.Writer, repo store.EventRepo, opts store.QueryOpts) error {
	events, err := repo.QueryLLMEvents(ctx, opts)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM calls recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			e.ID,
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			checkMark(e.Success),
		)
	}
	return tw.Flush()
}

func printLLMEvent(ctx context.Context, w io.Writer, repo store.EventRepo, id int) error {
	e, err := repo.GetLLMEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if e == nil {
		return fmt.Errorf("event %d not found", id)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", e.ID)
	fmt.Fprintf(tw, "Time:\t%s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(tw, "Provider:\t%s\n", e.Provider)
	fmt.Fprintf(tw, "Model:\t%s\n", e.Model)
	fmt.Fprintf(tw, "Purpose:\t%s\n", e.Purpose)
	fmt.Fprintf(tw, "Tokens:\t%d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(tw, "Latency:\t%dms\n", e.LatencyMs)
	fmt.Fprintf(tw, "Success:\t%v\n", e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(tw, "Error:\t%s\n", e.ErrorMessage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(w, "REQUEST", e.RequestBody)
	section(w, "RESPONSE", e.ResponseBody)
	return nil
}

func section(w io.Writer, title, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\n", rule, title, rule, body)
}

func printLLMStats(ctx context.Context, w io.Writer, repo store.EventRepo) error {
	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return nil
	}

	fmt.Fprintln(w, "Usage by purpose")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "PURPOSE\tCALLS\tINPUT\tOUTPUT\tTOTAL\tAVG MS\t")
	var calls, in, out int
	for _, u := range byPurpose {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		out += u.OutputTokens
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d\t%d\t\t\n", calls, in, out, in+out)
	if err := tw.Flush(); err != nil {
		return err
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	if len(byModel) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nEstimated cost (USD)")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MODEL\tCALLS\tINPUT\tOUTPUT\tCOST\t")
	var total float64
	var unpriced []string
	for _, u := range byModel {
		cost := "?"
		if price := llm.LookupCost(u.Model); price != nil {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(tw, "%s\t\t\t\t%s\t\n", label, formatCost(total))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose ("+llm.PurposeQuestionGen+", "+llm.PurposeCommentary+")")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
