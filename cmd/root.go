package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/commentary"
	"github.com/phoebegrace/NoFilterNaevis/internal/config"
	"github.com/phoebegrace/NoFilterNaevis/internal/llm"
	"github.com/phoebegrace/NoFilterNaevis/internal/logger"
	"github.com/phoebegrace/NoFilterNaevis/internal/problemgen"
	"github.com/phoebegrace/NoFilterNaevis/internal/session"
	"github.com/phoebegrace/NoFilterNaevis/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "naevis",
	Short: "Naevis Asks, an AI quiz game for the terminal",
	Long:  "Naevis Asks: answer AI-generated trivia questions, earn points by difficulty and put up with Naevis's commentary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite audit log (default in-memory, or NAEVIS_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides NAEVIS_CONFIG)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies the logging flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if f, _ := cmd.Flags().GetString("log-file"); f != "" {
		cfg.Log.File = f
	}
	return cfg, nil
}

// resolveDBPath returns the audit log DSN: --db flag, then NAEVIS_DB,
// then in-memory. With persistent set, the default XDG path replaces
// in-memory so inspection commands have something to read.
func resolveDBPath(cmd *cobra.Command, persistent bool) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	if p := os.Getenv("NAEVIS_DB"); p != "" {
		return p, nil
	}
	if persistent {
		return store.DefaultDBPath()
	}
	return store.MemoryDSN, nil
}

// defaultLogFile is where the TUI logs, since it owns the terminal.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "naevis.log")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "naevis", "naevis.log")
}

// game bundles everything a presentation surface needs to run a session.
type game struct {
	cfg     config.Config
	log     *logger.Logger
	store   *store.Store
	machine *session.Machine
	offline bool
}

func (g *game) Close() {
	if g.store != nil {
		g.store.Close()
	}
	g.log.Sync()
}

// newGame loads config, opens the audit log and wires the provider,
// generation pipeline and commentary into a session machine.
func newGame(ctx context.Context, cmd *cobra.Command, logToFile bool) (*game, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logToFile && cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dsn, err := resolveDBPath(cmd, false)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, st.EventRepo(), log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}
	log.Info("provider ready", "provider", cfg.LLM.Provider, "model", provider.ModelID(), "db", dsn)

	pipeline := problemgen.NewPipeline(problemgen.NewLLMSource(provider, cfg.Generation), cfg.Generation, log)

	var comments commentary.Service = commentary.Nop{}
	if cfg.Commentary.Enabled {
		comments = commentary.NewLLMService(provider, cfg.Commentary)
	}

	machine := session.NewMachine(session.Options{
		Generator:  pipeline,
		Commentary: comments,
		Events:     st.EventRepo(),
		Log:        log,
		Topics:     cfg.QuizTopics(),
	})

	return &game{
		cfg:     cfg,
		log:     log,
		store:   st,
		machine: machine,
		offline: cfg.LLM.Provider == "mock",
	}, nil
}

// printSummary writes the end-of-session line shown after play and ask.
func printSummary(s session.Summary) {
	if s.Asked == 0 {
		fmt.Println("No questions asked. Paalam!")
		return
	}
	fmt.Printf("Final score: %d pts (%d/%d correct, %d overrides) in %s\n",
		s.Score, s.Correct, s.Answered, s.Overrides, s.Duration.Round(time.Second))
}
