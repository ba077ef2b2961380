package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phoebegrace/NoFilterNaevis/internal/quiz"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List quiz topics and points per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		fmt.Println("Topics")
		fmt.Println(strings.Repeat("─", 30))
		for _, t := range cfg.QuizTopics() {
			fmt.Printf("  %s\n", t)
		}

		fmt.Println()
		fmt.Println("Points")
		fmt.Println(strings.Repeat("─", 30))
		for _, d := range quiz.Difficulties() {
			fmt.Printf("  %-8s +%d\n", d, quiz.PointsFor(d))
		}
		return nil
	},
}
