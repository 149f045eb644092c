package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	model "github.com/jmin1219/taskflow/internal/models"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show overdue, due-today and in-progress tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _ := openStore()

		now := time.Now()
		ctx := cmd.Context()

		view, err := tasks.TodayView(ctx, now)
		if err != nil {
			return err
		}

		fmt.Printf("=== TODAY (%s) ===\n", now.Format("Mon Jan 2"))
		printSection("OVERDUE", view.Overdue)
		printSection("DUE TODAY", view.DueToday)
		printSection("IN PROGRESS", view.InProgress)

		stats, err := tasks.Stats(ctx, now)
		if err != nil {
			return err
		}
		fmt.Println("=== STATS ===")
		fmt.Printf("  Total in backlog: %d (pending %d, in progress %d, done %d)\n",
			stats.Total, stats.Pending, stats.InProgress, stats.Done)
		fmt.Printf("  Overdue: %d  Completion: %s\n", stats.Overdue, stats.CompletionRate)
		return nil
	},
}

func printSection(title string, tasks []model.Task) {
	fmt.Printf("-- %s --\n", title)
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, t := range tasks {
		printTaskLine(t)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
