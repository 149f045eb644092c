package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmin1219/taskflow/internal/services"
)

var (
	addPriority    int
	addDue         string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _ := openStore()

		due, err := services.ParseDueDate(addDue, time.Now())
		if err != nil {
			return err
		}

		task, err := tasks.CreateTask(cmd.Context(), services.CreateTaskInput{
			Title:       args[0],
			Description: addDescription,
			Priority:    addPriority,
			DueDate:     due,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added task #%d: %s\n", task.ID, task.Title)
		fmt.Printf("  Priority: %d\n", task.Priority)
		if task.DueDate != nil {
			fmt.Printf("  Due: %s\n", formatDue(task))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 0, "priority 1 (urgent) to 5 (none)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "due date: today, tomorrow or YYYY-MM-DD")
	addCmd.Flags().StringVar(&addDescription, "desc", "", "longer description")
	rootCmd.AddCommand(addCmd)
}
