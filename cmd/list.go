package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
)

var (
	listStatus   string
	listPriority int
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by status or priority",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, _ := openStore()

		filter := repository.ListFilter{
			Priority: listPriority,
			SortBy:   listSort,
		}
		if listStatus != "" && listStatus != "all" {
			filter.Status = model.TaskStatus(listStatus)
		}

		all, err := tasks.ListTasks(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if len(all) == 0 {
			fmt.Println("No tasks found")
			return nil
		}

		for _, t := range all {
			printTaskLine(t)
		}
		fmt.Printf("%d task(s)\n", len(all))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status: pending, in_progress, done or all")
	listCmd.Flags().IntVarP(&listPriority, "priority", "p", 0, "filter by priority")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by: id, priority, due_date or created_at")
	rootCmd.AddCommand(listCmd)
}
