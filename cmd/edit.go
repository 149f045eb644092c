package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	model "github.com/jmin1219/taskflow/internal/models"
	"github.com/jmin1219/taskflow/internal/services"
)

var (
	editTitle       string
	editDescription string
	editPriority    int
	editStatus      string
	editDue         string
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit fields of an existing task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		changes := services.TaskChanges{}
		if cmd.Flags().Changed("title") {
			changes.Title = &editTitle
		}
		if cmd.Flags().Changed("desc") {
			changes.Description = &editDescription
		}
		if cmd.Flags().Changed("priority") {
			changes.Priority = &editPriority
		}
		if cmd.Flags().Changed("status") {
			status := model.TaskStatus(editStatus)
			changes.Status = &status
		}
		if cmd.Flags().Changed("due") {
			due, err := services.ParseDueDate(editDue, time.Now())
			if err != nil {
				return err
			}
			changes.DueDate = due
		}

		tasks, _ := openStore()

		task, err := tasks.UpdateTask(cmd.Context(), id, changes)
		if err != nil {
			return err
		}

		fmt.Printf("Task #%d updated successfully\n", task.ID)
		printTaskLine(*task)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&editDescription, "desc", "", "new description")
	editCmd.Flags().IntVar(&editPriority, "priority", 0, "new priority")
	editCmd.Flags().StringVar(&editStatus, "status", "", "new status: pending, in_progress or done")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date: today, tomorrow or YYYY-MM-DD")
	rootCmd.AddCommand(editCmd)
}
