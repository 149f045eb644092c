package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		tasks, _ := openStore()

		task, err := tasks.MarkDone(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Task #%d marked as done: %s\n", task.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
