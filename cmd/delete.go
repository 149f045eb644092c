package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		tasks, _ := openStore()
		ctx := cmd.Context()

		task, err := tasks.GetTask(ctx, id)
		if err != nil {
			return err
		}

		if !deleteYes {
			fmt.Printf("Delete task #%d %q? [y/N]: ", task.ID, task.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := tasks.DeleteTask(ctx, id); err != nil {
			return err
		}

		fmt.Printf("Task #%d deleted successfully\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
