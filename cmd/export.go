package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	model "github.com/jmin1219/taskflow/internal/models"
	repository "github.com/jmin1219/taskflow/internal/repositories"
)

var (
	exportFormat string
	exportOut    string
	exportStatus string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks to CSV, JSON or PDF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, _ := openExporter()

		filter := repository.ListFilter{}
		if exportStatus != "" {
			filter.Status = model.TaskStatus(exportStatus)
		}

		data, err := exporter.Export(cmd.Context(), exportFormat, filter)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", exportFormat, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format: csv, json or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportStatus, "status", "s", "", "only export tasks with this status")
	rootCmd.AddCommand(exportCmd)
}
