package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskman/internal/report"
	"taskman/internal/task"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as JSON, CSV, or PDF",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore()
		if err != nil {
			return err
		}

		data, err := report.Export(store.List(task.Filter{}), exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			_, err := os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(exportOut, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", report.FormatJSON, "Export format: json, csv, pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}
