package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskman/internal/display"
	"taskman/internal/report"
	"taskman/internal/task"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a daily report of created tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if reportDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", reportDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", reportDate)
			}
			day = parsed
		}

		_, store, err := openStore()
		if err != nil {
			return err
		}

		daily := report.DailyReport(store.List(task.Filter{}), day)
		fmt.Print(display.RenderDaily(daily))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "Day to report on (YYYY-MM-DD, default today)")
}
