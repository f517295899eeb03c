package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"taskman/internal/notify"
)

var remindDue string

var remindCmd = &cobra.Command{
	Use:   "remind <id> <email>",
	Short: "Send an email reminder for a task",
	Long: `Send an email reminder for a task using the SMTP settings from config.toml.

The SMTP password is read from the TASKMAN_SMTP_PASSWORD environment variable.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		due := time.Now().Add(24 * time.Hour)
		if remindDue != "" {
			parsed, err := time.ParseInLocation("2006-01-02 15:04", remindDue, time.Local)
			if err != nil {
				return fmt.Errorf("invalid due time %q: expected \"YYYY-MM-DD HH:MM\"", remindDue)
			}
			due = parsed
		}

		cfg, store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.Get(args[0])
		if err != nil {
			return err
		}

		sender := &notify.SMTPSender{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: os.Getenv("TASKMAN_SMTP_PASSWORD"),
			From:     cfg.SMTP.From,
		}

		if err := notify.NewNotifier(sender).SendReminder(args[1], t, due); err != nil {
			return err
		}

		fmt.Printf("reminder sent to %s\n", args[1])
		return nil
	},
}

func init() {
	remindCmd.Flags().StringVar(&remindDue, "due", "", "Due time shown in the reminder (\"YYYY-MM-DD HH:MM\", default tomorrow)")
}
