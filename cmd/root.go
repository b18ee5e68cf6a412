package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ramanasai/oneline/internal/config"
	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/localstore"
	"github.com/ramanasai/oneline/internal/notify"
	"github.com/ramanasai/oneline/internal/schedule"
	"github.com/ramanasai/oneline/internal/ui"
	"github.com/ramanasai/oneline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "oneline",
	Short: "One line a day journaling",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		return ui.Run(cfg)
	},
}

func Execute() error {
	// resolved here so build metadata injected by main is visible
	rootCmd.Version = version.GetVersion()
	return rootCmd.Execute()
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("ONELINE_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					if rec, err := localstore.Open(cfg.DataDir); err == nil {
						if _, ok := journal.Load(rec).Get(journal.Today()); ok {
							return // today's line is already written
						}
					}
					title, msg := notify.FormatDailyReminder()
					_ = notify.Info(title, msg)
				})
			}()
			_ = cancel // canceled by process exit via signal
		}
		return nil
	}

	rootCmd.AddCommand(questionCmd, insightCmd, listCmd, versionCmd)
}
