package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/oneline/internal/config"
	"github.com/ramanasai/oneline/internal/insight"
	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/localstore"
)

// insightCmd prints the weekly reflection over the stored entries.
var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Print the weekly reflection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		rec, err := localstore.Open(cfg.DataDir)
		if err != nil {
			return err
		}

		recent := journal.Load(rec).Recent(7)
		texts := make([]string, len(recent))
		for i, e := range recent {
			texts[i] = e.Text
		}

		provider := insight.NewProvider(insight.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model))
		fmt.Println(provider.WeeklyInsight(cmd.Context(), texts))
		return nil
	},
}
