package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/oneline/internal/config"
	"github.com/ramanasai/oneline/internal/insight"
)

var questionLang string

// questionCmd prints one daily journaling question without opening the TUI.
var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Print today's reflective question",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		lang := insight.Lang(cfg.Language)
		if questionLang != "" {
			lang = insight.Lang(questionLang)
		}

		provider := insight.NewProvider(insight.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model))
		fmt.Println(provider.DailyQuestion(cmd.Context(), lang))
		return nil
	},
}

func init() {
	questionCmd.Flags().StringVar(&questionLang, "lang", "", "question language: en or ar")
}
