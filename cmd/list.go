package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/oneline/internal/config"
	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/localstore"
	"github.com/ramanasai/oneline/internal/render"
)

var (
	listFormat  string
	listNoColor bool
	listLimit   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	Long: `Examples:
	oneline list                      # everything, newest first
	oneline list --limit 7            # the last week of lines
	oneline list --format json        # machine-readable
	oneline list --format csv > l.csv # spreadsheet export`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		rec, err := localstore.Open(cfg.DataDir)
		if err != nil {
			return err
		}
		store := journal.Load(rec)

		limit := listLimit
		if limit <= 0 {
			limit = store.Len()
		}
		entries := store.Recent(limit)

		renderConfig := render.DefaultConfig()
		if listNoColor {
			renderConfig.Color = false
		}
		if listFormat != "" {
			renderConfig.Format = render.OutputFormat(listFormat)
		}

		out, err := render.NewRenderer(renderConfig).RenderEntries(entries)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "", "output format: default, json, csv")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "disable colored output")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "show at most N entries (0 = all)")
}
