package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/oneline/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print detailed version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersionInfo())
	},
}
