// internal/commands/show_config.go
package promptbench

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// showCmd groups display-only commands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying settings",
}

// showConfigCmd displays the effective configuration after file and flag
// merging.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config settings",
	Run: func(cmd *cobra.Command, args []string) {
		pp.Println(GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showConfigCmd)
}
