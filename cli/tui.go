package cli

import (
	"github.com/spf13/cobra"

	"github.com/yllada/json-formatter/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Format JSON in an interactive terminal view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}
