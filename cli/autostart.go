package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/json-formatter/autostart"
	"github.com/yllada/json-formatter/common"
)

var newRegistrar = autostart.New

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Show or change whether the app starts at login",
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the start-at-login state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRegistrar()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), autostartStatus(r))
		return nil
	},
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the app at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutostart(cmd, true)
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting the app at login",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutostart(cmd, false)
	},
}

func init() {
	autostartCmd.AddCommand(autostartStatusCmd)
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartDisableCmd)
}

func autostartStatus(r autostart.Registrar) string {
	switch {
	case !autostart.Supported(r):
		return "unsupported"
	case autostart.Enabled(r):
		return "enabled"
	default:
		return "disabled"
	}
}

func setAutostart(cmd *cobra.Command, enabled bool) error {
	r, err := newRegistrar()
	if err != nil {
		return err
	}
	if err := autostart.Set(r, enabled); err != nil {
		return fmt.Errorf("%s: %w", common.AppName, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), autostartStatus(r))
	return nil
}
