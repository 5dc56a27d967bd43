// Package cli implements the json-formatter command line. With no
// subcommand it starts the tray application.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/lifecycle"
	"github.com/yllada/json-formatter/ui"
)

// BuildInfo carries the values injected via ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	Commit    string
}

// ExitError ends the program with Code after the message, if any, has been
// printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var (
	buildInfo = BuildInfo{Version: "dev", BuildTime: "unknown", Commit: "unknown"}
	verbose   bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "json-formatter",
	Short: "Validate and pretty-print JSON from the system tray",
	Long: `JSON Formatter keeps a small formatter window in the system tray.
Press the global hotkey (Ctrl+Shift+J by default) to bring it up, paste JSON
and press Format. Subcommands offer the same formatter on the terminal.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
	RunE:              runGUI,
}

// Execute runs the command line and returns the process exit code.
func Execute(info BuildInfo) int {
	buildInfo = info
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(versionText(info))

	err := rootCmd.Execute()
	common.CloseLogger()

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	rootCmd.AddCommand(autostartCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(tuiCmd)
}

func versionText(info BuildInfo) string {
	text := fmt.Sprintf("%s v%s\n", common.AppName, info.Version)
	if info.BuildTime != "unknown" {
		text += fmt.Sprintf("  Build:  %s\n", info.BuildTime)
		text += fmt.Sprintf("  Commit: %s\n", info.Commit)
	}
	return text
}

// initLogging sets up the logger. Only the GUI writes a log file; terminal
// commands log warnings and errors to stderr.
func initLogging(cmd *cobra.Command, args []string) error {
	gui := cmd == rootCmd
	level := resolveLogLevel(gui, verbose, logLevel)

	if err := common.InitLogger(common.LogConfig{
		Level:       level,
		EnableFile:  gui,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	if !gui {
		common.GetLogger().SetOutput(os.Stderr)
	}
	return nil
}

// resolveLogLevel picks the logger threshold. --verbose wins over
// --log-level; without either the GUI logs at info and terminal commands at
// warn.
func resolveLogLevel(gui, verbose bool, name string) common.LogLevel {
	switch {
	case verbose:
		return common.LevelDebug
	case name != "":
		return common.ParseLogLevel(name)
	case gui:
		return common.LevelInfo
	default:
		return common.LevelWarn
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	common.LogInfo("Starting %s v%s", common.AppName, buildInfo.Version)

	// Flags were consumed above; GTK only sees the program name.
	app := ui.NewApplication(common.AppID, buildInfo.Version)

	// SIGINT/SIGTERM go through the regular quit path so teardown runs.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	stopSignals := lifecycle.WatchSignals(sigChan, app.RequestQuit, os.Exit)
	defer func() {
		signal.Stop(sigChan)
		stopSignals()
	}()

	exitCode := app.Run(os.Args[:1])

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
		return &ExitError{Code: exitCode}
	}
	return nil
}
