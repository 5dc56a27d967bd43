package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yllada/json-formatter/formatter"
)

var errNoInput = errors.New("no input: pass a file or pipe JSON on stdin")

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#E01B24")).
	Bold(true)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format JSON from a file or stdin",
	Long: `Format reads one JSON document from the named file, or from stdin when no
file is given, and prints it with a four-space indent. Invalid input prints
the parser's message with its position and exits with status 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		} else if term.IsTerminal(int(os.Stdin.Fd())) {
			return errNoInput
		}

		styled := term.IsTerminal(int(os.Stderr.Fd()))
		return runFormat(in, cmd.OutOrStdout(), cmd.ErrOrStderr(), styled)
	},
}

// runFormat formats the document read from in. The formatted document goes
// to out; a parse error goes to errOut and yields an ExitError.
func runFormat(in io.Reader, out, errOut io.Writer, styled bool) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result := formatter.Format(string(data))
	if !result.OK() {
		message := result.Output
		if styled {
			message = errorStyle.Render(message)
		}
		fmt.Fprintln(errOut, message)
		return &ExitError{Code: 1}
	}

	_, err = fmt.Fprintln(out, result.Output)
	return err
}
