package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// UsageError reports a malformed command line. Execute prints the usage of
// the failing command after it and exits with ExitUsage.
type UsageError struct {
	err error
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string { return e.err.Error() }

func (e *UsageError) Unwrap() error { return e.err }

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		if cmd.HasSubCommands() {
			return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}
		return usageErrorf("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) < lo:
			return usageErrorf("%s requires at least %d argument(s), got %d", cmd.CommandPath(), lo, len(args))
		case len(args) > hi:
			return usageErrorf("%s accepts at most %d argument(s), got %d", cmd.CommandPath(), hi, len(args))
		}
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
