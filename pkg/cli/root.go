// Package cli implements the semver command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	semverfile "github.com/bcomnes/semverfile/pkg"
	"github.com/bcomnes/semverfile/pkg/config"
	"github.com/bcomnes/semverfile/pkg/logging"
	"github.com/bcomnes/semverfile/pkg/store"
)

const name = "semver"

// overridden during build with ldflags
var buildVersion = "1.0.0"

// Version is the tool's own version, printed by --version.
var Version = toolVersion(buildVersion)

func toolVersion(s string) semver.Version {
	v, err := semver.Parse(s)
	if err != nil {
		return semver.Version{Pre: []semver.PRVersion{{VersionStr: "dev"}}}
	}
	return v
}

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// app carries global flags and the dependencies built from them.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	file       string
	dir        string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, a.dir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = a.file
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, a.stderr)
	if err != nil {
		return &UsageError{err: err}
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("file", cfg.File),
		zap.String("dir", a.dir),
		zap.String("logLevel", cfg.LogLevel))
	return nil
}

func (a *app) store() *store.Store {
	return store.New(a.dir,
		store.WithName(a.cfg.File),
		store.WithOutput(a.stdout),
		store.WithLogger(a.logger))
}

func (a *app) opts() []semverfile.Option {
	return []semverfile.Option{semverfile.WithLogger(a.logger)}
}

// NewRootCmd creates the root command with all subcommands. Output goes to
// stdout and diagnostics and logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   name,
		Short: "Manage a project's semantic version stored in a " + store.DefaultName + " file",
		Long: `semver reads, bumps and compares the semantic version kept in a one-line
version file. The file is looked up in the working directory and each of its
parents.

Versions have the form MAJOR.MINOR.PATCH[-PRERELEASE][+METADATA] where
PRERELEASE and METADATA are made of letters, digits and hyphens.

Run without a command to print the current version.`,
		Example: `  semver init
  semver bump minor
  semver bump prerel rc1 --pretend
  semver bump --force 2.0.0
  semver compare 1.2.3 1.3.0`,
		Version:           Version.String(),
		Args:              noArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := semverfile.Current(a.store())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, v)
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default is "+config.FileName+" in the start directory)")
	pf.StringVar(&a.file, "file", store.DefaultName, "name of the version file to look for")
	pf.StringVarP(&a.dir, "dir", "C", ".", "directory to start looking for the version file from")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCmd(a),
		newBumpCmd(a),
		newCompareCmd(a),
		newValidateCmd(a),
	)
	return rootCmd
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return ExitOK
	}

	printError(stderr, err)

	var uerr *UsageError
	if errors.As(err, &uerr) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}

func printError(w io.Writer, err error) {
	label := color.New(color.FgRed, color.Bold)
	if !isTerminal(w) {
		label.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", label.Sprint("Error:"), err)

	switch {
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(w, "Run '%s init' to create a version file.\n", name)
	case errors.Is(err, store.ErrAlreadyExists):
		fmt.Fprintf(w, "Use '%s bump --force <version>' to change it.\n", name)
	}
}
