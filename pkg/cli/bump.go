package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	semverfile "github.com/bcomnes/semverfile/pkg"
	"github.com/bcomnes/semverfile/pkg/version"
)

func newBumpCmd(a *app) *cobra.Command {
	var (
		force   string
		pretend bool
		in      version.Instruction
	)

	cmd := &cobra.Command{
		Use:   "bump (major|minor|patch|prerel <value>|meta <value>|--force <version>)",
		Short: "Apply one change to the stored version",
		Long: `Apply exactly one change to the stored version and write the result back.

  major            increment MAJOR, reset MINOR and PATCH, drop PRERELEASE and METADATA
  minor            increment MINOR, reset PATCH, drop PRERELEASE and METADATA
  patch            increment PATCH, drop PRERELEASE and METADATA
  prerel <value>   set PRERELEASE, drop METADATA
  meta <value>     set METADATA
  --force <ver>    replace the stored version with <ver>

With --pretend the new version is printed but not written.`,
		Example: `  semver bump patch
  semver bump prerel rc1
  semver bump meta $(git rev-parse --short HEAD)
  semver bump --force 1.0.0 --pretend`,
		Args: cobra.ArbitraryArgs,
		// Replaces the root hook so a malformed instruction fails before
		// configuration or the version file are read.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			in, err = parseInstruction(args, force, cmd.Flags().Changed("force"))
			if err != nil {
				return err
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.store()
			if pretend {
				meta, err := semverfile.DryRun(st, in, a.opts()...)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, meta.NewVersion)
				return nil
			}
			_, err := semverfile.Run(st, in, a.opts()...)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&force, "force", "", "replace the stored version with `version`")
	f.BoolVar(&pretend, "pretend", false, "print the new version without writing it")
	return cmd
}

// parseInstruction maps the bump arguments onto exactly one instruction.
func parseInstruction(args []string, force string, forceSet bool) (version.Instruction, error) {
	if forceSet {
		if len(args) > 0 {
			return version.Instruction{}, usageErrorf("--force cannot be combined with %q", args[0])
		}
		if force == "" {
			return version.Instruction{}, usageErrorf("--force requires a version")
		}
		return version.Force(force), nil
	}
	if len(args) == 0 {
		return version.Instruction{}, usageErrorf("missing bump instruction")
	}

	kind, rest := args[0], args[1:]
	switch kind {
	case "major", "minor", "patch":
		if len(rest) > 0 {
			return version.Instruction{}, usageErrorf("%s takes no value, got %q", kind, rest[0])
		}
		switch kind {
		case "major":
			return version.BumpMajor(), nil
		case "minor":
			return version.BumpMinor(), nil
		default:
			return version.BumpPatch(), nil
		}
	case "prerel", "prerelease", "meta", "metadata":
		if len(rest) != 1 {
			return version.Instruction{}, usageErrorf("%s requires exactly one value", kind)
		}
		if kind == "prerel" || kind == "prerelease" {
			return version.SetPrerelease(rest[0]), nil
		}
		return version.SetMetadata(rest[0]), nil
	}
	return version.Instruction{}, usageErrorf("unknown bump instruction %q", kind)
}
