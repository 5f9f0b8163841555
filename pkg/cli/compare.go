package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	semverfile "github.com/bcomnes/semverfile/pkg"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <version> [<old>]",
		Short: "Compare a version against the stored one or a second version",
		Long: `Print -1, 0 or 1 as version is lower than, equal to or greater than old.
When old is omitted the stored version is used. Build metadata is ignored, and
a version with a prerelease sorts after the same version without one.`,
		Example: `  semver compare 1.3.0
  semver compare 1.0.0-rc1 1.0.0`,
		Args: rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var old string
			if len(args) == 2 {
				old = args[1]
			}
			result, err := semverfile.Compare(a.store(), args[0], old)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, result)
			return nil
		},
	}
}
