package cli

import (
	"github.com/spf13/cobra"

	semverfile "github.com/bcomnes/semverfile/pkg"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [version]",
		Short: "Create the version file in the start directory",
		Long: `Create the version file in the start directory holding version, or
` + semverfile.DefaultVersion + ` when none is given. Nothing is written when a version file can
already be found from the start directory.`,
		Example: `  semver init
  semver init 1.0.0-rc1`,
		Args: rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.cfg.DefaultVersion
			if len(args) == 1 {
				v = args[0]
			}
			_, err := semverfile.Init(a.store(), v, a.opts()...)
			return err
		},
	}
}
