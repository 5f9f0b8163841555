package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	semverfile "github.com/bcomnes/semverfile/pkg"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <version>",
		Short: "Check that a string is a well-formed version",
		Args:  rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := semverfile.Validate(args[0], a.opts()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, v)
			return nil
		},
	}
}
