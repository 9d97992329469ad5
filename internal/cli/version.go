package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LanceryH/Space-propulsion/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "propulsion %s\n", version.Version)
			if err != nil {
				return WrapExitError(ExitWriteError, "output error", err)
			}
			return nil
		},
	}
}
