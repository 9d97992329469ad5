package cli

import (
	"github.com/spf13/cobra"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/writers"
)

// emit writes results to the command's stdout in the selected format.
func emit(cmd *cobra.Command, opts *RootOptions, runID string, rs []cases.Result) error {
	in, done := writers.StartResultWriter(cmd.OutOrStdout(), opts.Format, !opts.NoHeader, runID, len(rs))
	for _, r := range rs {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		return WrapExitError(ExitWriteError, "output error", err)
	}
	return nil
}
