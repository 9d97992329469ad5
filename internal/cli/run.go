package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Run executes the CLI with argv (without the program name) and returns
// the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return execute(ctx, NewRootCommand(), argv, stdout, stderr)
}

func execute(ctx context.Context, root *cobra.Command, argv []string, stdout, stderr io.Writer) int {
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "propulsion: %v\n", err)
	}
	return GetExitCode(err)
}
