package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LanceryH/Space-propulsion/core/propulsion"
	"github.com/LanceryH/Space-propulsion/internal/logging"
	"github.com/LanceryH/Space-propulsion/internal/output"
)

// EnvG0 overrides the --g0 default when set and parseable.
const EnvG0 = "PROPULSION_G0"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Quiet    bool
	NoHeader bool
	Format   string  // text | json | jsonl
	G0       float64 // m/s²

	// Logger is built in PersistentPreRunE unless a test injected one.
	Logger *zap.Logger

	// Getenv is os.Getenv outside tests.
	Getenv func(string) string
}

// NewRootCommand creates the root command for the propulsion CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Getenv: os.Getenv})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propulsion",
		Short: "Rocket propulsion formulas",
		Long: `Closed-form rocket propulsion relations: propellant mass (ΔM),
specific impulse (ISP), chemical thrust (F), characteristic velocity (C*)
and thrust coefficient (Cf).

Evaluate one formula from flags, or a YAML file of cases with "batch".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(output.Formats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %s", opts.Format, strings.Join(output.Formats, "|")))
			}
			if opts.Logger == nil {
				opts.Logger = logging.New(cmd.ErrOrStderr(), logging.Level(opts.Verbose, opts.Quiet))
			}
			applyEnvG0(cmd, opts)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug diagnostics on stderr")
	pf.BoolVarP(&opts.Quiet, "quiet", "q", false, "only errors on stderr")
	pf.BoolVar(&opts.NoHeader, "no-header", false, "suppress the TSV header line")
	pf.StringVarP(&opts.Format, "format", "o", output.FormatText, "output format (text|json|jsonl)")
	pf.Float64Var(&opts.G0, "g0", propulsion.StandardGravity, "gravity acceleration g0 in m/s² (env "+EnvG0+")")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, c.CommandPath(), err)
	})

	cmd.AddCommand(newMassCommand(opts))
	cmd.AddCommand(newISPCommand(opts))
	cmd.AddCommand(newThrustCommand(opts))
	cmd.AddCommand(newCstarCommand(opts))
	cmd.AddCommand(newCfCommand(opts))
	cmd.AddCommand(newBatchCommand(opts))
	cmd.AddCommand(newFormulasCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// applyEnvG0 honours PROPULSION_G0 when --g0 was not given explicitly.
// A malformed value is reported and the built-in default kept.
func applyEnvG0(cmd *cobra.Command, opts *RootOptions) {
	if opts.Getenv == nil || cmd.Flags().Changed("g0") {
		return
	}
	raw := strings.TrimSpace(opts.Getenv(EnvG0))
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		opts.Logger.Warn("ignoring malformed environment override",
			zap.String("var", EnvG0), zap.String("value", raw), zap.Float64("using", opts.G0))
		return
	}
	opts.Logger.Debug("g0 from environment", zap.Float64("g0", v))
	opts.G0 = v
}
