package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LanceryH/Space-propulsion/internal/formula"
)

// ISP input modes.
const (
	ModeAuto   = "auto"
	ModeThrust = "thrust"
	ModeCstar  = "cstar"
)

type ispOptions struct {
	thrust, mdot float64
	cstar, cf    float64
	mode         string
}

// ispArgs selects the arguments for mode from the flags the user set.
// In auto mode every set flag is passed and thrust inputs win when both
// groups are complete.
func ispArgs(o ispOptions, changed func(string) bool, g0 float64) (formula.Args, error) {
	args := formula.Args{"g0": g0}
	thrust := func() {
		if changed("thrust") {
			args["thrust"] = o.thrust
		}
		if changed("mdot") {
			args["mdot"] = o.mdot
		}
	}
	cstar := func() {
		if changed("cstar") {
			args["cstar"] = o.cstar
		}
		if changed("cf") {
			args["cf"] = o.cf
		}
	}
	switch o.mode {
	case ModeAuto:
		thrust()
		cstar()
	case ModeThrust:
		thrust()
	case ModeCstar:
		cstar()
	default:
		return nil, fmt.Errorf("invalid mode %q: must be %s|%s|%s", o.mode, ModeAuto, ModeThrust, ModeCstar)
	}
	return args, nil
}

func newISPCommand(opts *RootOptions) *cobra.Command {
	var o ispOptions
	cmd := &cobra.Command{
		Use:     "isp",
		Aliases: []string{"specific-impulse"},
		Short:   "Specific impulse ISP (s) from thrust and flow, or from C* and Cf",
		Example: `  propulsion isp --thrust 1000 --mdot 0.5
  propulsion isp --cstar 1500 --cf 1.35`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := ispArgs(o, cmd.Flags().Changed, opts.G0)
			if err != nil {
				return WrapExitError(ExitCommandError, "isp", err)
			}
			return evaluateOne(cmd, opts, "isp", formula.SpecificImpulse, args)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&o.thrust, "thrust", 0, "thrust F (N)")
	f.Float64Var(&o.mdot, "mdot", 0, "mass flow rate ṁ (kg/s)")
	f.Float64Var(&o.cstar, "cstar", 0, "characteristic velocity C* (m/s)")
	f.Float64Var(&o.cf, "cf", 0, "thrust coefficient Cf")
	f.StringVar(&o.mode, "mode", ModeAuto, "input mode (auto|thrust|cstar)")
	return cmd
}
