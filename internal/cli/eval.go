package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/formula"
)

// flagSpec binds one command-line flag to a formula parameter key.
type flagSpec struct {
	flag  string
	key   string
	usage string
}

// evalCommand describes a single-formula command.
type evalCommand struct {
	use     string
	aliases []string
	short   string
	example string
	formula string
	flags   []flagSpec
	useG0   bool // pass the global --g0 through as "g0"
}

// build wires the command. Only flags the user set are passed as
// arguments, so a forgotten flag surfaces as a missing-argument error
// rather than a silent zero.
func (ec evalCommand) build(opts *RootOptions) *cobra.Command {
	values := make([]float64, len(ec.flags))
	cmd := &cobra.Command{
		Use:     ec.use,
		Aliases: ec.aliases,
		Short:   ec.short,
		Example: ec.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := formula.Args{}
			for i, fs := range ec.flags {
				if cmd.Flags().Changed(fs.flag) {
					args[fs.key] = values[i]
				}
			}
			if ec.useG0 {
				args["g0"] = opts.G0
			}
			return evaluateOne(cmd, opts, ec.use, ec.formula, args)
		},
	}
	for i, fs := range ec.flags {
		cmd.Flags().Float64Var(&values[i], fs.flag, 0, fs.usage)
	}
	return cmd
}

// evaluateOne runs a single formula and writes its result row.
func evaluateOne(cmd *cobra.Command, opts *RootOptions, name, formulaName string, args formula.Args) error {
	f, err := formula.Lookup(formulaName)
	if err != nil {
		return WrapExitError(ExitCommandError, name, err)
	}
	opts.Logger.Debug("evaluate", zap.String("formula", f.Name), zap.Any("args", args))

	r := cases.Evaluate(cases.Prepared{Name: name, Formula: f, Args: args})
	if err := emit(cmd, opts, "", []cases.Result{r}); err != nil {
		return err
	}
	if r.Err != nil {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %v", name, r.Err))
	}
	return nil
}

func newMassCommand(opts *RootOptions) *cobra.Command {
	return evalCommand{
		use:     "mass",
		aliases: []string{"propellant-mass"},
		short:   "Propellant mass ΔM consumed for a velocity change (kg)",
		example: "  propulsion mass --m0 1000 --delta-v 3000 --isp 300",
		formula: formula.PropellantMass,
		flags: []flagSpec{
			{"m0", "m0", "initial mass M0 (kg)"},
			{"delta-v", "delta_v", "velocity change ΔV (m/s)"},
			{"isp", "isp", "specific impulse ISP (s)"},
		},
		useG0: true,
	}.build(opts)
}

func newThrustCommand(opts *RootOptions) *cobra.Command {
	return evalCommand{
		use:     "thrust",
		aliases: []string{"chemical-thrust"},
		short:   "Chemical rocket thrust F (N)",
		example: "  propulsion thrust --mdot 2 --vs 2500 --as 0.1 --ps 10000 --pinf 101325",
		formula: formula.ChemicalThrust,
		flags: []flagSpec{
			{"mdot", "mdot", "mass flow rate ṁ (kg/s)"},
			{"vs", "vs", "exhaust velocity Vs (m/s)"},
			{"as", "as", "exit area As (m²)"},
			{"ps", "ps", "exit pressure Ps (Pa)"},
			{"pinf", "pinf", "ambient pressure P∞ (Pa)"},
		},
	}.build(opts)
}

func newCstarCommand(opts *RootOptions) *cobra.Command {
	return evalCommand{
		use:     "cstar",
		aliases: []string{"characteristic-velocity"},
		short:   "Characteristic velocity C* (m/s)",
		example: "  propulsion cstar --gamma 1.2 --temp 3000 --molar-mass 0.022",
		formula: formula.CharacteristicVelocity,
		flags: []flagSpec{
			{"gamma", "gamma", "heat capacity ratio γ"},
			{"temp", "temperature", "chamber temperature T (K)"},
			{"molar-mass", "molar_mass", "molar mass M (kg/mol)"},
		},
	}.build(opts)
}

func newCfCommand(opts *RootOptions) *cobra.Command {
	return evalCommand{
		use:     "cf",
		aliases: []string{"thrust-coefficient"},
		short:   "Thrust coefficient Cf (dimensionless)",
		example: "  propulsion cf --gamma 1.2 --ps 1e4 --pc 5e6 --as 0.1 --ac 0.01",
		formula: formula.ThrustCoefficient,
		flags: []flagSpec{
			{"gamma", "gamma", "heat capacity ratio γ"},
			{"ps", "ps", "exit pressure Ps (Pa)"},
			{"pc", "pc", "chamber pressure Pc (Pa)"},
			{"as", "as", "exit area As (m²)"},
			{"ac", "ac", "throat area Ac (m²)"},
		},
	}.build(opts)
}
