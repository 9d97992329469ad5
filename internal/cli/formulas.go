package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LanceryH/Space-propulsion/internal/formula"
	"github.com/LanceryH/Space-propulsion/internal/jsonutil"
	"github.com/LanceryH/Space-propulsion/internal/output"
	"github.com/LanceryH/Space-propulsion/pkg/api"
)

// FormulasHeader is the text header of the formula catalog.
const FormulasHeader = "formula\tsymbol\tunit\tparameters"

func newFormulasCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "List the available formulas and their parameters",
		Long: `List every formula with its result symbol, unit and parameters.

Parameter keys are the names to use in case files. Optional parameters
are marked with "?", units follow in brackets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := writeFormulas(cmd.OutOrStdout(), opts.Format, !opts.NoHeader); err != nil {
				return WrapExitError(ExitWriteError, "output error", err)
			}
			return nil
		},
	}
}

func toAPIFormula(f formula.Formula) api.FormulaV1 {
	ps := make([]api.ParamV1, 0, len(f.Params))
	for _, p := range f.Params {
		ps = append(ps, api.ParamV1{Name: p.Name, Symbol: p.Symbol, Unit: p.Unit, Optional: p.Optional})
	}
	return api.FormulaV1{
		Name:    f.Name,
		Symbol:  f.Symbol,
		Unit:    f.Unit,
		Aliases: formula.Aliases(f.Name),
		Params:  ps,
	}
}

func paramLabel(p formula.Param) string {
	s := p.Name
	if p.Optional {
		s += "?"
	}
	if p.Unit != "" {
		s += "[" + p.Unit + "]"
	}
	return s
}

func writeFormulas(w io.Writer, format string, header bool) error {
	all := formula.All()
	switch format {
	case output.FormatJSON:
		list := make([]api.FormulaV1, 0, len(all))
		for _, f := range all {
			list = append(list, toAPIFormula(f))
		}
		return jsonutil.EncodePretty(w, list)
	case output.FormatJSONL:
		bw := bufio.NewWriter(w)
		for _, f := range all {
			if err := jsonutil.EncodeLine(bw, toAPIFormula(f)); err != nil {
				return err
			}
		}
		return bw.Flush()
	default:
		bw := bufio.NewWriter(w)
		if header {
			if _, err := fmt.Fprintln(bw, FormulasHeader); err != nil {
				return err
			}
		}
		for _, f := range all {
			labels := make([]string, 0, len(f.Params))
			for _, p := range f.Params {
				labels = append(labels, paramLabel(p))
			}
			if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", f.Name, f.Symbol, f.Unit, strings.Join(labels, ",")); err != nil {
				return err
			}
		}
		return bw.Flush()
	}
}
