// internal/output/json.go
package output

import (
	"io"
	"math"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/jsonutil"
	"github.com/LanceryH/Space-propulsion/pkg/api"
)

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r cases.Result) api.ResultV1 {
	// JSON has no encoding for ±Inf or NaN; such args are left out and the
	// row carries the error that rejected them.
	args := make(map[string]float64, len(r.Args))
	for k, v := range r.Args {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		args[k] = v
	}
	v := api.ResultV1{
		Case:    r.Case,
		Formula: r.Formula,
		Args:    args,
		Status:  string(r.Status),
		Unit:    r.Unit,
		Source:  r.Source,
	}
	switch {
	case r.Err == nil && (math.IsInf(r.Value, 0) || math.IsNaN(r.Value)):
		// JSON has no encoding for ±Inf; keep the row, drop the number.
		v.Error = &api.ErrorV1{Kind: cases.KindDomain, Message: "result is not finite: " + FormatValue(r.Value)}
	case r.Err == nil:
		val := r.Value
		v.Value = &val
	default:
		v.Error = &api.ErrorV1{Kind: cases.ErrorKind(r.Err), Message: r.Err.Error()}
	}
	if r.Expect != nil {
		v.Expect = &api.ExpectV1{
			Value:     r.Expect.Value,
			Tolerance: r.Expect.Tolerance,
			Error:     r.Expect.Error,
		}
	}
	return v
}

// ToAPIReport wraps list with its run id and tally.
func ToAPIReport(runID string, list []cases.Result) api.ReportV1 {
	passed, failed := cases.Tally(list)
	out := api.ReportV1{RunID: runID, Passed: passed, Failed: failed, Results: make([]api.ResultV1, 0, len(list))}
	for _, r := range list {
		out.Results = append(out.Results, ToAPIResult(r))
	}
	return out
}

// WriteJSON writes a single pretty-indented v1 report.
func WriteJSON(w io.Writer, runID string, list []cases.Result) error {
	return jsonutil.EncodePretty(w, ToAPIReport(runID, list))
}
