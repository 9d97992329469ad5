// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"github.com/LanceryH/Space-propulsion/internal/cases"
)

// FormatValue renders v with 10 significant digits.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// FormatRowTSV returns the TSV columns for r (no trailing newline).
// The value column is empty when evaluation failed.
func FormatRowTSV(r cases.Result) string {
	val, msg := "", ""
	if r.Err == nil {
		val = FormatValue(r.Value)
	} else {
		msg = r.Err.Error()
	}
	if r.Reason != "" {
		if msg != "" {
			msg += "; "
		}
		msg += r.Reason
	}
	return strings.Join([]string{
		oneLine(r.Case), r.Formula, string(r.Status), val, r.Unit, oneLine(msg),
	}, "\t")
}

// oneLine keeps tabs/newlines out of TSV cells.
func oneLine(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
