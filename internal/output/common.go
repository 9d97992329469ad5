package output

// Output formats accepted by --format.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted formats in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "case\tformula\tstatus\tvalue\tunit\terror"
