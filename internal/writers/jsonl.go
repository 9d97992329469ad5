// internal/writers/jsonl.go
package writers

import (
	"io"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/jsonlutil"
	"github.com/LanceryH/Space-propulsion/internal/output"
)

// StartResultJSONLWriter streams each cases.Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- cases.Result, <-chan error) {
	return jsonlutil.Start[cases.Result](out, bufSize,
		func(r cases.Result) any { return output.ToAPIResult(r) },
		IsBrokenPipe,
	)
}
