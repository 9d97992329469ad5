// internal/writers/result.go
package writers

import (
	"io"

	"github.com/LanceryH/Space-propulsion/internal/cases"
	"github.com/LanceryH/Space-propulsion/internal/output"
)

func drainResults(ch <-chan cases.Result) []cases.Result {
	list := make([]cases.Result, 0, 16)
	for r := range ch {
		list = append(list, r)
	}
	return list
}

func init() {
	// JSON report (buffered: needs the tally)
	RegisterResult(output.FormatJSON, func(w io.Writer, args resultArgs) error {
		return output.WriteJSON(w, args.RunID, drainResults(args.In))
	})

	// JSONL streaming
	RegisterResult(output.FormatJSONL, func(w io.Writer, args resultArgs) error {
		pipe, done := StartResultJSONLWriter(w, 64)
		for r := range args.In {
			pipe <- r
		}
		close(pipe)
		return <-done
	})

	// TEXT/TSV streaming
	RegisterResult(output.FormatText, func(w io.Writer, args resultArgs) error {
		return output.StreamText(w, args.In, args.Header)
	})
}

// StartResultWriter spins up a writer goroutine for results. Close the
// returned channel, then read the single error value.
func StartResultWriter(out io.Writer, format string, header bool, runID string, bufSize int) (chan<- cases.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan cases.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteResults(format, out, resultArgs{
			Header: header,
			RunID:  runID,
			In:     in,
		})
		for range in {
			// a handler may stop early on error; unblock the sender
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
