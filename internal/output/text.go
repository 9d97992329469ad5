// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/LanceryH/Space-propulsion/internal/cases"
)

// WriteText prints the header (optional) and one TSV row per result.
func WriteText(w io.Writer, list []cases.Result, header bool) error {
	ch := make(chan cases.Result, len(list))
	for _, r := range list {
		ch <- r
	}
	close(ch)
	return StreamText(w, ch, header)
}

// StreamText writes rows as results arrive on in.
func StreamText(w io.Writer, in <-chan cases.Result, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
