// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/LanceryH/Space-propulsion/internal/cases"
)

// resultArgs is the payload every registered result writer receives.
type resultArgs struct {
	Header bool
	RunID  string
	In     <-chan cases.Result
}

// ResultWriters maps format → handler. Handlers register in init() (result.go).
var ResultWriters = map[string]func(w io.Writer, args resultArgs) error{}

// RegisterResult installs fn for format (idempotent, last wins).
func RegisterResult(format string, fn func(io.Writer, resultArgs) error) { ResultWriters[format] = fn }

// WriteResults dispatches to the handler registered for format.
func WriteResults(format string, w io.Writer, args resultArgs) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (have: %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, args)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
