// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves '<', '>' and '&' unescaped;
// outputs are files and terminals, not HTML.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeLine writes v as one compact JSON line.
func EncodeLine(w io.Writer, v any) error {
	return NewEncoder(w).Encode(v)
}
