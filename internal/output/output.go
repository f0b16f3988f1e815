// Package output renders command results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Milover/isbnref/internal/isbn"
)

// Record is the result of a command for a single input.
type Record struct {
	Input  string   `json:"input"`
	Result string   `json:"result,omitempty"`
	Parts  []string `json:"parts,omitempty"`
	Kind   string   `json:"kind,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// NewRecord builds a record from a result value and error.
func NewRecord(input, result string, err error) Record {
	r := Record{Input: input, Result: result}
	if err != nil {
		r.Result = ""
		r.Kind = isbn.Kind(err)
		r.Error = err.Error()
	}
	return r
}

// Write writes records to w in the requested format.
//
// In text format each record is a line holding its result, or the input
// and the error if it failed. Parts are separated by tabs so empty parts
// stay visible.
func Write(w io.Writer, f Format, records []Record) error {
	switch f {
	case Text:
		return writeText(w, records)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	case CSV:
		return writeCSV(w, records)
	}
	return f.IsValid()
}

func writeText(w io.Writer, records []Record) error {
	var b strings.Builder
	for _, r := range records {
		switch {
		case len(r.Error) > 0:
			fmt.Fprintf(&b, "%v\n", r.Error)
		case len(r.Parts) > 0:
			fmt.Fprintf(&b, "%v\n", strings.Join(r.Parts, "\t"))
		default:
			fmt.Fprintf(&b, "%v\n", r.Result)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func writeCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"input", "result", "parts", "kind", "error"})
	for _, r := range records {
		_ = cw.Write([]string{r.Input, r.Result, strings.Join(r.Parts, "\t"), r.Kind, r.Error})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
