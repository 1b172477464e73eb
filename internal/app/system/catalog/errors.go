// internal/app/system/catalog/errors.go
package catalog

import (
	"fmt"
	"strings"
)

// DatasetError reports a dataset that could not be decoded or that breaks
// one of the catalog invariants. It is fatal at startup.
type DatasetError struct {
	Source   string   // "embedded", "file", "mongo", or a path
	Problems []string // invariant violations, one per entry
	Err      error    // underlying decode/read error, if any
}

func (e *DatasetError) Error() string {
	var b strings.Builder
	b.WriteString("dataset")
	if e.Source != "" {
		b.WriteString(" ")
		b.WriteString(e.Source)
	}
	b.WriteString(": ")
	switch {
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	case len(e.Problems) == 1:
		b.WriteString(e.Problems[0])
	default:
		fmt.Fprintf(&b, "%d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
	}
	return b.String()
}

func (e *DatasetError) Unwrap() error { return e.Err }
