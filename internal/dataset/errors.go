package dataset

import (
	"errors"
	"fmt"
)

// ErrMissingColumn marks a source without a required column.
var ErrMissingColumn = errors.New("missing required column")

// DataFormatError reports a source that cannot be turned into a trip table.
// Row is the 1-based data row, or 0 when the problem is not row specific.
type DataFormatError struct {
	Source string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *DataFormatError) Error() string {
	switch {
	case e.Row > 0 && e.Column == "":
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s: row %d: invalid %s %q: %v", e.Source, e.Row, e.Column, e.Value, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s: %v %q", e.Source, e.Err, e.Column)
	default:
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
