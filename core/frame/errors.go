package frame

import (
	"errors"
	"fmt"
)

// SchemaError reports a column that a pipeline stage requires but the
// dataset (or an upstream Define) does not provide with the expected
// kind.  It is detected when the stage is chained and surfaces when
// the result is forced.
type SchemaError struct {
	Column  string
	Want    Kind
	Got     Kind
	Missing bool
}

func (e *SchemaError) Error() string {
	if e.Missing {
		return fmt.Sprintf("column %q (want %v) does not exist", e.Column, e.Want)
	}
	return fmt.Sprintf("column %q is %v, want %v", e.Column, e.Got, e.Want)
}

// ErrEmptyVec is the cause recorded by a PreconditionError when a
// per-row function reads the leading element of an empty vector.
var ErrEmptyVec = errors.New("empty vector column")

// PreconditionError reports a per-row Define function that failed on
// a row which survived all upstream filters.  The reference analysis
// framework faults on such rows; here they fail loudly and catchably
// instead.
type PreconditionError struct {
	Column string
	Row    int
	Err    error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated on column %q at row %d: %v",
		e.Column, e.Row, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}
