package ruralurban

import (
	"errors"
	"fmt"
)

// A MissingFieldError reports a required column absent from an input
// fragment.  It is fatal: indicators cannot be derived safely from a
// partial fragment, so the run aborts before producing any output.
type MissingFieldError struct {
	Fragment string
	Column   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("fragment %s: required column %q not found", e.Fragment, e.Column)
}

// ErrInsufficientStratum marks a proportion comparison with a zero
// total in either stratum.  The affected cell is omitted from the
// comparison output with an explicit marker, never reported as a
// zero p-value.
var ErrInsufficientStratum = errors.New("insufficient stratum data for comparison")
