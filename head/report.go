package head

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

type reporter struct {
	w io.Writer
}

// report writes "head: <ref>: <cause>". Errors writing to w are dropped.
func (r reporter) report(ref string, cause error) {
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	fmt.Fprintf(r.w, "head: %s: %v\n", ref, cause)
}

// usage reports a configuration failure from Resolve.
func (r reporter) usage(err error) {
	var e *Error
	if errors.As(err, &e) && e.Kind == UsageError {
		fmt.Fprintf(r.w, "head: invalid number of %s: '%s'\n", e.Flag, e.Literal)
		return
	}
	fmt.Fprintf(r.w, "head: %v\n", err)
}
