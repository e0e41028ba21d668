package head

import "fmt"

// Kind classifies an *Error.
type Kind int

const (
	// UsageError is a malformed or out of range count argument.
	UsageError Kind = iota + 1
	// UsageConflict is a pair of options that cannot be combined.
	UsageConflict
	// IOError is a source that could not be opened or read.
	IOError
	// FatalIOError is a failed write to standard output.
	FatalIOError
)

func (k Kind) String() string {
	switch k {
	case UsageError:
		return "usage error"
	case UsageConflict:
		return "usage conflict"
	case IOError:
		return "I/O error"
	case FatalIOError:
		return "fatal I/O error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the only error type produced by this package.
// Which fields are set depends on Kind:
// UsageError has Literal and (from Resolve) Flag,
// UsageConflict has Flag naming both options,
// IOError has Ref and Err, FatalIOError has Err.
type Error struct {
	Kind    Kind
	Flag    string
	Literal string
	Ref     string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UsageError:
		return e.Literal
	case UsageConflict:
		return fmt.Sprintf("options %s cannot be used together", e.Flag)
	case IOError:
		return fmt.Sprintf("%s: %v", e.Ref, e.Err)
	case FatalIOError:
		return fmt.Sprintf("write error: %v", e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode satisfies exitcode.Coder.
func (e *Error) ExitCode() int {
	if e.Kind == UsageError || e.Kind == UsageConflict {
		return 2
	}
	return 1
}
