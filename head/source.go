package head

import (
	"bufio"
	"io"
	"os"
)

type source struct {
	*bufio.Reader
	io.Closer
}

// openSource opens ref for reading, or wraps stdin when ref is "-".
// The caller must Close the result.
func openSource(ref string, stdin io.Reader) (*source, error) {
	if ref == Stdin {
		return &source{bufio.NewReader(stdin), io.NopCloser(nil)}, nil
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, &Error{Kind: IOError, Ref: ref, Err: err}
	}
	return &source{bufio.NewReader(f), f}, nil
}
