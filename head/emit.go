package head

import (
	"bufio"
	"errors"
	"io"

	"github.com/carlmjohnson/exitcode"
)

// ErrPartial is returned by Run when some sources could not be read.
// Output for the remaining sources has still been written.
var ErrPartial = exitcode.Set(errors.New("one or more sources failed"), 1)

// Run writes the head of every source in cfg to stdout, in order.
// Per-source failures are reported on stderr and do not stop the run;
// a failed write to stdout does.
func Run(cfg Config, stdin io.Reader, stdout, stderr io.Writer) error {
	e := emitter{
		cfg: cfg,
		in:  stdin,
		out: bufio.NewWriter(stdout),
		rep: reporter{stderr},
	}
	failed := false
	for i, ref := range cfg.sources {
		err := e.emit(i, ref)
		var herr *Error
		if errors.As(err, &herr) && herr.Kind == IOError {
			if ferr := e.flush(); ferr != nil {
				return ferr
			}
			e.rep.report(ref, herr.Err)
			failed = true
			continue
		}
		if err != nil {
			return err
		}
	}
	if err := e.flush(); err != nil {
		return err
	}
	if failed {
		return ErrPartial
	}
	return nil
}

type emitter struct {
	cfg Config
	in  io.Reader
	out *bufio.Writer
	rep reporter
}

func (e *emitter) emit(i int, ref string) error {
	src, err := openSource(ref, e.in)
	if err != nil {
		return err
	}
	defer src.Close()

	if e.cfg.showHeaders() {
		if i > 0 {
			if err = e.out.WriteByte('\n'); err != nil {
				return fatal(err)
			}
		}
		if _, err = e.out.WriteString("==> " + ref + " <==\n"); err != nil {
			return fatal(err)
		}
	}

	if n, ok := e.cfg.Bytes(); ok {
		return e.copyBytes(ref, src.Reader, n)
	}
	return e.copyLines(ref, src.Reader, e.cfg.lines)
}

func (e *emitter) copyBytes(ref string, r io.Reader, n int) error {
	// Hide bufio.Writer.ReadFrom: it records read errors as write errors.
	_, err := io.CopyN(struct{ io.Writer }{e.out}, r, int64(n))
	if err == nil || err == io.EOF {
		return nil
	}
	// bufio.Writer keeps its first write error, so a failed flush means
	// the copy failed on the output side.
	if ferr := e.flush(); ferr != nil {
		return ferr
	}
	return &Error{Kind: IOError, Ref: ref, Err: err}
}

func (e *emitter) copyLines(ref string, r *bufio.Reader, n int) error {
	for ; n > 0; n-- {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := e.out.Write(line); werr != nil {
				return fatal(werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &Error{Kind: IOError, Ref: ref, Err: err}
		}
	}
	return nil
}

func (e *emitter) flush() error {
	if err := e.out.Flush(); err != nil {
		return fatal(err)
	}
	return nil
}

func fatal(err error) error {
	return &Error{Kind: FatalIOError, Err: err}
}
