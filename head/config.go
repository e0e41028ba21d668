package head

import (
	"strconv"

	"golang.org/x/exp/slices"
)

const (
	// Stdin is the source reference for standard input.
	Stdin = "-"

	defaultLines = 10
)

// HeaderMode controls when "==> name <==" headers are printed.
type HeaderMode int

const (
	// HeadersAuto prints headers only when there is more than one source.
	HeadersAuto HeaderMode = iota
	// HeadersNever never prints headers or separators.
	HeadersNever
	// HeadersAlways prints a header even for a single source.
	HeadersAlways
)

// Args holds unvalidated command line input.
// A nil count means the option was not supplied.
type Args struct {
	Sources []string
	Lines   *string
	Bytes   *string
	Quiet   bool
	Verbose bool
}

// Config is a validated run configuration. The zero value is not usable;
// build one with Resolve.
type Config struct {
	sources []string
	lines   int
	bytes   int
	headers HeaderMode
}

// Sources returns a copy of the source references in input order.
func (c Config) Sources() []string { return slices.Clone(c.sources) }

// Lines is the line count. It is meaningless in byte mode.
func (c Config) Lines() int { return c.lines }

// Bytes reports the byte count and whether byte mode is active.
func (c Config) Bytes() (n int, ok bool) { return c.bytes, c.bytes > 0 }

// Headers reports when headers are printed.
func (c Config) Headers() HeaderMode { return c.headers }

func (c Config) showHeaders() bool {
	switch c.headers {
	case HeadersNever:
		return false
	case HeadersAlways:
		return true
	}
	return len(c.sources) > 1
}

// Resolve validates args and returns the immutable run configuration.
// Conflicting options are rejected before any count is parsed.
func Resolve(args Args) (Config, error) {
	if args.Lines != nil && args.Bytes != nil {
		return Config{}, &Error{Kind: UsageConflict, Flag: "--lines and --bytes"}
	}
	if args.Quiet && args.Verbose {
		return Config{}, &Error{Kind: UsageConflict, Flag: "--quiet and --verbose"}
	}

	cfg := Config{headers: HeadersAuto}
	if args.Quiet {
		cfg.headers = HeadersNever
	}
	if args.Verbose {
		cfg.headers = HeadersAlways
	}

	switch {
	case args.Bytes != nil:
		n, err := parseCount(*args.Bytes, "bytes")
		if err != nil {
			return Config{}, err
		}
		cfg.bytes = n
	case args.Lines != nil:
		n, err := parseCount(*args.Lines, "lines")
		if err != nil {
			return Config{}, err
		}
		cfg.lines = n
	default:
		cfg.lines = defaultLines
	}

	cfg.sources = slices.Clone(args.Sources)
	if len(cfg.sources) == 0 {
		cfg.sources = []string{Stdin}
	}
	return cfg, nil
}

func parseCount(s, flag string) (int, error) {
	n, err := parsePositiveInt(s)
	if err != nil {
		err.(*Error).Flag = flag
	}
	return n, err
}

// parsePositiveInt accepts base 10 integers greater than zero.
// On failure the error message is s itself.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, &Error{Kind: UsageError, Literal: s}
	}
	return n, nil
}
