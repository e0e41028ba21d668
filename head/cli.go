package head

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/flagx"
	"github.com/carlmjohnson/versioninfo"
)

const AppName = "headr"

func CLI(args []string) error {
	app := appEnv{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	err := app.ParseArgs(args)
	if err != nil {
		return err
	}
	return app.Exec()
}

type appEnv struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	cfg            Config
	printVersion   bool
}

// countValue records the raw text of a count flag so that validation can
// happen in Resolve, and whether the flag was set at all.
type countValue struct {
	raw string
	set bool
}

func (c *countValue) String() string { return c.raw }

func (c *countValue) Set(s string) error {
	c.raw, c.set = s, true
	return nil
}

func (c *countValue) ptr() *string {
	if !c.set {
		return nil
	}
	return &c.raw
}

// options are the flags that can also come from the environment.
type options struct {
	lines, bytes   countValue
	quiet, verbose bool
}

func (o *options) define(fl *flag.FlagSet) {
	fl.Var(&o.lines, "n", "print the first `LINES` lines instead of the first 10")
	fl.Var(&o.lines, "lines", "long form of -n")
	fl.Var(&o.bytes, "c", "print the first `BYTES` bytes")
	fl.Var(&o.bytes, "bytes", "long form of -c")
	fl.BoolVar(&o.quiet, "q", false, "never print headers giving file names")
	fl.BoolVar(&o.quiet, "quiet", false, "long form of -q")
	fl.BoolVar(&o.quiet, "silent", false, "same as -quiet")
	fl.BoolVar(&o.verbose, "v", false, "always print headers giving file names")
	fl.BoolVar(&o.verbose, "verbose", false, "long form of -v")
}

func (app *appEnv) ParseArgs(args []string) error {
	fl := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fl.SetOutput(app.stderr)

	var cli options
	cli.define(fl)
	fl.BoolVar(&app.printVersion, "version", false, "print version and exit")
	fl.Usage = func() {
		fmt.Fprintf(fl.Output(), `headr - %s

Print the first 10 lines of each FILE to standard output.
With more than one FILE, precede each with a header giving the file name.
With no FILE, or when FILE is -, read standard input.

Usage:

	headr [options] [FILE...]

Count and header options may also be set as environment variables,
e.g. HEADR_LINES=20. A count given on the command line replaces any
count from the environment, and likewise for -q and -v.

Options:
`, versioninfo.Version)
		fl.PrintDefaults()
	}

	if err := fl.Parse(args); err != nil {
		return err
	}
	if app.printVersion {
		return nil
	}

	envFl := flag.NewFlagSet(AppName, flag.ContinueOnError)
	envFl.SetOutput(app.stderr)
	var env options
	env.define(envFl)
	if err := flagx.ParseEnv(envFl, AppName); err != nil {
		return err
	}

	headersSet := false
	fl.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "q", "quiet", "silent", "v", "verbose":
			headersSet = true
		}
	})

	raw := Args{
		Sources: fl.Args(),
		Lines:   cli.lines.ptr(),
		Bytes:   cli.bytes.ptr(),
		Quiet:   cli.quiet,
		Verbose: cli.verbose,
	}
	if !cli.lines.set && !cli.bytes.set {
		raw.Lines, raw.Bytes = env.lines.ptr(), env.bytes.ptr()
	}
	if !headersSet {
		raw.Quiet, raw.Verbose = env.quiet, env.verbose
	}

	cfg, err := Resolve(raw)
	if err != nil {
		reporter{fl.Output()}.usage(err)
		return err
	}
	app.cfg = cfg
	return nil
}

func (app *appEnv) Exec() error {
	if app.printVersion {
		_, err := fmt.Fprintf(app.stdout, "%s %s\n", AppName, versioninfo.Version)
		return err
	}
	err := Run(app.cfg, app.stdin, app.stdout, app.stderr)
	var herr *Error
	if errors.As(err, &herr) && herr.Kind == FatalIOError {
		fmt.Fprintf(app.stderr, "head: %v\n", err)
	}
	return err
}
