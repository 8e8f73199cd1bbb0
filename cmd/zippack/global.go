package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/zippack/zippack/internal/archiver"
	"github.com/zippack/zippack/internal/debug"
)

var version = "0.3.0-dev (compiled manually)"

// GlobalOptions hold the options that are shared by all of zippack.
type GlobalOptions struct {
	Quiet   bool
	Verbose int

	stdout io.Writer
	stderr io.Writer
}

var globalOptions = GlobalOptions{
	stdout: os.Stdout,
	stderr: os.Stderr,
}

// AddFlags registers the global flags on f.
func (opts *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print where the archive was written")
	f.CountVarP(&opts.Verbose, "verbose", "v", "be verbose, list every added file with its size")
}

// Printf writes the message to the configured stdout stream.
func (opts *GlobalOptions) Printf(format string, args ...interface{}) {
	_, err := fmt.Fprintf(opts.stdout, format, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to write to stdout: %v\n", err)
	}
}

// Verbosef calls Printf to write the message when the verbose flag is set.
func (opts *GlobalOptions) Verbosef(format string, args ...interface{}) {
	if opts.Verbose >= 1 {
		opts.Printf(format, args...)
	}
}

// Warnf writes the message to the configured stderr stream.
func (opts *GlobalOptions) Warnf(format string, args ...interface{}) {
	_, err := fmt.Fprintf(opts.stderr, format, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to write to stderr: %v\n", err)
	}
	debug.Log(format, args...)
}

// envBufferSize returns the buffer size configured in $ZIPPACK_BUFFER_SIZE,
// or the default.
func envBufferSize() int {
	s := os.Getenv("ZIPPACK_BUFFER_SIZE")
	if s == "" {
		return archiver.DefaultBufferSize
	}

	size, err := strconv.Atoi(s)
	if err != nil || size <= 0 {
		fmt.Fprintf(os.Stderr, "invalid value %q for ZIPPACK_BUFFER_SIZE, using default\n", s)
		return archiver.DefaultBufferSize
	}
	return size
}

// envBool returns the value of the boolean environment variable name.
func envBool(name string) bool {
	s := os.Getenv(name)
	if s == "" {
		return false
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid value %q for %v, ignoring\n", s, name)
		return false
	}
	return b
}
