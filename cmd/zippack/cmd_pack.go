package main

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/zippack/zippack/internal/archiver"
	"github.com/zippack/zippack/internal/debug"
	"github.com/zippack/zippack/internal/errors"
	"github.com/zippack/zippack/internal/fs"
)

// TimestampFormat is the date layout appended to the destination.
const TimestampFormat = "20060102"

// timestampSequence follows the date in the destination name.
const timestampSequence = "001"

// PackOptions collects all options for packing.
type PackOptions struct {
	NoTimestamp bool
	Stdout      bool
	BufferSize  int
}

// AddFlags registers the pack flags on f. Defaults are taken from the
// environment.
func (opts *PackOptions) AddFlags(f *pflag.FlagSet) {
	f.BoolVar(&opts.NoTimestamp, "no-timestamp", envBool("ZIPPACK_NO_TIMESTAMP"), "do not append the current date to the destination (default: $ZIPPACK_NO_TIMESTAMP)")
	f.BoolVar(&opts.Stdout, "stdout", false, "write the archive to stdout, destination is ignored")
	f.IntVar(&opts.BufferSize, "buffer-size", envBufferSize(), "read files in chunks of `n` bytes (default: $ZIPPACK_BUFFER_SIZE)")
}

// destinationBase returns the path of the archive without extension, with
// the date suffix appended unless disabled.
func destinationBase(dest string, noTimestamp bool, now time.Time) string {
	if noTimestamp {
		return dest
	}
	return dest + "_" + now.Format(TimestampFormat) + timestampSequence
}

// checkStdoutArchive refuses to write binary data to a terminal.
func checkStdoutArchive(w io.Writer) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.Fatal("stdout is the terminal, please redirect output")
	}
	return nil
}

func runPack(opts PackOptions, gopts GlobalOptions, args []string, now time.Time) error {
	if opts.BufferSize <= 0 {
		return errors.Fatalf("invalid buffer size %d", opts.BufferSize)
	}

	source := args[0]
	base := destinationBase(args[1], opts.NoTimestamp, now)

	printer := gopts
	if opts.Stdout {
		// the archive goes to stdout, keep messages out of it
		printer.stdout = gopts.stderr
	}

	var (
		files int
		bytes int64
	)

	arch := archiver.New(fs.Local{}, archiver.Options{BufferSize: opts.BufferSize})
	arch.CompleteItem = func(item string, size int64) {
		files++
		bytes += size
		printer.Verbosef("added %v (%v)\n", item, humanize.Bytes(uint64(size)))
	}

	debug.Log("pack %v to %v, options %+v", source, base, opts)

	var target string
	if opts.Stdout {
		if err := checkStdoutArchive(gopts.stdout); err != nil {
			return err
		}

		target = "stdout"
		if err := arch.Write(source, gopts.stdout); err != nil {
			return err
		}
	} else {
		var err error
		target, err = arch.Pack(source, base)
		if err != nil {
			return err
		}
	}

	printer.Verbosef("\npacked %d files, %v\n", files, humanize.Bytes(uint64(bytes)))
	if !gopts.Quiet {
		printer.Printf("archive written to %v\n", target)
	}
	return nil
}
