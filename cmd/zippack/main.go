package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/zippack/zippack/internal/archiver"
	"github.com/zippack/zippack/internal/debug"
	"github.com/zippack/zippack/internal/errors"
)

func init() {
	// don't import `go.uber.org/automaxprocs` to disable the log output
	_, _ = maxprocs.Set()
}

func newRootCommand(gopts *GlobalOptions) *cobra.Command {
	var opts PackOptions

	cmd := &cobra.Command{
		Use:   "zippack [flags] source destination",
		Short: "Pack a directory tree or a file into a ZIP archive",
		Long: `
zippack packs all regular files below the directory "source" into a ZIP
archive. Entries are named by their path relative to "source". If "source" is
a file, the archive holds just that file.

The archive is written to "destination" followed by the current date and the
extension ".zip", e.g. "backup_20240131001.zip" for the destination "backup".
Use --no-timestamp to write "destination.zip" instead.

Symbolic links and special files are skipped, empty directories are not
recorded.

EXIT STATUS
===========

Exit status is 0 if the command was successful.
Exit status is 1 if there was any error.
Exit status is 2 if the source does not exist.
`,
		Version: fmt.Sprintf("%s compiled with %v on %v/%v",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.Fatalf("expected two arguments (source and destination), got %d\n\n%s",
					len(args), cmd.UsageString())
			}
			return runPack(opts, *gopts, args, time.Now())
		},
	}

	// Use our own --version flag text, and no completion command
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("zippack {{.Version}}\n")

	gopts.AddFlags(cmd.PersistentFlags())
	opts.AddFlags(cmd.Flags())

	registerProfiling(cmd)

	return cmd
}

// execute runs cmd and stops profiling afterwards, also when cmd fails.
func execute(cmd *cobra.Command) error {
	defer stopProfiling()
	return cmd.Execute()
}

func main() {
	// install custom global logger into a buffer, if an error occurs
	// we can show the logs
	logBuffer := bytes.NewBuffer(nil)
	log.SetOutput(logBuffer)

	debug.Log("main %#v", os.Args)
	debug.Log("zippack %s compiled with %v on %v/%v",
		version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	err := execute(newRootCommand(&globalOptions))

	var exitMessage string
	switch {
	case errors.IsFatal(err):
		exitMessage = err.Error()
	case archiver.IsNotFound(err), archiver.IsIOError(err):
		exitMessage = fmt.Sprintf("Fatal: %v", err)
	case err != nil:
		exitMessage = fmt.Sprintf("%+v", err)

		if logBuffer.Len() > 0 {
			exitMessage += "also, the following messages were logged by a library:\n"
			sc := bufio.NewScanner(logBuffer)
			for sc.Scan() {
				exitMessage += fmt.Sprintln(sc.Text())
			}
		}
	}

	code := exitCode(err)
	if code != 0 {
		globalOptions.Warnf("%v\n", exitMessage)
	}
	Exit(code)
}

// exitCode maps the error returned by the command to the exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case archiver.IsNotFound(err):
		return 2
	default:
		return 1
	}
}
