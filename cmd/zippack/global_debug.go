//go:build debug

package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/zippack/zippack/internal/errors"
)

type profileOptions struct {
	memPath string
	cpuPath string
}

var profiler interface {
	Stop()
}

func registerProfiling(cmd *cobra.Command) {
	var opts profileOptions

	f := cmd.PersistentFlags()
	f.StringVar(&opts.memPath, "mem-profile", "", "write memory profile to `dir`")
	f.StringVar(&opts.cpuPath, "cpu-profile", "", "write cpu profile to `dir`")

	origPreRun := cmd.PersistentPreRunE
	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		if origPreRun != nil {
			if err := origPreRun(c, args); err != nil {
				return err
			}
		}
		return opts.start()
	}
}

// stopProfiling writes the profile started by the --*-profile flags, if any.
func stopProfiling() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

func (opts profileOptions) start() error {
	if opts.memPath != "" && opts.cpuPath != "" {
		return errors.Fatal("only one profile (memory or CPU) may be activated at the same time")
	}

	switch {
	case opts.memPath != "":
		profiler = profile.Start(profile.Quiet, profile.NoShutdownHook, profile.MemProfile, profile.ProfilePath(opts.memPath))
	case opts.cpuPath != "":
		profiler = profile.Start(profile.Quiet, profile.NoShutdownHook, profile.CPUProfile, profile.ProfilePath(opts.cpuPath))
	default:
		return nil
	}

	fmt.Fprintf(os.Stderr, "profiling enabled\n")
	return nil
}
