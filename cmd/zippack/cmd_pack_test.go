package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zippack/zippack/internal/archiver"
	"github.com/zippack/zippack/internal/errors"
	rtest "github.com/zippack/zippack/internal/test"
)

var testTime = time.Date(2024, time.January, 31, 13, 37, 0, 0, time.UTC)

func testGlobalOptions(t *testing.T) (GlobalOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return GlobalOptions{stdout: stdout, stderr: stderr}, stdout, stderr
}

func testSourceTree(t *testing.T) (src, dst string) {
	t.Helper()
	tempdir := rtest.TempDir(t)

	archiver.TestCreateFiles(t, tempdir, archiver.TestDir{
		"src": archiver.TestDir{
			"one": archiver.TestFile{Content: "first file"},
			"sub": archiver.TestDir{
				"two": archiver.TestFile{Content: "second file"},
			},
		},
	})

	src = filepath.Join(tempdir, "src")

	return src, filepath.Join(tempdir, "backup")
}

func TestDestinationBase(t *testing.T) {
	rtest.Equals(t, "backup_20240131001", destinationBase("backup", false, testTime))
	rtest.Equals(t, "dir/backup_20240131001", destinationBase("dir/backup", false, testTime))
	rtest.Equals(t, "backup", destinationBase("backup", true, testTime))
}

func TestRunPack(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, stdout, stderr := testGlobalOptions(t)

	opts := PackOptions{BufferSize: archiver.DefaultBufferSize}
	rtest.OK(t, runPack(opts, gopts, []string{src, dst}, testTime))

	target := dst + "_20240131001.zip"
	rtest.Equals(t, map[string]string{
		"one":     "first file",
		"sub/two": "second file",
	}, archiver.TestReadArchiveFile(t, target))

	rtest.Equals(t, "archive written to "+target+"\n", stdout.String())
	rtest.Equals(t, "", stderr.String())
}

func TestRunPackNoTimestamp(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, _, _ := testGlobalOptions(t)
	gopts.Quiet = true

	opts := PackOptions{NoTimestamp: true, BufferSize: 3}
	rtest.OK(t, runPack(opts, gopts, []string{src, dst}, testTime))

	files := archiver.TestReadArchiveFile(t, dst+".zip")
	rtest.Equals(t, 2, len(files))
}

func TestRunPackSingleFile(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, _, _ := testGlobalOptions(t)

	opts := PackOptions{NoTimestamp: true, BufferSize: archiver.DefaultBufferSize}
	rtest.OK(t, runPack(opts, gopts, []string{filepath.Join(src, "one"), dst}, testTime))

	rtest.Equals(t, map[string]string{"one": "first file"}, archiver.TestReadArchiveFile(t, dst+".zip"))
}

func TestRunPackVerbose(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, stdout, _ := testGlobalOptions(t)
	gopts.Verbose = 1
	gopts.Quiet = true

	opts := PackOptions{NoTimestamp: true, BufferSize: archiver.DefaultBufferSize}
	rtest.OK(t, runPack(opts, gopts, []string{src, dst}, testTime))

	out := stdout.String()
	rtest.Assert(t, strings.Contains(out, "added one (10 B)\n"), "entry one not listed in %q", out)
	rtest.Assert(t, strings.Contains(out, "added sub/two (11 B)\n"), "entry sub/two not listed in %q", out)
	rtest.Assert(t, strings.Contains(out, "packed 2 files, 21 B\n"), "summary missing in %q", out)
	rtest.Assert(t, !strings.Contains(out, "archive written"), "quiet output contains summary: %q", out)
}

func TestRunPackStdout(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, stdout, stderr := testGlobalOptions(t)
	gopts.Verbose = 1

	opts := PackOptions{Stdout: true, BufferSize: archiver.DefaultBufferSize}
	rtest.OK(t, runPack(opts, gopts, []string{src, dst}, testTime))

	rtest.Equals(t, map[string]string{
		"one":     "first file",
		"sub/two": "second file",
	}, archiver.TestReadArchive(t, stdout.Bytes()))

	// messages must not end up in the archive stream
	rtest.Assert(t, strings.Contains(stderr.String(), "added one"), "verbose output missing on stderr: %q", stderr.String())
	rtest.Assert(t, strings.Contains(stderr.String(), "archive written to stdout"), "summary missing on stderr: %q", stderr.String())
}

func TestRunPackNotFound(t *testing.T) {
	tempdir := rtest.TempDir(t)
	gopts, _, _ := testGlobalOptions(t)

	opts := PackOptions{BufferSize: archiver.DefaultBufferSize}
	err := runPack(opts, gopts, []string{filepath.Join(tempdir, "missing"), filepath.Join(tempdir, "out")}, testTime)
	rtest.Assert(t, archiver.IsNotFound(err), "expected NotFoundError, got %v", err)
	rtest.Equals(t, 2, exitCode(err))
}

func TestRunPackInvalidBufferSize(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, _, _ := testGlobalOptions(t)

	err := runPack(PackOptions{BufferSize: 0}, gopts, []string{src, dst}, testTime)
	rtest.Assert(t, errors.IsFatal(err), "expected fatal error, got %v", err)
	rtest.Equals(t, 1, exitCode(err))
}

func TestRootCommandArgs(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"only-source"},
		{"a", "b", "c"},
	} {
		gopts, stdout, stderr := testGlobalOptions(t)
		cmd := newRootCommand(&gopts)
		cmd.SetArgs(args)
		cmd.SetOut(stdout)
		cmd.SetErr(stderr)

		err := cmd.Execute()
		rtest.Assert(t, errors.IsFatal(err), "expected fatal error for args %v, got %v", args, err)
		rtest.Assert(t, strings.Contains(err.Error(), "Usage:"), "usage missing in %q", err.Error())
		rtest.Equals(t, 1, exitCode(err))
	}
}

func TestRootCommand(t *testing.T) {
	src, dst := testSourceTree(t)
	gopts, stdout, _ := testGlobalOptions(t)

	cmd := newRootCommand(&gopts)
	cmd.SetArgs([]string{"--no-timestamp", "--buffer-size", "4", src, dst})
	rtest.OK(t, cmd.Execute())

	rtest.Equals(t, 2, len(archiver.TestReadArchiveFile(t, dst+".zip")))
	rtest.Equals(t, "archive written to "+dst+".zip\n", stdout.String())
}

func TestExitCode(t *testing.T) {
	rtest.Equals(t, 0, exitCode(nil))
	rtest.Equals(t, 1, exitCode(errors.New("boom")))
	rtest.Equals(t, 1, exitCode(&archiver.IOError{Op: "read", Path: "x", Err: errors.New("boom")}))
	rtest.Equals(t, 2, exitCode(errors.WithStack(&archiver.NotFoundError{Path: "x", Err: errors.New("boom")})))
}

func TestExecuteReturnsError(t *testing.T) {
	tempdir := rtest.TempDir(t)
	gopts, _, _ := testGlobalOptions(t)

	cmd := newRootCommand(&gopts)
	cmd.SetArgs([]string{filepath.Join(tempdir, "missing"), filepath.Join(tempdir, "out")})

	err := execute(cmd)
	rtest.Assert(t, archiver.IsNotFound(err), "expected NotFoundError, got %v", err)
	rtest.Equals(t, 2, exitCode(err))
}
