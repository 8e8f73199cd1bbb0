package test

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	mrand "math/rand"

	"github.com/zippack/zippack/internal/errors"
)

// Assert fails the test if the condition is false.
func Assert(tb testing.TB, condition bool, msg string, v ...interface{}) {
	tb.Helper()
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d: "+msg+"\033[39m\n\n", append([]interface{}{filepath.Base(file), line}, v...)...)
		tb.FailNow()
	}
}

// OK fails the test if an err is not nil.
func OK(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d: unexpected error: %+v\033[39m\n\n", filepath.Base(file), line, err)
		tb.FailNow()
	}
}

// Equals fails the test if exp is not equal to act.
func Equals(tb testing.TB, exp, act interface{}) {
	tb.Helper()
	if !reflect.DeepEqual(exp, act) {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d:\n\n\texp: %#v\n\n\tgot: %#v\033[39m\n\n", filepath.Base(file), line, exp, act)
		tb.FailNow()
	}
}

// Random returns count bytes of pseudo-random data derived from the seed.
func Random(seed, count int) []byte {
	p := make([]byte, count)
	rnd := mrand.New(mrand.NewSource(int64(seed)))
	_, _ = rnd.Read(p)
	return p
}

func isFile(fi os.FileInfo) bool {
	return fi.Mode()&(os.ModeType|os.ModeCharDevice) == 0
}

// ResetReadOnly recursively resets the permissions of dir so that tests which
// made files or directories unreadable can still clean up.
func ResetReadOnly(tb testing.TB, dir string) {
	err := filepath.Walk(dir, func(path string, fi os.FileInfo, err error) error {
		if fi == nil {
			return err
		}

		if fi.IsDir() {
			return os.Chmod(path, 0777)
		}

		if isFile(fi) {
			return os.Chmod(path, 0666)
		}

		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	OK(tb, err)
}

// RemoveAll recursively resets the permissions of all files and dirs and
// afterwards uses os.RemoveAll() to remove the path.
func RemoveAll(tb testing.TB, path string) {
	ResetReadOnly(tb, path)
	err := os.RemoveAll(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	OK(tb, err)
}

// TempDir returns a temporary directory that is removed by t.Cleanup,
// except if TestCleanupTempDirs is set to false.
func TempDir(tb testing.TB) string {
	tempdir, err := os.MkdirTemp(TestTempDir, "zippack-test-")
	if err != nil {
		tb.Fatal(err)
	}

	tb.Cleanup(func() {
		if !TestCleanupTempDirs {
			tb.Logf("leaving temporary directory %v used for test", tempdir)
			return
		}

		RemoveAll(tb, tempdir)
	})
	return tempdir
}

// Chdir changes the current directory to dest.
// The function back returns to the previous directory.
func Chdir(tb testing.TB, dest string) (back func()) {
	tb.Helper()

	prev, err := os.Getwd()
	if err != nil {
		tb.Fatal(err)
	}

	tb.Logf("chdir to %v", dest)
	err = os.Chdir(dest)
	if err != nil {
		tb.Fatal(err)
	}

	return func() {
		tb.Helper()
		tb.Logf("chdir back to %v", prev)
		err = os.Chdir(prev)
		if err != nil {
			tb.Fatal(err)
		}
	}
}
