package fs_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zippack/zippack/internal/fs"
	rtest "github.com/zippack/zippack/internal/test"
)

func TestReadDirNames(t *testing.T) {
	tempdir := rtest.TempDir(t)

	for _, name := range []string{"a", "b", "c"} {
		rtest.OK(t, os.WriteFile(filepath.Join(tempdir, name), []byte(name), 0644))
	}
	rtest.OK(t, os.Mkdir(filepath.Join(tempdir, "sub"), 0755))

	names, err := fs.ReadDirNames(fs.Local{}, tempdir)
	rtest.OK(t, err)

	sort.Strings(names)
	if diff := cmp.Diff([]string{"a", "b", "c", "sub"}, names); diff != "" {
		t.Errorf("wrong names (-want +got):\n%s", diff)
	}
}

func TestReadDirNamesMissing(t *testing.T) {
	tempdir := rtest.TempDir(t)

	_, err := fs.ReadDirNames(fs.Local{}, filepath.Join(tempdir, "missing"))
	rtest.Assert(t, os.IsNotExist(err), "expected not-exist error, got %v", err)
}

func TestIsRegularFile(t *testing.T) {
	tempdir := rtest.TempDir(t)
	file := filepath.Join(tempdir, "file")
	rtest.OK(t, os.WriteFile(file, []byte("content"), 0644))

	fi, err := os.Lstat(file)
	rtest.OK(t, err)
	rtest.Assert(t, fs.IsRegularFile(fi), "file should be regular")

	fi, err = os.Lstat(tempdir)
	rtest.OK(t, err)
	rtest.Assert(t, !fs.IsRegularFile(fi), "directory should not be regular")

	rtest.Assert(t, !fs.IsRegularFile(nil), "nil should not be regular")
}

func TestTempFileRename(t *testing.T) {
	tempdir := rtest.TempDir(t)

	f, err := fs.TempFile(tempdir, ".zippack-")
	rtest.OK(t, err)
	rtest.Assert(t, filepath.Dir(f.Name()) == tempdir, "temp file %v not in %v", f.Name(), tempdir)

	_, err = f.Write([]byte("data"))
	rtest.OK(t, err)
	rtest.OK(t, f.Close())

	target := filepath.Join(tempdir, "target.zip")
	rtest.OK(t, fs.Rename(f.Name(), target))

	buf, err := os.ReadFile(target)
	rtest.OK(t, err)
	rtest.Equals(t, "data", string(buf))

	rtest.OK(t, fs.RemoveIfExists(target))
	rtest.OK(t, fs.RemoveIfExists(target))
}
