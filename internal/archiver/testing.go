package archiver

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/zippack/zippack/internal/errors"
)

// TestDir describes a directory structure to create for a test.
type TestDir map[string]interface{}

func (d TestDir) String() string {
	return "<Dir>"
}

// TestFile describes a file created for a test.
type TestFile struct {
	Content string
}

func (f TestFile) String() string {
	return "<File>"
}

// TestSymlink describes a symlink created for a test.
type TestSymlink struct {
	Target string
}

func (s TestSymlink) String() string {
	return "<Symlink>"
}

// TestCreateFiles creates a directory structure described by dir at target,
// which must already exist.
func TestCreateFiles(t testing.TB, target string, dir TestDir) {
	t.Helper()

	for name, item := range dir {
		targetPath := filepath.Join(target, name)

		switch it := item.(type) {
		case TestFile:
			err := os.WriteFile(targetPath, []byte(it.Content), 0644)
			if err != nil {
				t.Fatal(err)
			}
		case TestSymlink:
			err := os.Symlink(filepath.FromSlash(it.Target), targetPath)
			if err != nil {
				t.Fatal(err)
			}
		case TestDir:
			err := os.Mkdir(targetPath, 0755)
			if err != nil {
				t.Fatal(err)
			}

			TestCreateFiles(t, targetPath, it)
		default:
			t.Fatalf("unknown item %T at %v", item, targetPath)
		}
	}
}

// TestRegularFiles returns the contents of all regular files in dir, keyed by
// their slash separated path relative to dir. Symlinks are not followed.
func TestRegularFiles(t testing.TB, dir TestDir) map[string]string {
	t.Helper()

	files := make(map[string]string)

	var walk func(prefix string, dir TestDir)
	walk = func(prefix string, dir TestDir) {
		for name, item := range dir {
			switch it := item.(type) {
			case TestFile:
				files[prefix+name] = it.Content
			case TestDir:
				walk(prefix+name+"/", it)
			}
		}
	}
	walk("", dir)

	return files
}

// TestReadArchive returns the contents of all entries in the ZIP archive
// data, keyed by entry name.
func TestReadArchive(t testing.TB, data []byte) map[string]string {
	t.Helper()

	rd, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading archive failed: %v", err)
	}

	entries := make(map[string]string)
	for _, f := range rd.File {
		if _, ok := entries[f.Name]; ok {
			t.Fatalf("duplicate entry %q in archive", f.Name)
		}

		buf, err := readZipFile(f)
		if err != nil {
			t.Fatalf("reading entry %v failed: %v", f.Name, err)
		}
		entries[f.Name] = string(buf)
	}

	return entries
}

// TestReadArchiveFile is like TestReadArchive, but reads the archive from
// the file at filename.
func TestReadArchiveFile(t testing.TB, filename string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	return TestReadArchive(t, data)
}

func readZipFile(f *zip.File) (buf []byte, err error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		cerr := rc.Close()
		if err == nil {
			err = cerr
		}
	}()

	buf, err = io.ReadAll(rc)
	return buf, errors.Wrap(err, "ReadAll")
}
