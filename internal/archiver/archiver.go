package archiver

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zippack/zippack/internal/debug"
	"github.com/zippack/zippack/internal/errors"
	"github.com/zippack/zippack/internal/fs"
)

// Extension is appended to the output path of every archive written to disk.
const Extension = ".zip"

// DefaultBufferSize is the size of the chunks file contents are copied in.
const DefaultBufferSize = 512

// tempPrefix starts the name of the temporary file an archive is written to
// before it is renamed into place.
const tempPrefix = ".zippack-"

// Options configure an Archiver.
type Options struct {
	// BufferSize is the number of bytes read from a file at once. Zero means
	// DefaultBufferSize.
	BufferSize int
}

// ApplyDefaults returns a copy of o with the default options set for all
// unset fields.
func (o Options) ApplyDefaults() Options {
	if o.BufferSize <= 0 {
		o.BufferSize = DefaultBufferSize
	}
	return o
}

// Archiver packs files and directory trees from FS into ZIP archives. An
// Archiver runs one operation at a time and must not be used concurrently.
type Archiver struct {
	FS      fs.FS
	Options Options

	// CompleteItem is called for every entry once its contents have been
	// written completely. item is the entry name in the archive, size the
	// number of bytes copied.
	CompleteItem func(item string, size int64)

	buf []byte

	// inProgress describes the temporary output file while an archive is
	// written to disk. It is never added to the archive, even when the
	// destination lies inside the source tree.
	inProgress os.FileInfo
}

// New initializes a new archiver reading from filesystem.
func New(filesystem fs.FS, opts Options) *Archiver {
	opts = opts.ApplyDefaults()
	return &Archiver{
		FS:      filesystem,
		Options: opts,
		buf:     make([]byte, opts.BufferSize),
	}
}

// PackFile writes the file at source to the archive source + Extension, which
// holds a single entry named like the file itself. The archive path is
// returned.
func (arch *Archiver) PackFile(source string) (string, error) {
	source, fi, err := arch.statRoot(source)
	if err != nil {
		return "", err
	}
	if !fs.IsRegularFile(fi) {
		return "", notFound(source, errNotRegular)
	}

	return arch.packSingle(source, source+Extension, fi)
}

// packSingle writes the archive target with the regular file source as its
// only entry.
func (arch *Archiver) packSingle(source, target string, fi os.FileInfo) (string, error) {
	debug.Log("pack file %v to %v", source, target)

	err := arch.writeArchive(target, func(zw *zipWriter) error {
		return arch.addFile(zw, source, arch.FS.Base(source), fi, 0)
	})
	if err != nil {
		return "", err
	}
	return target, nil
}

// PackDirectory writes all regular files below the directory source into the
// archive outputBase + Extension and returns the archive path. Entries are
// named by their path relative to source.
func (arch *Archiver) PackDirectory(source, outputBase string) (string, error) {
	root, fi, err := arch.statRoot(source)
	if err != nil {
		return "", err
	}
	if !fi.IsDir() {
		return "", notFound(root, errNotDir)
	}

	target := outputBase + Extension
	debug.Log("pack directory %v to %v", root, target)

	err = arch.writeArchive(target, func(zw *zipWriter) error {
		return arch.packDir(zw, root, root)
	})
	if err != nil {
		return "", err
	}
	return target, nil
}

// Pack writes source into the archive outputBase + Extension. Directories are
// packed like PackDirectory does, a regular file becomes the only entry,
// named by its base name.
func (arch *Archiver) Pack(source, outputBase string) (string, error) {
	source, fi, err := arch.statRoot(source)
	if err != nil {
		return "", err
	}

	switch {
	case fi.IsDir():
		return arch.PackDirectory(source, outputBase)
	case fs.IsRegularFile(fi):
		return arch.packSingle(source, outputBase+Extension, fi)
	default:
		return "", notFound(source, errNotRegular)
	}
}

// WriteFile writes an archive holding only the file source to w.
func (arch *Archiver) WriteFile(source string, w io.Writer) error {
	source, fi, err := arch.statRoot(source)
	if err != nil {
		return err
	}
	if !fs.IsRegularFile(fi) {
		return notFound(source, errNotRegular)
	}

	return arch.writeStream(w, func(zw *zipWriter) error {
		return arch.addFile(zw, source, arch.FS.Base(source), fi, 0)
	})
}

// WriteDirectory writes an archive of all regular files below the directory
// source to w.
func (arch *Archiver) WriteDirectory(source string, w io.Writer) error {
	root, fi, err := arch.statRoot(source)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return notFound(root, errNotDir)
	}

	return arch.writeStream(w, func(zw *zipWriter) error {
		return arch.packDir(zw, root, root)
	})
}

// Write writes an archive of source to w, dispatching on the kind of source
// like Pack does.
func (arch *Archiver) Write(source string, w io.Writer) error {
	source, fi, err := arch.statRoot(source)
	if err != nil {
		return err
	}

	switch {
	case fi.IsDir():
		return arch.WriteDirectory(source, w)
	case fs.IsRegularFile(fi):
		return arch.WriteFile(source, w)
	default:
		return notFound(source, errNotRegular)
	}
}

// statRoot cleans the root of a pack operation and returns information about
// it. Symlinks are followed for the root only. An empty path does not exist.
func (arch *Archiver) statRoot(root string) (string, os.FileInfo, error) {
	if root == "" {
		return "", nil, notFound(root, os.ErrNotExist)
	}

	root = arch.FS.Clean(root)
	fi, err := arch.FS.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, notFound(root, err)
		}
		return "", nil, ioError("stat", root, err)
	}
	return root, fi, nil
}

// writeStream runs fn with a ZIP stream on w and finishes the stream
// afterwards, also when fn fails.
func (arch *Archiver) writeStream(w io.Writer, fn func(*zipWriter) error) error {
	zw := newZipWriter(w)

	err := fn(zw)
	cerr := zw.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return ioError("write", "archive", cerr)
	}
	return nil
}

// writeArchive creates a temporary file next to target, runs fn with a ZIP
// stream on it and renames the file to target when everything succeeded. On
// error, the temporary file is closed and removed.
func (arch *Archiver) writeArchive(target string, fn func(*zipWriter) error) (err error) {
	f, err := fs.TempFile(arch.FS.Dir(target), tempPrefix)
	if err != nil {
		return ioError("create", target, err)
	}
	tempname := f.Name()
	debug.Log("writing %v via %v", target, tempname)

	defer func() {
		arch.inProgress = nil
		if err == nil {
			return
		}

		// the file may already be closed at this point
		_ = f.Close()
		if rerr := fs.RemoveIfExists(tempname); rerr != nil {
			debug.Log("unable to remove %v: %v", tempname, rerr)
		}
	}()

	arch.inProgress, err = f.Stat()
	if err != nil {
		return ioError("stat", tempname, err)
	}

	err = arch.writeStream(f, fn)
	if err != nil {
		return err
	}

	if err = f.Sync(); err != nil {
		return ioError("sync", tempname, err)
	}
	if err = f.Close(); err != nil {
		return ioError("close", tempname, err)
	}

	// temporary files are created with mode 0600
	if err = fs.Chmod(tempname, 0644); err != nil {
		return ioError("chmod", tempname, err)
	}

	if err = fs.Rename(tempname, target); err != nil {
		return ioError("rename", target, err)
	}
	return nil
}

// packDir adds all regular files below dir to zw, descending into
// subdirectories before continuing with the next sibling.
func (arch *Archiver) packDir(zw *zipWriter, root, dir string) error {
	names, err := fs.ReadDirNames(arch.FS, dir)
	if err != nil {
		return ioError("readdir", dir, err)
	}

	for _, name := range names {
		item := arch.childPath(dir, name)

		fi, err := arch.FS.Lstat(item)
		if err != nil {
			return ioError("lstat", item, err)
		}

		switch {
		case fi.IsDir():
			err = arch.packDir(zw, root, item)
			if err != nil {
				return err
			}

		case fs.IsRegularFile(fi):
			if arch.inProgress != nil && os.SameFile(fi, arch.inProgress) {
				debug.Log("skipping archive in progress %v", item)
				continue
			}

			entry, err := entryName(root, item)
			if err != nil {
				return err
			}

			err = arch.addFile(zw, item, entry, fi, fs.O_NOFOLLOW)
			if err != nil {
				return err
			}

		default:
			debug.Log("skipping %v, mode %v", item, fi.Mode())
		}
	}

	return nil
}

// childPath appends name to dir with a single separator.
func (arch *Archiver) childPath(dir, name string) string {
	sep := arch.FS.Separator()
	if strings.HasSuffix(dir, sep) {
		return dir + name
	}
	return dir + sep + name
}

// entryName returns the name of item in the archive: root and the separator
// following it are removed from the start of item, and the remaining
// separators are replaced by slashes.
func entryName(root, item string) (string, error) {
	rel, ok := fs.TrimPathPrefix(root, item)
	if !ok {
		return "", errors.Errorf("%v is not below %v", item, root)
	}
	return filepath.ToSlash(rel), nil
}

// addFile streams the file at path into a new entry called name. The file is
// closed before addFile returns.
func (arch *Archiver) addFile(zw *zipWriter, path, name string, fi os.FileInfo, flags int) (err error) {
	f, err := arch.FS.OpenFile(path, os.O_RDONLY|flags, 0)
	if err != nil {
		return ioError("open", path, err)
	}

	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = ioError("close", path, cerr)
		}
	}()

	if len(arch.buf) == 0 {
		arch.buf = make([]byte, arch.Options.ApplyDefaults().BufferSize)
	}

	w, err := zw.createEntry(name, fi)
	if err != nil {
		return ioError("create entry", name, err)
	}

	var size int64
	for {
		n, rerr := f.Read(arch.buf)
		if n > 0 {
			if _, werr := w.Write(arch.buf[:n]); werr != nil {
				return ioError("write", name, werr)
			}
			size += int64(n)
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return ioError("read", path, rerr)
		}
	}

	debug.Log("added %v as %v, %d bytes", path, name, size)
	if arch.CompleteItem != nil {
		arch.CompleteItem(name, size)
	}
	return nil
}
