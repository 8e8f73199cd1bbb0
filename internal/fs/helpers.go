package fs

import "os"

// IsRegularFile returns true if fi belongs to a normal file. If fi is nil,
// false is returned.
func IsRegularFile(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}

	return fi.Mode()&(os.ModeType|os.ModeCharDevice) == 0
}

// ReadDirNames reads the directory named by dirname within fs and returns a
// list of entry names in the order the file system returns them. The
// directory is closed before ReadDirNames returns.
func ReadDirNames(fs FS, dirname string) (names []string, err error) {
	f, err := fs.Open(dirname)
	if err != nil {
		return nil, err
	}

	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return f.Readdirnames(-1)
}
