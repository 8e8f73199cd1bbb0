package archiver

import (
	"io"
	"os"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"

	"github.com/zippack/zippack/internal/errors"
)

// zipWriter writes entries into a ZIP stream. Creating an entry implicitly
// finishes the previous one, so only one entry is ever open.
type zipWriter struct {
	w     *zip.Writer
	names map[string]struct{}
}

func newZipWriter(dst io.Writer) *zipWriter {
	w := zip.NewWriter(dst)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	return &zipWriter{
		w:     w,
		names: make(map[string]struct{}),
	}
}

// createEntry starts a new deflated entry called name, with the modification
// time and permissions taken from fi.
func (zw *zipWriter) createEntry(name string, fi os.FileInfo) (io.Writer, error) {
	if _, ok := zw.names[name]; ok {
		return nil, errors.Errorf("duplicate entry %q", name)
	}

	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return nil, errors.Wrap(err, "FileInfoHeader")
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.w.CreateHeader(header)
	if err != nil {
		return nil, errors.Wrap(err, "ZipHeader")
	}

	zw.names[name] = struct{}{}
	return w, nil
}

// Close finishes the last entry and writes the central directory. It does not
// close the underlying writer.
func (zw *zipWriter) Close() error {
	return zw.w.Close()
}
