package archiver

import (
	"fmt"
	"os"

	"github.com/zippack/zippack/internal/errors"
)

var (
	errNotDir     = errors.New("not a directory")
	errNotRegular = errors.New("not a regular file")
)

// NotFoundError is returned when the source of a pack operation does not
// exist or is not of the kind the operation needs (file vs. directory).
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source %v not found: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IOError is returned when opening, reading or writing a file or the archive
// fails. Op names the failed operation, Path the file or entry involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v %v: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsIOError reports whether err is or wraps an *IOError.
func IsIOError(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// unwrapPathError drops the *os.PathError or *os.LinkError wrapper, its paths
// and operation are repeated by our own error types.
func unwrapPathError(err error) error {
	var perr *os.PathError
	if errors.As(err, &perr) {
		return perr.Err
	}

	var lerr *os.LinkError
	if errors.As(err, &lerr) {
		return lerr.Err
	}
	return err
}

func notFound(path string, err error) error {
	return errors.WithStack(&NotFoundError{Path: path, Err: unwrapPathError(err)})
}

func ioError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: unwrapPathError(err)})
}
