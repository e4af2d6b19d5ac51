package mappedfile

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/Giulio2002/mappedfile/mmap"
)

// Error records a failed operation on a MappedFile and the path it was
// applied to.
type Error struct {
	Op   string
	Path string
	Err  error // wrapped error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "mappedfile: " + e.Op + ": " + e.Err.Error()
	}
	return "mappedfile: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Handle state errors
var (
	// ErrAlreadyOpen is returned by Open on a handle that already holds a mapping.
	ErrAlreadyOpen = errors.New("mappedfile: already open")

	// ErrNotOpen is returned by the checked views on an unopened handle.
	ErrNotOpen = errors.New("mappedfile: not open")

	// ErrOutOfRange is returned by Slice for a range outside the mapping.
	ErrOutOfRange = errors.New("mappedfile: range out of bounds")

	// ErrInvalidOffset is returned by ReadAt for a negative offset.
	ErrInvalidOffset = errors.New("mappedfile: invalid offset")
)

// File errors surfaced from the mapping layer
var (
	// ErrEmptyFile is returned when opening a zero-length file. Empty files
	// are rejected on every platform.
	ErrEmptyFile = mmap.ErrEmptyFile

	// ErrNotRegular is returned when the path is a directory, device or pipe.
	ErrNotRegular = mmap.ErrNotRegular

	// ErrTooLarge is returned when the file does not fit the address space.
	ErrTooLarge = mmap.ErrTooLarge
)

// IsNotExist returns true if err reports a missing file
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsPermission returns true if err reports denied access
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// Errno extracts the OS error code behind a failed Open or Close, if any.
func Errno(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}
