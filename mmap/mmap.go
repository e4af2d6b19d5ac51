// Package mmap provides cross-platform read-only memory mapping of whole files.
package mmap

import "os"

// Map represents a read-only memory mapping of an entire file.
// This type wraps platform-specific mmap implementations.
type Map struct {
	data []byte   // Mapped memory region
	file *os.File // Backing file, open for the lifetime of the mapping
	// Windows-specific mapping object (only used on Windows, zero on Unix)
	mapping uintptr
}

// MapFile opens path read-only and maps its whole contents.
// On failure nothing stays open.
func MapFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotRegular
	}

	size := fi.Size()
	if size == 0 {
		f.Close()
		return nil, ErrEmptyFile
	}
	if int64(int(size)) != size {
		f.Close()
		return nil, ErrTooLarge
	}

	m, err := New(f, int(size))
	if err != nil {
		f.Close()
		return nil, err
	}

	return m, nil
}

// New maps the first length bytes of f read-only. On success the Map takes
// ownership of f and closes it in Close.
func New(f *os.File, length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	m := &Map{file: f}
	if err := m.mapView(length); err != nil {
		return nil, err
	}
	return m, nil
}

// Data returns the mapped byte slice.
func (m *Map) Data() []byte {
	return m.data
}

// Size returns the mapped size.
func (m *Map) Size() int64 {
	return int64(len(m.data))
}

// Close releases the memory mapping and then the backing file.
func (m *Map) Close() error {
	var err error
	if m.data != nil {
		err = m.unmapView()
		m.data = nil
	}
	if m.file != nil {
		if closeErr := m.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		m.file = nil
	}
	return err
}

// Error represents an mmap error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "mmap: " + e.Op + ": " + e.Err.Error()
	}
	return "mmap: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSize = &Error{Op: "invalid size"}
	ErrNotMapped   = &Error{Op: "not mapped"}
	ErrEmptyFile   = &Error{Op: "empty file"}
	ErrNotRegular  = &Error{Op: "not a regular file"}
	ErrTooLarge    = &Error{Op: "file exceeds address space"}
)
