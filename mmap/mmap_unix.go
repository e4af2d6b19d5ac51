//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// Handle is the raw OS file handle type: a file descriptor on Unix.
type Handle = int

// Backend names the mapping API this file implements.
const Backend = "mmap"

// InvalidHandle is the closed sentinel for Handle.
const InvalidHandle Handle = -1

// Fd returns the file descriptor of the backing file, or InvalidHandle once
// closed.
func (m *Map) Fd() Handle {
	if m.file == nil {
		return InvalidHandle
	}
	return int(m.file.Fd())
}

func (m *Map) mapView(length int) error {
	data, err := unix.Mmap(int(m.file.Fd()), 0, length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return &Error{Op: "mmap", Err: err}
	}
	m.data = data
	return nil
}

func (m *Map) unmapView() error {
	if err := unix.Munmap(m.data); err != nil {
		return &Error{Op: "munmap", Err: err}
	}
	return nil
}

// Lock locks the mapped pages in memory (prevents swapping).
func (m *Map) Lock() error {
	if m.data == nil {
		return ErrNotMapped
	}
	if err := unix.Mlock(m.data); err != nil {
		return &Error{Op: "mlock", Err: err}
	}
	return nil
}

// advise provides hints to the kernel about memory usage patterns.
func (m *Map) advise(advice int) error {
	if m.data == nil {
		return ErrNotMapped
	}
	if err := unix.Madvise(m.data, advice); err != nil {
		return &Error{Op: "madvise", Err: err}
	}
	return nil
}

// AdviseSequential hints that pages will be accessed sequentially.
func (m *Map) AdviseSequential() error {
	return m.advise(unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly.
func (m *Map) AdviseRandom() error {
	return m.advise(unix.MADV_RANDOM)
}

// AdviseWillNeed hints that pages will be needed soon.
func (m *Map) AdviseWillNeed() error {
	return m.advise(unix.MADV_WILLNEED)
}
