//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Handle is the raw OS file handle type: a HANDLE on Windows.
type Handle = windows.Handle

// Backend names the mapping API this file implements.
const Backend = "CreateFileMapping"

// InvalidHandle is the closed sentinel for Handle.
const InvalidHandle Handle = windows.InvalidHandle

// Fd returns the handle of the backing file, or InvalidHandle once closed.
func (m *Map) Fd() Handle {
	if m.file == nil {
		return InvalidHandle
	}
	return windows.Handle(m.file.Fd())
}

func (m *Map) mapView(length int) error {
	maxSizeHigh := uint32(uint64(length) >> 32)
	maxSizeLow := uint32(length)

	mapping, err := windows.CreateFileMapping(windows.Handle(m.file.Fd()), nil, windows.PAGE_READONLY, maxSizeHigh, maxSizeLow, nil)
	if err != nil {
		return &Error{Op: "CreateFileMapping", Err: err}
	}

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, uintptr(length))
	if err != nil {
		windows.CloseHandle(mapping)
		return &Error{Op: "MapViewOfFile", Err: err}
	}

	m.data = unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	m.mapping = uintptr(mapping)
	return nil
}

func (m *Map) unmapView() error {
	addr := uintptr(unsafe.Pointer(&m.data[0]))

	err := windows.UnmapViewOfFile(addr)
	if m.mapping != 0 {
		windows.CloseHandle(windows.Handle(m.mapping))
		m.mapping = 0
	}
	if err != nil {
		return &Error{Op: "UnmapViewOfFile", Err: err}
	}
	return nil
}

// Lock locks the mapped pages in memory (prevents swapping).
func (m *Map) Lock() error {
	if m.data == nil {
		return ErrNotMapped
	}
	if err := windows.VirtualLock(uintptr(unsafe.Pointer(&m.data[0])), uintptr(len(m.data))); err != nil {
		return &Error{Op: "VirtualLock", Err: err}
	}
	return nil
}

// advise provides hints to the kernel about memory usage patterns.
// Windows doesn't have madvise, so these are no-ops.
func (m *Map) advise(advice int) error {
	if m.data == nil {
		return ErrNotMapped
	}
	return nil
}

// AdviseSequential hints that pages will be accessed sequentially.
func (m *Map) AdviseSequential() error {
	return m.advise(0)
}

// AdviseRandom hints that pages will be accessed randomly.
func (m *Map) AdviseRandom() error {
	return m.advise(0)
}

// AdviseWillNeed hints that pages will be needed soon.
func (m *Map) AdviseWillNeed() error {
	return m.advise(0)
}
