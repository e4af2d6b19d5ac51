package mappedfile

import (
	"io"
	"runtime"
	"unsafe"

	"github.com/Giulio2002/mappedfile/mmap"
)

// FileHandle is the raw OS handle exposed by Fd: an int file descriptor on
// Unix, a windows.Handle on Windows.
type FileHandle = mmap.Handle

// InvalidHandle is what Fd returns for an unopened handle.
const InvalidHandle = mmap.InvalidHandle

// MappedFile is a read-only memory mapping of an entire file.
//
// The zero value is an unopened handle. Open maps a file, Close releases the
// mapping and the file. A MappedFile owns at most one mapping at a time and
// must not be copied while open.
//
// Accessors other than IsOpen, Path, Fd and the bounds-checked views are only
// meaningful while the handle is open; calling them on a closed handle is a
// caller error and is not checked.
type MappedFile struct {
	state *mapping
	start uintptr
	end   uintptr
	path  string
}

// mapping is the heap object the finalizer hangs on, so a MappedFile can
// be embedded by value in other structs.
type mapping struct {
	view *mmap.Map
}

func (s *mapping) release() error {
	runtime.SetFinalizer(s, nil)
	return s.view.Close()
}

// Open maps the whole file at path read-only.
//
// On failure the handle stays unopened and nothing it acquired along the way
// is left open. Opening an already open handle fails with ErrAlreadyOpen and
// leaves the current mapping in place.
func (m *MappedFile) Open(path string) error {
	return m.OpenWithFlags(path, Default)
}

// OpenWithFlags is Open followed by the access hints in flags. A hint that
// the OS rejects fails the whole call.
func (m *MappedFile) OpenWithFlags(path string, flags uint) error {
	if m.IsOpen() {
		return &Error{Op: "open", Path: path, Err: ErrAlreadyOpen}
	}

	view, err := mmap.MapFile(path)
	if err != nil {
		return &Error{Op: "open", Path: path, Err: err}
	}

	if err := applyFlags(view, flags); err != nil {
		view.Close()
		return &Error{Op: "open", Path: path, Err: err}
	}

	s := &mapping{view: view}
	runtime.SetFinalizer(s, func(s *mapping) { s.view.Close() })

	data := view.Data()
	m.state = s
	m.start = uintptr(unsafe.Pointer(&data[0]))
	m.end = m.start + uintptr(view.Size())
	m.path = path
	return nil
}

func applyFlags(view *mmap.Map, flags uint) error {
	var err error
	switch {
	case flags&Sequential != 0:
		err = view.AdviseSequential()
	case flags&Random != 0:
		err = view.AdviseRandom()
	}
	if err == nil && flags&WillNeed != 0 {
		err = view.AdviseWillNeed()
	}
	if err == nil && flags&LockPages != 0 {
		err = view.Lock()
	}
	return err
}

// Close unmaps the file and closes it. Addresses and slices obtained from
// the handle become invalid. Closing an unopened handle is a no-op.
func (m *MappedFile) Close() error {
	if m.state == nil {
		return nil
	}
	s := m.state
	path := m.path
	m.state = nil
	m.start = 0
	m.end = 0
	m.path = ""

	if err := s.release(); err != nil {
		return &Error{Op: "close", Path: path, Err: err}
	}
	return nil
}

// IsOpen reports whether the handle holds an active mapping.
func (m *MappedFile) IsOpen() bool {
	return m.state != nil
}

// Path returns the path of the mapped file, or "" when unopened.
func (m *MappedFile) Path() string {
	return m.path
}

// Mapped reports whether addr lies in [Start(), End()).
func (m *MappedFile) Mapped(addr uintptr) bool {
	return m.start <= addr && addr < m.end
}

// Start returns the address of the first mapped byte.
func (m *MappedFile) Start() uintptr { return m.start }

// End returns the address one past the last mapped byte.
func (m *MappedFile) End() uintptr { return m.end }

// Address returns the address of the byte at offset. The offset is not
// checked against Size.
func (m *MappedFile) Address(offset int64) uintptr {
	return m.start + uintptr(offset)
}

// Offset returns the distance of addr from Start. addr is not checked
// against the mapped range.
func (m *MappedFile) Offset(addr uintptr) int64 {
	return int64(addr - m.start)
}

// Fd returns the raw OS handle of the mapped file, or InvalidHandle when
// unopened. The handle is owned by m: do not close it.
func (m *MappedFile) Fd() FileHandle {
	if m.state == nil {
		return InvalidHandle
	}
	return m.state.view.Fd()
}

// Size returns the mapped length in bytes.
func (m *MappedFile) Size() int {
	return int(m.end - m.start)
}

// Bytes returns the mapping as a read-only slice. Writing to it faults.
// The slice must not be used after Close.
func (m *MappedFile) Bytes() []byte {
	if m.state == nil {
		return nil
	}
	return m.state.view.Data()
}

// Slice returns length bytes starting at offset, without copying.
func (m *MappedFile) Slice(offset int64, length int) ([]byte, error) {
	if m.state == nil {
		return nil, ErrNotOpen
	}
	size := int64(m.Size())
	if offset < 0 || length < 0 || offset > size || int64(length) > size-offset {
		return nil, ErrOutOfRange
	}
	return m.state.view.Data()[offset : offset+int64(length) : offset+int64(length)], nil
}

// ReadAt implements io.ReaderAt on the mapped bytes.
//
// Like any io.ReaderAt, clients can execute parallel ReadAt calls, but it is
// not safe to call Close and reading methods concurrently.
func (m *MappedFile) ReadAt(p []byte, off int64) (int, error) {
	if m.state == nil {
		return 0, ErrNotOpen
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	data := m.state.view.Data()
	if off >= int64(len(data)) {
		return 0, io.EOF
	}
	n := copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

var _ io.ReaderAt = (*MappedFile)(nil)
