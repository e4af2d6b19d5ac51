// Package mappedfile maps whole files into memory, read-only.
//
// A MappedFile opens a file, maps its entire contents at an address chosen
// by the OS and keeps the file open until Close. It converts between file
// offsets and mapped addresses and hands out zero-copy views of the bytes.
//
// Key properties:
//   - Read-only: the mapping is PROT_READ / PAGE_READONLY, writes fault
//   - Whole file: no windows, no remapping, no growth
//   - One mapping per handle; re-opening an open handle fails
//   - Empty files are rejected with ErrEmptyFile on every platform
//   - Close is idempotent; an unreachable open handle is released by a finalizer
//
// Basic usage:
//
//	var mf mappedfile.MappedFile
//	if err := mf.Open("/path/to/archive.jar"); err != nil {
//	    log.Fatal(err)
//	}
//	defer mf.Close()
//
//	// Zero-copy access to the file contents
//	data := mf.Bytes()
//
//	// Offset <-> address conversion
//	addr := mf.Address(int64(len(data) - 22))
//	if mf.Mapped(addr) {
//	    fmt.Println(mf.Offset(addr))
//	}
//
// The platform back-ends live in the mmap subpackage and are selected by
// build tags: mmap(2) on Unix and CreateFileMapping/MapViewOfFile on Windows.
// Fd returns the raw handle, whose type (FileHandle) differs accordingly.
//
// No locking is done. Concurrent readers are safe; Close must not race with
// them, since it invalidates every address and slice previously returned.
package mappedfile
