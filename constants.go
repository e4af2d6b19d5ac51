package mappedfile

// Open flags, combined with | and passed to OpenWithFlags.
// Access hints are no-ops on Windows, which has no madvise.
const (
	// Default maps the file with no access hints
	Default uint = 0

	// Sequential hints that the mapping will be read front to back.
	// Takes precedence over Random when both are set.
	Sequential uint = 0x01

	// Random hints that the mapping will be read in no particular order
	Random uint = 0x02

	// WillNeed asks the OS to start paging the file in right away
	WillNeed uint = 0x04

	// LockPages locks the mapped pages in physical memory. Subject to
	// RLIMIT_MEMLOCK on Unix and the working set quota on Windows.
	LockPages uint = 0x08
)
