package mappedfile

import (
	"fmt"
	"runtime"

	"github.com/Giulio2002/mappedfile/mmap"
)

// Version constants
const (
	// Major is the major version number
	Major = 0

	// Minor is the minor version number
	Minor = 1

	// Patch is the patch version number
	Patch = 0
)

// BuildInfo describes the platform back-end compiled into this binary.
type BuildInfo struct {
	Target  string // GOOS/GOARCH
	Backend string // mapping API used by the mmap package
}

// Version returns the version string of mappedfile.
func Version() string {
	return fmt.Sprintf("mappedfile %d.%d.%d", Major, Minor, Patch)
}

// GetBuildInfo returns build information.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Target:  runtime.GOOS + "/" + runtime.GOARCH,
		Backend: mmap.Backend,
	}
}
