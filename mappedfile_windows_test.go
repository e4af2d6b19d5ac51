package mappedfile

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizerReleasesUnreachableHandle(t *testing.T) {
	path := writeTestFile(t, sequentialBytes(4096))

	fd, start := openWithoutClose(t, path)
	require.NotEqual(t, InvalidHandle, fd)
	require.NotZero(t, start)

	// Windows refuses to rename a file while a view or handle on it is live
	renamed := path + ".old"
	require.True(t, eventually(func() bool { return os.Rename(path, renamed) == nil }),
		"file still held after the handle became unreachable")
	assert.NoError(t, os.Remove(renamed))
}
