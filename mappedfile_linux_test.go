package mappedfile

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mappedFrom reports whether addr is covered by a mapping of the file with
// inode ino, according to /proc/self/maps. Matching on the inode as well as
// the range keeps an unrelated mapping that reuses the address from counting.
func mappedFrom(t *testing.T, addr uintptr, ino uint64) (mapped, ok bool) {
	t.Helper()
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return false, false
	}
	defer f.Close()

	// 7f1c2a000000-7f1c2a001000 r--s 00000000 08:01 1234 /tmp/x/test.dat
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 5 {
			continue
		}
		lo, hi, found := strings.Cut(fields[0], "-")
		require.True(t, found, "malformed maps line %q", sc.Text())
		from, err := strconv.ParseUint(lo, 16, 64)
		require.NoError(t, err)
		to, err := strconv.ParseUint(hi, 16, 64)
		require.NoError(t, err)
		if uint64(addr) < from || uint64(addr) >= to {
			continue
		}
		inode, err := strconv.ParseUint(fields[4], 10, 64)
		require.NoError(t, err)
		return inode == ino, true
	}
	require.NoError(t, sc.Err())
	return false, true
}
