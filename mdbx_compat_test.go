//go:build cgo

package mappedfile_test

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"

	mdbx "github.com/erigontech/mdbx-go/mdbx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Giulio2002/mappedfile"
)

const (
	// mdbxMagic is the 56-bit prime in the high bytes of magic_and_version
	mdbxMagic uint64 = 0x59659DBDEF4C11

	mdbxPageHeaderSize = 20
	mdbxNumMetas       = 3
	mdbxPageSize       = 4096
)

// TestMdbxMetaPages finds the three MDBX meta pages in a mapped data file.
func TestMdbxMetaPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mdbx")

	runtime.LockOSThread()
	env, err := mdbx.NewEnv(mdbx.Label("mappedfile-test"))
	require.NoError(t, err)
	require.NoError(t, env.SetGeometry(-1, -1, 16<<20, -1, -1, mdbxPageSize))
	require.NoError(t, env.Open(path, mdbx.NoSubdir, 0644))
	err = env.Update(func(txn *mdbx.Txn) error {
		dbi, err := txn.OpenRoot(mdbx.Create)
		if err != nil {
			return err
		}
		for i := 0; i < 100; i++ {
			if err := txn.Put(dbi, []byte(fmt.Sprintf("key-%03d", i)), []byte("value"), 0); err != nil {
				return err
			}
		}
		return nil
	})
	env.Close()
	runtime.UnlockOSThread()
	require.NoError(t, err)

	var mf mappedfile.MappedFile
	require.NoError(t, mf.Open(path))
	defer mf.Close()

	require.GreaterOrEqual(t, mf.Size(), mdbxPageSize*mdbxNumMetas)

	for i := 0; i < mdbxNumMetas; i++ {
		off := int64(i*mdbxPageSize + mdbxPageHeaderSize)
		b, err := mf.Slice(off, 8)
		require.NoError(t, err)

		magicAndVersion := binary.LittleEndian.Uint64(b)
		assert.Equal(t, mdbxMagic, magicAndVersion>>8, "meta page %d", i)
		assert.True(t, mf.Mapped(mf.Address(off)))
	}
}
