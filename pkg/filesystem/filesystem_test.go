package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, fsys FS, dir string) {
	t.Helper()

	target := filepath.Join(dir, "target.txt")
	require.NoError(t, fsys.WriteFile(target, []byte("old\n"), 0640))

	scratch, err := fsys.CreateTemp(dir, ".target.txt.*")
	require.NoError(t, err)
	scratchPath := scratch.Name()
	assert.True(t, strings.HasPrefix(filepath.Base(scratchPath), ".target.txt."))
	assert.NotEqual(t, target, scratchPath)

	_, err = scratch.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, scratch.Close())

	require.NoError(t, fsys.Chmod(scratchPath, 0640))
	require.NoError(t, fsys.Rename(scratchPath, target))
	assert.Equal(t, scratchPath, scratch.Name())

	content, err := fsys.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	_, err = fsys.Stat(scratchPath)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fsys.Remove(target))
	_, err = fsys.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestOSFS(t *testing.T) {
	exercise(t, NewOS(), t.TempDir())
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0755))
	exercise(t, NewAferoFS(mem), "/work")
}

func TestCreateTempIsUnique(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		f, err := fsys.CreateTemp(dir, "scratch-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())
		assert.False(t, seen[f.Name()], "duplicate scratch path %s", f.Name())
		seen[f.Name()] = true
	}
}

func TestAferoReadFileRejectsDirectory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/sub", 0755))

	_, err := NewAferoFS(mem).ReadFile("/work/sub")
	assert.Error(t, err)
}

func TestReadOnlyAferoRejectsScratch(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0755))

	_, err := NewAferoFS(afero.NewReadOnlyFs(mem)).CreateTemp("/work", "scratch-*")
	assert.Error(t, err)
}
