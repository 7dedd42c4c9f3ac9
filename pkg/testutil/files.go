package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name, creating parent directories, and
// returns the path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// AssertDirEntries checks that dir holds exactly the named entries, which
// is how tests prove no scratch file was left behind
func AssertDirEntries(t *testing.T, dir string, names ...string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, sorted(names), entryNames(entries))
}

// NewMemFS returns an in-memory filesystem holding files, keyed by absolute
// path
func NewMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, mem.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return mem
}

// ReadMemFile returns the content of path in fsys
func ReadMemFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(content)
}

// AssertMemDirEntries is AssertDirEntries for an afero filesystem
func AssertMemDirEntries(t *testing.T, fsys afero.Fs, dir string, names ...string) {
	t.Helper()

	infos, err := afero.ReadDir(fsys, dir)
	require.NoError(t, err)
	got := make([]string, 0, len(infos))
	for _, info := range infos {
		got = append(got, info.Name())
	}
	assert.Equal(t, sorted(names), sorted(got))
}

func entryNames(entries []os.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return sorted(names)
}

func sorted(names []string) []string {
	out := append([]string{}, names...)
	sort.Strings(out)
	return out
}
