package textfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NovaOrdis/std.shlib/pkg/errors"
	"github.com/NovaOrdis/std.shlib/pkg/testutil"
)

func TestLineContaining(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		regex     string
		wantFirst int
		wantLast  int
	}{
		{"several matches", "x\nfoo\ny\nfoo\n", "foo", 2, 4},
		{"single match", "a\nb\nc\n", "^b$", 2, 2},
		{"first line", "foo\nbar\n", "foo", 1, 1},
		{"unterminated last line", "a\nfoo", "foo", 2, 2},
		{"no match", "a\nb\n", "zzz", 0, 0},
		{"empty file", "", ".*", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.CreateFile(t, t.TempDir(), "f.txt", tt.content)
			editor := newTestEditor()

			first, found, err := editor.FirstLineContaining(tt.regex, path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantFirst > 0, found)

			last, found, err := editor.LastLineContaining(tt.regex, path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLast, last)
			assert.Equal(t, tt.wantLast > 0, found)

			assert.LessOrEqual(t, first, last)
		})
	}
}

func TestLineContainingErrors(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "f.txt", "a\n")

	_, _, err := newTestEditor().FirstLineContaining("a", filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	_, _, err = newTestEditor().LastLineContaining("a(", path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
}

func TestLineAt(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "f.txt", "one\n\nthree\nfour")
	editor := newTestEditor()

	tests := []struct {
		lineNumber int
		want       string
	}{
		{1, "one"},
		{2, ""},
		{3, "three"},
		{4, "four"},
		{5, ""},
		{100, ""},
	}

	for _, tt := range tests {
		got, err := editor.LineAt(tt.lineNumber, path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "line %d", tt.lineNumber)
	}
}

func TestLookupLine(t *testing.T) {
	path := testutil.CreateFile(t, t.TempDir(), "f.txt", "one\n\nthree")
	editor := newTestEditor()

	tests := []struct {
		lineNumber int
		want       string
		wantFound  bool
	}{
		{1, "one", true},
		{2, "", true},
		{3, "three", true},
		{4, "", false},
	}

	for _, tt := range tests {
		got, found, err := editor.LookupLine(tt.lineNumber, path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "line %d", tt.lineNumber)
		assert.Equal(t, tt.wantFound, found, "line %d", tt.lineNumber)
	}
}

func TestLineAtErrors(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "f.txt", "a\n")

	_, err := newTestEditor().LineAt(1, filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	_, err = newTestEditor().LineAt(0, path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
