package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCharset(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "utf-8", false},
		{"UTF-8", "utf-8", false},
		{"latin1", "windows-1252", false},
		{"iso-8859-2", "iso-8859-2", false},
		{"no-such-charset", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cs, err := ResolveCharset(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cs.Name())
		})
	}
}

func TestFile_TextDecodesCharset(t *testing.T) {
	latin1, err := ResolveCharset("latin1")
	require.NoError(t, err)

	f := FromBytes("page.html", []byte{'c', 'a', 'f', 0xE9}, latin1)
	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "café", text)
	assert.Equal(t, "windows-1252", f.Charset().Name())
}

func TestFile_OpenReadsLazily(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")

	// The file does not exist yet: Open must not fail.
	f := Open(path, UTF8)
	assert.Equal(t, path, f.Path())

	require.NoError(t, os.WriteFile(path, []byte("<html></html>\n"), 0o600))
	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "<html></html>\n", text)
}

func TestFile_MissingFile(t *testing.T) {
	f := Open(filepath.Join(t.TempDir(), "missing.html"), UTF8)

	_, err := f.Text()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = f.Lines(func(int, string) bool { return true })
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
