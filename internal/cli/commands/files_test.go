package commands

import (
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/leapweb/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	tree := make(map[string]string, len(files))
	for _, f := range files {
		tree[f] = "x\n"
	}
	testutil.WriteFiles(t, dir, tree)
}

func TestFileSelector_Included(t *testing.T) {
	s := newFileSelector([]string{"*.html", "views/*.jsp"}, []string{"*.min.html", "build/*"})

	tests := []struct {
		rel  string
		want bool
	}{
		{"index.html", true},
		{"deep/nested/page.html", true},
		{"views/home.jsp", true},
		{"other/home.jsp", false},
		{"app.min.html", false},
		{"build/out.html", false},
		{"readme.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Included(filepath.FromSlash(tt.rel)))
		})
	}

	assert.True(t, newFileSelector(nil, nil).Included("anything.txt"), "empty include accepts all")
}

func TestFileSelector_Discover(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir,
		"index.html",
		"b/page.jsp",
		"a/frag.jspf",
		"node_modules/lib.html",
		".git/hooks.html",
		"notes.txt",
	)

	s := newFileSelector([]string{"*.html", "*.jsp", "*.jspf"}, []string{"node_modules"})
	files, err := s.Discover([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a", "frag.jspf"),
		filepath.Join(dir, "b", "page.jsp"),
		filepath.Join(dir, "index.html"),
	}, files)
}

func TestFileSelector_DiscoverExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "page.txt", "skip.min.html", "a.html")

	s := newFileSelector([]string{"*.html"}, []string{"*.min.html"})
	files, err := s.Discover([]string{
		filepath.Join(dir, "page.txt"),
		filepath.Join(dir, "skip.min.html"),
		dir,
		filepath.Join(dir, "a.html"),
	})
	require.NoError(t, err)

	// An explicit file bypasses include, not exclude; duplicates collapse.
	assert.Equal(t, []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "page.txt"),
	}, files)
}

func TestFileSelector_DiscoverMissingRoot(t *testing.T) {
	_, err := newFileSelector(nil, nil).Discover([]string{filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot lint")
}

func TestFileSelector_DiscoverDefaultRoot(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "x.html")
	t.Chdir(dir)

	files, err := newFileSelector([]string{"*.html"}, nil).Discover(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x.html"}, files)
}

func TestFileSelector_Matches(t *testing.T) {
	root := filepath.Join("srv", "web")
	s := newFileSelector([]string{"*.html"}, []string{"tmp/*"})

	assert.True(t, s.Matches([]string{root}, filepath.Join(root, "a.html")))
	assert.True(t, s.Matches([]string{root}, filepath.Join(root, "sub", "a.html")))
	assert.False(t, s.Matches([]string{root}, filepath.Join(root, "a.txt")))
	assert.False(t, s.Matches([]string{root}, filepath.Join(root, "tmp", "a.html")))
	assert.False(t, s.Matches([]string{root}, filepath.Join("srv", "other", "a.html")))

	file := filepath.Join("srv", "notes.txt")
	assert.True(t, s.Matches([]string{file}, file), "an explicit file root always matches")
}
