package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// fileSelector decides which files under the lint roots are analyzed.
// Patterns use path.Match syntax against the slash-separated path relative
// to the root; a pattern without a slash also matches the base name.
type fileSelector struct {
	include []string
	exclude []string
}

func newFileSelector(include, exclude []string) *fileSelector {
	return &fileSelector{include: include, exclude: exclude}
}

func matchAny(patterns []string, rel string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		if ok, _ := path.Match(p, rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := path.Match(p, base); ok {
				return true
			}
		}
	}
	return false
}

// Included reports whether the file at rel is analyzed.
func (s *fileSelector) Included(rel string) bool {
	rel = filepath.ToSlash(rel)
	if matchAny(s.exclude, rel) {
		return false
	}
	return len(s.include) == 0 || matchAny(s.include, rel)
}

// excludedDir reports whether a directory is pruned from the walk.
func (s *fileSelector) excludedDir(rel, name string) bool {
	if len(name) > 1 && name[0] == '.' {
		return true
	}
	return matchAny(s.exclude, filepath.ToSlash(rel))
}

// Discover expands roots into the sorted, de-duplicated list of files to
// analyze. A root naming a file is taken as is; exclusion still applies.
func (s *fileSelector) Discover(roots []string) ([]string, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot lint %s: %w", root, err)
		}
		if !info.IsDir() {
			if !matchAny(s.exclude, filepath.ToSlash(filepath.Base(root))) {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return relErr
			}
			if d.IsDir() {
				if p != root && s.excludedDir(rel, d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && s.Included(rel) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Matches reports whether a changed path would be linted from roots.
func (s *fileSelector) Matches(roots []string, p string) bool {
	for _, root := range roots {
		root = filepath.Clean(root)
		if filepath.Clean(p) == root {
			return true
		}
		rel, err := filepath.Rel(root, p)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		if s.Included(rel) {
			return true
		}
	}
	return false
}
