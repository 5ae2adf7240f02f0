// Package expand resolves configuration values that reference the
// filesystem: file contents for readme/license fields and relative glob
// patterns for license-file resolution. Reads never escape the project
// root.
package expand

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ReadFiles returns the contents of the given files, relative to
// rootDir, concatenated with "\n". Paths resolving outside rootDir are
// rejected; missing files are skipped.
func ReadFiles(paths []string, rootDir string) (string, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		full := filepath.Join(root, path)
		if err := assertLocal(full, root); err != nil {
			return "", err
		}
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(full)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}

func assertLocal(path, root string) error {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("cannot access %q (or anything outside %q)", path, root)
	}
	return nil
}

// GlobRelative expands the glob patterns against rootDir, returning
// matches as paths relative to rootDir. Values without glob
// metacharacters pass through as-is. Matches for each pattern are
// sorted.
func GlobRelative(patterns []string, rootDir string) ([]string, error) {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	var expanded []string
	for _, value := range patterns {
		if !hasGlobChars(value) {
			expanded = append(expanded, value)
			continue
		}
		matches, err := doublestar.FilepathGlob(filepath.Join(root, value))
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", value, err)
		}
		rels := make([]string, 0, len(matches))
		for _, m := range matches {
			rel, err := filepath.Rel(root, m)
			if err != nil {
				return nil, err
			}
			rels = append(rels, rel)
		}
		sort.Strings(rels)
		expanded = append(expanded, rels...)
	}
	return expanded, nil
}

func hasGlobChars(value string) bool {
	return strings.ContainsAny(value, "*?[]{}")
}
