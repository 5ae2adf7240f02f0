package translate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/git-pkgs/pyproject/internal/core"
	"github.com/git-pkgs/pyproject/internal/expand"
)

// FinalizeRequires derives the full requirement lists once all raw
// assignments are applied: every extra dependency gains an
// `extra == '<name>'` marker and is appended to Requires-Dist, and the
// extra names populate Provides-Extra. Idempotent.
func FinalizeRequires(dist *core.Distribution) error {
	reqs := append([]string(nil), dist.InstallRequires...)

	extras := make([]string, 0, len(dist.ExtrasRequire))
	for extra := range dist.ExtrasRequire {
		extras = append(extras, extra)
	}
	sort.Strings(extras)

	provided := make(map[string]bool, len(extras))
	for _, name := range dist.Metadata.ProvidesExtras {
		provided[name] = true
	}

	names := append([]string(nil), dist.Metadata.ProvidesExtras...)
	for _, extra := range extras {
		// Extras keys may carry an environment marker after ":".
		name, marker, _ := strings.Cut(extra, ":")
		name = strings.TrimSpace(name)
		marker = strings.TrimSpace(marker)

		if name != "" && !provided[name] {
			provided[name] = true
			names = append(names, name)
		}

		var conds []string
		if marker != "" {
			conds = append(conds, marker)
		}
		if name != "" {
			conds = append(conds, fmt.Sprintf("extra == '%s'", name))
		}
		cond := strings.Join(conds, " and ")

		for _, dep := range dist.ExtrasRequire[extra] {
			reqs = append(reqs, addCondition(dep, cond))
		}
	}

	sort.Strings(names)
	dist.Metadata.RequiresDist = reqs
	dist.Metadata.ProvidesExtras = names
	return nil
}

// addCondition appends an environment-marker condition to a dependency
// string, joining with "and" when the dependency already carries a
// marker.
func addCondition(dep, cond string) string {
	if cond == "" {
		return dep
	}
	if strings.Contains(dep, ";") {
		return dep + " and " + cond
	}
	return dep + "; " + cond
}

// FinalizeLicenseFiles resolves the final license-files list: the
// configured patterns (or the defaults when nothing was set) are
// expanded relative to rootDir, keeping only existing files, dropping
// editor backups, deduplicating, and sorting. Idempotent.
func FinalizeLicenseFiles(dist *core.Distribution, rootDir string) error {
	patterns := dist.Metadata.LicenseFiles
	if len(patterns) == 0 {
		if file, ok := dist.Attrs["license_file"].(string); ok && file != "" {
			patterns = []string{file}
		} else {
			patterns = DefaultLicenseFiles
		}
	}

	expanded, err := expand.GlobRelative(patterns, rootDir)
	if err != nil {
		return core.ConfigErrorWrap("license_files", "cannot expand patterns", err)
	}

	seen := make(map[string]bool, len(expanded))
	files := make([]string, 0, len(expanded))
	for _, path := range expanded {
		if strings.HasSuffix(path, "~") || seen[path] {
			continue
		}
		info, err := os.Stat(filepath.Join(rootDir, path))
		if err != nil || info.IsDir() {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}
	sort.Strings(files)
	dist.Metadata.LicenseFiles = files
	return nil
}
