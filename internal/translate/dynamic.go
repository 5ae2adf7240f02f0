package translate

import (
	"github.com/git-pkgs/pyproject/internal/core"
)

// DefaultLicenseFiles are the glob patterns used when license-files is
// declared dynamic but not configured explicitly. Defaults from the
// `wheel` package, historically shared by build backends.
var DefaultLicenseFiles = []string{"LICEN[CS]E*", "COPYING*", "NOTICE*", "AUTHORS*"}

// resolveDynamicLicense handles the dynamic license fields. license and
// license-files are mutually exclusive in the declarative schema, so a
// dynamic license cannot be expanded field-by-field: when "license" is
// declared dynamic, whichever of {license, license_files} the tool
// table declares dynamically is copied into the project table before
// the main pass, with license_files defaulting to DefaultLicenseFiles.
func resolveDynamicLicense(project, tool *core.Table) {
	raw, ok := project.Get("dynamic")
	if !ok {
		return
	}
	dynamic, err := core.AsStringList(raw)
	if err != nil {
		return
	}
	licenseDynamic := false
	for _, field := range dynamic {
		if core.NormalizeKey(field) == "license" {
			licenseDynamic = true
			break
		}
	}
	if !licenseDynamic {
		return
	}

	cfg := tool.Table("dynamic")
	if cfg == nil {
		cfg = core.NewTable()
	}

	if value, ok := cfg.Get("license"); ok {
		project.Set("license", value)
	}
	if value, ok := cfg.Get("license_files"); ok {
		project.Set("license_files", value)
	} else {
		project.Set("license_files", DefaultLicenseFiles)
	}
}
