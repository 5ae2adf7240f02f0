// Package translate implements the translation pass from a declarative
// pyproject configuration document to the distribution/metadata model.
//
// The declarative "project" table carries semantically rich fields that
// need per-field transformation; the tool table carries build-tool
// specific pass-through knobs that are assigned directly. The project
// table is processed first and the tool table second, so the tool table
// wins for overlapping slots. That ordering is load-bearing for
// dynamic-license resolution and must not change.
package translate

import (
	"go.uber.org/zap"

	"github.com/git-pkgs/pyproject/internal/core"
	"github.com/git-pkgs/pyproject/internal/options"
)

// translator is one field's transformation rule: a pure function from a
// raw configuration fragment to assignments on the model.
type translator func(dist *core.Distribution, value any, rootDir string) error

// correspondence maps a normalized project-table field either to a
// direct model attribute or to a translator.
type correspondence struct {
	attr string
	fn   translator
}

// projectCorrespondence is the static rule table for the declarative
// project table. Every key is a field name that can legitimately appear
// there.
var projectCorrespondence = map[string]correspondence{
	"readme":                {fn: longDescription},
	"license":               {fn: license},
	"authors":               {fn: people("author")},
	"maintainers":           {fn: people("maintainer")},
	"urls":                  {fn: projectURLs},
	"requires_python":       {fn: pythonRequires},
	"dependencies":          {attr: "install_requires"},
	"optional_dependencies": {attr: "extras_require"},
}

// toolTableRenames maps tool-table field names to their model slot
// names. The tool table has no translator support: rename, then assign.
var toolTableRenames = map[string]string{
	"script_files": "scripts",
}

// Apply translates the configuration document into dist. The document
// must already be schema-valid; Apply only performs semantic
// translation. rootDir anchors every file-relative reference.
func Apply(dist *core.Distribution, doc *core.Table, rootDir string, idx options.Index, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	project := doc.Table("project")
	if project == nil {
		return core.ConfigError("project", "table is missing")
	}

	tool := core.NewTable()
	if t := doc.Table("tool"); t != nil {
		if sub := t.Table("setuptools"); sub != nil {
			tool = sub
		}
	}

	// The two preprocessing steps run on a copy and are
	// order-dependent: entry points are unified before any field is
	// dispatched, and dynamic license values are copied in from the
	// tool table so the main pass sees them under their project-table
	// keys.
	project = project.Copy()
	if err := unifyEntryPoints(project); err != nil {
		return err
	}
	resolveDynamicLicense(project, tool)

	for _, field := range project.Keys() {
		value, _ := project.Get(field)
		norm := core.NormalizeKey(field)
		corresp, ok := projectCorrespondence[norm]
		switch {
		case ok && corresp.fn != nil:
			if err := corresp.fn(dist, value, rootDir); err != nil {
				return err
			}
		case ok:
			if err := core.SetConfig(dist, corresp.attr, value); err != nil {
				return err
			}
		default:
			if err := core.SetConfig(dist, norm, value); err != nil {
				return err
			}
		}
	}

	for _, field := range tool.Keys() {
		norm := core.NormalizeKey(field)
		if norm == "dynamic" {
			// Consumed by dynamic-license resolution above.
			continue
		}
		if renamed, ok := toolTableRenames[norm]; ok {
			norm = renamed
		}
		value, _ := tool.Get(field)
		if err := core.SetConfig(dist, norm, value); err != nil {
			return err
		}
	}

	copyCommandOptions(doc, dist, idx, logger)

	if err := FinalizeRequires(dist); err != nil {
		return err
	}
	return FinalizeLicenseFiles(dist, rootDir)
}

// copyCommandOptions records the tool.distutils per-command overrides,
// warning about options unknown to their command. Recording never
// blocks the build.
func copyCommandOptions(doc *core.Table, dist *core.Distribution, idx options.Index, logger *zap.Logger) {
	t := doc.Table("tool")
	if t == nil {
		return
	}
	options.Copy(t.Table("distutils"), dist, idx, logger)
}
