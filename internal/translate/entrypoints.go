package translate

import (
	"fmt"

	"github.com/git-pkgs/pyproject/internal/core"
)

// scriptGroupRenames maps the script shortcut fields to their canonical
// entry-point group names.
var scriptGroupRenames = map[string]string{
	"scripts":     "console_scripts",
	"gui_scripts": "gui_scripts",
}

// unifyEntryPoints merges the console-script shortcuts, GUI-script
// shortcuts, and the explicit entry-points table into one canonical
// multi-group mapping of "name = import.path:callable" strings, stored
// back under "entry-points". Must run before the main dispatch pass.
func unifyEntryPoints(project *core.Table) error {
	groups := core.NewTable()

	for _, key := range []string{"entry-points", "entry_points"} {
		raw, ok := project.Get(key)
		if !ok {
			continue
		}
		explicit, ok := raw.(*core.Table)
		if !ok {
			return core.ConfigError(key, fmt.Sprintf("expected table of tables, got %T", raw))
		}
		for _, group := range explicit.Keys() {
			sub := explicit.Table(group)
			if sub == nil {
				return core.ConfigError(key+"."+group, "expected table of entry points")
			}
			groups.Set(group, sub)
		}
		project.Delete(key)
		break
	}

	for _, key := range project.Keys() {
		norm := core.NormalizeKey(key)
		group, ok := scriptGroupRenames[norm]
		if !ok {
			continue
		}
		sub := project.Table(key)
		if sub == nil {
			return core.ConfigError(key, "expected table of entry points")
		}
		project.Delete(key)
		if sub.Len() > 0 {
			groups.Set(group, sub)
		}
	}

	if groups.Len() == 0 {
		return nil
	}

	rendered := make(map[string][]string, groups.Len())
	for _, group := range groups.Keys() {
		sub := groups.Table(group)
		entries := make([]string, 0, sub.Len())
		for _, name := range sub.Keys() {
			ref, ok := stringKey(sub, name)
			if !ok {
				return core.ConfigError("entry-points."+group+"."+name, "expected string reference")
			}
			entries = append(entries, fmt.Sprintf("%s = %s", name, ref))
		}
		rendered[group] = entries
	}
	project.Set("entry-points", rendered)
	return nil
}
