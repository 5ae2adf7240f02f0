package formats

import (
	"github.com/git-pkgs/pyproject/internal/core"
)

// DocumentCheck is a whole-document validation applied after schema
// validation succeeds and before translation begins. It inspects the
// document and returns nil or an error; the document is never modified.
type DocumentCheck func(doc *core.Table) error

// ExtraValidations returns the ordered sequence of whole-document
// checks. The slice is rebuilt per call so callers may append their own
// checks without affecting others.
func ExtraValidations() []DocumentCheck {
	return []DocumentCheck{
		validateProjectDynamic,
	}
}

// validateProjectDynamic rejects fields that are both given a static
// value and listed under project.dynamic.
func validateProjectDynamic(doc *core.Table) error {
	project := doc.Table("project")
	if project == nil {
		return nil
	}
	raw, ok := project.Get("dynamic")
	if !ok {
		return nil
	}
	dynamic, err := core.AsStringList(raw)
	if err != nil {
		return core.ConfigError("project.dynamic", err.Error())
	}

	declared := make(map[string]bool, project.Len())
	for _, key := range project.Keys() {
		declared[core.NormalizeKey(key)] = true
	}
	for _, field := range dynamic {
		norm := core.NormalizeKey(field)
		if norm != "dynamic" && declared[norm] {
			return core.ConfigError(
				"project."+field,
				"cannot provide a value and list the field under project.dynamic at the same time",
			)
		}
	}
	return nil
}
