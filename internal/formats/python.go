package formats

import (
	"regexp"
	"strings"
)

func init() {
	Register("python-identifier", isPythonIdentifier)
	Register("python-qualified-identifier", isPythonQualifiedIdentifier)
	Register("python-module-name", isPythonQualifiedIdentifier)
	Register("python-entrypoint-group", isEntrypointGroup)
	Register("python-entrypoint-name", isEntrypointName)
	Register("python-entrypoint-reference", isEntrypointReference)
}

// ASCII approximation of a Python identifier; the reference validator
// additionally accepts non-ASCII identifier characters per PEP 3131.
var pythonIdentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	entrypointGroupRegex = regexp.MustCompile(`^\w+(\.\w+)*$`)
	entrypointNameRegex  = regexp.MustCompile(`^[\w.-]+$`)
)

func isPythonIdentifier(value string) bool {
	return pythonIdentRegex.MatchString(value)
}

func isPythonQualifiedIdentifier(value string) bool {
	if strings.HasPrefix(value, ".") || strings.HasSuffix(value, ".") {
		return false
	}
	for _, part := range strings.Split(value, ".") {
		if !isPythonIdentifier(part) {
			return false
		}
	}
	return true
}

func isEntrypointGroup(value string) bool {
	return entrypointGroupRegex.MatchString(value)
}

func isEntrypointName(value string) bool {
	return entrypointNameRegex.MatchString(value)
}

// isEntrypointReference validates "import.path:object.attr" references,
// optionally followed by an extras list in brackets.
func isEntrypointReference(value string) bool {
	ref := value
	if i := strings.Index(ref, "["); i >= 0 {
		extras, ok := strings.CutSuffix(ref[i:], "]")
		if !ok {
			return false
		}
		for _, extra := range strings.Split(strings.TrimPrefix(extras, "["), ",") {
			if !isPEP508Identifier(strings.TrimSpace(extra)) {
				return false
			}
		}
		ref = strings.TrimSpace(ref[:i])
	}

	module, object, hasObject := strings.Cut(ref, ":")
	if !isPythonQualifiedIdentifier(strings.TrimSpace(module)) {
		return false
	}
	if !hasObject {
		return true
	}
	return isPythonQualifiedIdentifier(strings.TrimSpace(object))
}
