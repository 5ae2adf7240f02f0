package formats

import (
	"regexp"
	"strings"
)

func init() {
	Register("pep508", isPEP508)
	Register("pep508-identifier", isPEP508Identifier)
}

var (
	pep508IdentRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][-A-Za-z0-9._]*[A-Za-z0-9])$`)
	pep508NameRegex  = regexp.MustCompile(`^([A-Za-z0-9][-A-Za-z0-9._]*[A-Za-z0-9]|[A-Za-z0-9])(\s*\[[^\]]*\])?`)
)

// isPEP508Identifier reports whether value is a valid distribution name.
func isPEP508Identifier(value string) bool {
	return pep508IdentRegex.MatchString(value)
}

// isPEP508 reports whether value is a valid dependency requirement
// string (name, optional extras, optional version specifier or direct
// URL reference, optional environment marker).
func isPEP508(value string) bool {
	// Environment marker comes after ";".
	head, marker, hasMarker := strings.Cut(value, ";")
	if hasMarker && strings.TrimSpace(marker) == "" {
		return false
	}

	head = strings.TrimSpace(head)
	match := pep508NameRegex.FindString(head)
	if match == "" {
		return false
	}

	rest := strings.TrimSpace(head[len(match):])
	if rest == "" {
		return true
	}
	if after, ok := strings.CutPrefix(rest, "@"); ok {
		// Direct URL reference.
		return strings.TrimSpace(after) != ""
	}

	rest = strings.TrimSpace(strings.Trim(rest, "()"))
	return isPEP508VersionSpec(rest)
}
