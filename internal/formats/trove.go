package formats

import "strings"

func init() {
	Register("trove-classifier", isTroveClassifier)
	Register("url", isURL)
}

// Top-level trove classifier namespaces. The reference validator checks
// against the full published list; validating the namespace and shape
// catches the practically relevant mistakes without shipping the list.
var troveRoots = map[string]bool{
	"Development Status":   true,
	"Environment":          true,
	"Framework":            true,
	"Intended Audience":    true,
	"License":              true,
	"Natural Language":     true,
	"Operating System":     true,
	"Programming Language": true,
	"Topic":                true,
	"Typing":               true,
	"Private":              true,
}

func isTroveClassifier(value string) bool {
	parts := strings.Split(value, " :: ")
	if len(parts) < 2 {
		return false
	}
	if !troveRoots[parts[0]] {
		return false
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" || part != strings.TrimSpace(part) {
			return false
		}
	}
	return true
}
