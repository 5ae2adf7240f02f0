package core

import "strings"

// NormalizeKey canonicalizes a configuration key to its JSON-compatible
// form as defined in PEP 566: lower case, "-" replaced by "_". Pure and
// total; used before every correspondence lookup.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}
