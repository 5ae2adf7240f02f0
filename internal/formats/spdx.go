package formats

import (
	"github.com/github/go-spdx/v2/spdxexp"
)

func init() {
	Register("SPDX", isSPDX)
}

// isSPDX reports whether value is a valid SPDX license expression
// (e.g. "MIT OR Apache-2.0").
func isSPDX(value string) bool {
	if value == "" {
		return false
	}
	valid, _ := spdxexp.ValidateLicenses([]string{value})
	return valid
}
