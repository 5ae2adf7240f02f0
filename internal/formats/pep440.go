package formats

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
)

func init() {
	Register("pep440", isPEP440)
	Register("pep508-versionspec", isPEP508VersionSpec)
}

// isPEP440 reports whether value is a valid PEP 440 version string.
func isPEP440(value string) bool {
	_, err := pep440.Parse(value)
	return err == nil
}

// isPEP508VersionSpec reports whether value is a valid version-specifier
// set as used inside PEP 508 requirements (e.g. ">=1.0,<2"). Markers
// and extras are not allowed here.
func isPEP508VersionSpec(value string) bool {
	for _, c := range value {
		if c == ';' || c == ']' || c == '@' {
			return false
		}
	}
	_, err := pep440.NewSpecifiers(value)
	return err == nil
}
