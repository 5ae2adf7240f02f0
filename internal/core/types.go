// Package core provides the shared data model for pyproject translation:
// the ordered configuration table, the distribution/metadata model, and
// the error types.
package core

import (
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// Metadata is the core-metadata model populated by the translation
// pass. Field names follow the JSON-compatible form of the metadata
// spec (PEP 566), same as the attribute names the original tooling
// exposes.
type Metadata struct {
	Name    string
	Version string

	// Description is the one-line summary; LongDescription carries the
	// readme body.
	Description                string
	LongDescription            string
	LongDescriptionContentType string

	Keywords    []string
	Classifiers []string

	License      string
	LicenseFiles []string

	Author          string
	AuthorEmail     string
	Maintainer      string
	MaintainerEmail string

	// URL is the primary homepage; ProjectURLs keeps every declared URL
	// verbatim, including the aliased ones.
	URL         string
	DownloadURL string
	ProjectURLs map[string]string

	Platforms []string
	Provides  []string
	Obsoletes []string

	RequiresPython SpecifierSet

	// RequiresDist and ProvidesExtras are derived by FinalizeRequires
	// from InstallRequires and ExtrasRequire.
	RequiresDist   []string
	ProvidesExtras []string

	// Dynamic lists the fields whose values are computed by the build
	// backend rather than declared statically.
	Dynamic []string
}

// Options carries the build-tool specific pass-through knobs from the
// tool table. These need no transformation, only assignment.
type Options struct {
	ZipSafe            *bool
	IncludePackageData *bool

	Packages          []string
	PyModules         []string
	Scripts           []string
	EagerResources    []string
	DependencyLinks   []string
	NamespacePackages []string

	PackageDir         map[string]string
	PackageData        map[string][]string
	ExcludePackageData map[string][]string
	DataFiles          map[string][]string

	// CmdClass maps command names to qualified class paths. Resolution
	// of the named classes is the caller's concern.
	CmdClass map[string]string
}

// Distribution is the mutable target of a translation pass. It is
// created once by the caller and returned populated; callers must
// serialize access to a given instance.
type Distribution struct {
	Metadata Metadata

	InstallRequires []string
	ExtrasRequire   map[string][]string

	// EntryPoints maps group names (console_scripts, gui_scripts, ...)
	// to "name = import.path:callable" strings.
	EntryPoints map[string][]string

	Options Options

	// CommandOptions records per-command overrides from the
	// tool.distutils table: command -> option -> value. Values are
	// recorded even when the option is unknown for the command.
	CommandOptions map[string]map[string]any

	// Attrs holds assignments to fields the model does not otherwise
	// recognize, including the fixed allow-list of patch-only
	// attributes.
	Attrs map[string]any
}

// NewDistribution returns an empty distribution ready to receive
// assignments.
func NewDistribution() *Distribution {
	return &Distribution{
		ExtrasRequire:  make(map[string][]string),
		EntryPoints:    make(map[string][]string),
		CommandOptions: make(map[string]map[string]any),
		Attrs:          make(map[string]any),
	}
}

// SpecifierSet is a parsed PEP 440 version-constraint set. The raw
// constraint string is kept so the value round-trips verbatim.
type SpecifierSet struct {
	raw  string
	spec pep440.Specifiers
	ok   bool
}

// NewSpecifierSet parses a PEP 440 constraint string such as ">=3.8".
func NewSpecifierSet(raw string) (SpecifierSet, error) {
	spec, err := pep440.NewSpecifiers(raw)
	if err != nil {
		return SpecifierSet{}, err
	}
	return SpecifierSet{raw: raw, spec: spec, ok: true}, nil
}

// String returns the original constraint string.
func (s SpecifierSet) String() string { return s.raw }

// IsZero reports whether the set was never assigned.
func (s SpecifierSet) IsZero() bool { return !s.ok }

// Contains reports whether the given version satisfies the constraint.
// Unparseable versions do not satisfy any constraint.
func (s SpecifierSet) Contains(version string) bool {
	if !s.ok {
		return false
	}
	v, err := pep440.Parse(version)
	if err != nil {
		return false
	}
	return s.spec.Check(v)
}
