// Package pyproject translates declarative pyproject.toml configuration
// into a populated package-metadata model plus auxiliary build-tool
// settings.
//
// The package reconciles three overlapping metadata sources: the
// standardized "project" table, the build-tool specific
// "tool.setuptools" table, and dynamically computed values. Field
// mapping and precedence follow the packaging metadata standard
// exactly; the declarative table is processed first and the tool table
// second, so the tool table wins.
//
// Basic usage:
//
//	doc, err := pyproject.ReadConfiguration("pyproject.toml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	dist, err := pyproject.Apply(doc, ".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(dist.Metadata.Name, dist.Metadata.Version)
//
// Schema validation is an external collaborator: inject one with
// WithValidator and it runs before translation, with failures surfaced
// verbatim. The named format predicates such validators rely on are
// available through FormatCheck.
package pyproject

import (
	"go.uber.org/zap"

	"github.com/git-pkgs/pyproject/internal/core"
	"github.com/git-pkgs/pyproject/internal/formats"
	"github.com/git-pkgs/pyproject/internal/options"
	"github.com/git-pkgs/pyproject/internal/translate"
)

// Re-export types from internal/core
type (
	// Table is an ordered string-keyed configuration mapping.
	Table = core.Table

	// Distribution is the populated translation target.
	Distribution = core.Distribution

	// Metadata is the core-metadata portion of a Distribution.
	Metadata = core.Metadata

	// SpecifierSet is a parsed PEP 440 version-constraint set.
	SpecifierSet = core.SpecifierSet

	// ConfigurationError reports schema-valid but semantically invalid
	// input discovered during translation.
	ConfigurationError = core.ConfigurationError

	// SchemaError reports a document rejected by the external schema
	// validator.
	SchemaError = core.SchemaError

	// CommandOption describes one accepted build-command option.
	CommandOption = options.Option
)

// ErrConfiguration is the sentinel all translation errors unwrap to.
var ErrConfiguration = core.ErrConfiguration

// Re-export constructors from internal/core.
var (
	NewTable        = core.NewTable
	TableFromMap    = core.TableFromMap
	NewDistribution = core.NewDistribution
)

// DefaultLicenseFiles are the glob patterns used when license-files is
// declared dynamic but not configured explicitly.
var DefaultLicenseFiles = translate.DefaultLicenseFiles

// Validator checks a decoded document against the packaging-metadata
// schema. Implementations reject malformed documents before translation
// begins, ideally with a *SchemaError carrying the offending field
// path.
type Validator interface {
	Validate(doc *Table) error
}

// DocumentCheck is a whole-document validation applied after schema
// validation succeeds and before translation begins.
type DocumentCheck = formats.DocumentCheck

// Translator runs the translation pass. The zero value works; options
// configure logging, schema validation, and command introspection.
type Translator struct {
	logger    *zap.Logger
	validator Validator
	commands  map[string][]CommandOption
	checks    []DocumentCheck
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for non-fatal warnings (unknown
// command options, failing command providers).
func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) { t.logger = logger }
}

// WithValidator sets the external schema validator to run before
// translation.
func WithValidator(v Validator) Option {
	return func(t *Translator) { t.validator = v }
}

// WithCommands supplies local command overrides for option validation,
// in addition to the globally registered commands. Overrides win over
// registered commands of the same name.
func WithCommands(commands map[string][]CommandOption) Option {
	return func(t *Translator) { t.commands = commands }
}

// WithExtraValidations appends whole-document checks to run after the
// built-in ones.
func WithExtraValidations(checks ...DocumentCheck) Option {
	return func(t *Translator) { t.checks = append(t.checks, checks...) }
}

// New creates a Translator.
func New(opts ...Option) *Translator {
	t := &Translator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	return t
}

// Apply translates doc into dist and returns dist populated. rootDir
// anchors file-relative references (readme files, license globs); the
// process working directory is never touched. No state survives the
// call: callers own both doc and the returned model.
func (t *Translator) Apply(dist *Distribution, doc *Table, rootDir string) (*Distribution, error) {
	if t.validator != nil {
		if err := t.validator.Validate(doc); err != nil {
			return nil, err
		}
	}
	for _, check := range append(formats.ExtraValidations(), t.checks...) {
		if err := check(doc); err != nil {
			return nil, err
		}
	}

	idx := options.NewIndex(t.commands, t.logger)
	if err := translate.Apply(dist, doc, rootDir, idx, t.logger); err != nil {
		return nil, err
	}
	return dist, nil
}

// Apply translates doc into a fresh Distribution using a Translator
// built from opts.
func Apply(doc *Table, rootDir string, opts ...Option) (*Distribution, error) {
	return New(opts...).Apply(NewDistribution(), doc, rootDir)
}

// RegisterCommand adds a build command and its accepted options to the
// global command registry consulted during option validation. Plugins
// typically call this from an init function.
func RegisterCommand(name string, opts []CommandOption) {
	options.Register(name, options.Static(opts))
}

// FormatCheck returns the named format predicate (e.g. "pep440",
// "pep508", "SPDX", "trove-classifier") for use by external schema
// validators.
func FormatCheck(name string) (func(string) bool, bool) {
	fn, ok := formats.Lookup(name)
	return fn, ok
}

// FormatCheckNames lists every registered format predicate, sorted.
func FormatCheckNames() []string {
	return formats.Names()
}
