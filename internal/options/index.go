package options

import (
	"strings"

	"go.uber.org/zap"

	"github.com/git-pkgs/pyproject/internal/core"
)

// GlobalOptions is the baseline accepted by every command.
var GlobalOptions = []Option{
	{Name: "verbose", Short: "v", Help: "run verbosely"},
	{Name: "quiet", Short: "q", Help: "run quietly"},
	{Name: "dry-run", Short: "n", Help: "don't actually do anything"},
	{Name: "help", Short: "h", Help: "show detailed help message"},
	{Name: "no-user-cfg", Help: "ignore pydistutils.cfg in your home directory"},
}

// Index maps a command name to the set of normalized option names it
// accepts. Built once per translation and queried, never mutated, by
// the validator.
type Index map[string]map[string]bool

// NewIndex builds the command-options index from the global baseline,
// every registered command provider, and the caller-supplied local
// overrides (which win over registered providers of the same name).
// Provider failures are logged and skipped.
func NewIndex(local map[string][]Option, logger *zap.Logger) Index {
	if logger == nil {
		logger = zap.NewNop()
	}

	idx := Index{"global": optionNameSet(GlobalOptions)}

	for name, provider := range registered() {
		opts, err := provider()
		if err != nil {
			logger.Warn("failed to load command provider",
				zap.String("command", name),
				zap.Error(err))
			continue
		}
		idx.union(name, opts)
	}
	for name, opts := range local {
		idx.union(name, opts)
	}
	return idx
}

func (ix Index) union(command string, opts []Option) {
	set, ok := ix[command]
	if !ok {
		set = make(map[string]bool, len(opts))
		ix[command] = set
	}
	for _, opt := range opts {
		set[NormalizeOptionKey(opt.Name)] = true
	}
}

// Accepts reports whether the command is known to accept the option.
// Both names are normalized before comparison.
func (ix Index) Accepts(command, option string) bool {
	return ix[core.NormalizeKey(command)][NormalizeOptionKey(option)]
}

// NormalizeOptionKey canonicalizes an option name, additionally
// stripping trailing "_"/"=" characters to tolerate both "flag" and
// "flag=value" declaration styles.
func NormalizeOptionKey(name string) string {
	return strings.Trim(core.NormalizeKey(name), "_=")
}

func optionNameSet(opts []Option) map[string]bool {
	set := make(map[string]bool, len(opts))
	for _, opt := range opts {
		set[NormalizeOptionKey(opt.Name)] = true
	}
	return set
}

// Copy records every (command, option, value) triple from the
// tool.distutils per-command overrides table into the distribution's
// command-options map. Values are recorded regardless of validity;
// options absent from the command's known-option set only produce a
// warning, since options may legitimately target commands not yet
// introspected.
func Copy(distutils *core.Table, dist *core.Distribution, idx Index, logger *zap.Logger) {
	if distutils == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, cmdKey := range distutils.Keys() {
		sub := distutils.Table(cmdKey)
		if sub == nil {
			continue
		}
		cmd := core.NormalizeKey(cmdKey)
		if dist.CommandOptions[cmd] == nil {
			dist.CommandOptions[cmd] = make(map[string]any, sub.Len())
		}
		for _, optKey := range sub.Keys() {
			value, _ := sub.Get(optKey)
			key := core.NormalizeKey(optKey)
			dist.CommandOptions[cmd][key] = value
			if !idx.Accepts(cmd, key) {
				logger.Warn("command option is not defined",
					zap.String("command", cmd),
					zap.String("option", key))
			}
		}
	}
}
