// SPDX-License-Identifier: MPL-2.0

package sortconfig

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/importsort/sortconfig/internal/config"
	"github.com/importsort/sortconfig/internal/discovery"
	"github.com/importsort/sortconfig/pkg/sortmod"
	"github.com/importsort/sortconfig/pkg/sortrc"
)

// DefaultTable is the built-in glob table applied beneath any
// project-local configuration: the common JavaScript and TypeScript
// extensions parse with babylon and sort with the eslint style.
var DefaultTable = sortrc.GlobTable{
	{
		Patterns: ".js, .jsx, .es6, .es, .mjs, .ts, .tsx",
		Fragment: sortrc.Fragment{
			Parser: &sortrc.Reference{Module: "babylon"},
			Style:  &sortrc.Reference{Module: "eslint"},
		},
	},
}

type (
	// ResolvedConfig is the result of a successful resolution: the
	// merged configuration fragment plus whichever plugin references
	// could be resolved to concrete modules. Parser and Style are nil
	// when the field was unset or its module could not be located;
	// either may be present without the other.
	ResolvedConfig struct {
		// Config is the merged fragment the references came from.
		Config sortrc.Fragment

		// Parser is the resolved parser plugin (optional).
		Parser *sortmod.Resolved

		// Style is the resolved style plugin (optional).
		Style *sortmod.Resolved
	}

	// ResolverOptions defines explicit construction inputs. Every field
	// is optional; zero values fall back to settings-file values and
	// then to built-in defaults.
	ResolverOptions struct {
		// Table replaces DefaultTable as the default glob table.
		Table sortrc.GlobTable

		// Match replaces the doublestar glob matcher.
		Match sortrc.MatchFunc

		// Locator replaces the node_modules-style module locator.
		Locator sortmod.Locator

		// DefaultBase replaces the default module search base.
		DefaultBase string

		// Logger replaces the stderr diagnostics logger.
		Logger *log.Logger
	}

	// Resolver resolves per-extension plugin configuration. It holds
	// only collaborators, no per-call state, so a single Resolver is
	// safe for concurrent use.
	Resolver struct {
		table    sortrc.GlobTable
		match    sortrc.MatchFunc
		projects *discovery.Discovery
		modules  *sortmod.Resolver
	}
)

// New creates a Resolver. Settings from the user configuration
// directory (see internal/config) fill any gaps in opts; a missing or
// malformed settings file falls back to built-in defaults.
func New(opts ResolverOptions) *Resolver {
	settings, err := config.NewProvider().Load(config.LoadOptions{})
	if err != nil {
		settings = config.DefaultSettings()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sortconfig"})
		if level, levelErr := log.ParseLevel(settings.LogLevel); levelErr == nil {
			logger.SetLevel(level)
		}
	}
	if err != nil {
		logger.Debug("settings unavailable, using defaults", "err", err)
	}

	table := opts.Table
	if table == nil {
		table = DefaultTable
	}
	base := opts.DefaultBase
	if base == "" {
		base = settings.DefaultBase
	}

	return &Resolver{
		table:    table,
		match:    opts.Match,
		projects: discovery.New(settings.SearchPlaces, logger),
		modules:  sortmod.NewResolver(opts.Locator, base),
	}
}

// Resolve returns the plugin configuration for extension, or nil when
// no glob group in either the default or the discovered project table
// matches. A non-empty directory contributes the project-local table
// (its fields win over the defaults) and serves as the primary module
// search base; an empty directory skips both.
func (r *Resolver) Resolve(extension, directory string) *ResolvedConfig {
	defaults := r.table.ForExtension(extension, r.match)

	var project *sortrc.Fragment
	if directory != "" {
		if table, ok := r.projects.TableForDirectory(directory); ok {
			project = table.ForExtension(extension, r.match)
		}
	}

	merged := sortrc.Merge(defaults, project)
	if merged == nil {
		return nil
	}

	resolved := &ResolvedConfig{Config: *merged}
	if merged.Parser != nil {
		resolved.Parser = r.modules.Resolve(sortmod.KindParser, *merged.Parser, directory)
	}
	if merged.Style != nil {
		resolved.Style = r.modules.Resolve(sortmod.KindStyle, *merged.Style, directory)
	}
	return resolved
}

// Resolve is the package-level convenience form of [Resolver.Resolve].
// Each call constructs a fresh Resolver, so nothing is cached between
// calls.
func Resolve(extension, directory string) *ResolvedConfig {
	return New(ResolverOptions{}).Resolve(extension, directory)
}
