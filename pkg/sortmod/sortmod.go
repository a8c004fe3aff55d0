// SPDX-License-Identifier: MPL-2.0

package sortmod

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/importsort/sortconfig/pkg/sortrc"
)

// Kind distinguishes the two plugin components import-sort loads.
type Kind int

const (
	// KindParser selects parser plugins (import-sort-parser-*).
	KindParser Kind = iota
	// KindStyle selects style plugins (import-sort-style-*).
	KindStyle
)

// Prefix returns the conventional package-name prefix for the kind.
func (k Kind) Prefix() string {
	switch k {
	case KindParser:
		return "import-sort-parser-"
	case KindStyle:
		return "import-sort-style-"
	default:
		return ""
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindParser:
		return "parser"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

type (
	// Locator probes whether a module reference resolves to a concrete
	// location when searched from a directory. Implementations must
	// report absence instead of failing; any internal error counts as
	// "not found".
	Locator interface {
		// Locate resolves name relative to fromDir, returning the
		// absolute path of the module entry and whether it was found.
		Locate(name, fromDir string) (string, bool)
	}

	// Resolved is a successfully resolved plugin reference: a concrete
	// module location plus the effective options to load it with.
	Resolved struct {
		// Module is the located module path.
		Module string

		// Options are the effective plugin options, never nil.
		Options map[string]any
	}

	// Resolver turns plugin references into Resolved values. The zero
	// value is not usable; construct with NewResolver.
	Resolver struct {
		// locator probes candidate locations.
		locator Locator

		// defaultBase is the fallback search base used when a candidate
		// does not resolve from the caller's base directory.
		defaultBase string
	}

	// candidate is one (name, base) attempt in the resolution chain.
	candidate struct {
		name string
		base string
	}
)

// NewResolver creates a Resolver. A nil locator falls back to
// NodeLocator; an empty defaultBase falls back to the directory of the
// running executable, the closest equivalent of the tool's own
// installation location.
func NewResolver(locator Locator, defaultBase string) *Resolver {
	if locator == nil {
		locator = NodeLocator{}
	}
	if defaultBase == "" {
		defaultBase = installBase()
	}
	return &Resolver{locator: locator, defaultBase: defaultBase}
}

// Resolve locates the module behind ref for the given kind. The
// candidate chain tries the prefixed short-name before the bare name,
// and baseDir (when non-empty) before the default search base,
// returning on the first hit. Resolve returns nil when every attempt
// misses or the reference has no module name.
func (r *Resolver) Resolve(kind Kind, ref sortrc.Reference, baseDir string) *Resolved {
	name := strings.TrimSpace(ref.Module)
	if name == "" {
		return nil
	}

	for _, c := range r.candidates(kind, name, baseDir) {
		if path, ok := r.locator.Locate(c.name, c.base); ok {
			opts := ref.Options
			if opts == nil {
				opts = map[string]any{}
			}
			return &Resolved{Module: path, Options: opts}
		}
	}
	return nil
}

// candidates builds the ordered attempt list so the two-level
// name/base preference lives in one place.
func (r *Resolver) candidates(kind Kind, name, baseDir string) []candidate {
	out := make([]candidate, 0, 4)
	for _, n := range []string{kind.Prefix() + name, name} {
		if baseDir != "" {
			out = append(out, candidate{name: n, base: baseDir})
		}
		if r.defaultBase != "" {
			out = append(out, candidate{name: n, base: r.defaultBase})
		}
	}
	return out
}

// installBase approximates the installation directory of the host
// tool. When the executable path is unavailable the working directory
// is used so resolution still has a base to search from.
func installBase() string {
	exe, err := os.Executable()
	if err != nil {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return ""
		}
		return wd
	}
	return filepath.Dir(exe)
}
