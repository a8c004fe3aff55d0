// SPDX-License-Identifier: MPL-2.0

package sortrc

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type (
	// Reference names a parser or style plugin before resolution.
	//
	// In configuration sources a reference is either a bare short-name
	// string ("eslint") or an inline object with explicit options
	// ({"moduleName": "eslint", "options": {...}}). Both forms collapse
	// to this struct; a bare short-name has nil Options.
	Reference struct {
		// Module is the plugin short-name or a literal module reference.
		Module string

		// Options are the plugin options from the inline form (optional).
		Options map[string]any
	}

	// Fragment is a partial configuration attached to one glob group.
	// All fields are optional; a Fragment with no fields set is treated
	// as absent everywhere.
	Fragment struct {
		// Parser references the parser plugin (optional).
		Parser *Reference

		// Style references the style plugin (optional).
		Style *Reference

		// Options is an opaque option mapping (optional). It is carried
		// as a whole and never merged field-by-field.
		Options map[string]any
	}

	// TableEntry pairs a comma-separated group of glob patterns with the
	// Fragment it selects.
	TableEntry struct {
		// Patterns is the raw glob group, e.g. ".js, .jsx" or "*.ts, *.tsx".
		Patterns string

		// Fragment is the configuration selected by the group.
		Fragment Fragment
	}

	// GlobTable is an ordered sequence of glob-group entries. A slice is
	// used instead of a map so that source order survives into the
	// later-wins merge performed by ForExtension.
	GlobTable []TableEntry

	// MatchFunc reports whether name matches the glob pattern.
	// Implementations must treat a malformed pattern as a non-match.
	MatchFunc func(pattern, name string) bool
)

// DefaultMatch matches name against a doublestar-compatible glob
// pattern. A malformed pattern never matches.
func DefaultMatch(pattern, name string) bool {
	matched, err := doublestar.Match(pattern, name)
	return err == nil && matched
}

// IsZero reports whether no field of the fragment is set. Zero
// fragments are equivalent to absence and are filtered before merging.
func (f Fragment) IsZero() bool {
	return f.Parser == nil && f.Style == nil && f.Options == nil
}

// Merge folds the given fragments left to right into a single fragment.
// Nil and zero fragments contribute nothing. For each field
// independently, the last fragment that sets it wins; fields a fragment
// does not set leave the accumulated value untouched. The merge is
// shallow: Options replaces wholesale, never key-by-key.
//
// Merge returns nil when every input is nil or zero.
func Merge(fragments ...*Fragment) *Fragment {
	var merged *Fragment
	for _, f := range fragments {
		if f == nil || f.IsZero() {
			continue
		}
		if merged == nil {
			c := *f
			merged = &c
			continue
		}
		if f.Parser != nil {
			merged.Parser = f.Parser
		}
		if f.Style != nil {
			merged.Style = f.Style
		}
		if f.Options != nil {
			merged.Options = f.Options
		}
	}
	return merged
}

// ForExtension selects every entry whose glob group matches ext and
// merges their fragments in table order, later entries winning on
// conflicting fields. Patterns within one group are OR-ed: the entry
// matches if any comma-separated pattern matches. A nil match function
// falls back to DefaultMatch.
//
// ForExtension returns nil when no entry matches.
func (t GlobTable) ForExtension(ext string, match MatchFunc) *Fragment {
	if match == nil {
		match = DefaultMatch
	}

	var selected []*Fragment
	for i := range t {
		for _, pattern := range strings.Split(t[i].Patterns, ",") {
			pattern = strings.TrimSpace(pattern)
			if pattern == "" {
				continue
			}
			if match(pattern, ext) {
				selected = append(selected, &t[i].Fragment)
				break
			}
		}
	}

	return Merge(selected...)
}
