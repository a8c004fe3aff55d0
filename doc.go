// SPDX-License-Identifier: MPL-2.0

// Package sortconfig resolves which parser and style plugins import-sort
// should load for a file extension, and with what options.
//
// Resolution layers two glob-keyed configuration sources: a built-in
// default table ([DefaultTable]) and an optional project-local table
// discovered from a directory (.importsortrc files or the "importSort"
// field of package.json). Matching fragments merge field-by-field with
// the project side winning, and the merged fragment's parser/style
// references are then resolved to concrete module locations.
//
// Basic usage:
//
//	resolved := sortconfig.Resolve(".ts", "/path/to/project")
//	if resolved == nil {
//	    // no configuration matches the extension
//	}
//	if resolved.Parser != nil {
//	    load(resolved.Parser.Module, resolved.Parser.Options)
//	}
//
// Every failure mode short of programmer error degrades to absence: an
// unmatched extension, a missing or malformed project config, and an
// unlocatable plugin all just leave the corresponding value unset.
package sortconfig
