// SPDX-License-Identifier: MPL-2.0

// Package sortmod resolves import-sort plugin references to loadable
// module locations.
//
// A plugin is referenced by a short-name ("babylon", "eslint") that
// expands through a per-kind prefix to a conventional package name
// (import-sort-parser-babylon, import-sort-style-eslint). Resolution
// tries the prefixed name before the bare name, and a caller-supplied
// base directory before the resolver's default search base, returning
// the first location that exists:
//
//  1. prefixed name, base directory
//  2. prefixed name, default search base
//  3. bare name, base directory
//  4. bare name, default search base
//
// Key functionality:
//   - [Resolver.Resolve]: the ordered candidate chain above
//   - [Locator]: pluggable module-existence probing
//   - [NodeLocator]: node_modules-style upward search with
//     package.json "main" / index.js entry selection
//
// Failure to locate a module is not an error; Resolve returns nil and
// the caller omits the plugin.
package sortmod
