// SPDX-License-Identifier: MPL-2.0

// Package discovery finds project-local import-sort configuration.
//
// Starting from a target directory and walking toward the filesystem
// root, each level is probed for the configured search places in
// precedence order: the "importSort" field of package.json, then the
// .importsortrc variants (bare JSON, .json, .yaml, .yml). The first
// place that yields a non-empty glob table wins and the walk stops.
//
// Discovery never fails: files that are missing, unreadable, or
// malformed are logged at debug level and treated as absent, and the
// search moves on.
package discovery
