// SPDX-License-Identifier: MPL-2.0

// Package sortrc defines the glob-keyed configuration model used by
// import-sort and implements selection and merging over it.
//
// A configuration source (an .importsortrc file or the "importSort"
// field of a package.json) maps groups of comma-separated glob patterns
// to partial configurations:
//
//	{
//	  ".js, .jsx": {"parser": "babylon", "style": "eslint"},
//	  ".ts, .tsx": {"parser": {"moduleName": "typescript", "options": {"strict": true}}}
//	}
//
// Key functionality:
//   - [GlobTable]: an ordered list of pattern-group entries
//   - [GlobTable.ForExtension]: select and merge all entries matching an extension
//   - [Merge]: shallow, later-wins combination of partial configurations
//   - [TableFromJSON], [TableFromYAML]: order-preserving parsers
//
// Selection and merge never fail: anything that does not match, does not
// parse as a reference, or carries no fields simply contributes nothing.
package sortrc
