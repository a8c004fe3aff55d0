// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured error context for diagnostics.
//
// Nothing in this library surfaces errors to its callers — lookup and
// parse failures all degrade to absence — but the failures are still
// worth logging with enough context to act on. ActionableError carries
// the operation that failed and the resource involved so a debug log
// line reads "failed to parse project config: /p/.importsortrc: ...".
package issue
