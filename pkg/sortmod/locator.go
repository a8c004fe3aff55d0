// SPDX-License-Identifier: MPL-2.0

package sortmod

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// NodeLocator resolves module references the way Node's require does,
// minus the exotic parts: relative and absolute references resolve
// directly against the search directory, bare names walk node_modules
// directories upward from it. Package directories resolve to the entry
// file named by package.json "main", falling back to index.js.
type NodeLocator struct{}

// Locate implements Locator.
func (NodeLocator) Locate(name, fromDir string) (string, bool) {
	if name == "" || fromDir == "" {
		return "", false
	}

	fromDir, err := filepath.Abs(fromDir)
	if err != nil {
		return "", false
	}

	if filepath.IsAbs(name) {
		return resolveEntry(name)
	}
	if strings.HasPrefix(name, "./") || strings.HasPrefix(name, "../") {
		return resolveEntry(filepath.Join(fromDir, name))
	}

	for dir := fromDir; ; {
		if path, ok := resolveEntry(filepath.Join(dir, "node_modules", name)); ok {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// resolveEntry maps a candidate path to a loadable file: the path
// itself when it is a file, a file with the .js extension added, or a
// package directory's main/index.js entry.
func resolveEntry(path string) (string, bool) {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return path, true
	case err == nil:
		if entry := packageMain(path); entry != "" {
			return entry, true
		}
		index := filepath.Join(path, "index.js")
		if isFile(index) {
			return index, true
		}
		return "", false
	default:
		withExt := path + ".js"
		if isFile(withExt) {
			return withExt, true
		}
		return "", false
	}
}

// packageMain returns the entry file named by the directory's
// package.json "main" field, or "" when there is none or it does not
// point at an existing file.
func packageMain(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return ""
	}
	main := gjson.GetBytes(data, "main").String()
	if main == "" {
		return ""
	}
	entry := filepath.Join(dir, main)
	if isFile(entry) {
		return entry
	}
	// "main" may omit the extension, as require allows.
	if isFile(entry + ".js") {
		return entry + ".js"
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
