// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	"github.com/importsort/sortconfig/internal/issue"
	"github.com/importsort/sortconfig/pkg/sortrc"
)

// PackageJSONKey is the package.json field holding the glob table.
const PackageJSONKey = "importSort"

// DefaultSearchPlaces are the file names probed per directory, in
// precedence order.
var DefaultSearchPlaces = []string{
	"package.json",
	".importsortrc",
	".importsortrc.json",
	".importsortrc.yaml",
	".importsortrc.yml",
}

// Discovery finds project-local glob tables.
type Discovery struct {
	searchPlaces []string
	logger       *log.Logger
}

// New creates a Discovery. Nil or empty searchPlaces fall back to
// DefaultSearchPlaces; a nil logger discards diagnostics.
func New(searchPlaces []string, logger *log.Logger) *Discovery {
	if len(searchPlaces) == 0 {
		searchPlaces = DefaultSearchPlaces
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Discovery{searchPlaces: searchPlaces, logger: logger}
}

// TableForDirectory searches for a glob table governing dir, walking
// from dir up to the filesystem root. It returns the first non-empty
// table found and whether one was found at all. Lookup and parse
// failures along the way count as absence, never as errors.
func (d *Discovery) TableForDirectory(dir string) (sortrc.GlobTable, bool) {
	if dir == "" {
		return nil, false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		d.logger.Debug("project config search skipped",
			"err", issue.WrapWithContext(err, "resolve directory", dir))
		return nil, false
	}

	for level := abs; ; {
		for _, place := range d.searchPlaces {
			if table, ok := d.loadPlace(filepath.Join(level, place), place); ok {
				d.logger.Debug("project config found", "path", filepath.Join(level, place))
				return table, true
			}
		}
		parent := filepath.Dir(level)
		if parent == level {
			return nil, false
		}
		level = parent
	}
}

// loadPlace reads and parses a single candidate file. ok is true only
// for a readable file that parses to a non-empty table.
func (d *Discovery) loadPlace(path, place string) (sortrc.GlobTable, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			d.logger.Debug("project config unreadable",
				"err", issue.WrapWithContext(err, "read project config", path))
		}
		return nil, false
	}

	var table sortrc.GlobTable
	switch {
	case place == "package.json":
		field := gjson.GetBytes(data, PackageJSONKey)
		if !field.Exists() {
			return nil, false
		}
		table, err = sortrc.TableFromJSON([]byte(field.Raw))
	case strings.HasSuffix(place, ".yaml") || strings.HasSuffix(place, ".yml"):
		table, err = sortrc.TableFromYAML(data)
	default:
		// .importsortrc and .importsortrc.json are both JSON.
		table, err = sortrc.TableFromJSON(data)
	}
	if err != nil {
		d.logger.Debug("project config malformed",
			"err", issue.WrapWithContext(err, "parse project config", path))
		return nil, false
	}
	if len(table) == 0 {
		return nil, false
	}
	return table, true
}
