// SPDX-License-Identifier: MPL-2.0

package sortmod

import (
	"reflect"
	"testing"

	"github.com/importsort/sortconfig/pkg/sortrc"
)

// fakeLocator resolves only the (name, base) pairs it was seeded with
// and records every attempt in order.
type fakeLocator struct {
	known    map[string]string // "name|base" -> path
	attempts []string
}

func (f *fakeLocator) Locate(name, fromDir string) (string, bool) {
	key := name + "|" + fromDir
	f.attempts = append(f.attempts, key)
	path, ok := f.known[key]
	return path, ok
}

func TestKindPrefix(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		prefix   string
		asString string
	}{
		{name: "parser", kind: KindParser, prefix: "import-sort-parser-", asString: "parser"},
		{name: "style", kind: KindStyle, prefix: "import-sort-style-", asString: "style"},
		{name: "unknown", kind: Kind(99), prefix: "", asString: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Prefix(); got != tt.prefix {
				t.Errorf("Prefix() = %q, want %q", got, tt.prefix)
			}
			if got := tt.kind.String(); got != tt.asString {
				t.Errorf("String() = %q, want %q", got, tt.asString)
			}
		})
	}
}

func TestResolvePrefersPrefixedName(t *testing.T) {
	locator := &fakeLocator{known: map[string]string{
		"import-sort-style-eslint|/base": "/base/node_modules/import-sort-style-eslint/index.js",
		"eslint|/base":                   "/base/node_modules/eslint/index.js",
	}}
	r := NewResolver(locator, "/default")

	got := r.Resolve(KindStyle, sortrc.Reference{Module: "eslint"}, "/base")
	if got == nil {
		t.Fatal("Resolve() = nil, want resolved")
	}
	if want := "/base/node_modules/import-sort-style-eslint/index.js"; got.Module != want {
		t.Errorf("Resolve().Module = %q, want %q", got.Module, want)
	}
}

func TestResolvePrefersBaseDirOverDefaultBase(t *testing.T) {
	locator := &fakeLocator{known: map[string]string{
		"import-sort-parser-babylon|/base":    "/base/hit",
		"import-sort-parser-babylon|/default": "/default/hit",
	}}
	r := NewResolver(locator, "/default")

	got := r.Resolve(KindParser, sortrc.Reference{Module: "babylon"}, "/base")
	if got == nil || got.Module != "/base/hit" {
		t.Fatalf("Resolve() = %+v, want module %q", got, "/base/hit")
	}
}

func TestResolveAttemptOrder(t *testing.T) {
	// Nothing resolves, so every attempt is made, in the documented order.
	locator := &fakeLocator{}
	r := NewResolver(locator, "/default")

	if got := r.Resolve(KindParser, sortrc.Reference{Module: "babylon"}, "/base"); got != nil {
		t.Fatalf("Resolve() = %+v, want nil", got)
	}

	want := []string{
		"import-sort-parser-babylon|/base",
		"import-sort-parser-babylon|/default",
		"babylon|/base",
		"babylon|/default",
	}
	if !reflect.DeepEqual(locator.attempts, want) {
		t.Errorf("attempts = %v, want %v", locator.attempts, want)
	}
}

func TestResolveShortCircuitsOnFirstHit(t *testing.T) {
	locator := &fakeLocator{known: map[string]string{
		"import-sort-parser-babylon|/default": "/default/hit",
	}}
	r := NewResolver(locator, "/default")

	if got := r.Resolve(KindParser, sortrc.Reference{Module: "babylon"}, "/base"); got == nil {
		t.Fatal("Resolve() = nil, want resolved")
	}

	want := []string{
		"import-sort-parser-babylon|/base",
		"import-sort-parser-babylon|/default",
	}
	if !reflect.DeepEqual(locator.attempts, want) {
		t.Errorf("attempts = %v, want %v", locator.attempts, want)
	}
}

func TestResolveFallsBackToBareName(t *testing.T) {
	locator := &fakeLocator{known: map[string]string{
		"typescript|/default": "/default/node_modules/typescript/index.js",
	}}
	r := NewResolver(locator, "/default")

	got := r.Resolve(KindParser, sortrc.Reference{Module: "typescript"}, "/base")
	if got == nil || got.Module != "/default/node_modules/typescript/index.js" {
		t.Fatalf("Resolve() = %+v, want bare-name fallback", got)
	}
}

func TestResolveWithoutBaseDir(t *testing.T) {
	locator := &fakeLocator{}
	r := NewResolver(locator, "/default")

	r.Resolve(KindStyle, sortrc.Reference{Module: "eslint"}, "")

	want := []string{
		"import-sort-style-eslint|/default",
		"eslint|/default",
	}
	if !reflect.DeepEqual(locator.attempts, want) {
		t.Errorf("attempts = %v, want %v", locator.attempts, want)
	}
}

func TestResolveOptions(t *testing.T) {
	locator := &fakeLocator{known: map[string]string{
		"import-sort-style-eslint|/base": "/hit",
	}}
	r := NewResolver(locator, "/default")

	tests := []struct {
		name     string
		ref      sortrc.Reference
		expected map[string]any
	}{
		{
			name:     "bare reference gets empty options",
			ref:      sortrc.Reference{Module: "eslint"},
			expected: map[string]any{},
		},
		{
			name:     "inline options pass through",
			ref:      sortrc.Reference{Module: "eslint", Options: map[string]any{"maxLineLength": 80}},
			expected: map[string]any{"maxLineLength": 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(KindStyle, tt.ref, "/base")
			if got == nil {
				t.Fatal("Resolve() = nil, want resolved")
			}
			if !reflect.DeepEqual(got.Options, tt.expected) {
				t.Errorf("Resolve().Options = %+v, want %+v", got.Options, tt.expected)
			}
		})
	}
}

func TestResolveEmptyModuleName(t *testing.T) {
	locator := &fakeLocator{}
	r := NewResolver(locator, "/default")

	if got := r.Resolve(KindParser, sortrc.Reference{Module: "  "}, "/base"); got != nil {
		t.Errorf("Resolve() = %+v, want nil", got)
	}
	if len(locator.attempts) != 0 {
		t.Errorf("attempts = %v, want none", locator.attempts)
	}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(nil, "")

	if r.locator == nil {
		t.Error("NewResolver(nil, ...) left locator nil")
	}
	if _, ok := r.locator.(NodeLocator); !ok {
		t.Errorf("default locator = %T, want NodeLocator", r.locator)
	}
	if r.defaultBase == "" {
		t.Error("NewResolver(..., \"\") left defaultBase empty")
	}
}
