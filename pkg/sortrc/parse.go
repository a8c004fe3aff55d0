// SPDX-License-Identifier: MPL-2.0

package sortrc

import (
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// TableFromJSON parses a glob table from a JSON object. Keys are glob
// groups, values are fragments. gjson iterates members in document
// order, so the table preserves the order the author wrote.
//
// Unrecognized fragment fields and malformed references are ignored
// rather than rejected; only a document that is not a JSON object is an
// error.
func TableFromJSON(data []byte) (GlobTable, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse glob table: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("parse glob table: expected a JSON object, got %s", root.Type)
	}

	var table GlobTable
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		table = append(table, TableEntry{
			Patterns: key.String(),
			Fragment: fragmentFromJSON(value),
		})
		return true
	})
	return table, nil
}

func fragmentFromJSON(value gjson.Result) Fragment {
	var frag Fragment
	frag.Parser = referenceFromJSON(value.Get("parser"))
	frag.Style = referenceFromJSON(value.Get("style"))
	if opts := value.Get("options"); opts.IsObject() {
		m, _ := opts.Value().(map[string]any)
		frag.Options = m
	}
	return frag
}

// referenceFromJSON decodes the string-or-object reference forms. Any
// other shape (missing, number, array, object without moduleName) is
// absence.
func referenceFromJSON(value gjson.Result) *Reference {
	switch {
	case value.Type == gjson.String:
		if value.String() == "" {
			return nil
		}
		return &Reference{Module: value.String()}
	case value.IsObject():
		name := value.Get("moduleName").String()
		if name == "" {
			return nil
		}
		ref := &Reference{Module: name}
		if opts := value.Get("options"); opts.IsObject() {
			m, _ := opts.Value().(map[string]any)
			ref.Options = m
		}
		return ref
	default:
		return nil
	}
}

// TableFromYAML parses a glob table from a YAML mapping. The node API
// is used instead of plain unmarshalling because Go maps would drop the
// author's key order.
func TableFromYAML(data []byte) (GlobTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse glob table: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse glob table: expected a YAML mapping")
	}

	var table GlobTable
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		if valueNode.Kind != yaml.MappingNode {
			continue
		}
		frag, err := fragmentFromYAML(valueNode)
		if err != nil {
			return nil, err
		}
		table = append(table, TableEntry{Patterns: keyNode.Value, Fragment: frag})
	}
	return table, nil
}

func fragmentFromYAML(node *yaml.Node) (Fragment, error) {
	var frag Fragment
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		switch keyNode.Value {
		case "parser":
			ref, err := referenceFromYAML(valueNode)
			if err != nil {
				return Fragment{}, err
			}
			frag.Parser = ref
		case "style":
			ref, err := referenceFromYAML(valueNode)
			if err != nil {
				return Fragment{}, err
			}
			frag.Style = ref
		case "options":
			var opts map[string]any
			if err := valueNode.Decode(&opts); err != nil {
				return Fragment{}, fmt.Errorf("parse options: %w", err)
			}
			frag.Options = opts
		}
	}
	return frag, nil
}

func referenceFromYAML(node *yaml.Node) (*Reference, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil, nil
		}
		return &Reference{Module: node.Value}, nil
	case yaml.MappingNode:
		var inline struct {
			ModuleName string         `yaml:"moduleName"`
			Options    map[string]any `yaml:"options"`
		}
		if err := node.Decode(&inline); err != nil {
			return nil, fmt.Errorf("parse reference: %w", err)
		}
		if inline.ModuleName == "" {
			return nil, nil
		}
		return &Reference{Module: inline.ModuleName, Options: inline.Options}, nil
	default:
		return nil, nil
	}
}
