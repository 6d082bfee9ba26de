// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package treeio materializes JSON and YAML documents as the untyped tree
// values (maps, slices, and scalars) consumed by the jlink evaluator.
package treeio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/tailscale/hujson"
)

// ParseJSON parses data as a JSON document and returns the resulting tree.
// The input may use the human-oriented JWCC extensions (comments and
// trailing commas); these are standardized away before decoding.
func ParseJSON(data []byte) (any, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("standardize: %w", err)
	}
	var tree any
	if err := json.Unmarshal(std, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// ParseYAML parses data as a YAML document and returns the resulting tree.
// Mappings with non-string keys are converted to string-keyed maps, since
// the evaluator resolves all map keys as strings.
func ParseYAML(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return normalize(tree), nil
}

// ParseFile reads the file at path and parses it according to its
// extension: .yaml and .yml as YAML, anything else as JSON.
func ParseFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// normalize rewrites any-keyed maps to string-keyed maps, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			t[key] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for key, val := range t {
			out[fmt.Sprint(key)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
