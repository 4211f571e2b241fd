// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package locationdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Autochez/fork-you/lib/location"
)

// Definition is the content of one definition file.
type Definition struct {
	// Locations in authored order.
	Locations []location.Location `json:"locations" yaml:"locations"`
}

// Identifiers returns the rendered identifier of every location, in order.
func (d *Definition) Identifiers() []string {
	identifiers := make([]string, len(d.Locations))
	for i, loc := range d.Locations {
		identifiers[i] = loc.String()
	}
	return identifiers
}

// Parse strips JSONC comments and trailing commas from data, then
// decodes and validates the definition.
func Parse(data []byte) (*Definition, error) {
	stripped := jsonc.ToJSON(data)

	var definition Definition
	if err := json.Unmarshal(stripped, &definition); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	return &definition, nil
}

// rawYAMLDefinition holds raw entries so null entries can be reported.
// yaml.v3 does not call UnmarshalYAML for a null node, which would
// otherwise drop the entry and shift every later index.
type rawYAMLDefinition struct {
	Locations []yaml.Node `yaml:"locations"`
}

// ParseYAML decodes and validates a YAML definition. A null entry is
// an error naming its index, as it is in JSONC.
func ParseYAML(data []byte) (*Definition, error) {
	var raw rawYAMLDefinition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}

	definition := Definition{Locations: make([]location.Location, len(raw.Locations))}
	for i := range raw.Locations {
		node := &raw.Locations[i]
		if isNullNode(node) {
			return nil, fmt.Errorf("parsing definition: locations[%d]: school is required", i)
		}
		if err := node.Decode(&definition.Locations[i]); err != nil {
			return nil, fmt.Errorf("parsing definition: locations[%d]: %w", i, err)
		}
	}
	if len(raw.Locations) == 0 {
		definition.Locations = nil
	}
	return &definition, nil
}

func isNullNode(node *yaml.Node) bool {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

// ReadFile reads a definition file from disk. Files ending in .yaml or
// .yml are YAML; everything else is JSONC. A trailing .zst or .lz4
// marks a compressed file, decompressed before parsing
// ("rooms.yaml.zst" is zstd-compressed YAML). Errors are prefixed
// with the path.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	inner, compression := stripCompression(path)
	data, err = decompress(data, compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var definition *Definition
	switch strings.ToLower(filepath.Ext(inner)) {
	case ".yaml", ".yml":
		definition, err = ParseYAML(data)
	default:
		definition, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return definition, nil
}

// NameFromPath extracts a definition name from a file path by
// stripping the directory, any compression suffix, and the extension:
// "rooms/highfield.jsonc" and "highfield.jsonc.zst" both return
// "highfield".
func NameFromPath(path string) string {
	base, _ := stripCompression(filepath.Base(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
