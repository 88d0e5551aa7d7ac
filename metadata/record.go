// SPDX-License-Identifier: MIT

package metadata

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ppvstat/units"
)

// Record maps metadata keys to tagged values. Keys the schema does not
// declare are carried along untouched.
type Record map[string]units.Quantity

// Clone returns a shallow copy; Quantity values are immutable.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Decode parses a YAML or JSON mapping into a Record.
// Keys are processed in sorted order so the first bad entry is deterministic.
func Decode(data []byte) (Record, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, metadataErrorf(opDecode, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rec := make(Record, len(raw))
	for _, k := range keys {
		node := raw[k]
		q, err := decodeValue(&node)
		if err != nil {
			return nil, metadataErrorf(opDecode, fmt.Errorf("%q: %w", k, err))
		}
		rec[k] = q
	}

	return rec, nil
}

// Load reads and decodes the metadata file at path.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, metadataErrorf(opLoad, err)
	}
	rec, err := Decode(data)
	if err != nil {
		return nil, metadataErrorf(opLoad, fmt.Errorf("%s: %w", path, err))
	}

	return rec, nil
}

// taggedValue is the explicit {value, unit} mapping form.
type taggedValue struct {
	Value *float64 `yaml:"value"`
	Unit  string   `yaml:"unit"`
}

func decodeValue(node *yaml.Node) (units.Quantity, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return units.Quantity{}, fmt.Errorf("%w: empty value", ErrBadValue)
		}
		var f float64
		if err := node.Decode(&f); err == nil {
			return units.Bare(f), nil
		}
		if node.ShortTag() != "!!str" {
			return units.Quantity{}, fmt.Errorf("%w: %q", ErrBadValue, node.Value)
		}
		q, err := units.ParseQuantity(node.Value)
		if err != nil {
			return units.Quantity{}, fmt.Errorf("%w: %w", ErrBadValue, err)
		}

		return q, nil
	case yaml.MappingNode:
		var tv taggedValue
		if err := node.Decode(&tv); err != nil {
			return units.Quantity{}, fmt.Errorf("%w: %w", ErrBadValue, err)
		}
		if tv.Value == nil {
			return units.Quantity{}, fmt.Errorf("%w: mapping without value", ErrBadValue)
		}
		u, err := units.Parse(tv.Unit)
		if err != nil {
			return units.Quantity{}, fmt.Errorf("%w: %w", ErrBadValue, err)
		}

		return units.New(*tv.Value, u), nil
	default:
		return units.Quantity{}, fmt.Errorf("%w: unsupported YAML node", ErrBadValue)
	}
}
