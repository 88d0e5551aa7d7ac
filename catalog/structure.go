// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Struct is a plain Structure, as read from a structure file.
type Struct struct {
	ID   string      `yaml:"id" json:"id"`
	Vals []float64   `yaml:"values" json:"values"`
	Idx  [][]float64 `yaml:"indices" json:"indices"`
}

// Values returns the sample values.
func (s Struct) Values() []float64 { return s.Vals }

// Indices returns the per-axis coordinates.
func (s Struct) Indices() [][]float64 { return s.Idx }

// AsStructures adapts a Struct slice for Build.
func AsStructures(ss []Struct) []Structure {
	out := make([]Structure, len(ss))
	for i := range ss {
		out[i] = ss[i]
	}

	return out
}

// DecodeStructures parses a YAML or JSON list of {id, values, indices}.
// YAML .nan marks a masked sample. Entries without an id are numbered
// by position.
func DecodeStructures(data []byte) ([]Struct, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ss []Struct
	if err := dec.Decode(&ss); err != nil && !errors.Is(err, io.EOF) {
		return nil, catalogErrorf(opDecodeStruct, err)
	}
	for i := range ss {
		if len(ss[i].Idx) == 0 {
			return nil, catalogErrorf(opDecodeStruct, fmt.Errorf("entry %d: no indices: %w", i, ErrBadStructure))
		}
		if ss[i].ID == "" {
			ss[i].ID = strconv.Itoa(i)
		}
	}

	return ss, nil
}

// LoadStructures reads and decodes the structure file at path.
func LoadStructures(path string) ([]Struct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, catalogErrorf(opLoadStructures, err)
	}
	ss, err := DecodeStructures(data)
	if err != nil {
		return nil, catalogErrorf(opLoadStructures, fmt.Errorf("%s: %w", path, err))
	}

	return ss, nil
}
