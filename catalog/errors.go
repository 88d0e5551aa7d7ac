// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

// ErrBadStructure is returned when a structure file entry cannot be used.
var ErrBadStructure = errors.New("catalog: bad structure")

// Operation tags for error wrapping.
const (
	opBuild          = "Build"
	opDecodeStruct   = "DecodeStructures"
	opLoadStructures = "LoadStructures"
)

// catalogErrorf wraps err with an operation tag, preserving it for errors.Is.
func catalogErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
