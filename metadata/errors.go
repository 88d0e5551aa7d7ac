// SPDX-License-Identifier: MIT

package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequired is returned when a strict field is absent from a record.
	ErrMissingRequired = errors.New("metadata: missing required metadata")

	// ErrUnknownField is returned for a key the schema does not declare.
	ErrUnknownField = errors.New("metadata: unknown field")

	// ErrBadValue is returned when a decoded value is neither a number,
	// a quantity string nor a {value, unit} mapping.
	ErrBadValue = errors.New("metadata: bad value")
)

// Operation tags for error wrapping.
const (
	opGet      = "Get"
	opRequire  = "Require"
	opValidate = "Validate"
	opDecode   = "Decode"
	opLoad     = "Load"
)

// metadataErrorf wraps err with an operation tag, preserving it for errors.Is.
func metadataErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
