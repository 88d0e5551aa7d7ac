// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned by Parse/ParseQuantity for malformed input.
	ErrSyntax = errors.New("units: syntax error")

	// ErrIncompatible signals a conversion between units whose base
	// dimensions differ (e.g. deg → km).
	ErrIncompatible = errors.New("units: incompatible units")
)

// unitsErrorf wraps err with an operation tag, preserving it for errors.Is.
func unitsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
