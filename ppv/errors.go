// SPDX-License-Identifier: MIT

package ppv

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPPV is returned when an axis-based quantity is requested from a
	// statistic that is not three-dimensional.
	ErrNotPPV = errors.New("ppv: statistic is not 3-D")

	// ErrBadVAxis is returned when vaxis is not a bare integer in [0, 2].
	ErrBadVAxis = errors.New("ppv: vaxis must be a bare integer in [0, 2]")

	// ErrUnknownField is returned for a quantity name absent from the registry.
	ErrUnknownField = errors.New("ppv: unknown field")
)

// ppvErrorf wraps err with the quantity name, preserving it for errors.Is.
func ppvErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
