package moments

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates a coordinate slice whose length differs from
	// the value slice.
	ErrSizeMismatch = errors.New("moments: size mismatch between values and indices")

	// ErrNoDimensions indicates a sample set without coordinate slices.
	ErrNoDimensions = errors.New("moments: at least one index dimension is required")

	// ErrDimensionMismatch indicates a direction whose length differs from the
	// number of sample dimensions.
	ErrDimensionMismatch = errors.New("moments: direction length does not match dimensionality")

	// ErrNoDirections indicates an empty direction set.
	ErrNoDirections = errors.New("moments: at least one direction is required")

	// ErrNotSupported marks structurally unimplemented statistics
	// (surface area, perimeter, vector-field statistics).
	ErrNotSupported = errors.New("moments: operation not supported")
)

// Operation tags for error wrapping.
const (
	opNew            = "New"
	opMom2Along      = "Mom2Along"
	opPAxes          = "PAxes"
	opProjectedPAxes = "ProjectedPAxes"
	opSurfaceArea    = "SurfaceArea"
	opPerimeter      = "Perimeter"
	opVector         = "VectorStat"
)

// momentsErrorf wraps err with an operation tag, preserving it for errors.Is.
func momentsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
