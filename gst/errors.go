package gst

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the public API. Wrap with fmt.Errorf("%w: ...")
// at the call site to attach the offending value.
var (
	// ErrOrdering is returned by Insert when the supplied id is smaller than
	// the last id seen by the tree.
	ErrOrdering = errors.New("gst: document ids must be non-decreasing")

	// ErrNotAggregated is returned by Search and Similar when Aggregate has
	// not been called since the last Insert.
	ErrNotAggregated = errors.New("gst: tree has not been aggregated")

	// ErrInvalidRatio is returned by Similar when ratio is outside (0, 1).
	ErrInvalidRatio = errors.New("gst: ratio must be in (0, 1)")
)

func orderingError(id, last int) error {
	return fmt.Errorf("%w: got %d, last was %d", ErrOrdering, id, last)
}

func invalidRatioError(ratio float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
}
