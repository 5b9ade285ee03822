package sim

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

// Error kinds shared with every sub-package. Match with errors.Is.
var (
	ErrConfig      = errs.ErrConfig
	ErrMissingData = errs.ErrMissingData
)

var (
	// ErrNegativeRate is returned when r, a or b is negative or non-finite.
	ErrNegativeRate = fmt.Errorf("sim: rates must be non-negative: %w", ErrConfig)

	// ErrContactRate is returned when r is outside (0, 1].
	ErrContactRate = fmt.Errorf("sim: contact rate r must be in (0, 1]: %w", ErrConfig)

	// ErrSubcritical is returned when R0 = r/(a+b) < 1, or a+b = 0.
	ErrSubcritical = fmt.Errorf("sim: R0 below 1, no epidemic regime: %w", ErrConfig)

	// ErrNoOverlap is returned when a comparison has no aligned rows.
	ErrNoOverlap = fmt.Errorf("sim: no overlapping rows to compare: %w", ErrMissingData)
)
