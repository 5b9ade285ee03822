package interp

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

var (
	// ErrTooFewPoints is returned when fewer than 2 points are supplied.
	ErrTooFewPoints = fmt.Errorf("interp: at least 2 points are required: %w", errs.ErrConfig)

	// ErrLengthMismatch is returned when xs and ys differ in length.
	ErrLengthMismatch = fmt.Errorf("interp: xs and ys lengths differ: %w", errs.ErrConfig)

	// ErrDuplicateAbscissa is returned when two samples share an x value.
	ErrDuplicateAbscissa = fmt.Errorf("interp: abscissas must be distinct: %w", errs.ErrConfig)

	// ErrNonFinite is returned when a sample is NaN or Inf.
	ErrNonFinite = fmt.Errorf("interp: samples must be finite: %w", errs.ErrConfig)

	// ErrDegree is returned when a PolyFit degree is negative or not below
	// the number of points.
	ErrDegree = fmt.Errorf("interp: invalid polynomial degree: %w", errs.ErrConfig)

	// ErrNoEvalPoint is returned by FitEval when no evaluation point is given.
	ErrNoEvalPoint = fmt.Errorf("interp: an evaluation point is required: %w", errs.ErrConfig)

	// ErrUnknownKind is returned by ParseKind and New for unrecognized kinds.
	ErrUnknownKind = fmt.Errorf("interp: unknown interpolation kind: %w", errs.ErrConfig)
)
