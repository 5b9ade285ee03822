package diff

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

var (
	// ErrTooFewSamples is returned when the sequence is shorter than the
	// formula needs (2 for first derivatives, 3 for second derivatives).
	ErrTooFewSamples = fmt.Errorf("diff: too few samples: %w", errs.ErrConfig)

	// ErrInvalidStep is returned when h is not a finite positive number.
	ErrInvalidStep = fmt.Errorf("diff: step must be finite and positive: %w", errs.ErrConfig)

	// ErrUnknownScheme is returned by ParseScheme for unrecognized names.
	ErrUnknownScheme = fmt.Errorf("diff: unknown scheme: %w", errs.ErrConfig)
)
