// Package errs holds the error kinds shared by every sird-sim package.
// Packages declare their own sentinels wrapping one of these kinds, so callers
// can match either the precise sentinel or the broad kind with errors.Is.
package errs

import "errors"

var (
	// ErrConfig marks invalid parameters, unsupported method names and
	// inputs too short for the requested method.
	ErrConfig = errors.New("configuration error")

	// ErrMissingData marks absent table columns and estimators left with no
	// usable samples.
	ErrMissingData = errors.New("missing data")
)
