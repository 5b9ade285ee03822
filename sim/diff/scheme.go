package diff

import "fmt"

// Scheme selects the first-derivative estimator used by callers that let
// the user choose.
type Scheme string

const (
	// FivePoint is FirstDerivative.
	FivePoint Scheme = "five-point"
	// Central is Gradient.
	Central Scheme = "central"
)

var validSchemes = map[Scheme]bool{
	FivePoint: true,
	Central:   true,
}

// ParseScheme maps a user-supplied name to a Scheme. Empty selects FivePoint.
func ParseScheme(name string) (Scheme, error) {
	if name == "" {
		return FivePoint, nil
	}
	s := Scheme(name)
	if !validSchemes[s] {
		return "", fmt.Errorf("%w %q; valid: five-point, central", ErrUnknownScheme, name)
	}
	return s, nil
}

// First applies the scheme to y with step h.
func (s Scheme) First(y []float64, h float64) ([]float64, error) {
	switch s {
	case FivePoint:
		return FirstDerivative(y, h)
	case Central:
		return Gradient(y, h)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownScheme, string(s))
	}
}
