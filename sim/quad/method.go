package quad

import "fmt"

// Method names a quadrature rule.
type Method string

const (
	MethodTrapezoid Method = "trapezoid"
	MethodSimpson   Method = "simpson"
	MethodLeft      Method = "left"
	MethodRight     Method = "right"
)

var validMethods = map[Method]bool{
	MethodTrapezoid: true,
	MethodSimpson:   true,
	MethodLeft:      true,
	MethodRight:     true,
}

// ParseMethod maps a user-supplied name to a Method. Empty selects Simpson.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return MethodSimpson, nil
	}
	m := Method(name)
	if !validMethods[m] {
		return "", fmt.Errorf("%w %q; valid: trapezoid, simpson, left, right", ErrUnknownMethod, name)
	}
	return m, nil
}

// Integrate dispatches to the rule named by m.
func Integrate(m Method, y []float64, h float64) (float64, error) {
	switch m {
	case MethodTrapezoid:
		return Trapezoid(y, h)
	case MethodSimpson:
		return Simpson(y, h)
	case MethodLeft:
		return LeftRectangle(y, h)
	case MethodRight:
		return RightRectangle(y, h)
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMethod, string(m))
	}
}
