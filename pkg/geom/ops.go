package geom

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vector) (float64, error) {
	if err := sameDim("distance", a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a.Coords(), b.Coords(), 2), nil
}

// Add returns a+b as the same variant as a.
func Add[P Kind[P]](a P, b Vector) (P, error) {
	if err := sameDim("addition", a, b); err != nil {
		var zero P
		return zero, err
	}
	c := a.Coords()
	floats.Add(c, b.Coords())
	return a.WithCoords(c)
}

// Sub returns a-b as the same variant as a.
func Sub[P Kind[P]](a P, b Vector) (P, error) {
	if err := sameDim("subtraction", a, b); err != nil {
		var zero P
		return zero, err
	}
	c := a.Coords()
	floats.Sub(c, b.Coords())
	return a.WithCoords(c)
}

// Neg returns -a as the same variant as a.
func Neg[P Kind[P]](a P) (P, error) {
	c := a.Coords()
	floats.Scale(-1, c)
	return a.WithCoords(c)
}

// Mul multiplies a by the scalar k, which may be any Go integer or
// floating point value. Multiplying two points together is not defined
// and returns ErrUnsupportedOperation.
func Mul[P Kind[P]](a P, k any) (P, error) {
	s, err := scalar("multiplication", k)
	if err != nil {
		var zero P
		return zero, err
	}
	c := a.Coords()
	floats.Scale(s, c)
	return a.WithCoords(c)
}

// MulLeft is Mul with the scalar written first. Scalar multiplication
// commutes, so the result is identical.
func MulLeft[P Kind[P]](k any, a P) (P, error) {
	return Mul(a, k)
}

// Div divides a by the scalar k. Division by zero is not guarded and
// produces IEEE infinities or NaN.
func Div[P Kind[P]](a P, k any) (P, error) {
	s, err := scalar("division", k)
	if err != nil {
		var zero P
		return zero, err
	}
	c := a.Coords()
	floats.Scale(1/s, c)
	return a.WithCoords(c)
}

// Pow always fails: points have no exponentiation.
func Pow(a Vector, k any) error {
	return errors.Wrapf(ErrUnsupportedOperation, "exponentiation %s**%v", describe(a), k)
}

// SubFrom always fails: only point minus point is defined, so a point
// cannot be subtracted from a scalar or other non-point value.
func SubFrom(k any, a Vector) error {
	return errors.Wrapf(ErrUnsupportedOperation, "subtraction %v - %s", k, describe(a))
}

// DivFrom always fails: dividing a scalar by a point is ambiguous.
func DivFrom(k any, a Vector) error {
	return errors.Wrapf(ErrUnsupportedOperation, "division %v / %s", k, describe(a))
}

func sameDim(op string, a, b Vector) error {
	if IsNil(a) || IsNil(b) {
		return errors.Wrapf(ErrInvalidArgument, "%s with a nil point", op)
	}
	if a.Dim() != b.Dim() {
		return errors.Wrapf(ErrDimensionMismatch, "%s between %s and %s", op, describe(a), describe(b))
	}
	return nil
}

func scalar(op string, k any) (float64, error) {
	switch v := k.(type) {
	case Vector:
		return 0, errors.Wrapf(ErrUnsupportedOperation, "%s between two points (%s); use a scalar", op, describe(v))
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, errors.Wrapf(ErrInvalidArgument, "%s by non-numeric %T", op, k)
	}
}

func describe(v Vector) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return format("Vector", v)
}

// IsNil reports whether v is nil, either as an interface or as a nil
// pointer to one of the point variants.
func IsNil(v Vector) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *Point:
		return p == nil
	case *Point2D:
		return p == nil
	case *Point3D:
		return p == nil
	default:
		return false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
