// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPromotion is returned when a requested result type is not the common
// type of the operand types.
var ErrPromotion = errors.New("numeric: result type is not the common type of the operands")

// Class is the arithmetic family of a numeric type.
type Class uint8

const (
	// Signed integers (int, int8 ... int64).
	Signed Class = iota + 1
	// Unsigned integers (uint, uint8 ... uint64, uintptr).
	Unsigned
	// Floating point (float32, float64).
	FloatClass
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Signed:
		return "int"
	case Unsigned:
		return "uint"
	case FloatClass:
		return "float"
	default:
		return "invalid"
	}
}

// Type describes a numeric element type by class and bit width.
// int, uint and uintptr are treated as 64-bit.
type Type struct {
	Class Class
	Bits  int
}

// String renders the Type as a Go type name, e.g. "float64" or "uint8".
func (t Type) String() string {
	return fmt.Sprintf("%s%d", t.Class, t.Bits)
}

// TypeOf describes T. Named types resolve through their underlying kind.
func TypeOf[T Number]() Type {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		return Type{Signed, 8}
	case reflect.Int16:
		return Type{Signed, 16}
	case reflect.Int32:
		return Type{Signed, 32}
	case reflect.Int, reflect.Int64:
		return Type{Signed, 64}
	case reflect.Uint8:
		return Type{Unsigned, 8}
	case reflect.Uint16:
		return Type{Unsigned, 16}
	case reflect.Uint32:
		return Type{Unsigned, 32}
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return Type{Unsigned, 64}
	case reflect.Float32:
		return Type{FloatClass, 32}
	default:
		return Type{FloatClass, 64}
	}
}

// Common returns the smallest type that represents both a and b, following
// the usual arithmetic conversions:
//   - any float beats any integer; between floats the wider wins;
//   - integers of the same signedness take the wider width;
//   - mixed signedness takes the signed type when it is strictly wider,
//     otherwise the next signed width above the unsigned one;
//   - when no signed type is wide enough (64-bit unsigned) the result is uint64.
//
// Common is symmetric: Common(a,b) == Common(b,a).
func Common(a, b Type) Type {
	switch {
	case a.Class == FloatClass && b.Class == FloatClass:
		return Type{FloatClass, max(a.Bits, b.Bits)}
	case a.Class == FloatClass:
		return a
	case b.Class == FloatClass:
		return b
	case a.Class == b.Class:
		return Type{a.Class, max(a.Bits, b.Bits)}
	}

	// Mixed signedness: normalize to (signed s, unsigned u).
	s, u := a, b
	if s.Class == Unsigned {
		s, u = b, a
	}
	if s.Bits > u.Bits {
		return s
	}
	if u.Bits < 64 {
		return Type{Signed, u.Bits * 2}
	}

	return Type{Unsigned, 64}
}

// CheckPromotion verifies that R is the common type of A and B.
// It returns ErrPromotion wrapped with the offending type names otherwise.
func CheckPromotion[R, A, B Number]() error {
	want := Common(TypeOf[A](), TypeOf[B]())
	if got := TypeOf[R](); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrPromotion, want, got)
	}

	return nil
}

// Convert copies src into a new slice of R, converting each element.
// Complexity: O(len(src)).
func Convert[R, T Number](src []T) []R {
	dst := make([]R, len(src))
	for i, v := range src {
		dst[i] = R(v)
	}

	return dst
}
