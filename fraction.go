// Package fraction implements exact arithmetic on rational numbers.
//
// A Fraction is kept in lowest terms with a positive denominator: the sign
// lives in the numerator, zero is always 0/1, and a value equal to one is
// always 1/1. Operations return new values and never mutate their operands,
// so fractions can be shared freely across goroutines.
//
// Numerator and denominator are fixed-width int64. Products and common
// denominators can overflow without detection.
package fraction

import (
	"errors"
	"strconv"
)

// ErrInvalidDenominator ...
var ErrInvalidDenominator = errors.New("fraction: denominator must be at least 1")

// ErrDivisionByZero ...
var ErrDivisionByZero = errors.New("fraction: division by zero")

// Fraction ...
type Fraction struct {
	num int64
	den int64
}

// Zero ...
func Zero() Fraction {
	return Fraction{num: 0, den: 1}
}

// FromInt ...
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// New returns num/den in lowest terms. The denominator must be at least 1;
// a negative value belongs in the numerator.
func New(num int64, den int64) (Fraction, error) {
	if den < 1 {
		return Fraction{}, ErrInvalidDenominator
	}
	return reduce(num, den), nil
}

// reduce is the single place canonical form is established. A negative
// denominator (possible only from internal callers such as Div) has its
// sign moved to the numerator first. The zero check must come before the
// gcd call so gcd never sees a zero argument.
func reduce(num int64, den int64) Fraction {
	if den < 0 {
		num = -num
		den = -den
	}
	if num == 0 {
		return Fraction{num: 0, den: 1}
	}
	if num == den {
		return Fraction{num: 1, den: 1}
	}
	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Fraction{num: num, den: den}
}

// norm treats the zero Fraction value as 0/1.
func (f Fraction) norm() Fraction {
	if f.den == 0 {
		f.den = 1
	}
	return f
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// gcd computes the greatest common divisor of two positive integers by the
// Euclidean algorithm. b must not be zero.
func gcd(a int64, b int64) int64 {
	assertTrue(b != 0)
	if a < b {
		a, b = b, a
	}
	for {
		r := a % b
		if r == 0 {
			return b
		}
		a, b = b, r
	}
}

// lcd computes the least common denominator of two denominators.
func lcd(a int64, b int64) int64 {
	return a * b / gcd(a, b)
}

func assertTrue(b bool) {
	if !b {
		panic("must be true")
	}
}

// Numerator ...
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator ...
func (f Fraction) Denominator() int64 {
	return f.norm().den
}

// Value returns the fraction as a real number.
func (f Fraction) Value() float64 {
	f = f.norm()
	return float64(f.num) / float64(f.den)
}

// Equal reports whether f and g have the same value. Both sides are already
// in lowest terms, so comparing the components compares the values.
func (f Fraction) Equal(g Fraction) bool {
	f, g = f.norm(), g.norm()
	return f.num == g.num && f.den == g.den
}

// String renders the fraction as "<num>/<den>", or just "<num>" for a
// whole number. The format is a stable contract.
func (f Fraction) String() string {
	f = f.norm()
	if f.den != 1 {
		return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
	}
	return strconv.FormatInt(f.num, 10)
}
