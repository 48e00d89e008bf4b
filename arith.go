package fraction

// Add ...
func (f Fraction) Add(g Fraction) Fraction {
	f, g = f.norm(), g.norm()
	if f.den == g.den {
		return reduce(f.num+g.num, f.den)
	}
	l := lcd(f.den, g.den)
	return reduce(l/f.den*f.num+l/g.den*g.num, l)
}

// Sub ...
func (f Fraction) Sub(g Fraction) Fraction {
	f, g = f.norm(), g.norm()
	if f.den == g.den {
		return reduce(f.num-g.num, f.den)
	}
	l := lcd(f.den, g.den)
	return reduce(l/f.den*f.num-l/g.den*g.num, l)
}

// Mul ...
func (f Fraction) Mul(g Fraction) Fraction {
	f, g = f.norm(), g.norm()
	return reduce(f.num*g.num, f.den*g.den)
}

// Div divides f by g. Dividing by zero returns ErrDivisionByZero. A
// negative divisor leaves its sign on the intermediate denominator, which
// reduce moves back to the numerator.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	f, g = f.norm(), g.norm()
	if g.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return reduce(f.num*g.den, f.den*g.num), nil
}

// Neg ...
func (f Fraction) Neg() Fraction {
	f = f.norm()
	return reduce(-f.num, f.den)
}

// Inv returns the reciprocal. Inverting zero returns ErrDivisionByZero.
func (f Fraction) Inv() (Fraction, error) {
	f = f.norm()
	if f.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return reduce(f.den, f.num), nil
}

// Cmp returns -1, 0 or 1 when f is less than, equal to or greater than g.
func (f Fraction) Cmp(g Fraction) int {
	f, g = f.norm(), g.norm()
	l := f.num * g.den
	r := g.num * f.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// IsZero ...
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// MulInt64 scales v by the fraction, truncating toward zero.
func (f Fraction) MulInt64(v int64) int64 {
	f = f.norm()
	return v * f.num / f.den
}
