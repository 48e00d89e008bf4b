package fraction

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestZero(t *testing.T) {
	f := Zero()
	assert.Equal(t, int64(0), f.Numerator())
	assert.Equal(t, int64(1), f.Denominator())
}

func TestFromInt(t *testing.T) {
	f := FromInt(-7)
	assert.Equal(t, int64(-7), f.Numerator())
	assert.Equal(t, int64(1), f.Denominator())
}

func TestNew(t *testing.T) {
	f, err := New(8, 12)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), f.Numerator())
	assert.Equal(t, int64(3), f.Denominator())

	f, err = New(-8, 12)
	assert.Nil(t, err)
	assert.Equal(t, int64(-2), f.Numerator())
	assert.Equal(t, int64(3), f.Denominator())

	f, err = New(5, 5)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), f.Numerator())
	assert.Equal(t, int64(1), f.Denominator())

	f, err = New(0, 7)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), f.Numerator())
	assert.Equal(t, int64(1), f.Denominator())

	f, err = New(7, 13)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), f.Numerator())
	assert.Equal(t, int64(13), f.Denominator())
}

func TestNew_InvalidDenominator(t *testing.T) {
	_, err := New(1, 0)
	assert.Equal(t, ErrInvalidDenominator, err)

	_, err = New(1, -3)
	assert.Equal(t, ErrInvalidDenominator, err)
}

func TestNew_CanonicalForm(t *testing.T) {
	for num := int64(-12); num <= 12; num++ {
		for den := int64(1); den <= 9; den++ {
			f, err := New(num, den)
			assert.Nil(t, err)
			assert.True(t, f.Denominator() >= 1)
			if f.Numerator() == 0 {
				assert.Equal(t, int64(1), f.Denominator())
			} else {
				assert.Equal(t, int64(1), gcd(abs(f.Numerator()), f.Denominator()))
			}
		}
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, int64(4), gcd(8, 12))
	assert.Equal(t, int64(4), gcd(12, 8))
	assert.Equal(t, int64(1), gcd(7, 13))
	assert.Equal(t, int64(5), gcd(5, 5))
	assert.Equal(t, int64(3), gcd(3, 9))
}

func TestGCD_ZeroPanics(t *testing.T) {
	assert.Panics(t, func() {
		gcd(5, 0)
	})
}

func TestLCD(t *testing.T) {
	assert.Equal(t, int64(6), lcd(2, 3))
	assert.Equal(t, int64(12), lcd(4, 6))
	assert.Equal(t, int64(7), lcd(7, 7))
	assert.Equal(t, int64(4), lcd(1, 4))
}

func TestFraction_Value(t *testing.T) {
	f, _ := New(1, 2)
	assert.Equal(t, 0.5, f.Value())

	assert.Equal(t, 3.0, FromInt(3).Value())
	assert.Equal(t, 0.0, Zero().Value())

	f, _ = New(-3, 4)
	assert.Equal(t, -0.75, f.Value())
}

func TestFraction_Equal(t *testing.T) {
	a, _ := New(1, 2)
	b, _ := New(2, 4)
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c, _ := New(1, 3)
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))

	var zero Fraction
	assert.True(t, zero.Equal(Zero()))
}

func TestFraction_MapKey(t *testing.T) {
	a, _ := New(2, 4)
	b, _ := New(1, 2)
	m := map[Fraction]string{a: "half"}
	assert.Equal(t, "half", m[b])
}

func TestFraction_String(t *testing.T) {
	f, _ := New(3, 1)
	assert.Equal(t, "3", f.String())

	f, _ = New(3, 4)
	assert.Equal(t, "3/4", f.String())

	f, _ = New(-8, 12)
	assert.Equal(t, "-2/3", f.String())

	assert.Equal(t, "0", Zero().String())
}
