package fix

import (
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Scalar is a signed Q20.12 fixed-point number.
type Scalar int32

// Shift is the number of fractional bits.
const Shift = 12

const (
	One  Scalar = 1 << Shift
	Half Scalar = One / 2
)

// FromInt converts an integer to Scalar.
func FromInt(v int) Scalar { return Scalar(int32(v) << Shift) }

// FromFraction returns num/den, truncated toward zero.
func FromFraction(num, den int) Scalar {
	if den == 0 {
		return 0
	}
	return Scalar((int64(num) << Shift) / int64(den))
}

// FromFloat32 converts a float32 value to Scalar.
func FromFloat32(v float32) Scalar { return Scalar(int32(v * float32(One))) }

// Float32 converts s to float32.
func (s Scalar) Float32() float32 { return float32(s) / float32(One) }

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }
func (s Scalar) Neg() Scalar         { return -s }

// Mul returns s*o rounded to the nearest representable value.
func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar(fixed.Int52_12(s).Mul(fixed.Int52_12(o)))
}

// Div returns s/o truncated toward zero. Division by zero yields 0.
func (s Scalar) Div(o Scalar) Scalar {
	if o == 0 {
		return 0
	}
	return Scalar((int64(s) << Shift) / int64(o))
}

func (s Scalar) Abs() Scalar {
	if s < 0 {
		return -s
	}
	return s
}

// Trunc drops the fractional part, rounding toward zero.
func (s Scalar) Trunc() int { return int(s / One) }

// Frac returns the fractional part in [0, One), treating s as periodic.
func (s Scalar) Frac() Scalar { return s & (One - 1) }

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s)/float64(One), 'f', -1, 64)
}
