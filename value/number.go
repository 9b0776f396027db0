package value

import "math"

// Number is either a 64-bit signed integer or a 64-bit float. The float
// side is NaN-aware: two NaNs are equal, hash identically, and order below
// every other float, so Number is legal as a map key.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

func (Number) Kind() Kind { return KindNumber }

// NewInt constructs an integer number.
func NewInt(v int64) Number {
	return Number{i: v}
}

// NewFloat constructs a floating-point number.
func NewFloat(v float64) Number {
	return Number{isFloat: true, f: v}
}

// IsFloat reports whether the number is stored as a float.
func (n Number) IsFloat() bool { return n.isFloat }

// AsInt returns the integer value, if the number is an integer.
func (n Number) AsInt() (int64, bool) {
	if n.isFloat {
		return 0, false
	}
	return n.i, true
}

// AsFloat returns the float value, if the number is a float.
func (n Number) AsFloat() (float64, bool) {
	if !n.isFloat {
		return 0, false
	}
	return n.f, true
}

// Float64 returns the float representation regardless of the stored tag.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n Number) equal(other Number) bool {
	if n.isFloat != other.isFloat {
		return false
	}
	if !n.isFloat {
		return n.i == other.i
	}
	if math.IsNaN(n.f) && math.IsNaN(other.f) {
		return true
	}
	return n.f == other.f
}

// compare orders integers before floats (tag order), then by value; among
// floats NaN equals NaN and sorts below everything else.
func (n Number) compare(other Number) int {
	if n.isFloat != other.isFloat {
		if !n.isFloat {
			return -1
		}
		return 1
	}
	if !n.isFloat {
		switch {
		case n.i < other.i:
			return -1
		case n.i > other.i:
			return 1
		}
		return 0
	}
	return compareFloats(n.f, other.f)
}

func compareFloats(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
