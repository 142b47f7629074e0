package floatbits

import "strconv"

// Category is the IEEE 754 class of a floating point value, derived from its
// exponent and mantissa fields alone.
type Category int

const (
	Zero Category = iota
	Subnormal
	Normal
	Infinite
	NaN
)

var categoryNames = [...]string{"Zero", "Subnormal", "Normal", "Infinite", "NaN"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

// IsZero reports whether c is Zero.
func (c Category) IsZero() bool { return c == Zero }

// IsSubnormal reports whether c is Subnormal.
func (c Category) IsSubnormal() bool { return c == Subnormal }

// IsNormal reports whether c is Normal.
func (c Category) IsNormal() bool { return c == Normal }

// IsInfinite reports whether c is Infinite.
func (c Category) IsInfinite() bool { return c == Infinite }

// IsNaN reports whether c is NaN.
func (c Category) IsNaN() bool { return c == NaN }

// IsFinite reports whether c is Zero, Subnormal or Normal.
func (c Category) IsFinite() bool {
	switch c {
	case Zero, Subnormal, Normal:
		return true
	}
	return false
}
