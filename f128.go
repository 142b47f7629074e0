package floatbits

import "github.com/shogo82148/int128"

// F128 holds the raw bits of an IEEE 754 binary128 floating point number in
// an int128.Uint128. The H and L fields expose the high and low 64 bits of
// the representation directly.
//
// Go has no native binary128 type, so F128 has neither float conversions nor
// a text representation; it is built from raw bits or from the named values
// below.
type F128 int128.Uint128

// The high word of a binary128 value has the same field geometry as a 64-bit
// storage with a 15-bit exponent: sign, 15 exponent bits, then the top 48
// mantissa bits. The remaining 64 mantissa bits fill the low word.
var f128Layout = layoutOf[uint64](15)

// Named F128 values, computed once from the bit layout of the high word.
var (
	F128Zero        = F128{}
	F128One         = F128{H: f128Layout.expZero}
	F128Infinity    = F128{H: f128Layout.expMask}
	F128SNaN        = F128{H: f128Layout.expMask, L: 1}
	F128QNaN        = F128{H: f128Layout.expMask | f128Layout.quietBit, L: 1}
	F128NegZero     = F128Zero.Neg()
	F128NegOne      = F128One.Neg()
	F128NegInfinity = F128Infinity.Neg()
	F128NegSNaN     = F128SNaN.Neg()
	F128NegQNaN     = F128QNaN.Neg()
	F128Max         = F128{H: f128Layout.expMax | f128Layout.fracMask, L: ^uint64(0)}
	F128Min         = F128Max.Neg()
	F128MinPositive = F128{H: f128Layout.expMin}
	F128MaxNegative = F128MinPositive.Neg()
)

// F128FromBits returns the floating point number corresponding to the IEEE
// 754 binary representation b.
func F128FromBits(b int128.Uint128) F128 { return F128(b) }

// Bits returns the IEEE 754 binary representation of x.
func (x F128) Bits() int128.Uint128 { return int128.Uint128(x) }

// IsSignPositive reports whether the sign bit is clear.
func (x F128) IsSignPositive() bool { return x.H&f128Layout.signMask == 0 }

// IsSignNegative reports whether the sign bit is set.
func (x F128) IsSignNegative() bool { return x.H&f128Layout.signMask != 0 }

// Classify returns the floating point category of x.
func (x F128) Classify() Category {
	exp := x.H & f128Layout.expMask
	fracZero := x.H&f128Layout.fracMask == 0 && x.L == 0
	switch {
	case exp == 0 && fracZero:
		return Zero
	case exp == 0:
		return Subnormal
	case exp == f128Layout.expMask && fracZero:
		return Infinite
	case exp == f128Layout.expMask:
		return NaN
	default:
		return Normal
	}
}

// IsZero reports whether x is +0.0 or -0.0.
func (x F128) IsZero() bool { return x.Classify().IsZero() }

// IsSubnormal reports whether x is a subnormal number.
func (x F128) IsSubnormal() bool { return x.Classify().IsSubnormal() }

// IsNormal reports whether x is a normal number.
func (x F128) IsNormal() bool { return x.Classify().IsNormal() }

// IsInfinite reports whether x is an infinity of either sign.
func (x F128) IsInfinite() bool { return x.Classify().IsInfinite() }

// IsNaN reports whether x is a NaN of either sign.
func (x F128) IsNaN() bool { return x.Classify().IsNaN() }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F128) IsFinite() bool { return x.Classify().IsFinite() }

// Abs returns x with the sign bit cleared.
func (x F128) Abs() F128 { return F128{H: x.H & f128Layout.absMask, L: x.L} }

// Neg returns x with the sign bit flipped.
func (x F128) Neg() F128 { return F128{H: x.H ^ f128Layout.signMask, L: x.L} }

// Signum returns F128One if x is sign positive, F128NegOne if x is sign
// negative, and x unchanged if x is NaN.
func (x F128) Signum() F128 {
	if x.IsNaN() {
		return x
	}
	return F128{H: f128Layout.expZero | x.H&f128Layout.signMask}
}

// CopySign returns the magnitude bits of x with the sign bit of sign.
func (x F128) CopySign(sign F128) F128 {
	return F128{H: x.H&f128Layout.absMask | sign.H&f128Layout.signMask, L: x.L}
}

// sortKey maps the raw bits onto an unsigned 128-bit key whose natural order
// is the totalOrder sequence, the same transform the generic engine applies
// to the machine-word formats.
func (x F128) sortKey() int128.Uint128 {
	if x.H&f128Layout.signMask != 0 {
		return int128.Uint128{H: ^x.H, L: ^x.L}
	}
	return int128.Uint128{H: x.H | f128Layout.signMask, L: x.L}
}

// TotalCmp compares x and y following the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. See the package documentation for the full ordering
// sequence.
func (x F128) TotalCmp(y F128) int { return x.sortKey().Cmp(y.sortKey()) }

// Clamp restricts x to the interval [min, max] under TotalCmp, returning x
// unchanged if x is NaN. Clamp panics if min or max is NaN or if min orders
// after max.
func (x F128) Clamp(min, max F128) F128 {
	switch {
	case min.IsNaN():
		panic("floatbits: Clamp: min is NaN")
	case max.IsNaN():
		panic("floatbits: Clamp: max is NaN")
	case min.TotalCmp(max) > 0:
		panic("floatbits: Clamp: min is greater than max")
	}
	switch {
	case x.IsNaN():
		return x
	case x.TotalCmp(min) < 0:
		return min
	case x.TotalCmp(max) > 0:
		return max
	default:
		return x
	}
}
