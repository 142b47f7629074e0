package floatbits

import "math"

// F64 holds the raw bits of an IEEE 754 binary64 floating point number.
//
// F64 values are comparable with == and usable as map keys: two values are
// equal exactly when their bit patterns are equal. As a consequence positive
// zero is not equal to negative zero, and a NaN is equal to a NaN with the
// same payload.
type F64 uint64

const (
	f64Shift = 52
	f64Bias  = 1023
)

var f64Layout = layoutOf[F64](11)

// Named F64 values, computed once from the bit layout.
var (
	F64Zero        = F64(0)
	F64One         = f64Layout.expZero
	F64Infinity    = f64Layout.expMask
	F64SNaN        = f64Layout.expMask | 1
	F64QNaN        = f64Layout.expMask | f64Layout.quietBit | 1
	F64NegZero     = F64Zero.Neg()
	F64NegOne      = F64One.Neg()
	F64NegInfinity = F64Infinity.Neg()
	F64NegSNaN     = F64SNaN.Neg()
	F64NegQNaN     = F64QNaN.Neg()
	F64Max         = f64Layout.expMax | f64Layout.fracMask
	F64Min         = F64Max.Neg()
	F64MinPositive = f64Layout.expMin
	F64MaxNegative = F64MinPositive.Neg()
)

// F64FromBits returns the floating point number corresponding to the IEEE
// 754 binary representation b.
func F64FromBits(b uint64) F64 { return F64(b) }

// Bits returns the IEEE 754 binary representation of x.
func (x F64) Bits() uint64 { return uint64(x) }

// F64FromFloat64 returns the value with the same binary representation as f.
// The conversion is exact for every input, including every NaN payload and
// the sign of zero.
func F64FromFloat64(f float64) F64 { return F64(math.Float64bits(f)) }

// Float64 returns the native float64 with the same binary representation as
// x. It is the exact inverse of F64FromFloat64.
func (x F64) Float64() float64 { return math.Float64frombits(uint64(x)) }

// IsSignPositive reports whether the sign bit is clear.
func (x F64) IsSignPositive() bool { return !f64Layout.isSignNegative(x) }

// IsSignNegative reports whether the sign bit is set.
func (x F64) IsSignNegative() bool { return f64Layout.isSignNegative(x) }

// Classify returns the floating point category of x.
func (x F64) Classify() Category { return f64Layout.classify(x) }

// IsZero reports whether x is +0.0 or -0.0.
func (x F64) IsZero() bool { return x.Classify().IsZero() }

// IsSubnormal reports whether x is a subnormal number.
func (x F64) IsSubnormal() bool { return x.Classify().IsSubnormal() }

// IsNormal reports whether x is a normal number.
func (x F64) IsNormal() bool { return x.Classify().IsNormal() }

// IsInfinite reports whether x is an infinity of either sign.
func (x F64) IsInfinite() bool { return x.Classify().IsInfinite() }

// IsNaN reports whether x is a NaN of either sign.
func (x F64) IsNaN() bool { return x.Classify().IsNaN() }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F64) IsFinite() bool { return x.Classify().IsFinite() }

// Abs returns x with the sign bit cleared.
func (x F64) Abs() F64 { return f64Layout.abs(x) }

// Neg returns x with the sign bit flipped.
func (x F64) Neg() F64 { return f64Layout.neg(x) }

// Signum returns F64One if x is sign positive, F64NegOne if x is sign
// negative, and x unchanged if x is NaN.
func (x F64) Signum() F64 { return f64Layout.signum(x) }

// CopySign returns the magnitude bits of x with the sign bit of sign.
func (x F64) CopySign(sign F64) F64 { return f64Layout.copySign(x, sign) }

// TotalCmp compares x and y following the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. See the package documentation for the full ordering
// sequence.
func (x F64) TotalCmp(y F64) int { return f64Layout.totalCmp(x, y) }

// Clamp restricts x to the interval [min, max] under TotalCmp, returning x
// unchanged if x is NaN. Clamp panics if min or max is NaN or if min orders
// after max.
func (x F64) Clamp(min, max F64) F64 { return f64Layout.clamp(x, min, max) }
