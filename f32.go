package floatbits

import "math"

// F32 holds the raw bits of an IEEE 754 binary32 floating point number.
//
// F32 values are comparable with == and usable as map keys: two values are
// equal exactly when their bit patterns are equal. As a consequence positive
// zero is not equal to negative zero, and a NaN is equal to a NaN with the
// same payload.
type F32 uint32

const (
	f32Shift = 23
	f32Bias  = 127
)

var f32Layout = layoutOf[F32](8)

// Named F32 values, computed once from the bit layout.
var (
	F32Zero        = F32(0)
	F32One         = f32Layout.expZero
	F32Infinity    = f32Layout.expMask
	F32SNaN        = f32Layout.expMask | 1
	F32QNaN        = f32Layout.expMask | f32Layout.quietBit | 1
	F32NegZero     = F32Zero.Neg()
	F32NegOne      = F32One.Neg()
	F32NegInfinity = F32Infinity.Neg()
	F32NegSNaN     = F32SNaN.Neg()
	F32NegQNaN     = F32QNaN.Neg()
	F32Max         = f32Layout.expMax | f32Layout.fracMask
	F32Min         = F32Max.Neg()
	F32MinPositive = f32Layout.expMin
	F32MaxNegative = F32MinPositive.Neg()
)

// F32FromBits returns the floating point number corresponding to the IEEE
// 754 binary representation b.
func F32FromBits(b uint32) F32 { return F32(b) }

// Bits returns the IEEE 754 binary representation of x.
func (x F32) Bits() uint32 { return uint32(x) }

// F32FromFloat32 returns the value with the same binary representation as f.
// The conversion is exact for every input, including every NaN payload and
// the sign of zero.
func F32FromFloat32(f float32) F32 { return F32(math.Float32bits(f)) }

// Float32 returns the native float32 with the same binary representation as
// x. It is the exact inverse of F32FromFloat32.
func (x F32) Float32() float32 { return math.Float32frombits(uint32(x)) }

// IsSignPositive reports whether the sign bit is clear, including +0.0, +Inf
// and NaN with a clear sign bit.
func (x F32) IsSignPositive() bool { return !f32Layout.isSignNegative(x) }

// IsSignNegative reports whether the sign bit is set, including -0.0, -Inf
// and NaN with a set sign bit.
func (x F32) IsSignNegative() bool { return f32Layout.isSignNegative(x) }

// Classify returns the floating point category of x.
func (x F32) Classify() Category { return f32Layout.classify(x) }

// IsZero reports whether x is +0.0 or -0.0.
func (x F32) IsZero() bool { return x.Classify().IsZero() }

// IsSubnormal reports whether x is a subnormal number.
func (x F32) IsSubnormal() bool { return x.Classify().IsSubnormal() }

// IsNormal reports whether x is a normal number: neither zero, subnormal,
// infinite nor NaN.
func (x F32) IsNormal() bool { return x.Classify().IsNormal() }

// IsInfinite reports whether x is an infinity of either sign.
func (x F32) IsInfinite() bool { return x.Classify().IsInfinite() }

// IsNaN reports whether x is a NaN of either sign.
func (x F32) IsNaN() bool { return x.Classify().IsNaN() }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F32) IsFinite() bool { return x.Classify().IsFinite() }

// Abs returns x with the sign bit cleared. The result is exact and always
// sign positive.
func (x F32) Abs() F32 { return f32Layout.abs(x) }

// Neg returns x with the sign bit flipped. Applying Neg twice restores x for
// every bit pattern.
func (x F32) Neg() F32 { return f32Layout.neg(x) }

// Signum returns F32One if x is sign positive, F32NegOne if x is sign
// negative, and x unchanged if x is NaN. Signed zeros and infinities have a
// well-defined sign and yield ±One.
func (x F32) Signum() F32 { return f32Layout.signum(x) }

// CopySign returns the magnitude bits of x with the sign bit of sign.
func (x F32) CopySign(sign F32) F32 { return f32Layout.copySign(x, sign) }

// TotalCmp compares x and y following the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. Every pair of bit patterns is comparable, including
// NaN against anything; see the package documentation for the full ordering
// sequence.
func (x F32) TotalCmp(y F32) int { return f32Layout.totalCmp(x, y) }

// Clamp restricts x to the interval [min, max] under TotalCmp, returning x
// unchanged if x is NaN. Clamp panics if min or max is NaN or if min orders
// after max.
func (x F32) Clamp(min, max F32) F32 { return f32Layout.clamp(x, min, max) }
