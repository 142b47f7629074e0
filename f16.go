package floatbits

import (
	"math"
	"math/bits"
)

// F16 holds the raw bits of an IEEE 754 binary16 floating point number.
//
// Go has no native binary16 type, so F16 has no FromFloat constructor; it is
// built from raw bits or from the named values below. Float32 and Float64
// widen exactly, since both targets have strictly wider exponent and
// mantissa fields.
type F16 uint16

const (
	f16Shift = 10
	f16Bias  = 15
)

var f16Layout = layoutOf[F16](5)

// Named F16 values, computed once from the bit layout.
var (
	F16Zero        = F16(0)
	F16One         = f16Layout.expZero
	F16Infinity    = f16Layout.expMask
	F16SNaN        = f16Layout.expMask | 1
	F16QNaN        = f16Layout.expMask | f16Layout.quietBit | 1
	F16NegZero     = F16Zero.Neg()
	F16NegOne      = F16One.Neg()
	F16NegInfinity = F16Infinity.Neg()
	F16NegSNaN     = F16SNaN.Neg()
	F16NegQNaN     = F16QNaN.Neg()
	F16Max         = f16Layout.expMax | f16Layout.fracMask
	F16Min         = F16Max.Neg()
	F16MinPositive = f16Layout.expMin
	F16MaxNegative = F16MinPositive.Neg()
)

// F16FromBits returns the floating point number corresponding to the IEEE
// 754 binary representation b.
func F16FromBits(b uint16) F16 { return F16(b) }

// Bits returns the IEEE 754 binary representation of x.
func (x F16) Bits() uint16 { return uint16(x) }

// Float32 returns the float32 with the same value as x. The conversion is
// exact for every bit pattern: subnormals are renormalized and NaN payloads
// move to the top of the wider mantissa.
func (x F16) Float32() float32 {
	sign := uint32(x&0x8000) << 16
	exp := uint32(x>>f16Shift) & 0x1f
	frac := uint32(x) & 0x3ff

	switch {
	case exp == 0x1f:
		// infinity or NaN
		exp = 0xff
	case exp == 0:
		if frac == 0 {
			// signed zero
			break
		}
		// subnormal number
		l := uint32(bits.Len32(frac))
		frac = (frac << (f16Shift - l + 1)) & 0x3ff
		exp = f32Bias - f16Bias - f16Shift + l
	default:
		// normal number
		exp += f32Bias - f16Bias
	}
	return math.Float32frombits(sign | exp<<f32Shift | frac<<(f32Shift-f16Shift))
}

// Float64 returns the float64 with the same value as x. The conversion is
// exact for every bit pattern.
func (x F16) Float64() float64 {
	sign := uint64(x&0x8000) << 48
	exp := uint64(x>>f16Shift) & 0x1f
	frac := uint64(x) & 0x3ff

	switch {
	case exp == 0x1f:
		exp = 0x7ff
	case exp == 0:
		if frac == 0 {
			break
		}
		l := uint64(bits.Len64(frac))
		frac = (frac << (f16Shift - l + 1)) & 0x3ff
		exp = f64Bias - f16Bias - f16Shift + l
	default:
		exp += f64Bias - f16Bias
	}
	return math.Float64frombits(sign | exp<<f64Shift | frac<<(f64Shift-f16Shift))
}

// IsSignPositive reports whether the sign bit is clear.
func (x F16) IsSignPositive() bool { return !f16Layout.isSignNegative(x) }

// IsSignNegative reports whether the sign bit is set.
func (x F16) IsSignNegative() bool { return f16Layout.isSignNegative(x) }

// Classify returns the floating point category of x.
func (x F16) Classify() Category { return f16Layout.classify(x) }

// IsZero reports whether x is +0.0 or -0.0.
func (x F16) IsZero() bool { return x.Classify().IsZero() }

// IsSubnormal reports whether x is a subnormal number.
func (x F16) IsSubnormal() bool { return x.Classify().IsSubnormal() }

// IsNormal reports whether x is a normal number.
func (x F16) IsNormal() bool { return x.Classify().IsNormal() }

// IsInfinite reports whether x is an infinity of either sign.
func (x F16) IsInfinite() bool { return x.Classify().IsInfinite() }

// IsNaN reports whether x is a NaN of either sign.
func (x F16) IsNaN() bool { return x.Classify().IsNaN() }

// IsFinite reports whether x is neither infinite nor NaN.
func (x F16) IsFinite() bool { return x.Classify().IsFinite() }

// Abs returns x with the sign bit cleared.
func (x F16) Abs() F16 { return f16Layout.abs(x) }

// Neg returns x with the sign bit flipped.
func (x F16) Neg() F16 { return f16Layout.neg(x) }

// Signum returns F16One if x is sign positive, F16NegOne if x is sign
// negative, and x unchanged if x is NaN.
func (x F16) Signum() F16 { return f16Layout.signum(x) }

// CopySign returns the magnitude bits of x with the sign bit of sign.
func (x F16) CopySign(sign F16) F16 { return f16Layout.copySign(x, sign) }

// TotalCmp compares x and y following the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. See the package documentation for the full ordering
// sequence.
func (x F16) TotalCmp(y F16) int { return f16Layout.totalCmp(x, y) }

// Clamp restricts x to the interval [min, max] under TotalCmp, returning x
// unchanged if x is NaN. Clamp panics if min or max is NaN or if min orders
// after max.
func (x F16) Clamp(min, max F16) F16 { return f16Layout.clamp(x, min, max) }
