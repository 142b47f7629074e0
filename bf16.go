package floatbits

import (
	"math"
	"math/bits"
)

// BF16 holds the raw bits of a Google bfloat16 floating point number: a
// binary32 with the low 16 mantissa bits truncated away.
//
// Go has no native bfloat16 type, so BF16 has no FromFloat constructor.
// Float32 widens exactly by restoring the truncated mantissa bits as zeros.
type BF16 uint16

const (
	bf16Shift = 7
	bf16Bias  = 127
)

var bf16Layout = layoutOf[BF16](8)

// Named BF16 values, computed once from the bit layout.
var (
	BF16Zero        = BF16(0)
	BF16One         = bf16Layout.expZero
	BF16Infinity    = bf16Layout.expMask
	BF16SNaN        = bf16Layout.expMask | 1
	BF16QNaN        = bf16Layout.expMask | bf16Layout.quietBit | 1
	BF16NegZero     = BF16Zero.Neg()
	BF16NegOne      = BF16One.Neg()
	BF16NegInfinity = BF16Infinity.Neg()
	BF16NegSNaN     = BF16SNaN.Neg()
	BF16NegQNaN     = BF16QNaN.Neg()
	BF16Max         = bf16Layout.expMax | bf16Layout.fracMask
	BF16Min         = BF16Max.Neg()
	BF16MinPositive = bf16Layout.expMin
	BF16MaxNegative = BF16MinPositive.Neg()
)

// BF16FromBits returns the floating point number corresponding to the
// binary representation b.
func BF16FromBits(b uint16) BF16 { return BF16(b) }

// Bits returns the binary representation of x.
func (x BF16) Bits() uint16 { return uint16(x) }

// Float32 returns the float32 with the same value as x. A bfloat16 is a
// truncated binary32, so the conversion is a 16-bit shift and exact for
// every bit pattern including NaN payloads.
func (x BF16) Float32() float32 {
	return math.Float32frombits(uint32(x) << 16)
}

// Float64 returns the float64 with the same value as x. The conversion is
// exact for every bit pattern.
func (x BF16) Float64() float64 {
	sign := uint64(x&0x8000) << 48
	exp := uint64(x>>bf16Shift) & 0xff
	frac := uint64(x) & 0x7f

	switch {
	case exp == 0xff:
		// infinity or NaN
		exp = 0x7ff
	case exp == 0:
		if frac == 0 {
			// signed zero
			break
		}
		// subnormal number
		l := uint64(bits.Len64(frac))
		frac = (frac << (bf16Shift - l + 1)) & 0x7f
		exp = f64Bias - bf16Bias - bf16Shift + l
	default:
		// normal number
		exp += f64Bias - bf16Bias
	}
	return math.Float64frombits(sign | exp<<f64Shift | frac<<(f64Shift-bf16Shift))
}

// IsSignPositive reports whether the sign bit is clear.
func (x BF16) IsSignPositive() bool { return !bf16Layout.isSignNegative(x) }

// IsSignNegative reports whether the sign bit is set.
func (x BF16) IsSignNegative() bool { return bf16Layout.isSignNegative(x) }

// Classify returns the floating point category of x.
func (x BF16) Classify() Category { return bf16Layout.classify(x) }

// IsZero reports whether x is +0.0 or -0.0.
func (x BF16) IsZero() bool { return x.Classify().IsZero() }

// IsSubnormal reports whether x is a subnormal number.
func (x BF16) IsSubnormal() bool { return x.Classify().IsSubnormal() }

// IsNormal reports whether x is a normal number.
func (x BF16) IsNormal() bool { return x.Classify().IsNormal() }

// IsInfinite reports whether x is an infinity of either sign.
func (x BF16) IsInfinite() bool { return x.Classify().IsInfinite() }

// IsNaN reports whether x is a NaN of either sign.
func (x BF16) IsNaN() bool { return x.Classify().IsNaN() }

// IsFinite reports whether x is neither infinite nor NaN.
func (x BF16) IsFinite() bool { return x.Classify().IsFinite() }

// Abs returns x with the sign bit cleared.
func (x BF16) Abs() BF16 { return bf16Layout.abs(x) }

// Neg returns x with the sign bit flipped.
func (x BF16) Neg() BF16 { return bf16Layout.neg(x) }

// Signum returns BF16One if x is sign positive, BF16NegOne if x is sign
// negative, and x unchanged if x is NaN.
func (x BF16) Signum() BF16 { return bf16Layout.signum(x) }

// CopySign returns the magnitude bits of x with the sign bit of sign.
func (x BF16) CopySign(sign BF16) BF16 { return bf16Layout.copySign(x, sign) }

// TotalCmp compares x and y following the IEEE 754 totalOrder predicate and
// returns -1, 0 or +1. See the package documentation for the full ordering
// sequence.
func (x BF16) TotalCmp(y BF16) int { return bf16Layout.totalCmp(x, y) }

// Clamp restricts x to the interval [min, max] under TotalCmp, returning x
// unchanged if x is NaN. Clamp panics if min or max is NaN or if min orders
// after max.
func (x BF16) Clamp(min, max BF16) BF16 { return bf16Layout.clamp(x, min, max) }
