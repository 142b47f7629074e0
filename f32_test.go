package floatbits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32Classify(t *testing.T) {
	tests := []struct {
		bits uint32
		cat  Category
		neg  bool
	}{
		{0x00000000, Zero, false},
		{0x80000000, Zero, true},
		{0x00000001, Subnormal, false}, // smallest positive subnormal
		{0x007fffff, Subnormal, false}, // largest positive subnormal
		{0x80000001, Subnormal, true},
		{0x00800000, Normal, false}, // smallest positive normal
		{0x3f800000, Normal, false}, // one
		{0x7f7fffff, Normal, false}, // largest finite
		{0xbf800000, Normal, true},
		{0x7f800000, Infinite, false},
		{0xff800000, Infinite, true},
		{0x7f800001, NaN, false}, // signaling
		{0x7fc00001, NaN, false}, // quiet
		{0xffc00001, NaN, true},
	}
	for _, tt := range tests {
		x := F32FromBits(tt.bits)
		if got := x.Classify(); got != tt.cat {
			t.Errorf("%#08x: Classify() = %v, want %v", tt.bits, got, tt.cat)
		}
		if got := x.IsSignNegative(); got != tt.neg {
			t.Errorf("%#08x: IsSignNegative() = %v, want %v", tt.bits, got, tt.neg)
		}
		if x.IsSignPositive() == x.IsSignNegative() {
			t.Errorf("%#08x: sign predicates agree", tt.bits)
		}
	}
}

func TestF32NaNQuietBit(t *testing.T) {
	a := assert.New(t)
	a.Zero(F32SNaN.Bits() & F32(f32Layout.quietBit).Bits())
	a.NotZero(F32QNaN.Bits() & F32(f32Layout.quietBit).Bits())
	a.True(F32SNaN.IsNaN())
	a.True(F32QNaN.IsNaN())
}

// f32Ordered lists bit patterns in strictly ascending totalOrder.
var f32Ordered = []F32{
	0xffc00002, // negative quiet NaN, large payload
	F32NegQNaN,
	0xffc00000, // negative quiet NaN, zero payload
	0xff800002, // negative signaling NaN
	F32NegSNaN,
	F32NegInfinity,
	F32Min,
	F32NegOne,
	F32MaxNegative,
	0x80000001, // negative subnormal, smallest magnitude
	F32NegZero,
	F32Zero,
	0x00000001, // positive subnormal
	F32MinPositive,
	F32One,
	F32Max,
	F32Infinity,
	F32SNaN,
	0x7f800002,
	F32QNaN,
	0x7fc00002,
}

func TestF32TotalCmp(t *testing.T) {
	for i, x := range f32Ordered {
		for j, y := range f32Ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = +1
			}
			if got := x.TotalCmp(y); got != want {
				t.Errorf("TotalCmp(%#08x, %#08x) = %d, want %d", x.Bits(), y.Bits(), got, want)
			}
		}
	}
}

func TestF32TotalCmpScenario(t *testing.T) {
	a := assert.New(t)
	a.Equal(-1, F32NegQNaN.TotalCmp(F32NegSNaN))
	a.Equal(-1, F32NegSNaN.TotalCmp(F32NegInfinity))
	a.Equal(-1, F32NegZero.TotalCmp(F32Zero))
	a.Equal(-1, F32Zero.TotalCmp(F32MinPositive))
	a.Equal(-1, F32SNaN.TotalCmp(F32QNaN))
}

func TestF32AbsNeg(t *testing.T) {
	a := assert.New(t)
	for _, x := range f32Ordered {
		a.Equal(x, x.Neg().Neg(), "Neg involution of %#08x", x.Bits())
		a.Equal(x.Abs(), x.Abs().Abs(), "Abs idempotent on %#08x", x.Bits())
		a.True(x.Abs().IsSignPositive(), "Abs(%#08x) sign", x.Bits())
	}
	a.Equal(F32One, F32NegOne.Abs())
	a.Equal(F32QNaN, F32NegQNaN.Abs())
	a.Equal(F32NegInfinity, F32Infinity.Neg())
}

func TestF32Signum(t *testing.T) {
	tests := []struct {
		x, want F32
	}{
		{F32Zero, F32One},
		{F32NegZero, F32NegOne},
		{F32MinPositive, F32One},
		{F32Max, F32One},
		{F32Min, F32NegOne},
		{F32Infinity, F32One},
		{F32NegInfinity, F32NegOne},
		{F32QNaN, F32QNaN},
		{F32NegSNaN, F32NegSNaN},
		{0x7fc00abc, 0x7fc00abc}, // NaN keeps its payload
	}
	for _, tt := range tests {
		if got := tt.x.Signum(); got != tt.want {
			t.Errorf("Signum(%#08x) = %#08x, want %#08x", tt.x.Bits(), got.Bits(), tt.want.Bits())
		}
	}
}

func TestF32CopySign(t *testing.T) {
	tests := []struct {
		x, sign, want F32
	}{
		{F32One, F32NegZero, F32NegOne},
		{F32NegOne, F32Zero, F32One},
		{F32NegQNaN, F32Zero, F32QNaN},
		{F32Max, F32NegInfinity, F32Min},
		{F32Zero, F32NegOne, F32NegZero},
		{0x12345678, 0x87654321, 0x92345678},
	}
	for _, tt := range tests {
		if got := tt.x.CopySign(tt.sign); got != tt.want {
			t.Errorf("CopySign(%#08x, %#08x) = %#08x, want %#08x",
				tt.x.Bits(), tt.sign.Bits(), got.Bits(), tt.want.Bits())
		}
	}
}

func TestF32Clamp(t *testing.T) {
	a := assert.New(t)
	a.Equal(F32Zero, F32Zero.Clamp(F32NegOne, F32One))
	a.Equal(F32One, F32Infinity.Clamp(F32NegOne, F32One))
	a.Equal(F32NegOne, F32NegInfinity.Clamp(F32NegOne, F32One))
	a.Equal(F32Zero, F32NegZero.Clamp(F32Zero, F32One), "signed zeros order under totalOrder")
	a.Equal(F32NegZero, F32NegZero.Clamp(F32NegZero, F32One))
	a.Equal(F32(0x7fc00abc), F32(0x7fc00abc).Clamp(F32NegOne, F32One), "NaN passes through with payload")
	a.Equal(F32One, F32One.Clamp(F32One, F32One))
}

func TestF32ClampPanics(t *testing.T) {
	a := assert.New(t)
	a.PanicsWithValue("floatbits: Clamp: min is NaN", func() { F32Zero.Clamp(F32QNaN, F32One) })
	a.PanicsWithValue("floatbits: Clamp: min is NaN", func() { F32QNaN.Clamp(F32SNaN, F32One) })
	a.PanicsWithValue("floatbits: Clamp: max is NaN", func() { F32Zero.Clamp(F32NegOne, F32NegQNaN) })
	a.PanicsWithValue("floatbits: Clamp: min is greater than max", func() { F32Zero.Clamp(F32One, F32NegOne) })
	a.PanicsWithValue("floatbits: Clamp: min is greater than max", func() { F32Zero.Clamp(F32Zero, F32NegZero) })
}

func TestF32FloatRoundTrip(t *testing.T) {
	bits := []uint32{
		0x00000000, 0x80000000, 0x00000001, 0x00800000,
		0x3f800000, 0x3dcccccd, 0xc0490fdb,
		0x7f800000, 0xff800000, 0x7fc00000, 0x7fc00abc, 0xffc00abc,
	}
	for _, b := range bits {
		x := F32FromBits(b)
		if got := math.Float32bits(x.Float32()); got != b {
			t.Errorf("%#08x: Float32 round trip = %#08x", b, got)
		}
		if got := F32FromFloat32(math.Float32frombits(b)); got != x {
			t.Errorf("%#08x: FromFloat32 round trip = %#08x", b, got.Bits())
		}
	}
	if F32FromFloat32(0.1) != F32(0x3dcccccd) {
		t.Errorf("FromFloat32(0.1) = %#08x", F32FromFloat32(0.1).Bits())
	}
}

func TestF32MapKey(t *testing.T) {
	m := map[F32]string{
		F32QNaN:    "qnan",
		F32NegQNaN: "-qnan",
		F32Zero:    "0",
		F32NegZero: "-0",
	}
	a := assert.New(t)
	a.Len(m, 4, "NaNs and signed zeros are distinct keys")
	a.Equal("qnan", m[F32QNaN])
}
