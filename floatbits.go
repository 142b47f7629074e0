// Package floatbits stores IEEE 754 binary floating point numbers as their
// raw bits, making them hashable and totally ordered.
//
// Native floating point types are awkward as map keys and sort elements:
// NaN is not equal to itself, +0.0 equals -0.0, and no canonical ordering
// exists. The types in this package keep the exact binary representation in
// an unsigned integer instead, so identical bit patterns are equal (and hash
// identically) and TotalCmp gives the total order defined by the IEEE 754
// totalOrder predicate:
//
//   - negative quiet NaN
//   - negative signaling NaN
//   - negative infinity
//   - negative normal numbers
//   - negative subnormal numbers
//   - negative zero
//   - positive zero
//   - positive subnormal numbers
//   - positive normal numbers
//   - positive infinity
//   - positive signaling NaN
//   - positive quiet NaN
//
// Ties within a class, such as two NaN values with different payloads, are
// ordered by their raw bits under the same transform; equal bit patterns are
// the only equal case.
//
// Five formats are provided: BF16, F16, F32, F64 and F128. All operations
// work directly on the bit representation with masks, shifts and compares.
// No arithmetic is performed, so formats without a native Go counterpart are
// fully supported; conversions to and from float32/float64 exist only where
// they are exact.
package floatbits

// bitsType is the set of storage widths the generic bit-layout engine
// supports. F128 is built separately on int128.Uint128, which cannot appear
// in an integer type set.
type bitsType interface {
	~uint16 | ~uint32 | ~uint64
}

// layout holds the derived bit masks of one floating point format. Every
// field is computed once, from the storage width and the exponent field
// width alone.
type layout[T bitsType] struct {
	signMask T // the single top bit
	absMask  T // everything below the sign bit
	expMask  T // the exponent field
	fracMask T // the mantissa field
	expZero  T // exponent pattern of unbiased exponent 0 (the bias pattern)
	expMax   T // greatest exponent pattern below the reserved all-ones
	expMin   T // least exponent pattern above the all-zeros (subnormal)
	quietBit T // top mantissa bit, the quiet/signaling NaN discriminator
}

func layoutOf[T bitsType](expBits uint) layout[T] {
	var all T
	all = ^all
	abs := all >> 1
	frac := abs >> expBits
	exp := abs &^ frac
	return layout[T]{
		signMask: ^abs,
		absMask:  abs,
		expMask:  exp,
		fracMask: frac,
		expZero:  exp & (exp >> 1),
		expMax:   exp & (exp << 1),
		expMin:   exp &^ (exp << 1),
		quietBit: frac &^ (frac >> 1),
	}
}

func (l *layout[T]) isSignNegative(x T) bool {
	return x&l.signMask != 0
}

// classify discriminates using the masked exponent and mantissa fields only.
func (l *layout[T]) classify(x T) Category {
	exp := x & l.expMask
	frac := x & l.fracMask
	switch {
	case exp == 0 && frac == 0:
		return Zero
	case exp == 0:
		return Subnormal
	case exp == l.expMask && frac == 0:
		return Infinite
	case exp == l.expMask:
		return NaN
	default:
		return Normal
	}
}

func (l *layout[T]) abs(x T) T {
	return x & l.absMask
}

func (l *layout[T]) neg(x T) T {
	return x ^ l.signMask
}

func (l *layout[T]) copySign(x, sign T) T {
	return x&l.absMask | sign&l.signMask
}

// signum returns x unchanged for NaN, otherwise One with x's sign bit.
// Signed zeros and infinities carry a meaningful sign, so they yield ±One.
func (l *layout[T]) signum(x T) T {
	if l.classify(x) == NaN {
		return x
	}
	return l.expZero | x&l.signMask
}

// sortKey maps the raw bits onto an unsigned key whose natural order is the
// totalOrder sequence. Negative values get every bit flipped, so greater
// magnitude sorts lower; positive values get the sign bit set, placing them
// above all negatives while their magnitude order is already monotonic.
func (l *layout[T]) sortKey(x T) T {
	if x&l.signMask != 0 {
		return ^x
	}
	return x | l.signMask
}

func (l *layout[T]) totalCmp(x, y T) int {
	kx, ky := l.sortKey(x), l.sortKey(y)
	switch {
	case kx < ky:
		return -1
	case kx > ky:
		return +1
	default:
		return 0
	}
}

// clamp restricts x to [min, max] under totalCmp, passing NaN through
// unchanged. Invalid bounds are a caller bug and panic.
func (l *layout[T]) clamp(x, min, max T) T {
	switch {
	case l.classify(min) == NaN:
		panic("floatbits: Clamp: min is NaN")
	case l.classify(max) == NaN:
		panic("floatbits: Clamp: max is NaN")
	case l.totalCmp(min, max) > 0:
		panic("floatbits: Clamp: min is greater than max")
	}
	switch {
	case l.classify(x) == NaN:
		return x
	case l.totalCmp(x, min) < 0:
		return min
	case l.totalCmp(x, max) > 0:
		return max
	default:
		return x
	}
}
