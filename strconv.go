package floatbits

import "strconv"

// The text layer delegates entirely to the native float formatter and
// parser. Formats without a native counterpart of their own width format
// through their exact float32 widening; F128 has no text layer at all.

// String formats x with the 'g' verb and the smallest precision that
// round-trips, like strconv.FormatFloat. NaN formats as "NaN" regardless of
// sign and payload, and the infinities as "+Inf" and "-Inf".
func (x F32) String() string { return x.Format('g', -1) }

// Format formats x like strconv.FormatFloat with bit size 32.
func (x F32) Format(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the formatted value of x to buf and returns the extended
// buffer.
func (x F32) Append(buf []byte, fmt byte, prec int) []byte {
	return strconv.AppendFloat(buf, float64(x.Float32()), fmt, prec, 32)
}

// ParseF32 converts the string s to an F32 using the native float32 parser.
// Errors come from the parser unchanged, as a *strconv.NumError; on range
// errors the returned value is the parser's saturated result, reinterpreted
// bit for bit.
func ParseF32(s string) (F32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return F32FromFloat32(float32(f)), err
}

// String formats x with the 'g' verb and the smallest precision that
// round-trips, like strconv.FormatFloat.
func (x F64) String() string { return x.Format('g', -1) }

// Format formats x like strconv.FormatFloat with bit size 64.
func (x F64) Format(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 24), fmt, prec))
}

// Append appends the formatted value of x to buf and returns the extended
// buffer.
func (x F64) Append(buf []byte, fmt byte, prec int) []byte {
	return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 64)
}

// ParseF64 converts the string s to an F64 using the native float64 parser.
// Errors come from the parser unchanged, as a *strconv.NumError.
func ParseF64(s string) (F64, error) {
	f, err := strconv.ParseFloat(s, 64)
	return F64FromFloat64(f), err
}

// String formats x through its exact float32 widening, with the 'g' verb and
// the smallest precision that round-trips at 32 bits.
func (x F16) String() string { return x.Format('g', -1) }

// Format formats x like strconv.FormatFloat with bit size 32, through the
// exact float32 widening.
func (x F16) Format(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the formatted value of x to buf and returns the extended
// buffer.
func (x F16) Append(buf []byte, fmt byte, prec int) []byte {
	return strconv.AppendFloat(buf, float64(x.Float32()), fmt, prec, 32)
}

// String formats x through its exact float32 widening, with the 'g' verb and
// the smallest precision that round-trips at 32 bits.
func (x BF16) String() string { return x.Format('g', -1) }

// Format formats x like strconv.FormatFloat with bit size 32, through the
// exact float32 widening.
func (x BF16) Format(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 16), fmt, prec))
}

// Append appends the formatted value of x to buf and returns the extended
// buffer.
func (x BF16) Append(buf []byte, fmt byte, prec int) []byte {
	return strconv.AppendFloat(buf, float64(x.Float32()), fmt, prec, 32)
}
