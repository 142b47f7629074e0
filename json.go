package floatbits

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The JSON form mirrors the in-memory representation: an object holding the
// raw bit pattern, such as {"bits":1065353216}. Unknown fields are rejected.
// F128 carries its bits as a 34-character "0x"-prefixed hex string, since a
// JSON number cannot hold 128 bits losslessly.

func appendBitsObject(bits uint64) []byte {
	buf := append(make([]byte, 0, 32), `{"bits":`...)
	buf = strconv.AppendUint(buf, bits, 10)
	return append(buf, '}')
}

func decodeBitsObject(data []byte, name string, width int) (uint64, error) {
	var raw struct {
		Bits *uint64 `json:"bits"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return 0, fmt.Errorf("floatbits: %s: %w", name, err)
	}
	if raw.Bits == nil {
		return 0, fmt.Errorf("floatbits: %s: missing \"bits\" field", name)
	}
	if width < 64 && *raw.Bits>>uint(width) != 0 {
		return 0, fmt.Errorf("floatbits: %s: bit pattern %d does not fit in %d bits", name, *raw.Bits, width)
	}
	return *raw.Bits, nil
}

// MarshalJSON implements json.Marshaler.
func (x BF16) MarshalJSON() ([]byte, error) { return appendBitsObject(uint64(x)), nil }

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown fields.
func (x *BF16) UnmarshalJSON(data []byte) error {
	bits, err := decodeBitsObject(data, "BF16", 16)
	if err != nil {
		return err
	}
	*x = BF16(bits)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (x F16) MarshalJSON() ([]byte, error) { return appendBitsObject(uint64(x)), nil }

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown fields.
func (x *F16) UnmarshalJSON(data []byte) error {
	bits, err := decodeBitsObject(data, "F16", 16)
	if err != nil {
		return err
	}
	*x = F16(bits)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (x F32) MarshalJSON() ([]byte, error) { return appendBitsObject(uint64(x)), nil }

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown fields.
func (x *F32) UnmarshalJSON(data []byte) error {
	bits, err := decodeBitsObject(data, "F32", 32)
	if err != nil {
		return err
	}
	*x = F32(bits)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (x F64) MarshalJSON() ([]byte, error) { return appendBitsObject(uint64(x)), nil }

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown fields.
func (x *F64) UnmarshalJSON(data []byte) error {
	bits, err := decodeBitsObject(data, "F64", 64)
	if err != nil {
		return err
	}
	*x = F64(bits)
	return nil
}

// MarshalJSON implements json.Marshaler. The 128 bit pattern is encoded as a
// fixed-width hex string: {"bits":"0x3fff0000000000000000000000000000"}.
func (x F128) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"bits":"0x%016x%016x"}`, x.H, x.L)), nil
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown fields.
func (x *F128) UnmarshalJSON(data []byte) error {
	var raw struct {
		Bits *string `json:"bits"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("floatbits: F128: %w", err)
	}
	if raw.Bits == nil {
		return fmt.Errorf("floatbits: F128: missing \"bits\" field")
	}
	s := *raw.Bits
	if len(s) != 34 || s[0] != '0' || s[1] != 'x' {
		return fmt.Errorf("floatbits: F128: bit pattern %q is not a 0x-prefixed 32-digit hex string", s)
	}
	h, err := strconv.ParseUint(s[2:18], 16, 64)
	if err != nil {
		return fmt.Errorf("floatbits: F128: bit pattern %q is not a 0x-prefixed 32-digit hex string", s)
	}
	l, err := strconv.ParseUint(s[18:], 16, 64)
	if err != nil {
		return fmt.Errorf("floatbits: F128: bit pattern %q is not a 0x-prefixed 32-digit hex string", s)
	}
	*x = F128{H: h, L: l}
	return nil
}
