// Package wire is the runtime of the generated XOLIR bindings.
//
// Encoding is the protobuf binary format: fields are written in field number
// order, zero scalars outside of oneofs are omitted and nested messages are
// length-delimited, so the output is deterministic and readable by any
// protobuf runtime built from the same schema.
package wire

import (
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

type (
	// Message is implemented by every generated message type.
	Message interface {
		// MessageName is the fully qualified schema name, e.g. xolir.Program.
		MessageName() string
		Reset()
		AppendWire(b []byte) []byte
		UnmarshalWire(d *Decoder) error

		// Validate reports the first value Decoder would refuse to read back.
		Validate() error
	}
)

// Marshal returns the wire encoding of m.
// It fails with *EncodeError if m holds a string that is not valid UTF-8.
func Marshal(m Message) ([]byte, error) {
	err := m.Validate()
	if err != nil {
		return nil, err
	}

	return m.AppendWire(nil), nil
}

// Unmarshal decodes b into m. m is reset first, and reset again if decoding
// fails, so it never holds a partially decoded value.
func Unmarshal(b []byte, m Message) error {
	m.Reset()

	err := m.UnmarshalWire(NewDecoder(m.MessageName(), b))
	if err != nil {
		m.Reset()
		return err
	}

	return nil
}

func AppendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	return AppendVarint(b, num, protowire.EncodeBool(v))
}

func AppendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func AppendFloat(b []byte, num protowire.Number, v float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func AppendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendMessage appends m as a length-delimited field.
// A nil message is written as an empty one.
func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	return AppendBytes(b, num, m.AppendWire(nil))
}

// CheckText fails if v, the value of field num of msg, is not valid UTF-8.
func CheckText(msg string, num protowire.Number, v string) error {
	if utf8.ValidString(v) {
		return nil
	}

	return &EncodeError{Message: msg, Field: num, Err: ErrInvalidUTF8}
}

// EqualDouble compares field values. NaN equals NaN.
func EqualDouble(x, y float64) bool {
	return x == y || math.IsNaN(x) && math.IsNaN(y)
}

func EqualFloat(x, y float32) bool {
	return x == y || math.IsNaN(float64(x)) && math.IsNaN(float64(y))
}

// Empty reports whether m encodes to nothing. A nil message is empty.
func Empty(m Message) bool {
	return len(m.AppendWire(nil)) == 0
}
