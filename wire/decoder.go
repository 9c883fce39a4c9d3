package wire

import (
	"math"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

type (
	// Decoder walks the fields of one encoded message.
	// The first error sticks: every later call is a no-op and Next reports false.
	Decoder struct {
		msg   string
		b     []byte
		pos   int
		depth int
		limit int

		num protowire.Number
		typ protowire.Type

		err error
	}
)

// MaxDepth is the deepest message nesting Decoder accepts.
const MaxDepth = 10000

// NewDecoder returns a Decoder over b. msg names the message for errors.
func NewDecoder(msg string, b []byte) *Decoder {
	return &Decoder{
		msg:   msg,
		b:     b,
		limit: MaxDepth,
	}
}

// Next reads the next field tag. It returns false at the end of input or on error.
func (d *Decoder) Next() bool {
	if d.err != nil || len(d.b) == 0 {
		return false
	}

	num, typ, n := protowire.ConsumeTag(d.b)
	if n < 0 {
		d.num = 0
		d.fail(protowire.ParseError(n))

		return false
	}

	d.num, d.typ = num, typ
	d.advance(n)

	return true
}

// Field is the number of the field read by the last Next.
func (d *Decoder) Field() protowire.Number { return d.num }

// Err is the first error met.
func (d *Decoder) Err() error { return d.err }

// Skip consumes the value of an unknown field.
func (d *Decoder) Skip() {
	if d.err != nil {
		return
	}

	n := protowire.ConsumeFieldValue(d.num, d.typ, d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return
	}

	d.advance(n)
}

func (d *Decoder) Uint64() uint64 { return d.varint() }
func (d *Decoder) Uint32() uint32 { return uint32(d.varint()) }
func (d *Decoder) Int64() int64   { return int64(d.varint()) }
func (d *Decoder) Int32() int32   { return int32(d.varint()) }
func (d *Decoder) Bool() bool     { return protowire.DecodeBool(d.varint()) }

func (d *Decoder) Double() float64 {
	if !d.expect(protowire.Fixed64Type) {
		return 0
	}

	v, n := protowire.ConsumeFixed64(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return 0
	}

	d.advance(n)

	return math.Float64frombits(v)
}

func (d *Decoder) Float() float32 {
	if !d.expect(protowire.Fixed32Type) {
		return 0
	}

	v, n := protowire.ConsumeFixed32(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return 0
	}

	d.advance(n)

	return math.Float32frombits(v)
}

// Text reads a string field. The value must be valid UTF-8.
func (d *Decoder) Text() string {
	v := d.bytes()
	if d.err != nil {
		return ""
	}

	if !utf8.Valid(v) {
		d.fail(ErrInvalidUTF8)
		return ""
	}

	return string(v)
}

// Bytes reads a bytes field. The result does not alias the input.
func (d *Decoder) Bytes() []byte {
	v := d.bytes()
	if len(v) == 0 {
		return nil
	}

	return append([]byte(nil), v...)
}

// Message decodes a length-delimited field into m, merging with its current value.
func (d *Decoder) Message(m Message) {
	v := d.bytes()
	if d.err != nil {
		return
	}

	if d.depth >= d.limit {
		d.fail(ErrDepth)
		return
	}

	sub := &Decoder{
		msg:   m.MessageName(),
		b:     v,
		pos:   d.pos - len(v),
		depth: d.depth + 1,
		limit: d.limit,
	}

	if err := m.UnmarshalWire(sub); err != nil {
		d.err = err
	}
}

func (d *Decoder) varint() uint64 {
	if !d.expect(protowire.VarintType) {
		return 0
	}

	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return 0
	}

	d.advance(n)

	return v
}

func (d *Decoder) bytes() []byte {
	if !d.expect(protowire.BytesType) {
		return nil
	}

	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		d.fail(protowire.ParseError(n))
		return nil
	}

	d.advance(n)

	return v
}

func (d *Decoder) expect(t protowire.Type) bool {
	if d.err != nil {
		return false
	}

	if d.typ != t {
		d.fail(ErrWireType)
		return false
	}

	return true
}

func (d *Decoder) advance(n int) {
	d.b = d.b[n:]
	d.pos += n
}

func (d *Decoder) fail(err error) {
	d.err = &DecodeError{
		Message:  d.msg,
		Field:    d.num,
		WireType: d.typ,
		Offset:   d.pos,
		Err:      err,
	}
}
