package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// node is a hand-written message shaped like the generated ones:
//
//	message Node { string name = 1; int64 n = 2; Node child = 3; repeated string tags = 4; double w = 5; }
type node struct {
	Name  string
	N     int64
	Child *node
	Tags  []string
	W     float64
}

func (*node) MessageName() string { return "test.Node" }

func (x *node) Reset() { *x = node{} }

func (x *node) AppendWire(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Name != "" {
		b = AppendString(b, 1, x.Name)
	}
	if x.N != 0 {
		b = AppendVarint(b, 2, uint64(x.N))
	}
	if x.Child != nil {
		b = AppendMessage(b, 3, x.Child)
	}
	for _, v := range x.Tags {
		b = AppendString(b, 4, v)
	}
	if x.W != 0 {
		b = AppendDouble(b, 5, x.W)
	}
	return b
}

func (x *node) Validate() error {
	if x == nil {
		return nil
	}
	if err := CheckText("test.Node", 1, x.Name); err != nil {
		return err
	}
	if err := x.Child.Validate(); err != nil {
		return err
	}
	for i := range x.Tags {
		if err := CheckText("test.Node", 4, x.Tags[i]); err != nil {
			return err
		}
	}
	return nil
}

func (x *node) UnmarshalWire(d *Decoder) error {
	for d.Next() {
		switch d.Field() {
		case 1:
			x.Name = d.Text()
		case 2:
			x.N = d.Int64()
		case 3:
			if x.Child == nil {
				x.Child = new(node)
			}
			d.Message(x.Child)
		case 4:
			x.Tags = append(x.Tags, d.Text())
		case 5:
			x.W = d.Double()
		default:
			d.Skip()
		}
	}
	return d.Err()
}

func TestRoundTrip(t *testing.T) {
	in := &node{
		Name:  "root",
		N:     -42,
		Child: &node{Name: "leaf", Tags: []string{"a", "", "b"}},
		W:     1.5,
	}

	b, err := Marshal(in)
	require.NoError(t, err)

	var out node
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, in, &out)

	again, err := Marshal(&out)
	require.NoError(t, err)
	assert.Equal(t, b, again, "deterministic")
}

func TestEmpty(t *testing.T) {
	b, err := Marshal(&node{})
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.True(t, Empty(&node{}))
	assert.True(t, Empty((*node)(nil)))
	assert.False(t, Empty(&node{Child: &node{}}))

	out := node{Name: "stale"}
	require.NoError(t, Unmarshal(nil, &out))
	assert.Equal(t, node{}, out)
}

func TestEncodingMatchesProtobuf(t *testing.T) {
	b, err := Marshal(&node{Name: "ab", N: 1, Child: &node{}})
	require.NoError(t, err)

	// 0a 02 'a' 'b' | 10 01 | 1a 00
	assert.Equal(t, []byte{0x0a, 0x02, 'a', 'b', 0x10, 0x01, 0x1a, 0x00}, b)
}

func TestSkipUnknown(t *testing.T) {
	var b []byte
	b = AppendVarint(b, 100, 7)
	b = AppendString(b, 1, "kept")
	b = AppendDouble(b, 101, 3)
	b = AppendFloat(b, 102, 3)
	b = AppendBytes(b, 103, []byte{1, 2, 3})

	var out node
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, node{Name: "kept"}, out)
}

func TestMergeRepeatedMessage(t *testing.T) {
	var b []byte
	b = AppendMessage(b, 3, &node{Name: "first", N: 1})
	b = AppendMessage(b, 3, &node{N: 2, Tags: []string{"x"}})

	var out node
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, &node{Name: "first", N: 2, Tags: []string{"x"}}, out.Child)
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    []byte
		field protowire.Number
		is    error
	}{
		{name: "truncated_length", in: []byte{0x0a, 0x05, 'a'}, field: 1},
		{name: "truncated_varint", in: []byte{0x10, 0xff}, field: 2},
		{name: "zero_field_number", in: []byte{0x00, 0x01}, field: 0},
		{name: "varint_for_string", in: []byte{0x08, 0x01}, field: 1, is: ErrWireType},
		{name: "bytes_for_int", in: []byte{0x12, 0x00}, field: 2, is: ErrWireType},
		{name: "invalid_utf8", in: []byte{0x0a, 0x02, 0xff, 0xfe}, field: 1, is: ErrInvalidUTF8},
		{name: "lone_end_group", in: []byte{0x34}, field: 6},
		{name: "nested_truncated", in: []byte{0x1a, 0x02, 0x10, 0xff}, field: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := node{Name: "stale"}

			err := Unmarshal(tc.in, &out)
			require.Error(t, err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.field, de.Field)

			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}

			assert.Equal(t, node{}, out, "no partial value")
		})
	}
}

func TestNestedErrorLocation(t *testing.T) {
	// child starts at offset 2, its broken string ends at offset 5
	in := []byte{0x1a, 0x03, 0x0a, 0x01, 0xff}

	var out node
	err := Unmarshal(in, &out)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "test.Node", de.Message)
	assert.Equal(t, protowire.Number(1), de.Field)
	assert.Equal(t, 5, de.Offset)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "field 1")
}

func TestDepthLimit(t *testing.T) {
	x := &node{}
	for range 5 {
		x = &node{Child: x}
	}

	b := x.AppendWire(nil)

	d := NewDecoder("test.Node", b)
	d.limit = 3

	var out node
	err := out.UnmarshalWire(d)
	assert.ErrorIs(t, err, ErrDepth)

	d = NewDecoder("test.Node", b)
	d.limit = 5

	out = node{}
	assert.NoError(t, out.UnmarshalWire(d))
}

func TestStickyError(t *testing.T) {
	d := NewDecoder("test.Node", []byte{0x08, 0x01, 0x08, 0x01})

	require.True(t, d.Next())
	assert.Equal(t, "", d.Text())
	assert.Error(t, d.Err())

	assert.False(t, d.Next())
	assert.Equal(t, int64(0), d.Int64())
}

func TestMarshalInvalidUTF8(t *testing.T) {
	for _, x := range []*node{
		{Name: "\xff"},
		{Name: "ok", Child: &node{Name: "a\xc3"}},
		{Tags: []string{"ok", "\xfe"}},
	} {
		b, err := Marshal(x)
		assert.Nil(t, b)

		var ee *EncodeError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, "test.Node", ee.Message)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	}

	_, err := Codec{}.Marshal(&node{Name: "\xff"})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestEqualFloats(t *testing.T) {
	nan := math.NaN()

	assert.True(t, EqualDouble(nan, nan))
	assert.True(t, EqualDouble(1.5, 1.5))
	assert.True(t, EqualDouble(0, math.Copysign(0, -1)))
	assert.False(t, EqualDouble(nan, 0))
	assert.False(t, EqualDouble(1, 2))

	assert.True(t, EqualFloat(float32(nan), float32(nan)))
	assert.False(t, EqualFloat(float32(nan), 1))
	assert.True(t, EqualFloat(2, 2))
}
