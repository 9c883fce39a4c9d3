package ir_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/apivolve/xolir/internal/irtest"
	"github.com/apivolve/xolir/ir"
)

func TestHelloWorld(t *testing.T) {
	p := ir.NewProgram("Hello World", nil, nil, nil)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x0a, 11}, "Hello World"...), b)

	var q ir.Program
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.Equal(t, "Hello World", q.ProgramName)
	assert.Equal(t, "Hello World", q.GetProgramName())
	assert.Empty(t, q.Files)
	assert.Empty(t, q.Types)
	assert.Empty(t, q.Funcs)
	assert.True(t, p.Equal(&q))
}

func TestEmptyProgram(t *testing.T) {
	var p ir.Program

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, b)

	q := ir.Program{ProgramName: "stale"}
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.Equal(t, ir.Program{}, q)
}

func TestEuler2RoundTrip(t *testing.T) {
	p := irtest.Euler2()

	b, err := p.MarshalBinary()
	require.NoError(t, err)

	again, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, again)

	var q ir.Program
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.True(t, p.Equal(&q))
	assert.Equal(t, *p, q)

	f := q.Funcs[1]
	assert.Equal(t, "even_fib_sub", f.Name)
	assert.Equal(t, ir.BuiltinType_S_INT_64, f.Args[0].GetTyp().GetBuiltin())

	loop := f.Code[3].GetWhile()
	require.NotNil(t, loop)

	cond := loop.GetCondition().GetCall()
	assert.Equal(t, ir.BuiltinFunc_LT_S64, cond.GetBuiltin())
	assert.Equal(t, uint32(3), cond.Arguments[0].GetRead().GetVarIx())

	assert.Nil(t, q.Funcs[0].Results[0].GetTarget())
}

func TestEqual(t *testing.T) {
	p := irtest.Euler2()
	q := irtest.Euler2()

	assert.True(t, p.Equal(q))

	q.Funcs[1].Code[3].GetWhile().Code[1].GetIf().GetCondition().GetCall().Arguments[1] = irtest.Int(1)
	assert.False(t, p.Equal(q))

	q = irtest.Euler2()
	q.Funcs[0].Results[0] = ir.TypeRef{Target: ir.TypeRef_Builtin{Builtin: ir.BuiltinType_S_INT_32}}
	assert.False(t, p.Equal(q), "builtin S_INT_32 is set, not absent")

	var nilp *ir.Program
	assert.True(t, nilp.Equal(nil))
	assert.False(t, nilp.Equal(p))
}

func TestGettersOnNil(t *testing.T) {
	var e *ir.Expression

	assert.Nil(t, e.GetKind())
	assert.Equal(t, int64(0), e.GetInt())
	assert.Nil(t, e.GetCall())

	var c *ir.Call
	assert.Equal(t, ir.BuiltinFunc_ADD_S64, c.GetBuiltin())
	assert.Nil(t, c.GetArguments())
}

func TestOneofZeroValueIsEncoded(t *testing.T) {
	e := irtest.Int(0)

	b, err := e.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x00}, b)

	var q ir.Expression
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.Equal(t, ir.Expression_Int{}, q.Kind)
}

func TestRealNaN(t *testing.T) {
	p := ir.NewProgram("x", nil, nil, []ir.Func{{
		Code: []ir.Expression{{Kind: ir.Expression_Real{Real: math.NaN()}}},
	}})

	assert.True(t, p.Equal(&p))

	b, err := p.MarshalBinary()
	require.NoError(t, err)

	var q ir.Program
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.True(t, p.Equal(&q))
	assert.True(t, math.IsNaN(q.Funcs[0].Code[0].GetReal()))

	other := ir.Expression{Kind: ir.Expression_Real{Real: 0}}
	assert.False(t, q.Funcs[0].Code[0].Equal(&other))
}

func TestNilOneofMessage(t *testing.T) {
	p := ir.NewProgram("x", nil, nil, []ir.Func{{
		Code: []ir.Expression{
			{Kind: ir.Expression_Call{}},
			{Kind: ir.Expression_Return{}},
			irtest.Store(1, ir.Expression{Kind: ir.Expression_Read{}}),
		},
	}})

	b, err := p.MarshalBinary()
	require.NoError(t, err)

	var q ir.Program
	err = q.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.NotNil(t, q.Funcs[0].Code[0].GetCall())
	assert.True(t, p.Equal(&q))
	assert.True(t, q.Equal(&p))

	again, err := q.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, b, again)

	// a nil member is not the same as a filled one
	filled := irtest.Call(2)
	assert.False(t, p.Funcs[0].Code[0].Equal(&filled))
	assert.False(t, filled.Equal(&p.Funcs[0].Code[0]))
}

func TestMarshalInvalidUTF8(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    ir.Message
	}{
		{"program_name", &ir.Program{ProgramName: "\xff"}},
		{"file_source", &ir.Program{Files: []ir.File{{Source: "ok\xc3"}}}},
		{"nested_local", &ir.Program{Funcs: []ir.Func{{Locals: []ir.TypedName{{Name: "\xfe"}}}}}},
		{"diagnostics", &ir.CompileResponse{Diagnostics: []string{"fine", "\xff"}}},
		{"request", &ir.CompileRequest{Program: &ir.Program{ProgramName: "\xff"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m.(interface{ MarshalBinary() ([]byte, error) })

			b, err := m.MarshalBinary()
			assert.Nil(t, b)

			var eerr *ir.EncodeError
			require.True(t, errors.As(err, &eerr), "error: %v", err)
			assert.ErrorIs(t, err, ir.ErrInvalidUTF8)
		})
	}

	var p ir.Program
	err := p.UnmarshalBinary(append(protowire.AppendTag(nil, 1, protowire.BytesType), 1, 0xff))
	assert.ErrorIs(t, err, ir.ErrInvalidUTF8)
}

func TestUnmarshalInvalid(t *testing.T) {
	valid, err := irtest.Euler2().MarshalBinary()
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		b    []byte
	}{
		{"truncated", valid[:len(valid)-3]},
		{"bad_tag", []byte{0x80}},
		{"field_zero", []byte{0x00, 0x01}},
		{"wire_type", protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 1)},
		{"utf8", append(protowire.AppendTag(nil, 1, protowire.BytesType), 2, 0xff, 0xfe)},
		{"nested", append(protowire.AppendTag(nil, 4, protowire.BytesType), 3, 0x1a, 0x01, 0xff)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := ir.Program{ProgramName: "stale"}

			assert.NotPanics(t, func() {
				err = p.UnmarshalBinary(tc.b)
			})

			var derr *ir.DecodeError
			require.True(t, errors.As(err, &derr), "error: %v", err)
			assert.Equal(t, ir.Program{}, p)
		})
	}
}

func TestUnmarshalErrorKinds(t *testing.T) {
	var p ir.Program

	err := p.UnmarshalBinary(protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 1))
	assert.ErrorIs(t, err, ir.ErrWireType)

	err = p.UnmarshalBinary(append(protowire.AppendTag(nil, 1, protowire.BytesType), 1, 0xff))
	assert.ErrorIs(t, err, ir.ErrInvalidUTF8)
}

func TestUnknownFieldsSkipped(t *testing.T) {
	b := protowire.AppendTag(nil, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "prog")

	var p ir.Program
	err := p.UnmarshalBinary(b)
	require.NoError(t, err)

	assert.Equal(t, ir.Program{ProgramName: "prog"}, p)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "PRINT_S64", ir.BuiltinFunc_PRINT_S64.String())
	assert.Equal(t, "REAL_64", ir.BuiltinType_REAL_64.String())
	assert.Equal(t, "42", ir.BuiltinType(42).String())
	assert.Equal(t, int32(7), ir.BuiltinFunc_value["LT_S64"])
	assert.Equal(t, "BOOL", ir.BuiltinType_name[3])
}
