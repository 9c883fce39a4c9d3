package ir_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/apivolve/xolir/compiler/layout"
	"github.com/apivolve/xolir/compiler/schema"
	"github.com/apivolve/xolir/internal/irtest"
	"github.com/apivolve/xolir/ir"
)

func storeMessage(t *testing.T, name protoreflect.FullName) protoreflect.MessageDescriptor {
	t.Helper()

	ctx := context.Background()

	res, err := layout.Resolver{Policy: layout.Fixed, Dir: "../proto"}.Resolve(ctx)
	require.NoError(t, err)

	s, err := schema.Compile(ctx, res)
	require.NoError(t, err)

	md := s.Message(name)
	require.NotNil(t, md, "message %v", name)

	return md
}

func TestConformanceEncode(t *testing.T) {
	md := storeMessage(t, "xolir.Program")

	p := irtest.Euler2()

	b, err := p.MarshalBinary()
	require.NoError(t, err)

	dm := dynamicpb.NewMessage(md)
	err = proto.UnmarshalOptions{DiscardUnknown: false}.Unmarshal(b, dm)
	require.NoError(t, err)

	assert.Empty(t, dm.GetUnknown())

	fields := md.Fields()
	assert.Equal(t, "euler2", dm.Get(fields.ByName("program_name")).String())

	funcs := dm.Get(fields.ByName("funcs")).List()
	require.Equal(t, 2, funcs.Len())

	fn := funcs.Get(1).Message()
	fnd := fn.Descriptor().Fields()
	assert.Equal(t, "even_fib_sub", fn.Get(fnd.ByName("name")).String())
	assert.Equal(t, uint64(1), fn.Get(fnd.ByName("id")).Uint())
	assert.Equal(t, 4, fn.Get(fnd.ByName("locals")).List().Len())

	entry := funcs.Get(0).Message()
	results := entry.Get(fnd.ByName("results")).List()
	require.Equal(t, 1, results.Len())
	assert.Nil(t, results.Get(0).Message().WhichOneof(results.Get(0).Message().Descriptor().Oneofs().ByName("target")))

	// protobuf-go writes oneof members after the other fields,
	// so compare values, not bytes
	again, err := proto.MarshalOptions{Deterministic: true}.Marshal(dm)
	require.NoError(t, err)

	var q ir.Program
	err = q.UnmarshalBinary(again)
	require.NoError(t, err)
	assert.True(t, p.Equal(&q))

	dq := dynamicpb.NewMessage(md)
	err = proto.Unmarshal(again, dq)
	require.NoError(t, err)
	assert.True(t, proto.Equal(dm, dq))
}

func TestConformanceNaN(t *testing.T) {
	md := storeMessage(t, "xolir.Expression")

	e := ir.Expression{Kind: ir.Expression_Real{Real: math.NaN()}}

	b, err := e.MarshalBinary()
	require.NoError(t, err)

	dm := dynamicpb.NewMessage(md)
	err = proto.Unmarshal(b, dm)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(dm.Get(md.Fields().ByName("real")).Float()))

	again, err := proto.Marshal(dm)
	require.NoError(t, err)

	var q ir.Expression
	err = q.UnmarshalBinary(again)
	require.NoError(t, err)
	assert.True(t, e.Equal(&q))
}

func TestConformanceDecode(t *testing.T) {
	md := storeMessage(t, "xolir.Expression")

	fields := md.Fields()

	call := dynamicpb.NewMessage(fields.ByName("call").Message())
	cfields := call.Descriptor().Fields()
	call.Set(cfields.ByName("builtin"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(ir.BuiltinFunc_ADD_S64)))

	args := call.Mutable(cfields.ByName("arguments")).List()

	arg := dynamicpb.NewMessage(md)
	arg.Set(fields.ByName("int"), protoreflect.ValueOfInt64(-5))
	args.Append(protoreflect.ValueOfMessage(arg))

	arg = dynamicpb.NewMessage(md)
	arg.Set(fields.ByName("real"), protoreflect.ValueOfFloat64(2.5))
	args.Append(protoreflect.ValueOfMessage(arg))

	dm := dynamicpb.NewMessage(md)
	dm.Set(fields.ByName("call"), protoreflect.ValueOfMessage(call))

	b, err := proto.Marshal(dm)
	require.NoError(t, err)

	var e ir.Expression
	err = e.UnmarshalBinary(b)
	require.NoError(t, err)

	want := irtest.Builtin(ir.BuiltinFunc_ADD_S64,
		irtest.Int(-5),
		ir.Expression{Kind: ir.Expression_Real{Real: 2.5}},
	)

	assert.True(t, want.Equal(&e), "got %+v", e)
	assert.Equal(t, ir.BuiltinFunc_ADD_S64, e.GetCall().GetBuiltin())
	assert.Equal(t, int64(-5), e.GetCall().Arguments[0].GetInt())
}
