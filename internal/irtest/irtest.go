// Package irtest holds Program fixtures shared by tests.
package irtest

import (
	pb "github.com/apivolve/xolir/internal/xolirpb"
)

const Euler2Source = `
def even_fib_sub(max):
    sum = 0
    first, second = 1, 1
    while second < max:
        new = first + second
        if new % 2 == 0:
            sum += new
        first = second
        second = new
    return sum
`

func Int(v int64) pb.Expression { return pb.Expression{Kind: pb.Expression_Int{Int: v}} }

func Read(ix uint32) pb.Expression {
	return pb.Expression{Kind: pb.Expression_Read{Read: &pb.Read{VarIx: ix}}}
}

func Store(ix uint32, v pb.Expression) pb.Expression {
	return pb.Expression{Kind: pb.Expression_Store{Store: &pb.Store{VarIx: ix, Value: &v}}}
}

func Builtin(f pb.BuiltinFunc, args ...pb.Expression) pb.Expression {
	return pb.Expression{Kind: pb.Expression_Call{Call: &pb.Call{Callee: pb.Call_Builtin{Builtin: f}, Arguments: args}}}
}

func Call(ix uint32, args ...pb.Expression) pb.Expression {
	return pb.Expression{Kind: pb.Expression_Call{Call: &pb.Call{Callee: pb.Call_FuncIx{FuncIx: ix}, Arguments: args}}}
}

func Return(v pb.Expression) pb.Expression {
	return pb.Expression{Kind: pb.Expression_Return{Return: &pb.Return{Value: &v}}}
}

func BuiltinRef(t pb.BuiltinType) *pb.TypeRef {
	return &pb.TypeRef{Target: pb.TypeRef_Builtin{Builtin: t}}
}

// Euler2 sums the even Fibonacci numbers below 4000000.
func Euler2() *pb.Program {
	s64 := func(name string) pb.TypedName {
		return pb.NewTypedName(name, BuiltinRef(pb.BuiltinType_S_INT_64))
	}

	r64 := func(name string) pb.TypedName {
		return pb.NewTypedName(name, BuiltinRef(pb.BuiltinType_REAL_64))
	}

	cond := Builtin(pb.BuiltinFunc_LT_S64, Read(3), Read(0))
	even := Builtin(pb.BuiltinFunc_EQ_S64, Builtin(pb.BuiltinFunc_MOD_S64, Read(4), Int(2)), Int(0))

	loop := pb.NewWhile(&cond, []pb.Expression{
		Store(4, Builtin(pb.BuiltinFunc_ADD_S64, Read(2), Read(3))),
		{Kind: pb.Expression_If{If: &pb.If{
			Condition: &even,
			Code: []pb.Expression{
				Store(1, Builtin(pb.BuiltinFunc_ADD_S64, Read(1), Read(4))),
			},
		}}},
		Store(2, Read(3)),
		Store(3, Read(4)),
	})

	return &pb.Program{
		ProgramName: "euler2",
		Files: []pb.File{
			pb.NewFile(0, "test", Euler2Source),
		},
		Types: []pb.Type{
			pb.NewType(0, "Point", false, []pb.TypedName{r64("x"), r64("y")}),
		},
		Funcs: []pb.Func{
			{
				ID:      0,
				Name:    "main",
				Results: []pb.TypeRef{{}},
				Code: []pb.Expression{
					Call(1, Int(4_000_000)),
					Return(Int(0)),
				},
			},
			{
				ID:      1,
				Name:    "even_fib_sub",
				Args:    []pb.TypedName{s64("max")},
				Results: []pb.TypeRef{*BuiltinRef(pb.BuiltinType_S_INT_64)},
				Locals:  []pb.TypedName{s64("sum"), s64("first"), s64("second"), s64("new")},
				Code: []pb.Expression{
					Store(1, Int(0)),
					Store(2, Int(1)),
					Store(3, Int(1)),
					{Kind: pb.Expression_While{While: &loop}},
					Return(Read(1)),
				},
			},
		},
	}
}
