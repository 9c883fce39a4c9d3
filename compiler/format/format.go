// Package format renders IR values in the XOLIR text notation.
//
//	{Program program_name = "euler2"
//		funcs = [
//			{Func id = 1, name = "even_fib_sub"
//				args = [max #builtin(%S_INT_64)]
//				code = {
//					$1 = 0
//					while LT_S64($3, $0) {
//					...
//
// Variables are $N by index, args first then locals.
// Calls of program functions are @N(args), builtins are NAME(args).
package format

import (
	"context"
	"strconv"
	"strings"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/apivolve/xolir/ir"
)

func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	return format(ctx, b, x, 0)
}

func format(ctx context.Context, b []byte, x any, d int) ([]byte, error) {
	switch x := x.(type) {
	case *ir.Program:
		return formatProgram(ctx, b, x, d)
	case *ir.Func:
		return formatFunc(ctx, b, x, d)
	case *ir.Type:
		return formatType(b, x, d), nil
	case *ir.Expression:
		return formatStmt(ctx, b, x, d)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatProgram(ctx context.Context, b []byte, x *ir.Program, d int) (_ []byte, err error) {
	b = app(b, d, "{Program program_name = %q\n", x.ProgramName)

	if len(x.Files) != 0 {
		b = app(b, d+1, "files = [\n")

		for _, f := range x.Files {
			b = app(b, d+2, "{File id = %d, name = %q, source = %q}\n", f.ID, f.Name, f.Source)
		}

		b = app(b, d+1, "]\n")
	}

	if len(x.Types) != 0 {
		b = app(b, d+1, "types = [\n")

		for i := range x.Types {
			b = formatType(b, &x.Types[i], d+2)
		}

		b = app(b, d+1, "]\n")
	}

	if len(x.Funcs) != 0 {
		b = app(b, d+1, "funcs = [\n")

		for i := range x.Funcs {
			b, err = formatFunc(ctx, b, &x.Funcs[i], d+2)
			if err != nil {
				return nil, errors.Wrap(err, "func %v", x.Funcs[i].Name)
			}
		}

		b = app(b, d+1, "]\n")
	}

	b = app(b, d, "}\n")

	return b, nil
}

func formatType(b []byte, x *ir.Type, d int) []byte {
	b = app(b, d, "{Type id = %d, name = %q, is_anonymous = %v, fields = ", x.ID, x.Name, x.IsAnonymous)
	b = formatNames(b, x.Fields)
	b = append(b, "}\n"...)

	return b
}

func formatFunc(ctx context.Context, b []byte, x *ir.Func, d int) (_ []byte, err error) {
	b = app(b, d, "{Func id = %d, name = %q\n", x.ID, x.Name)

	if len(x.Args) != 0 {
		b = app(b, d+1, "args = ")
		b = formatNames(b, x.Args)
		b = append(b, '\n')
	}

	if len(x.Results) != 0 {
		b = app(b, d+1, "results = [")

		for i := range x.Results {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = formatTypeRef(b, &x.Results[i])
		}

		b = append(b, "]\n"...)
	}

	if len(x.Locals) != 0 {
		b = app(b, d+1, "locals = ")
		b = formatNames(b, x.Locals)
		b = append(b, '\n')
	}

	b = app(b, d+1, "code = {\n")

	b, err = formatBlock(ctx, b, x.Code, d+2)
	if err != nil {
		return nil, errors.Wrap(err, "code")
	}

	b = app(b, d+1, "}\n")
	b = app(b, d, "}\n")

	return b, nil
}

func formatNames(b []byte, l []ir.TypedName) []byte {
	b = append(b, '[')

	for i := range l {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = append(b, l[i].Name...)
		b = append(b, ' ')
		b = formatTypeRef(b, l[i].Typ)
	}

	return append(b, ']')
}

func formatTypeRef(b []byte, x *ir.TypeRef) []byte {
	switch t := x.GetTarget().(type) {
	case ir.TypeRef_Builtin:
		return hfmt.Appendf(b, "#builtin(%%%v)", t.Builtin)
	case ir.TypeRef_TypeID:
		return hfmt.Appendf(b, "#type_id(%d)", t.TypeID)
	default:
		return append(b, "#none"...)
	}
}

func formatBlock(ctx context.Context, b []byte, l []ir.Expression, d int) (_ []byte, err error) {
	for i := range l {
		b, err = formatStmt(ctx, b, &l[i], d)
		if err != nil {
			return nil, errors.Wrap(err, "stmt %d", i)
		}
	}

	return b, nil
}

func formatStmt(ctx context.Context, b []byte, x *ir.Expression, d int) (_ []byte, err error) {
	switch k := x.GetKind().(type) {
	case ir.Expression_If:
		b = app(b, d, "if ")

		b, err = formatExpr(ctx, b, k.If.GetCondition())
		if err != nil {
			return nil, errors.Wrap(err, "cond")
		}

		b = append(b, " {\n"...)

		b, err = formatBlock(ctx, b, k.If.GetCode(), d+1)
		if err != nil {
			return nil, errors.Wrap(err, "then block")
		}

		if len(k.If.GetElse()) != 0 {
			b = app(b, d, "} else {\n")

			b, err = formatBlock(ctx, b, k.If.GetElse(), d+1)
			if err != nil {
				return nil, errors.Wrap(err, "else block")
			}
		}

		b = app(b, d, "}\n")
	case ir.Expression_While:
		b = app(b, d, "while ")

		b, err = formatExpr(ctx, b, k.While.GetCondition())
		if err != nil {
			return nil, errors.Wrap(err, "cond")
		}

		b = append(b, " {\n"...)

		b, err = formatBlock(ctx, b, k.While.GetCode(), d+1)
		if err != nil {
			return nil, errors.Wrap(err, "body")
		}

		b = app(b, d, "}\n")
	case ir.Expression_Return:
		b = app(b, d, "return")

		if v := k.Return.GetValue(); v != nil {
			b = append(b, ' ')

			b, err = formatExpr(ctx, b, v)
			if err != nil {
				return nil, errors.Wrap(err, "value")
			}
		}

		b = append(b, '\n')
	default:
		b = app(b, d, "")

		b, err = formatExpr(ctx, b, x)
		if err != nil {
			return nil, err
		}

		b = append(b, '\n')
	}

	return b, nil
}

func formatExpr(ctx context.Context, b []byte, x *ir.Expression) (_ []byte, err error) {
	switch k := x.GetKind().(type) {
	case nil:
		b = append(b, "#none"...)
	case ir.Expression_Int:
		b = strconv.AppendInt(b, k.Int, 10)
	case ir.Expression_Real:
		s := strconv.FormatFloat(k.Real, 'g', -1, 64)
		b = append(b, s...)

		if !strings.ContainsAny(s, ".eIN") {
			b = append(b, ".0"...)
		}
	case ir.Expression_Boolean:
		b = strconv.AppendBool(b, k.Boolean)
	case ir.Expression_Read:
		b = hfmt.Appendf(b, "$%d", k.Read.GetVarIx())
	case ir.Expression_Store:
		b = hfmt.Appendf(b, "$%d = ", k.Store.GetVarIx())

		b, err = formatExpr(ctx, b, k.Store.GetValue())
		if err != nil {
			return nil, errors.Wrap(err, "store $%d", k.Store.GetVarIx())
		}
	case ir.Expression_Call:
		switch c := k.Call.GetCallee().(type) {
		case ir.Call_Builtin:
			b = append(b, c.Builtin.String()...)
		case ir.Call_FuncIx:
			b = hfmt.Appendf(b, "@%d", c.FuncIx)
		default:
			b = append(b, "#none"...)
		}

		b = append(b, '(')

		for i := range k.Call.GetArguments() {
			if i != 0 {
				b = append(b, ", "...)
			}

			b, err = formatExpr(ctx, b, &k.Call.Arguments[i])
			if err != nil {
				return nil, errors.Wrap(err, "arg %d", i)
			}
		}

		b = append(b, ')')
	default:
		return nil, errors.New("unsupported expr: %T", k)
	}

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"

	for d > len(tabs) {
		b = append(b, tabs...)
		d -= len(tabs)
	}

	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)

	return b
}
