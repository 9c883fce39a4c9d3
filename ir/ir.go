package ir

import (
	"github.com/apivolve/xolir/internal/xolirpb"
	"github.com/apivolve/xolir/wire"
)

//nolint:revive,stylecheck
type (
	Program = xolirpb.Program
	File    = xolirpb.File
	Func    = xolirpb.Func

	Type        = xolirpb.Type
	TypedName   = xolirpb.TypedName
	TypeRef     = xolirpb.TypeRef
	BuiltinType = xolirpb.BuiltinType

	TypeRef_Builtin = xolirpb.TypeRef_Builtin
	TypeRef_TypeID  = xolirpb.TypeRef_TypeID

	Expression  = xolirpb.Expression
	Read        = xolirpb.Read
	Store       = xolirpb.Store
	Call        = xolirpb.Call
	If          = xolirpb.If
	While       = xolirpb.While
	Return      = xolirpb.Return
	BuiltinFunc = xolirpb.BuiltinFunc

	Expression_Int     = xolirpb.Expression_Int
	Expression_Real    = xolirpb.Expression_Real
	Expression_Boolean = xolirpb.Expression_Boolean
	Expression_Read    = xolirpb.Expression_Read
	Expression_Store   = xolirpb.Expression_Store
	Expression_Call    = xolirpb.Expression_Call
	Expression_If      = xolirpb.Expression_If
	Expression_While   = xolirpb.Expression_While
	Expression_Return  = xolirpb.Expression_Return

	Call_FuncIx  = xolirpb.Call_FuncIx
	Call_Builtin = xolirpb.Call_Builtin

	CompileRequest  = xolirpb.CompileRequest
	CompileResponse = xolirpb.CompileResponse
	BackendClient   = xolirpb.BackendClient

	Message     = wire.Message
	DecodeError = wire.DecodeError
	EncodeError = wire.EncodeError
)

//nolint:revive,stylecheck
const (
	BuiltinType_S_INT_32 = xolirpb.BuiltinType_S_INT_32
	BuiltinType_S_INT_64 = xolirpb.BuiltinType_S_INT_64
	BuiltinType_REAL_64  = xolirpb.BuiltinType_REAL_64
	BuiltinType_BOOL     = xolirpb.BuiltinType_BOOL

	BuiltinFunc_ADD_S64   = xolirpb.BuiltinFunc_ADD_S64
	BuiltinFunc_SUB_S64   = xolirpb.BuiltinFunc_SUB_S64
	BuiltinFunc_MUL_S64   = xolirpb.BuiltinFunc_MUL_S64
	BuiltinFunc_DIV_S64   = xolirpb.BuiltinFunc_DIV_S64
	BuiltinFunc_MOD_S64   = xolirpb.BuiltinFunc_MOD_S64
	BuiltinFunc_EQ_S64    = xolirpb.BuiltinFunc_EQ_S64
	BuiltinFunc_NE_S64    = xolirpb.BuiltinFunc_NE_S64
	BuiltinFunc_LT_S64    = xolirpb.BuiltinFunc_LT_S64
	BuiltinFunc_LE_S64    = xolirpb.BuiltinFunc_LE_S64
	BuiltinFunc_GT_S64    = xolirpb.BuiltinFunc_GT_S64
	BuiltinFunc_GE_S64    = xolirpb.BuiltinFunc_GE_S64
	BuiltinFunc_ADD_R64   = xolirpb.BuiltinFunc_ADD_R64
	BuiltinFunc_SUB_R64   = xolirpb.BuiltinFunc_SUB_R64
	BuiltinFunc_MUL_R64   = xolirpb.BuiltinFunc_MUL_R64
	BuiltinFunc_DIV_R64   = xolirpb.BuiltinFunc_DIV_R64
	BuiltinFunc_LT_R64    = xolirpb.BuiltinFunc_LT_R64
	BuiltinFunc_EQ_R64    = xolirpb.BuiltinFunc_EQ_R64
	BuiltinFunc_NOT       = xolirpb.BuiltinFunc_NOT
	BuiltinFunc_AND       = xolirpb.BuiltinFunc_AND
	BuiltinFunc_OR        = xolirpb.BuiltinFunc_OR
	BuiltinFunc_PRINT_S64 = xolirpb.BuiltinFunc_PRINT_S64

	Backend_Compile_FullMethodName = xolirpb.Backend_Compile_FullMethodName
)

//nolint:revive,stylecheck
var (
	NewProgram = xolirpb.NewProgram
	NewFile    = xolirpb.NewFile
	NewFunc    = xolirpb.NewFunc

	NewType      = xolirpb.NewType
	NewTypedName = xolirpb.NewTypedName
	NewTypeRef   = xolirpb.NewTypeRef

	NewExpression = xolirpb.NewExpression
	NewRead       = xolirpb.NewRead
	NewStore      = xolirpb.NewStore
	NewCall       = xolirpb.NewCall
	NewIf         = xolirpb.NewIf
	NewWhile      = xolirpb.NewWhile
	NewReturn     = xolirpb.NewReturn

	NewCompileRequest  = xolirpb.NewCompileRequest
	NewCompileResponse = xolirpb.NewCompileResponse
	NewBackendClient   = xolirpb.NewBackendClient

	BuiltinType_name  = xolirpb.BuiltinType_name
	BuiltinType_value = xolirpb.BuiltinType_value
	BuiltinFunc_name  = xolirpb.BuiltinFunc_name
	BuiltinFunc_value = xolirpb.BuiltinFunc_value

	ErrWireType    = wire.ErrWireType
	ErrInvalidUTF8 = wire.ErrInvalidUTF8
	ErrDepth       = wire.ErrDepth
)
