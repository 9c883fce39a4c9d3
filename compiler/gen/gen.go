// Package gen emits the Go bindings of a compiled schema.
//
// Every file reachable from the entry point becomes one <name>.gen.go file
// with plain struct types, constructors, accessors, structural equality and
// protobuf wire encoding backed by package wire. Services get client stubs
// only.
package gen

import (
	"context"
	"fmt"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"goa.design/goa/v3/codegen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/apivolve/xolir/compiler/schema"
)

type (
	Options struct {
		// Dir is the output directory.
		Dir string

		// Package is the Go package name of the generated files.
		Package string

		// WireImport is the import path of the wire runtime.
		WireImport string
	}

	fileData struct {
		Source  string
		Package string
		Imports []*codegen.ImportSpec

		Enums    []*enumData
		Messages []*messageData
		Services []*serviceData
	}

	enumData struct {
		Name     string
		FullName string
		Values   []*enumValueData
	}

	enumValueData struct {
		Const  string
		Name   string
		Number int32
	}

	messageData struct {
		Name     string
		FullName string

		Items  []*fieldData // struct fields in declaration order, a oneof is one item
		Wire   []*fieldData // Items in field number order
		Fields []*fieldData // every field, oneof members included
		Oneofs []*fieldData

		Checked bool // some field needs Validate
	}

	fieldData struct {
		Name   string
		Param  string
		GoType string
		Elem   string
		Zero   string
		Number int32

		Repeated bool
		Message  bool

		Cond   string
		Append string
		Decode string
		Differ string
		Same   string
		Check  string // expression of type error, empty if nothing to check

		// oneof item
		Iface   string
		Members []*fieldData
		Checked bool // some member has Check

		// oneof member
		Oneof   string
		Wrapper string
	}

	serviceData struct {
		Name     string
		FullName string
		Lower    string
		Methods  []*methodData
	}

	methodData struct {
		Name   string
		Input  string
		Output string
	}

	scalar struct {
		goType string
		zero   string
		decode string
		append string // format: num, value
		cond   string // format: value
		differ string // format: x, y
		same   string // format: x, y
	}
)

const (
	DefaultPackage    = "xolirpb"
	DefaultWireImport = "github.com/apivolve/xolir/wire"
)

var scalars = map[protoreflect.Kind]scalar{
	protoreflect.StringKind: {"string", `""`, "d.Text()", "wire.AppendString(b, %d, %s)", `%s != ""`, "%s != %s", "%s == %s"},
	protoreflect.BytesKind:  {"[]byte", "nil", "d.Bytes()", "wire.AppendBytes(b, %d, %s)", "len(%s) != 0", "!bytes.Equal(%s, %s)", "bytes.Equal(%s, %s)"},
	protoreflect.BoolKind:   {"bool", "false", "d.Bool()", "wire.AppendBool(b, %d, %s)", "%s", "%s != %s", "%s == %s"},
	protoreflect.Int32Kind:  {"int32", "0", "d.Int32()", "wire.AppendVarint(b, %d, uint64(%s))", "%s != 0", "%s != %s", "%s == %s"},
	protoreflect.Int64Kind:  {"int64", "0", "d.Int64()", "wire.AppendVarint(b, %d, uint64(%s))", "%s != 0", "%s != %s", "%s == %s"},
	protoreflect.Uint32Kind: {"uint32", "0", "d.Uint32()", "wire.AppendVarint(b, %d, uint64(%s))", "%s != 0", "%s != %s", "%s == %s"},
	protoreflect.Uint64Kind: {"uint64", "0", "d.Uint64()", "wire.AppendVarint(b, %d, %s)", "%s != 0", "%s != %s", "%s == %s"},
	protoreflect.DoubleKind: {"float64", "0", "d.Double()", "wire.AppendDouble(b, %d, %s)", "math.Float64bits(%s) != 0", "!wire.EqualDouble(%s, %s)", "wire.EqualDouble(%s, %s)"},
	protoreflect.FloatKind:  {"float32", "0", "d.Float()", "wire.AppendFloat(b, %d, %s)", "math.Float32bits(%s) != 0", "!wire.EqualFloat(%s, %s)", "wire.EqualFloat(%s, %s)"},
}

// Generate renders the Go files of s into opts.Dir and returns their paths.
// Files are rendered into a temporary directory first and moved into
// opts.Dir only when all of them rendered, so a failed run leaves the
// previous output in place.
func Generate(ctx context.Context, s *schema.Schema, opts Options) (paths []string, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "generate bindings", "dir", opts.Dir, "files", len(s.Files))
	defer tr.Finish("err", &err)

	if opts.Package == "" {
		opts.Package = DefaultPackage
	}

	if opts.WireImport == "" {
		opts.WireImport = DefaultWireImport
	}

	files, err := Files(ctx, s, opts)
	if err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "output dir")
	}

	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, errors.Wrap(err, "create output dir")
	}

	tmp, err := os.MkdirTemp(dir, ".xolir-gen-")
	if err != nil {
		return nil, errors.Wrap(err, "create staging dir")
	}

	defer func() {
		e := os.RemoveAll(tmp)
		if err == nil && e != nil {
			err = errors.Wrap(e, "remove staging dir")
		}
	}()

	rendered := make([]string, 0, len(files))

	for _, f := range files {
		p, err := f.Render(tmp)
		if err != nil {
			return nil, errors.Wrap(err, "render %v", f.Path)
		}

		rendered = append(rendered, p)
	}

	for i, f := range files {
		p := filepath.Join(dir, f.Path)

		err = os.Rename(rendered[i], p)
		if err != nil {
			return nil, errors.Wrap(err, "move %v", f.Path)
		}

		tr.Printw("generated", "path", p)

		paths = append(paths, p)
	}

	return paths, nil
}

// Files builds the codegen files of s without writing them.
func Files(ctx context.Context, s *schema.Schema, opts Options) ([]*codegen.File, error) {
	var pkg protoreflect.FullName
	var files []*codegen.File

	for _, fd := range s.Files {
		if pkg == "" {
			pkg = fd.Package()
		}

		if fd.Package() != pkg {
			return nil, errors.New("%v: package %v differs from %v: all files must share one package", fd.Path(), fd.Package(), pkg)
		}

		data, err := buildFile(fd, opts)
		if err != nil {
			return nil, errors.Wrap(err, "%v", fd.Path())
		}

		if tlog.If("gen_dump") {
			tlog.Printw("file data", "source", data.Source, "enums", len(data.Enums), "messages", len(data.Messages), "services", len(data.Services))
		}

		files = append(files, fileFor(data))
	}

	return files, nil
}

// FileName is the generated file name for a schema file.
func FileName(protoPath string) string {
	base := path.Base(protoPath)

	return strings.TrimSuffix(base, path.Ext(base)) + ".gen.go"
}

func fileFor(data *fileData) *codegen.File {
	sections := []*codegen.SectionTemplate{
		{Name: "source-header", Source: genTemplates.Read(headerT), Data: data},
	}

	for _, e := range data.Enums {
		sections = append(sections, &codegen.SectionTemplate{Name: "enum-" + e.Name, Source: genTemplates.Read(enumT), Data: e})
	}

	for _, m := range data.Messages {
		sections = append(sections, &codegen.SectionTemplate{Name: "message-" + m.Name, Source: genTemplates.Read(messageT), Data: m})
	}

	for _, sv := range data.Services {
		sections = append(sections, &codegen.SectionTemplate{Name: "service-" + sv.Name, Source: genTemplates.Read(serviceT), Data: sv})
	}

	return &codegen.File{
		Path:             FileName(data.Source),
		SectionTemplates: sections,
	}
}

func buildFile(fd protoreflect.FileDescriptor, opts Options) (*fileData, error) {
	data := &fileData{
		Source:  fd.Path(),
		Package: opts.Package,
	}

	var need struct {
		bytes, math, strconv, wire, grpc bool
	}

	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		e, err := buildEnum(enums.Get(i))
		if err != nil {
			return nil, err
		}

		data.Enums = append(data.Enums, e)
		need.strconv = true
	}

	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		m, err := buildMessage(msgs.Get(i))
		if err != nil {
			return nil, err
		}

		data.Messages = append(data.Messages, m)
		need.wire = true

		for _, f := range m.Fields {
			need.bytes = need.bytes || strings.Contains(f.Differ, "bytes.") || strings.Contains(f.Same, "bytes.")
			need.math = need.math || strings.Contains(f.Cond, "math.")
		}
	}

	svcs := fd.Services()
	for i := 0; i < svcs.Len(); i++ {
		sv, err := buildService(svcs.Get(i))
		if err != nil {
			return nil, err
		}

		data.Services = append(data.Services, sv)
		need.wire = true
		need.grpc = true
	}

	if need.bytes {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: "bytes"})
	}

	if need.grpc {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: "context"})
	}

	if need.math {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: "math"})
	}

	if need.strconv {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: "strconv"})
	}

	if need.wire {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: opts.WireImport})
	}

	if need.grpc {
		data.Imports = append(data.Imports, &codegen.ImportSpec{Path: "google.golang.org/grpc"})
	}

	return data, nil
}

func buildEnum(ed protoreflect.EnumDescriptor) (*enumData, error) {
	e := &enumData{
		Name:     string(ed.Name()),
		FullName: string(ed.FullName()),
	}

	seen := map[protoreflect.EnumNumber]bool{}

	vals := ed.Values()
	for i := 0; i < vals.Len(); i++ {
		v := vals.Get(i)

		if seen[v.Number()] {
			return nil, errors.New("enum %v: aliased value %v is not supported", ed.FullName(), v.Name())
		}

		seen[v.Number()] = true

		e.Values = append(e.Values, &enumValueData{
			Const:  e.Name + "_" + string(v.Name()),
			Name:   string(v.Name()),
			Number: int32(v.Number()),
		})
	}

	return e, nil
}

func buildMessage(md protoreflect.MessageDescriptor) (*messageData, error) {
	if md.Messages().Len() != 0 || md.Enums().Len() != 0 {
		return nil, errors.New("message %v: nested declarations are not supported", md.FullName())
	}

	m := &messageData{
		Name:     string(md.Name()),
		FullName: string(md.FullName()),
	}

	oneofs := map[protoreflect.FullName]*fieldData{}

	fields := md.Fields()
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)

		if err := supported(fd); err != nil {
			return nil, errors.Wrap(err, "field %v", fd.FullName())
		}

		od := fd.ContainingOneof()
		if od == nil {
			f := buildField(fd)

			m.Items = append(m.Items, f)
			m.Fields = append(m.Fields, f)

			continue
		}

		o, ok := oneofs[od.FullName()]
		if !ok {
			name := codegen.Goify(string(od.Name()), true)

			o = &fieldData{
				Name:   name,
				Param:  param(name),
				Iface:  "is" + m.Name + "_" + name,
				Zero:   "nil",
				Number: int32(fd.Number()),
			}
			o.GoType = o.Iface

			oneofs[od.FullName()] = o
			m.Items = append(m.Items, o)
			m.Oneofs = append(m.Oneofs, o)
		}

		f := buildMember(m.Name, o.Name, fd)

		o.Members = append(o.Members, f)
		m.Fields = append(m.Fields, f)

		o.Checked = o.Checked || f.Check != ""

		if f.Number < o.Number {
			o.Number = f.Number
		}
	}

	for _, f := range m.Items {
		m.Checked = m.Checked || f.Check != "" || f.Checked
	}

	m.Wire = append([]*fieldData(nil), m.Items...)
	sort.SliceStable(m.Wire, func(i, j int) bool { return m.Wire[i].Number < m.Wire[j].Number })

	return m, nil
}

func supported(fd protoreflect.FieldDescriptor) error {
	switch {
	case fd.IsMap():
		return errors.New("maps are not supported")
	case fd.IsExtension():
		return errors.New("extensions are not supported")
	case fd.HasPresence() && fd.ContainingOneof() == nil && fd.Message() == nil:
		return errors.New("explicit presence is not supported")
	case fd.ContainingOneof() != nil && fd.ContainingOneof().IsSynthetic():
		return errors.New("proto3 optional is not supported")
	case fd.Kind() == protoreflect.GroupKind:
		return errors.New("groups are not supported")
	}

	if fd.Kind() == protoreflect.MessageKind || fd.Kind() == protoreflect.EnumKind {
		var parent protoreflect.Descriptor = fd.Message()
		if fd.Kind() == protoreflect.EnumKind {
			parent = fd.Enum()
		}

		if parent.ParentFile().Package() != fd.ParentFile().Package() {
			return errors.New("type %v is outside of package %v", parent.FullName(), fd.ParentFile().Package())
		}

		if _, ok := parent.Parent().(protoreflect.FileDescriptor); !ok {
			return errors.New("nested type %v is not supported", parent.FullName())
		}
	}

	if fd.Kind() == protoreflect.MessageKind || fd.Kind() == protoreflect.EnumKind {
		if fd.IsList() && fd.Kind() == protoreflect.EnumKind {
			return errors.New("repeated enums are not supported")
		}

		return nil
	}

	if _, ok := scalars[fd.Kind()]; !ok {
		return errors.New("kind %v is not supported", fd.Kind())
	}

	if fd.IsList() && fd.Kind() != protoreflect.StringKind && fd.Kind() != protoreflect.BytesKind {
		return errors.New("repeated %v is not supported", fd.Kind())
	}

	return nil
}

func buildField(fd protoreflect.FieldDescriptor) *fieldData {
	name := codegen.Goify(string(fd.Name()), true)

	f := &fieldData{
		Name:     name,
		Param:    param(name),
		Number:   int32(fd.Number()),
		Repeated: fd.IsList(),
	}

	x := "x." + name
	y := "y." + name

	if f.Repeated {
		x += "[i]"
		y += "[i]"
	}

	switch fd.Kind() {
	case protoreflect.MessageKind:
		f.Message = true
		f.Elem = string(fd.Message().Name())

		if f.Repeated {
			f.GoType = "[]" + f.Elem
			f.Zero = "nil"
			f.Append = fmt.Sprintf("wire.AppendMessage(b, %d, &%s)", f.Number, x)
			f.Differ = fmt.Sprintf("!%s.Equal(&%s)", x, y)
			f.Check = x + ".Validate()"
		} else {
			f.GoType = "*" + f.Elem
			f.Zero = "nil"
			f.Cond = x + " != nil"
			f.Append = fmt.Sprintf("wire.AppendMessage(b, %d, %s)", f.Number, x)
			f.Differ = fmt.Sprintf("!%s.Equal(%s)", x, y)
			f.Check = x + ".Validate()"
		}
	case protoreflect.EnumKind:
		f.Elem = string(fd.Enum().Name())
		f.GoType = f.Elem
		f.Zero = "0"
		f.Cond = x + " != 0"
		f.Append = fmt.Sprintf("wire.AppendVarint(b, %d, uint64(%s))", f.Number, x)
		f.Decode = fmt.Sprintf("x.%s = %s(d.Int32())", name, f.Elem)
		f.Differ = fmt.Sprintf("%s != %s", x, y)
	default:
		sc := scalars[fd.Kind()]

		f.Elem = sc.goType
		f.GoType = sc.goType
		f.Zero = sc.zero
		f.Cond = fmt.Sprintf(sc.cond, x)
		f.Append = fmt.Sprintf(sc.append, f.Number, x)
		f.Differ = fmt.Sprintf(sc.differ, x, y)
		f.Check = checkText(fd, x)

		if f.Repeated {
			f.GoType = "[]" + sc.goType
			f.Zero = "nil"
			f.Decode = fmt.Sprintf("x.%s = append(x.%s, %s)", name, name, sc.decode)
		} else {
			f.Decode = fmt.Sprintf("x.%s = %s", name, sc.decode)
		}
	}

	return f
}

func buildMember(msg, oneof string, fd protoreflect.FieldDescriptor) *fieldData {
	name := codegen.Goify(string(fd.Name()), true)

	f := &fieldData{
		Name:    name,
		Number:  int32(fd.Number()),
		Oneof:   oneof,
		Wrapper: msg + "_" + name,
	}

	k := "k." + name

	switch fd.Kind() {
	case protoreflect.MessageKind:
		f.Message = true
		f.Elem = string(fd.Message().Name())
		f.GoType = "*" + f.Elem
		f.Zero = "nil"
		f.Append = fmt.Sprintf("wire.AppendMessage(b, %d, %s)", f.Number, k)
		// nil is written as an empty message and read back as one
		f.Same = fmt.Sprintf("(x.%[1]s.Equal(y.%[1]s) || wire.Empty(x.%[1]s) && wire.Empty(y.%[1]s))", name)
		f.Check = k + ".Validate()"
	case protoreflect.EnumKind:
		f.Elem = string(fd.Enum().Name())
		f.GoType = f.Elem
		f.Zero = "0"
		f.Append = fmt.Sprintf("wire.AppendVarint(b, %d, uint64(%s))", f.Number, k)
		f.Decode = fmt.Sprintf("x.%s = %s{%s: %s(d.Int32())}", oneof, f.Wrapper, name, f.Elem)
		f.Same = fmt.Sprintf("x.%s == y.%s", name, name)
	default:
		sc := scalars[fd.Kind()]

		f.Elem = sc.goType
		f.GoType = sc.goType
		f.Zero = sc.zero
		f.Append = fmt.Sprintf(sc.append, f.Number, k)
		f.Decode = fmt.Sprintf("x.%s = %s{%s: %s}", oneof, f.Wrapper, name, sc.decode)
		f.Same = fmt.Sprintf(sc.same, "x."+name, "y."+name)
		f.Check = checkText(fd, k)
	}

	return f
}

func checkText(fd protoreflect.FieldDescriptor, v string) string {
	if fd.Kind() != protoreflect.StringKind {
		return ""
	}

	return fmt.Sprintf("wire.CheckText(%q, %d, %s)", fd.ContainingMessage().FullName(), fd.Number(), v)
}

func buildService(sd protoreflect.ServiceDescriptor) (*serviceData, error) {
	s := &serviceData{
		Name:     string(sd.Name()),
		FullName: string(sd.FullName()),
		Lower:    param(string(sd.Name())),
	}

	methods := sd.Methods()
	for i := 0; i < methods.Len(); i++ {
		md := methods.Get(i)

		if md.IsStreamingClient() || md.IsStreamingServer() {
			return nil, errors.New("method %v: streaming is not supported", md.FullName())
		}

		for _, t := range []protoreflect.MessageDescriptor{md.Input(), md.Output()} {
			if t.ParentFile().Package() != sd.ParentFile().Package() {
				return nil, errors.New("method %v: type %v is outside of package %v", md.FullName(), t.FullName(), sd.ParentFile().Package())
			}
		}

		s.Methods = append(s.Methods, &methodData{
			Name:   string(md.Name()),
			Input:  string(md.Input().Name()),
			Output: string(md.Output().Name()),
		})
	}

	return s, nil
}

// param turns an exported Go name into a parameter name.
func param(name string) string {
	r := []rune(name)

	switch {
	case len(r) == 0:
		return name
	case strings.ToUpper(name) == name:
		name = strings.ToLower(name)
	default:
		r[0] = unicode.ToLower(r[0])
		name = string(r)
	}

	if token.IsKeyword(name) {
		name += "_"
	}

	return name
}
