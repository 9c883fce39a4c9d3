// Package schema compiles the resolved schema store into protobuf descriptors.
package schema

import (
	"context"
	"strings"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/reflect/protoreflect"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/apivolve/xolir/compiler/layout"
)

type (
	Schema struct {
		Resolution layout.Resolution

		Entry protoreflect.FileDescriptor

		// Files are the entry point and everything it imports,
		// dependencies first. Well-known google/protobuf files are left out.
		Files []protoreflect.FileDescriptor

		Warnings []string
	}

	// Error is a failed schema compilation.
	// Diagnostics are the compiler messages, unchanged.
	Error struct {
		Root  string
		Entry string

		Diagnostics []string

		Err error
	}
)

// Hint is appended to compilation errors.
const Hint = "the schema is compiled by `go generate ./...` from a source checkout, or by `XOLIR_LAYOUT=packaged xolir gen` inside a package produced by `xolir stage`"

func Compile(ctx context.Context, res layout.Resolution) (s *Schema, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile schema", "root", res.Root, "entry", res.Entry)
	defer tr.Finish("err", &err)

	s = &Schema{Resolution: res}
	var diags []string

	rep := reporter.NewReporter(
		func(e reporter.ErrorWithPos) error {
			diags = append(diags, e.Error())
			return nil
		},
		func(e reporter.ErrorWithPos) {
			s.Warnings = append(s.Warnings, e.Error())
			tr.Printw("schema warning", "msg", e.Error())
		},
	)

	c := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: []string{res.Root},
		}),
		Reporter:       rep,
		SourceInfoMode: protocompile.SourceInfoStandard,
	}

	files, err := c.Compile(ctx, res.Entry)
	if err != nil {
		return nil, &Error{
			Root:        res.Root,
			Entry:       res.Entry,
			Diagnostics: diags,
			Err:         err,
		}
	}

	if len(files) != 1 {
		return nil, errors.New("compile %v: got %d files", res.Entry, len(files))
	}

	s.Entry = files[0]
	s.Files = reachable(s.Entry)

	for _, f := range s.Files {
		tr.Printw("schema file", "path", f.Path(), "package", f.Package(), "messages", f.Messages().Len(), "enums", f.Enums().Len(), "services", f.Services().Len())
	}

	return s, nil
}

// Message finds a message by its full name in the compiled files.
func (s *Schema) Message(name protoreflect.FullName) protoreflect.MessageDescriptor {
	for _, f := range s.Files {
		if d := f.Messages().ByName(name.Name()); d != nil && d.FullName() == name {
			return d
		}
	}

	return nil
}

func reachable(entry protoreflect.FileDescriptor) []protoreflect.FileDescriptor {
	var list []protoreflect.FileDescriptor
	seen := map[string]bool{}

	var walk func(f protoreflect.FileDescriptor)
	walk = func(f protoreflect.FileDescriptor) {
		if seen[f.Path()] || strings.HasPrefix(f.Path(), "google/protobuf/") {
			return
		}

		seen[f.Path()] = true

		imps := f.Imports()
		for i := 0; i < imps.Len(); i++ {
			walk(imps.Get(i).FileDescriptor)
		}

		list = append(list, f)
	}

	walk(entry)

	return list
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("compile schema ")
	b.WriteString(e.Entry)
	b.WriteString(" in ")
	b.WriteString(e.Root)
	b.WriteString(":")

	if len(e.Diagnostics) == 0 {
		b.WriteString(" ")
		b.WriteString(e.Err.Error())
	}

	for _, d := range e.Diagnostics {
		b.WriteString("\n\t")
		b.WriteString(d)
	}

	b.WriteString("\n")
	b.WriteString(Hint)

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }
