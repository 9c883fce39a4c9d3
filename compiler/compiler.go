package compiler

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/apivolve/xolir/compiler/gen"
	"github.com/apivolve/xolir/compiler/layout"
	"github.com/apivolve/xolir/compiler/schema"
	"github.com/apivolve/xolir/ir"
)

type (
	Config struct {
		Layout   layout.Policy `env:"XOLIR_LAYOUT" envDefault:"auto"`
		ProtoDir string        `env:"XOLIR_PROTO_DIR" envDefault:"../proto"`
		Entry    string        `env:"XOLIR_ENTRY" envDefault:"xolir/service.proto"`
		Out      string        `env:"XOLIR_OUT" envDefault:"."`
		Package  string        `env:"XOLIR_GO_PACKAGE" envDefault:"xolirpb"`

		// Base is the directory layouts are resolved against.
		// Empty means the working directory.
		Base string
	}
)

// LoadConfig reads Config from environ, or from the process environment if environ is nil.
func LoadConfig(environ map[string]string) (cfg Config, err error) {
	err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	if err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}

	return cfg, nil
}

func (cfg Config) Resolver() layout.Resolver {
	return layout.Resolver{
		Policy: cfg.Layout,
		Base:   cfg.Base,
		Dir:    cfg.ProtoDir,
		Entry:  cfg.Entry,
	}
}

// Compile resolves the schema store and compiles it.
func Compile(ctx context.Context, cfg Config) (*schema.Schema, error) {
	res, err := cfg.Resolver().Resolve(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "resolve schema store")
	}

	s, err := schema.Compile(ctx, res)
	if err != nil {
		return nil, errors.Wrap(err, "compile schema")
	}

	return s, nil
}

// Generate runs the whole pipeline and returns the written files.
func Generate(ctx context.Context, cfg Config) (paths []string, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "xolir gen", "layout", cfg.Layout, "out", cfg.Out)
	defer tr.Finish("err", &err)

	s, err := Compile(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.Out
	if out != "" && cfg.Base != "" && !filepath.IsAbs(out) {
		out = filepath.Join(cfg.Base, out)
	}

	paths, err = gen.Generate(ctx, s, gen.Options{
		Dir:     out,
		Package: cfg.Package,
	})
	if err != nil {
		return nil, errors.Wrap(err, "emit bindings")
	}

	return paths, nil
}

// Stage copies the resolved schema store to dst/proto,
// so that dst builds with the packaged layout.
// The staged copy is compiled again to make sure it is complete.
func Stage(ctx context.Context, cfg Config, dst string) (res layout.Resolution, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "xolir stage", "dst", dst)
	defer tr.Finish("err", &err)

	src, err := cfg.Resolver().Resolve(ctx)
	if err != nil {
		return res, errors.Wrap(err, "resolve schema store")
	}

	to, err := filepath.Abs(filepath.Join(dst, layout.StoreDir))
	if err != nil {
		return res, errors.Wrap(err, "destination")
	}

	if src.Root == to {
		return res, errors.New("stage %v: source and destination are the same", to)
	}

	err = os.MkdirAll(dst, 0o755)
	if err != nil {
		return res, errors.Wrap(err, "create %v", dst)
	}

	err = os.CopyFS(to, os.DirFS(src.Root))
	if err != nil {
		return res, errors.Wrap(err, "copy %v", src.Root)
	}

	tr.Printw("schema store copied", "from", src.Root, "to", to)

	res, err = layout.Resolver{Policy: layout.Packaged, Base: dst, Entry: cfg.Entry}.Resolve(ctx)
	if err != nil {
		return res, errors.Wrap(err, "resolve staged store")
	}

	_, err = schema.Compile(ctx, res)
	if err != nil {
		return res, errors.Wrap(err, "compile staged store")
	}

	return res, nil
}

// ReadProgram decodes a binary Program file.
func ReadProgram(ctx context.Context, name string) (*ir.Program, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(data), "name", name)

	var p ir.Program

	err = p.UnmarshalBinary(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode %v", name)
	}

	return &p, nil
}
