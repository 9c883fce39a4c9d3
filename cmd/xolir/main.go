package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/apivolve/xolir/compiler"
	"github.com/apivolve/xolir/compiler/format"
	"github.com/apivolve/xolir/compiler/layout"
)

func main() {
	storeFlags := func(fs ...*cli.Flag) []*cli.Flag {
		return append([]*cli.Flag{
			cli.NewFlag("layout", "", "schema store layout: auto, packaged or fixed (env XOLIR_LAYOUT)"),
			cli.NewFlag("proto-dir", "", "schema store of the fixed layout (env XOLIR_PROTO_DIR)"),
			cli.NewFlag("entry", "", "entry-point schema file (env XOLIR_ENTRY)"),
			cli.HelpFlag,
		}, fs...)
	}

	resolveCmd := &cli.Command{
		Name:        "resolve",
		Description: "print the schema store the current layout resolves to",
		Action:      resolveAct,
		Flags:       storeFlags(),
	}

	genCmd := &cli.Command{
		Name:        "gen,generate",
		Description: "compile the schema store and write Go bindings",
		Action:      genAct,
		Flags: storeFlags(
			cli.NewFlag("out,o", "", "output directory (env XOLIR_OUT)"),
			cli.NewFlag("package", "", "go package name of generated files (env XOLIR_GO_PACKAGE)"),
		),
	}

	stageCmd := &cli.Command{
		Name:        "stage",
		Description: "copy the schema store into DIR/proto for a packaged build",
		Action:      stageAct,
		Args:        cli.Args{},
		Flags:       storeFlags(),
	}

	dumpCmd := &cli.Command{
		Name:        "dump",
		Description: "print binary Program files in text form",
		Action:      dumpAct,
		Args:        cli.Args{},
		Flags:       []*cli.Flag{cli.HelpFlag},
	}

	app := &cli.Command{
		Name:        "xolir",
		Description: "xolir generates and inspects XOLIR bindings",
		Commands: []*cli.Command{
			resolveCmd,
			genCmd,
			stageCmd,
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

// config reads the environment, then applies the store flags
// and the listed command specific ones.
func config(c *cli.Command, extra ...string) (cfg compiler.Config, err error) {
	cfg, err = compiler.LoadConfig(nil)
	if err != nil {
		return cfg, errors.Wrap(err, "load config")
	}

	if q := c.String("layout"); q != "" {
		err = cfg.Layout.UnmarshalText([]byte(q))
		if err != nil {
			return cfg, errors.Wrap(err, "layout flag")
		}
	}

	fields := map[string]*string{
		"proto-dir": &cfg.ProtoDir,
		"entry":     &cfg.Entry,
		"out":       &cfg.Out,
		"package":   &cfg.Package,
	}

	for _, f := range append([]string{"proto-dir", "entry"}, extra...) {
		if v := c.String(f); v != "" {
			*fields[f] = v
		}
	}

	return cfg, nil
}

func rootContext() context.Context {
	return tlog.ContextWithSpan(context.Background(), tlog.Root())
}

func resolveAct(c *cli.Command) (err error) {
	ctx := rootContext()

	cfg, err := config(c)
	if err != nil {
		return err
	}

	res, err := cfg.Resolver().Resolve(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("policy %v\nlayout %v\nroot   %v\nentry  %v\n", res.Policy, res.Layout, res.Root, res.Entry)

	return nil
}

func genAct(c *cli.Command) (err error) {
	ctx := rootContext()

	cfg, err := config(c, "out", "package")
	if err != nil {
		return err
	}

	paths, err := compiler.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Println(p)
	}

	return nil
}

func stageAct(c *cli.Command) (err error) {
	ctx := rootContext()

	if len(c.Args) != 1 {
		return errors.New("want exactly one destination dir, got %d args", len(c.Args))
	}

	cfg, err := config(c)
	if err != nil {
		return err
	}

	res, err := compiler.Stage(ctx, cfg, c.Args[0])
	if err != nil {
		return err
	}

	fmt.Printf("staged %v\nbuild it with XOLIR_LAYOUT=%v xolir gen\n", res.Root, layout.Packaged)

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx := rootContext()

	var b []byte

	for _, a := range c.Args {
		p, err := compiler.ReadProgram(ctx, a)
		if err != nil {
			return errors.Wrap(err, "dump %v", a)
		}

		b, err = format.Format(ctx, b[:0], p)
		if err != nil {
			return errors.Wrap(err, "format %v", a)
		}

		_, err = os.Stdout.Write(b)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}
