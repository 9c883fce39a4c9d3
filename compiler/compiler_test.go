package compiler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apivolve/xolir/compiler/layout"
	"github.com/apivolve/xolir/internal/irtest"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Layout:   layout.Auto,
		ProtoDir: "../proto",
		Entry:    "xolir/service.proto",
		Out:      ".",
		Package:  "xolirpb",
	}, cfg)
}

func TestLoadConfigEnv(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{
		"XOLIR_LAYOUT":     " Packaged ",
		"XOLIR_OUT":        "gen",
		"XOLIR_GO_PACKAGE": "irpb",
	})
	require.NoError(t, err)

	assert.Equal(t, layout.Packaged, cfg.Layout)
	assert.Equal(t, "gen", cfg.Out)
	assert.Equal(t, "irpb", cfg.Package)

	_, err = LoadConfig(map[string]string{"XOLIR_LAYOUT": "sdist"})
	assert.Error(t, err)
}

func TestGenerateNested(t *testing.T) {
	out := t.TempDir()

	cfg, err := LoadConfig(map[string]string{"XOLIR_OUT": out})
	require.NoError(t, err)

	paths, err := Generate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	for _, p := range paths {
		assert.FileExists(t, p)
		assert.Equal(t, out, filepath.Dir(p))
	}
}

func TestGenerateNotFound(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{"XOLIR_OUT": t.TempDir()})
	require.NoError(t, err)

	cfg.Base = t.TempDir()

	_, err = Generate(context.Background(), cfg)

	var nf *layout.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"proto", "../proto"}, nf.Tried)
}

func TestStageAndGeneratePackaged(t *testing.T) {
	ctx := context.Background()
	pkg := t.TempDir()

	cfg, err := LoadConfig(map[string]string{})
	require.NoError(t, err)

	res, err := Stage(ctx, cfg, pkg)
	require.NoError(t, err)

	assert.Equal(t, layout.PackagedRoot, res.Layout)
	assert.FileExists(t, filepath.Join(pkg, "proto", "xolir", "service.proto"))
	assert.FileExists(t, filepath.Join(pkg, "proto", "xolir", "expression.proto"))

	pcfg, err := LoadConfig(map[string]string{
		"XOLIR_LAYOUT": "packaged",
		"XOLIR_OUT":    "xolirpb",
	})
	require.NoError(t, err)

	pcfg.Base = pkg

	paths, err := Generate(ctx, pcfg)
	require.NoError(t, err)
	require.Len(t, paths, 4)

	assert.Equal(t, filepath.Join(pkg, "xolirpb", "program.gen.go"), paths[2])

	_, err = Stage(ctx, cfg, pkg)
	assert.Error(t, err, "staging over an existing store")
}

func TestReadProgram(t *testing.T) {
	ctx := context.Background()
	name := filepath.Join(t.TempDir(), "euler2.xolir")

	p := irtest.Euler2()

	b, err := p.MarshalBinary()
	require.NoError(t, err)

	err = os.WriteFile(name, b, 0o644)
	require.NoError(t, err)

	q, err := ReadProgram(ctx, name)
	require.NoError(t, err)
	assert.True(t, p.Equal(q))

	err = os.WriteFile(name, b[:len(b)-1], 0o644)
	require.NoError(t, err)

	_, err = ReadProgram(ctx, name)
	assert.Error(t, err)

	_, err = ReadProgram(ctx, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
