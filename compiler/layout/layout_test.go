package layout

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkstore(t *testing.T, dir string) {
	t.Helper()

	p := filepath.Join(dir, "xolir", "service.proto")

	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(`syntax = "proto3";`), 0o644))
}

func mkdir(t *testing.T, dir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))

	return dir
}

func TestSourceRoot(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "checkout"))
	mkstore(t, filepath.Join(base, "proto"))
	mkstore(t, filepath.Join(root, "proto")) // ../proto exists too

	res, err := Resolver{Base: base}.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, Auto, res.Policy)
	assert.Equal(t, SourceRoot, res.Layout)
	assert.Equal(t, filepath.Join(base, "proto"), res.Root)
	assert.Equal(t, "xolir/service.proto", res.Entry)
	assert.Equal(t, filepath.Join(base, "proto", "xolir", "service.proto"), res.EntryPath())
}

func TestSourceNested(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "go"))
	mkstore(t, filepath.Join(root, "proto"))

	res, err := Resolver{Policy: Auto, Base: base}.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, SourceNested, res.Layout)
	assert.Equal(t, filepath.Join(root, "proto"), res.Root)
}

func TestPackaged(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "pkg"))
	mkstore(t, filepath.Join(base, "proto"))

	res, err := Resolver{Policy: Packaged, Base: base}.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, PackagedRoot, res.Layout)
	assert.Equal(t, filepath.Join(base, "proto"), res.Root)
}

func TestPackagedNoFallback(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "pkg"))
	mkstore(t, filepath.Join(root, "proto")) // a developer tree next to the package

	_, err := Resolver{Policy: Packaged, Base: base}.Resolve(ctx)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"proto"}, nf.Tried)
	assert.Contains(t, err.Error(), "xolir stage")
}

func TestFixed(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "python"))
	mkstore(t, filepath.Join(root, "proto"))
	mkstore(t, filepath.Join(base, "proto")) // ignored: fixed has a single candidate

	res, err := Resolver{Policy: Fixed, Base: base}.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, FixedRoot, res.Layout)
	assert.Equal(t, filepath.Join(root, "proto"), res.Root)

	abs := filepath.Join(root, "elsewhere")
	mkstore(t, abs)

	res, err = Resolver{Policy: Fixed, Base: base, Dir: abs}.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, abs, res.Root)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	base := mkdir(t, filepath.Join(t.TempDir(), "empty"))

	_, err := Resolver{Base: base}.Resolve(ctx)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, Auto, nf.Policy)
	assert.Equal(t, []string{"proto", "../proto"}, nf.Tried)
	assert.Contains(t, err.Error(), "go generate ./...")
}

func TestFileIsNotAStore(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	base := mkdir(t, filepath.Join(root, "checkout"))
	require.NoError(t, os.WriteFile(filepath.Join(base, "proto"), nil, 0o644))
	mkstore(t, filepath.Join(root, "proto"))

	res, err := Resolver{Base: base}.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, SourceNested, res.Layout)
}

func TestCustomEntry(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	mkstore(t, filepath.Join(base, "proto"))

	res, err := Resolver{Base: base, Entry: "xolir/program.proto"}.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "xolir/program.proto", res.Entry)
}

func TestUnknownPolicy(t *testing.T) {
	_, err := Resolver{Policy: "sideways"}.Resolve(context.Background())
	assert.Error(t, err)

	var p Policy
	assert.Error(t, p.UnmarshalText([]byte("sideways")))

	for in, want := range map[string]Policy{
		"":          Auto,
		"auto":      Auto,
		" Packaged": Packaged,
		"FIXED":     Fixed,
	} {
		require.NoError(t, p.UnmarshalText([]byte(in)), in)
		assert.Equal(t, want, p, in)
	}
}

func TestCandidatesOrder(t *testing.T) {
	c, err := Resolver{}.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Layout: SourceRoot, Dir: "proto"},
		{Layout: SourceNested, Dir: "../proto"},
	}, c)

	c, err = Resolver{Policy: Fixed, Dir: "/opt/xolir/proto"}.Candidates()
	require.NoError(t, err)
	assert.Equal(t, []Candidate{{Layout: FixedRoot, Dir: "/opt/xolir/proto"}}, c)
}

func TestCandidatesIsACopy(t *testing.T) {
	c, err := Resolver{}.Candidates()
	require.NoError(t, err)

	c[0], c[1] = c[1], c[0]

	c, err = Resolver{Policy: Auto}.Candidates()
	require.NoError(t, err)
	assert.Equal(t, SourceRoot, c[0].Layout)
}
