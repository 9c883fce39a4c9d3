// Package layout locates the schema store before the schema is compiled.
//
// A Policy is an ordered table of candidate directories. Resolve stats each
// candidate once, in order, and takes the first one that exists. Policies
// never share candidates implicitly: the packaged policy does not fall back
// to a source checkout, so a broken package can't be masked by a developer
// tree sitting next to it.
package layout

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	Policy string

	Candidate struct {
		Layout string
		Dir    string
	}

	Resolver struct {
		Policy Policy

		// Base is the directory relative candidates are resolved against.
		// Empty means the working directory.
		Base string

		// Dir is the only candidate of the Fixed policy.
		Dir string

		// Entry is the entry-point schema file, relative to the store root.
		Entry string
	}

	Resolution struct {
		Policy Policy
		Layout string
		Root   string // absolute
		Entry  string // relative to Root
	}

	NotFoundError struct {
		Policy Policy
		Base   string
		Tried  []string
	}
)

const (
	Auto     Policy = "auto"
	Packaged Policy = "packaged"
	Fixed    Policy = "fixed"
)

const (
	SourceRoot   = "source-root"
	SourceNested = "source-nested"
	PackagedRoot = "packaged"
	FixedRoot    = "fixed"
)

const (
	DefaultEntry    = "xolir/service.proto"
	DefaultFixedDir = "../proto"

	// StoreDir is the store directory name in a checkout and in a staged package.
	StoreDir = "proto"
)

var policies = map[Policy][]Candidate{
	Auto: {
		{Layout: SourceRoot, Dir: StoreDir},
		{Layout: SourceNested, Dir: "../" + StoreDir},
	},
	Packaged: {
		{Layout: PackagedRoot, Dir: StoreDir},
	},
}

// Resolve locates the schema store from the working directory.
func Resolve(ctx context.Context, p Policy) (Resolution, error) {
	r := Resolver{Policy: p}

	return r.Resolve(ctx)
}

// Candidates returns a copy of the ordered candidate table of the resolver's policy.
func (r Resolver) Candidates() ([]Candidate, error) {
	switch p := r.policy(); p {
	case Fixed:
		dir := r.Dir
		if dir == "" {
			dir = DefaultFixedDir
		}

		return []Candidate{{Layout: FixedRoot, Dir: dir}}, nil
	default:
		c, ok := policies[p]
		if !ok {
			return nil, errors.New("unknown layout policy: %q", p)
		}

		return slices.Clone(c), nil
	}
}

func (r Resolver) Resolve(ctx context.Context) (res Resolution, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "resolve schema store", "policy", r.policy())
	defer tr.Finish("err", &err)

	cands, err := r.Candidates()
	if err != nil {
		return res, err
	}

	base := r.Base
	if base == "" {
		base, err = os.Getwd()
		if err != nil {
			return res, errors.Wrap(err, "get working dir")
		}
	}

	base, err = filepath.Abs(base)
	if err != nil {
		return res, errors.Wrap(err, "base dir")
	}

	entry := r.Entry
	if entry == "" {
		entry = DefaultEntry
	}

	tried := make([]string, 0, len(cands))

	for _, c := range cands {
		dir := c.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}

		ok := isDir(dir)

		tlog.V("layout").Printw("candidate", "layout", c.Layout, "dir", dir, "exists", ok, "from", loc.Caller(0))

		if !ok {
			tried = append(tried, c.Dir)
			continue
		}

		res = Resolution{
			Policy: r.policy(),
			Layout: c.Layout,
			Root:   dir,
			Entry:  filepath.ToSlash(entry),
		}

		tr.Printw("schema store found", "layout", res.Layout, "root", res.Root)

		return res, nil
	}

	return res, &NotFoundError{
		Policy: r.policy(),
		Base:   base,
		Tried:  tried,
	}
}

// EntryPath is the entry-point file on disk.
func (r Resolution) EntryPath() string {
	return filepath.Join(r.Root, filepath.FromSlash(r.Entry))
}

func (r Resolver) policy() Policy {
	if r.Policy == "" {
		return Auto
	}

	return r.Policy
}

func (p Policy) String() string { return string(p) }

func (p *Policy) UnmarshalText(b []byte) error {
	q := Policy(strings.ToLower(strings.TrimSpace(string(b))))
	if q == "" {
		q = Auto
	}

	if _, ok := policies[q]; !ok && q != Fixed {
		return errors.New("unknown layout policy: %q (want auto, packaged or fixed)", string(b))
	}

	*p = q

	return nil
}

func (e *NotFoundError) Error() string {
	var b strings.Builder

	b.WriteString("schema store not found (policy ")
	b.WriteString(string(e.Policy))
	b.WriteString(", tried ")
	b.WriteString(strings.Join(e.Tried, ", "))
	b.WriteString(" from ")
	b.WriteString(e.Base)
	b.WriteString("): ")

	switch e.Policy {
	case Packaged:
		b.WriteString("a packaged build needs the schema staged under ./proto; build from a package produced by `xolir stage`")
	default:
		b.WriteString("run `go generate ./...` from a source checkout so that proto/ or ../proto is reachable, or set XOLIR_LAYOUT=packaged inside a package produced by `xolir stage`")
	}

	return b.String()
}

func isDir(p string) bool {
	inf, err := os.Stat(p)

	return err == nil && inf.IsDir()
}
